package tui

import (
	"context"
	"math"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"sprout/internal/engine"
	"sprout/internal/pets"
	"sprout/internal/storage"
)

func newTestScene(t *testing.T) sceneModel {
	t.Helper()

	store := storage.NewSnapshotStore(filepath.Join(t.TempDir(), "sprout.json"), engine.DefaultPlantID)
	seed := storage.DefaultSnapshot(engine.DefaultPlantID)
	seed.CurrencyBalance = 1000
	seed.LifetimeEarned = 1000
	seed.Inventory = []storage.InventoryEntry{{ItemID: "pet_cat", Kind: "pet"}}
	if err := store.Save(seed); err != nil {
		t.Fatalf("seed snapshot: %v", err)
	}

	m := newSceneModel(context.Background(), engine.NewService(store, nil), 150*time.Millisecond)
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m = update(t, m, tickMsg(time.Now())) // syncs the herd
	return m
}

func update(t *testing.T, m sceneModel, msg tea.Msg) sceneModel {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(sceneModel)
	if !ok {
		t.Fatalf("Update returned %T, want sceneModel", next)
	}
	return out
}

// mouseAt builds a mouse message whose scene coordinates land on p.
// Ceiling keeps a fractional pet position inside its own hit region.
func mouseAt(p pets.Point, action tea.MouseAction) tea.MouseMsg {
	return tea.MouseMsg{
		X:      int(math.Ceil(p.X)) + 1,
		Y:      int(math.Ceil(p.Y)) + headerRows,
		Action: action,
		Button: tea.MouseButtonLeft,
	}
}

func TestMouseDragLifecycle(t *testing.T) {
	m := newTestScene(t)

	cat := m.herd.Get("pet_cat")
	if cat == nil {
		t.Fatalf("expected a controller for the owned pet")
	}

	m = update(t, m, mouseAt(cat.Position(), tea.MouseActionPress))
	if cat.Behavior() != pets.Dragged {
		t.Fatalf("behavior=%s after press, want dragged", cat.Behavior())
	}

	m = update(t, m, mouseAt(pets.Point{X: 40, Y: 10}, tea.MouseActionMotion))
	if cat.Behavior() != pets.Dragged {
		t.Fatalf("behavior=%s during motion, want dragged", cat.Behavior())
	}

	m = update(t, m, mouseAt(pets.Point{X: 40, Y: 10}, tea.MouseActionRelease))
	if cat.Behavior() != pets.Idle {
		t.Fatalf("behavior=%s after release, want idle", cat.Behavior())
	}
	if cat.Target() != nil {
		t.Fatalf("target=%v after release, want nil", cat.Target())
	}
	_ = m
}

func TestOverlaySuppressesDragInitiation(t *testing.T) {
	m := newTestScene(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	if m.overlay != overlayShop {
		t.Fatalf("overlay=%d, want shop", m.overlay)
	}

	cat := m.herd.Get("pet_cat")
	m = update(t, m, mouseAt(cat.Position(), tea.MouseActionPress))
	if cat.Behavior() == pets.Dragged {
		t.Fatalf("drag must be suppressed while a modal overlay is open")
	}

	// Ticks keep running while the overlay is open.
	m = update(t, m, tickMsg(time.Now()))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.overlay != overlayNone {
		t.Fatalf("overlay=%d after esc, want none", m.overlay)
	}
	m = update(t, m, mouseAt(cat.Position(), tea.MouseActionPress))
	if cat.Behavior() != pets.Dragged {
		t.Fatalf("behavior=%s after overlay closed, want dragged", cat.Behavior())
	}
}

func TestOpeningOverlayDropsInFlightDrag(t *testing.T) {
	m := newTestScene(t)
	cat := m.herd.Get("pet_cat")

	m = update(t, m, mouseAt(cat.Position(), tea.MouseActionPress))
	if cat.Behavior() != pets.Dragged {
		t.Fatalf("behavior=%s, want dragged", cat.Behavior())
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	if cat.Behavior() != pets.Idle {
		t.Fatalf("behavior=%s after opening dialog, want idle", cat.Behavior())
	}
	_ = m
}

func TestConfirmLogsTaskFromOverlay(t *testing.T) {
	m := newTestScene(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	before := m.snap.CurrencyBalance
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.overlay != overlayNone {
		t.Fatalf("overlay should close after confirm")
	}
	want := before + engine.Tasks[0].Reward
	if m.snap.CurrencyBalance != want {
		t.Fatalf("balance=%d, want %d", m.snap.CurrencyBalance, want)
	}
}
