package tui

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"sprout/internal/engine"
	"sprout/internal/pets"
	"sprout/internal/storage"
	"sprout/internal/ui"
)

// Modal overlays. While any overlay is open, pet ticks keep running but
// drag initiation is suppressed.
type overlay int

const (
	overlayNone overlay = iota
	overlayTasks
	overlayShop
	overlayGrow
	overlayPlants
)

const (
	headerRows = 2
	footerRows = 2
)

var petSprite = pets.Sprite{W: 2, H: 1}

type sceneModel struct {
	ctx context.Context
	svc *engine.Service

	tickInterval time.Duration

	width  int
	height int

	snap storage.Snapshot
	herd *pets.Herd

	overlay  overlay
	selected int
	lastLog  string
}

type tickMsg time.Time

func newSceneModel(ctx context.Context, svc *engine.Service, tickInterval time.Duration) sceneModel {
	return sceneModel{
		ctx:          ctx,
		svc:          svc,
		tickInterval: tickInterval,
		snap:         svc.Snapshot(),
		herd:         pets.NewHerd(pets.Bounds{}, petSprite, rand.New(rand.NewSource(time.Now().UnixNano()))),
		lastLog:      "Welcome back.",
	}
}

func (m sceneModel) Init() tea.Cmd {
	return m.tickCmd()
}

func (m sceneModel) tickCmd() tea.Cmd {
	return tea.Tick(m.tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m sceneModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.herd.SetBounds(m.sceneBounds())
		return m, nil

	case tickMsg:
		m.herd.Sync(m.ownedPetIDs())
		m.herd.TickAll()
		return m, m.tickCmd()

	case tea.MouseMsg:
		return m.updateMouse(msg), nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m sceneModel) updateMouse(msg tea.MouseMsg) sceneModel {
	pointer := pets.Point{X: float64(msg.X - 1), Y: float64(msg.Y - headerRows)}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m
		}
		// Modal overlays take the pointer; pets are not grabbable.
		if m.overlay != overlayNone {
			return m
		}
		if c := m.herd.At(pointer); c != nil {
			c.StartDrag(pointer)
		}
	case tea.MouseActionMotion:
		if c := m.herd.Dragging(); c != nil {
			c.DragTo(pointer)
		}
	case tea.MouseActionRelease:
		if c := m.herd.Dragging(); c != nil {
			c.EndDrag()
		}
	}
	return m
}

func (m sceneModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "esc":
		m.overlay = overlayNone
		return m, nil
	case "t":
		return m.openOverlay(overlayTasks), nil
	case "s":
		return m.openOverlay(overlayShop), nil
	case "g":
		return m.openOverlay(overlayGrow), nil
	case "p":
		return m.openOverlay(overlayPlants), nil
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down", "j":
		if n := len(m.overlayRows()); m.selected < n-1 {
			m.selected++
		}
		return m, nil
	case "enter", " ":
		return m.confirm(), nil
	}
	return m, nil
}

func (m sceneModel) openOverlay(o overlay) sceneModel {
	// Opening a dialog while dragging drops the pet where it is.
	if c := m.herd.Dragging(); c != nil {
		c.EndDrag()
	}
	m.overlay = o
	m.selected = 0
	return m
}

// confirm executes the selected overlay row against the engine.
func (m sceneModel) confirm() sceneModel {
	rows := m.overlayRows()
	if m.overlay == overlayNone || m.selected < 0 || m.selected >= len(rows) {
		return m
	}
	id := rows[m.selected].id

	switch m.overlay {
	case overlayTasks:
		res, err := m.svc.LogTask(m.ctx, id)
		if err != nil {
			m.lastLog = errText(err)
			return m
		}
		m.lastLog = fmt.Sprintf("%s +%d dewdrops (balance %d)", res.Label, res.Reward, res.Balance)
		if res.StageUp() {
			m.lastLog += fmt.Sprintf(" — milestone! stage %d → %d", res.StageBefore, res.StageAfter)
		}
	case overlayShop:
		res, err := m.svc.Purchase(m.ctx, id)
		if err != nil {
			m.lastLog = errText(err)
			return m
		}
		m.lastLog = fmt.Sprintf("Bought %s for %d (balance %d)", res.Name, res.Cost, res.Balance)
	case overlayGrow:
		res, err := m.svc.UpgradePlant(m.ctx)
		if err != nil {
			m.lastLog = errText(err)
			return m
		}
		m.lastLog = fmt.Sprintf("Grew to stage %d for %d (balance %d)", res.StageAfter, res.Cost, res.Balance)
	case overlayPlants:
		if err := m.svc.SwitchActivePlant(id); err != nil {
			m.lastLog = errText(err)
			return m
		}
		m.lastLog = "Now tending " + engine.DisplayName(id)
	}

	m.snap = m.svc.Snapshot()
	m.overlay = overlayNone
	return m
}

func errText(err error) string {
	switch {
	case errors.Is(err, engine.ErrInsufficientFunds):
		return "Not enough dewdrops."
	case errors.Is(err, engine.ErrAlreadyOwned):
		return "Already owned."
	case errors.Is(err, engine.ErrMaxStageReached):
		return "Fully grown already."
	default:
		return err.Error()
	}
}

type overlayRow struct {
	id    string
	label string
}

func (m sceneModel) overlayRows() []overlayRow {
	switch m.overlay {
	case overlayTasks:
		rows := make([]overlayRow, 0, len(engine.Tasks))
		for _, t := range engine.Tasks {
			rows = append(rows, overlayRow{id: t.ID, label: fmt.Sprintf("%s (+%d)", t.Label, t.Reward)})
		}
		return rows
	case overlayShop:
		var rows []overlayRow
		inv := m.inventory()
		for _, it := range engine.ShopItems {
			label := fmt.Sprintf("%s — %d", it.Name, it.Cost)
			if _, owned := inv[it.ID]; owned {
				label += " (owned)"
			}
			rows = append(rows, overlayRow{id: it.ID, label: label})
		}
		return rows
	case overlayGrow:
		stage := m.snap.PlantStages[m.snap.ActivePlantID]
		if stage >= engine.MaxStage {
			return []overlayRow{{id: m.snap.ActivePlantID, label: "Fully grown"}}
		}
		return []overlayRow{{
			id:    m.snap.ActivePlantID,
			label: fmt.Sprintf("Grow to stage %d — %d", stage+1, engine.UpgradeCost(stage)),
		}}
	case overlayPlants:
		var rows []overlayRow
		for _, e := range m.snap.Inventory {
			if e.Kind != string(engine.KindPlant) {
				continue
			}
			label := ui.ItemLabel(engine.DisplayName(e.ItemID), e.CustomName)
			if e.ItemID == m.snap.ActivePlantID {
				label += " (active)"
			}
			rows = append(rows, overlayRow{id: e.ItemID, label: label})
		}
		return rows
	}
	return nil
}

func (m sceneModel) inventory() map[string]storage.InventoryEntry {
	out := make(map[string]storage.InventoryEntry, len(m.snap.Inventory))
	for _, e := range m.snap.Inventory {
		out[e.ItemID] = e
	}
	return out
}

func (m sceneModel) ownedPetIDs() []string {
	var ids []string
	for _, e := range m.svc.OwnedPets() {
		ids = append(ids, e.ItemID)
	}
	return ids
}

func (m sceneModel) sceneBounds() pets.Bounds {
	w := m.width - 2
	h := m.height - headerRows - footerRows - 2
	if w < 4 {
		w = 4
	}
	if h < 2 {
		h = 2
	}
	return pets.Bounds{Width: float64(w), Height: float64(h)}
}
