package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const testDefaultPlant = "plant_shrub"

func newTestStore(t *testing.T) *SnapshotStore {
	t.Helper()
	return NewSnapshotStore(filepath.Join(t.TempDir(), "sprout.json"), testDefaultPlant)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)

	want := Snapshot{
		CurrencyBalance: 420,
		LifetimeEarned:  1200,
		ActivePlantID:   "plant_rose",
		PlantStages:     map[string]int{testDefaultPlant: 5, "plant_rose": 2},
		Inventory: []InventoryEntry{
			{ItemID: testDefaultPlant, Kind: "plant"},
			{ItemID: "plant_rose", Kind: "plant"},
			{ItemID: "pet_cat", Kind: "pet", CustomName: "Miso"},
		},
		LastLogin: "2026-08-29",
	}

	if err := store.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got := store.Load()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	store := newTestStore(t)

	got := store.Load()
	if got.CurrencyBalance != 0 {
		t.Fatalf("balance=%d, want 0", got.CurrencyBalance)
	}
	if got.ActivePlantID != testDefaultPlant {
		t.Fatalf("active=%q, want %q", got.ActivePlantID, testDefaultPlant)
	}
	if stage := got.PlantStages[testDefaultPlant]; stage != 0 {
		t.Fatalf("stage=%d, want 0", stage)
	}
	if len(got.Inventory) != 0 {
		t.Fatalf("inventory=%v, want empty", got.Inventory)
	}
}

func TestLoadCorruptFileDefaultsAndKeepsFile(t *testing.T) {
	store := newTestStore(t)
	raw := []byte("{not json at all")
	if err := os.WriteFile(store.Path(), raw, 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	got := store.Load()
	if got.CurrencyBalance != 0 || got.ActivePlantID != testDefaultPlant {
		t.Fatalf("corrupt load=%+v, want defaults", got)
	}

	// The malformed file must not be deleted or rewritten.
	after, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(after) != string(raw) {
		t.Fatalf("corrupt file was modified")
	}
}

func TestLoadMigratesLegacyLayout(t *testing.T) {
	store := newTestStore(t)
	legacy := `{
		"currency_balance": 350,
		"plant_stage": 3,
		"inventory": ["plant_rose", "pet_cat"],
		"pet_custom_names": {"cat": "Miso"},
		"last_login": "2024-01-05"
	}`
	if err := os.WriteFile(store.Path(), []byte(legacy), 0o644); err != nil {
		t.Fatalf("write legacy file: %v", err)
	}

	got := store.Load()
	if got.CurrencyBalance != 350 {
		t.Fatalf("balance=%d, want 350", got.CurrencyBalance)
	}
	// Lifetime earnings predate tracking; the balance is the lower bound.
	if got.LifetimeEarned != 350 {
		t.Fatalf("lifetime=%d, want 350", got.LifetimeEarned)
	}
	if got.ActivePlantID != testDefaultPlant {
		t.Fatalf("active=%q, want %q", got.ActivePlantID, testDefaultPlant)
	}
	if stage := got.PlantStages[testDefaultPlant]; stage != 3 {
		t.Fatalf("migrated stage=%d, want 3", stage)
	}
	if len(got.Inventory) != 2 {
		t.Fatalf("inventory=%v, want 2 entries", got.Inventory)
	}
	if got.Inventory[1].ItemID != "pet_cat" || got.Inventory[1].CustomName != "Miso" {
		t.Fatalf("pet entry=%+v, want pet_cat named Miso", got.Inventory[1])
	}
	if got.LastLogin != "2024-01-05" {
		t.Fatalf("last_login=%q, want 2024-01-05", got.LastLogin)
	}
}

func TestLoadIgnoresUnknownFields(t *testing.T) {
	store := newTestStore(t)
	raw := `{"currency_balance": 7, "window_geometry": "800x600", "theme": "dark"}`
	if err := os.WriteFile(store.Path(), []byte(raw), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got := store.Load()
	if got.CurrencyBalance != 7 {
		t.Fatalf("balance=%d, want 7", got.CurrencyBalance)
	}
}

func TestSaveReplacesWholesale(t *testing.T) {
	store := newTestStore(t)

	first := DefaultSnapshot(testDefaultPlant)
	first.CurrencyBalance = 10
	if err := store.Save(first); err != nil {
		t.Fatalf("first Save: %v", err)
	}

	second := DefaultSnapshot(testDefaultPlant)
	second.CurrencyBalance = 99
	second.Inventory = []InventoryEntry{{ItemID: "pet_slime", Kind: "pet"}}
	if err := store.Save(second); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	got := store.Load()
	if got.CurrencyBalance != 99 || len(got.Inventory) != 1 {
		t.Fatalf("got %+v, want the second snapshot wholesale", got)
	}

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(store.Path()))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("dir entries=%d, want just the snapshot", len(entries))
	}
}

func TestCloneIsDeep(t *testing.T) {
	snap := DefaultSnapshot(testDefaultPlant)
	snap.Inventory = []InventoryEntry{{ItemID: "pet_cat", Kind: "pet"}}

	clone := snap.Clone()
	clone.PlantStages[testDefaultPlant] = 5
	clone.Inventory[0].CustomName = "Miso"

	if snap.PlantStages[testDefaultPlant] != 0 {
		t.Fatalf("clone shares the stage map")
	}
	if snap.Inventory[0].CustomName != "" {
		t.Fatalf("clone shares the inventory slice")
	}
}
