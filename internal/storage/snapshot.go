package storage

import (
	"encoding/json"
	"fmt"
	"time"
)

// Snapshot is the complete persisted engine state. It is replaced wholesale
// on every save; there are no partial writes.
type Snapshot struct {
	CurrencyBalance int              `json:"currency_balance"`
	LifetimeEarned  int              `json:"lifetime_earned"`
	ActivePlantID   string           `json:"active_plant_id"`
	PlantStages     map[string]int   `json:"plant_stages"`
	Inventory       []InventoryEntry `json:"inventory"`
	LastLogin       string           `json:"last_login"`
}

type InventoryEntry struct {
	ItemID     string `json:"item_id"`
	Kind       string `json:"kind"`
	CustomName string `json:"custom_name,omitempty"`
}

// LastLoginFormat is the date-only stamp written on every save.
const LastLoginFormat = "2006-01-02"

// DefaultSnapshot is the state of a brand-new companion: zero balance and
// the default plant at stage 0.
func DefaultSnapshot(defaultPlantID string) Snapshot {
	return Snapshot{
		ActivePlantID: defaultPlantID,
		PlantStages:   map[string]int{defaultPlantID: 0},
		LastLogin:     time.Now().Format(LastLoginFormat),
	}
}

// Clone returns a deep copy so callers can hand snapshots to the UI without
// sharing the engine's maps and slices.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.PlantStages = make(map[string]int, len(s.PlantStages))
	for id, stage := range s.PlantStages {
		out.PlantStages[id] = stage
	}
	out.Inventory = append([]InventoryEntry(nil), s.Inventory...)
	return out
}

// snapshotFile mirrors Snapshot on disk but keeps every field loose enough
// to also accept the legacy layouts older saves used: a scalar plant_stage,
// a plant_custom_names map, and inventory as a bare list of ids.
type snapshotFile struct {
	CurrencyBalance  *int              `json:"currency_balance"`
	LifetimeEarned   *int              `json:"lifetime_earned"`
	ActivePlantID    string            `json:"active_plant_id"`
	PlantStages      map[string]int    `json:"plant_stages"`
	PlantStage       *int              `json:"plant_stage"`
	Inventory        json.RawMessage   `json:"inventory"`
	PetCustomNames   map[string]string `json:"pet_custom_names"`
	PlantCustomNames map[string]string `json:"plant_custom_names"`
	LastLogin        string            `json:"last_login"`
}

// decodeSnapshot parses raw JSON into a Snapshot, migrating legacy fields.
// Unknown fields are ignored and missing fields default.
func decodeSnapshot(raw []byte, defaultPlantID string) (Snapshot, error) {
	var f snapshotFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}

	snap := DefaultSnapshot(defaultPlantID)
	if f.CurrencyBalance != nil && *f.CurrencyBalance >= 0 {
		snap.CurrencyBalance = *f.CurrencyBalance
	}
	if f.LifetimeEarned != nil && *f.LifetimeEarned >= snap.CurrencyBalance {
		snap.LifetimeEarned = *f.LifetimeEarned
	} else {
		// Older saves predate lifetime tracking; the balance is the best
		// lower bound available.
		snap.LifetimeEarned = snap.CurrencyBalance
	}
	if f.ActivePlantID != "" {
		snap.ActivePlantID = f.ActivePlantID
	}
	if len(f.PlantStages) > 0 {
		snap.PlantStages = f.PlantStages
	} else if f.PlantStage != nil {
		// Legacy single-plant layout.
		snap.PlantStages = map[string]int{defaultPlantID: *f.PlantStage}
	}
	if _, ok := snap.PlantStages[snap.ActivePlantID]; !ok {
		snap.PlantStages[snap.ActivePlantID] = 0
	}
	if f.LastLogin != "" {
		snap.LastLogin = f.LastLogin
	}

	// pet_custom_names keys are bare pet names in legacy saves ("cat"), and
	// plant_custom_names is the oldest spelling of the same map.
	names := f.PetCustomNames
	if len(names) == 0 {
		names = f.PlantCustomNames
	}

	snap.Inventory = decodeInventory(f.Inventory, names)
	return snap, nil
}

func decodeInventory(raw json.RawMessage, customNames map[string]string) []InventoryEntry {
	if len(raw) == 0 {
		return nil
	}

	var entries []InventoryEntry
	if err := json.Unmarshal(raw, &entries); err == nil && validEntries(entries) {
		return entries
	}

	// Legacy layout: plain list of item ids.
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil
	}
	for _, id := range ids {
		if id == "" {
			continue
		}
		e := InventoryEntry{ItemID: id}
		if name, ok := customNames[id]; ok {
			e.CustomName = name
		} else if name, ok := customNames[trimPetPrefix(id)]; ok {
			e.CustomName = name
		}
		entries = append(entries, e)
	}
	return entries
}

func validEntries(entries []InventoryEntry) bool {
	for _, e := range entries {
		if e.ItemID == "" {
			return false
		}
	}
	return entries != nil
}

func trimPetPrefix(id string) string {
	if len(id) > 4 && id[:4] == "pet_" {
		return id[4:]
	}
	return id
}
