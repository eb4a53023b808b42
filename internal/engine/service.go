package engine

import (
	"context"
	"database/sql"
	"log/slog"
	"sync"
	"time"

	"sprout/internal/storage"
)

// Service is the single mutation point for the reward economy. It owns the
// in-memory snapshot, serializes all UI-triggered operations behind one
// mutex, and re-saves the whole snapshot after every mutation. Pet motion
// never goes through the Service; pets only read ownership via OwnedPets.
type Service struct {
	mu      sync.Mutex
	snap    storage.Snapshot
	store   *storage.SnapshotStore
	journal *storage.JournalRepo

	now      func() time.Time
	onChange func(Change)
}

// NewService loads (or defaults) the snapshot from the store. The db may be
// nil, in which case no journal history is recorded.
func NewService(store *storage.SnapshotStore, db *sql.DB) *Service {
	s := &Service{
		store: store,
		snap:  store.Load(),
		now:   time.Now,
	}
	if db != nil {
		s.journal = storage.NewJournalRepo(db)
	}
	s.normalize()
	return s
}

// normalize repairs invariants a legacy or hand-edited save may violate:
// the default plant is always owned, every inventory entry carries a kind,
// every stage is within [0, MaxStage], and the active plant has a stage.
func (s *Service) normalize() {
	inv := NewInventory(&s.snap)
	if !inv.IsOwned(DefaultPlantID) {
		s.snap.Inventory = append([]storage.InventoryEntry{{
			ItemID: DefaultPlantID,
			Kind:   string(KindPlant),
		}}, s.snap.Inventory...)
	}
	for i := range s.snap.Inventory {
		if s.snap.Inventory[i].Kind == "" {
			s.snap.Inventory[i].Kind = string(KindOfItem(s.snap.Inventory[i].ItemID))
		}
	}
	for id, stage := range s.snap.PlantStages {
		switch {
		case stage < 0:
			s.snap.PlantStages[id] = 0
		case stage > MaxStage:
			s.snap.PlantStages[id] = MaxStage
		}
	}
	NewGrowth(&s.snap).initPlant(s.snap.ActivePlantID)
}

// Snapshot returns a copy of the current state for rendering. The UI never
// sees the engine's own maps and slices.
func (s *Service) Snapshot() storage.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Clone()
}

func (s *Service) Balance() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.CurrencyBalance
}

// OwnedPets lists owned pet entries; the pet herd consults this to decide
// which controllers exist.
func (s *Service) OwnedPets() []storage.InventoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]storage.InventoryEntry(nil), NewInventory(&s.snap).ListByKind(KindPet)...)
}

func (s *Service) Journal() *storage.JournalRepo { return s.journal }

// SwitchActivePlant makes another owned plant the displayed one, at no cost.
func (s *Service) SwitchActivePlant(plantID string) error {
	s.mu.Lock()
	inv := NewInventory(&s.snap)
	if _, ok := ItemByID(plantID); !ok || KindOfItem(plantID) != KindPlant {
		s.mu.Unlock()
		return ErrUnknownItem
	}
	if !inv.IsOwned(plantID) {
		s.mu.Unlock()
		return ErrNotOwned
	}
	s.snap.ActivePlantID = plantID
	NewGrowth(&s.snap).initPlant(plantID)
	s.persist()
	s.mu.Unlock()

	s.notify(ChangeStage)
	return nil
}

// RenameItem sets the custom display name of an owned item. It never touches
// the ledger or ownership.
func (s *Service) RenameItem(itemID, name string) error {
	s.mu.Lock()
	if err := NewInventory(&s.snap).Rename(itemID, name); err != nil {
		s.mu.Unlock()
		return err
	}
	s.persist()
	s.mu.Unlock()

	s.notify(ChangeInventory)
	return nil
}

// persist stamps last-login and re-saves the snapshot. Save failures are
// warnings, not errors: the in-memory state stays authoritative and the
// next successful save reconciles. Callers hold the mutex.
func (s *Service) persist() {
	s.snap.LastLogin = s.now().Format(storage.LastLoginFormat)
	if err := s.store.Save(s.snap); err != nil {
		slog.Warn("snapshot save failed, keeping in-memory state", "error", err)
	}
}

// record appends a journal row. Journal failures are warnings for the same
// reason save failures are. Callers hold the mutex.
func (s *Service) record(ctx context.Context, kind, ref string, delta int) {
	if s.journal == nil {
		return
	}
	if _, err := s.journal.Insert(ctx, s.now().UTC(), kind, ref, delta, s.snap.CurrencyBalance); err != nil {
		slog.Warn("journal write failed", "kind", kind, "ref", ref, "error", err)
	}
}
