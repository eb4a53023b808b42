package engine

import "sprout/internal/storage"

type ChangeKind string

const (
	ChangeBalance   ChangeKind = "balance"
	ChangeInventory ChangeKind = "inventory"
	ChangeStage     ChangeKind = "stage"
)

// Change carries a pure snapshot of the state after a mutation. The engine
// never reaches into UI state; the UI redraws from the snapshot.
type Change struct {
	Kind     ChangeKind
	Snapshot storage.Snapshot
}

// SetOnChange registers a single listener for post-mutation notifications.
// The callback runs outside the engine mutex, so it may call back into the
// Service.
func (s *Service) SetOnChange(fn func(Change)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

func (s *Service) notify(kinds ...ChangeKind) {
	s.mu.Lock()
	fn := s.onChange
	snap := s.snap.Clone()
	s.mu.Unlock()

	if fn == nil {
		return
	}
	for _, k := range kinds {
		fn(Change{Kind: k, Snapshot: snap})
	}
}
