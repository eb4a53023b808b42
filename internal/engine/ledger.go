package engine

import "sprout/internal/storage"

// Ledger owns the Dewdrop balance inside a snapshot. Every mutation goes
// through Apply; the balance can never be observed negative.
type Ledger struct {
	snap *storage.Snapshot
}

func NewLedger(snap *storage.Snapshot) Ledger {
	return Ledger{snap: snap}
}

func (l Ledger) Balance() int { return l.snap.CurrencyBalance }

// LifetimeEarned is the cumulative sum of all positive deltas ever applied.
// It drives milestone-based growth and never decreases.
func (l Ledger) LifetimeEarned() int { return l.snap.LifetimeEarned }

// Apply adds a signed delta to the balance and returns the new balance.
// A debit that would underflow is rejected with ErrInsufficientFunds and
// leaves the balance unchanged.
func (l Ledger) Apply(delta int) (int, error) {
	if l.snap.CurrencyBalance+delta < 0 {
		return l.snap.CurrencyBalance, ErrInsufficientFunds
	}
	l.snap.CurrencyBalance += delta
	if delta > 0 {
		l.snap.LifetimeEarned += delta
	}
	return l.snap.CurrencyBalance, nil
}
