package engine

import (
	"context"

	"sprout/internal/storage"
)

type PurchaseResult struct {
	ItemID  string
	Name    string
	Kind    ItemKind
	Cost    int
	Balance int
}

// Purchase buys a catalog item: debit then own, as one logical unit. The
// two effects are never observably partial — if recording ownership fails
// after the debit succeeded, the debit is rolled back.
func (s *Service) Purchase(ctx context.Context, itemID string) (*PurchaseResult, error) {
	s.mu.Lock()

	item, ok := ItemByID(itemID)
	if !ok {
		s.mu.Unlock()
		return nil, ErrUnknownItem
	}

	ledger := NewLedger(&s.snap)
	inv := NewInventory(&s.snap)

	if inv.IsOwned(item.ID) {
		s.mu.Unlock()
		return nil, ErrAlreadyOwned
	}
	if _, err := ledger.Apply(-item.Cost); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if err := inv.Own(item.ID, item.Kind); err != nil {
		// Unreachable after the IsOwned check above, but the debit must
		// never survive a failed ownership record. Restore the balance
		// directly; a refund is not an earning and must not move
		// LifetimeEarned or milestones.
		s.snap.CurrencyBalance += item.Cost
		s.mu.Unlock()
		return nil, err
	}
	if item.Kind == KindPlant {
		NewGrowth(&s.snap).initPlant(item.ID)
	}

	s.record(ctx, storage.JournalSpend, item.ID, -item.Cost)
	s.persist()

	res := &PurchaseResult{
		ItemID:  item.ID,
		Name:    item.Name,
		Kind:    item.Kind,
		Cost:    item.Cost,
		Balance: s.snap.CurrencyBalance,
	}
	s.mu.Unlock()

	s.notify(ChangeBalance, ChangeInventory)
	return res, nil
}
