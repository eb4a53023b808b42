package engine

import (
	"context"

	"sprout/internal/storage"
)

type UpgradeResult struct {
	PlantID     string
	Cost        int
	Balance     int
	StageBefore int
	StageAfter  int
}

// UpgradePlant buys the next stage for the active plant: a purchase-like
// operation that debits the ledger and increments the stage by exactly 1.
// Repeated calls at MaxStage are rejected no-ops.
func (s *Service) UpgradePlant(ctx context.Context) (*UpgradeResult, error) {
	s.mu.Lock()

	ledger := NewLedger(&s.snap)
	growth := NewGrowth(&s.snap)

	plantID := growth.ActivePlantID()
	stage := growth.StageFor(plantID)
	if stage >= MaxStage {
		s.mu.Unlock()
		return nil, ErrMaxStageReached
	}

	cost := UpgradeCost(stage)
	balance, err := ledger.Apply(-cost)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	after := growth.raiseTo(plantID, stage+1)

	s.record(ctx, storage.JournalUpgrade, plantID, -cost)
	s.persist()

	res := &UpgradeResult{
		PlantID:     plantID,
		Cost:        cost,
		Balance:     balance,
		StageBefore: stage,
		StageAfter:  after,
	}
	s.mu.Unlock()

	s.notify(ChangeBalance, ChangeStage)
	return res, nil
}
