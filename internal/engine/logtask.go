package engine

import (
	"context"

	"sprout/internal/storage"
)

type LogTaskResult struct {
	TaskID      string
	Label       string
	Reward      int
	Balance     int
	StageBefore int
	StageAfter  int
}

func (r *LogTaskResult) StageUp() bool { return r.StageAfter > r.StageBefore }

// LogTask credits the fixed reward for a completed real-world task and then
// applies the milestone rule: the active plant is raised to the stage its
// cumulative-earned total unlocks, through the same monotonic single-step
// path purchases use. Stages never move down.
func (s *Service) LogTask(ctx context.Context, taskID string) (*LogTaskResult, error) {
	s.mu.Lock()

	task, ok := TaskByID(taskID)
	if !ok {
		s.mu.Unlock()
		return nil, ErrUnknownTask
	}

	ledger := NewLedger(&s.snap)
	growth := NewGrowth(&s.snap)

	stageBefore := growth.ActiveStage()
	balance, err := ledger.Apply(task.Reward)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	stageAfter := growth.raiseTo(s.snap.ActivePlantID, MilestoneStage(ledger.LifetimeEarned()))

	s.record(ctx, storage.JournalEarn, task.ID, task.Reward)
	s.persist()

	res := &LogTaskResult{
		TaskID:      task.ID,
		Label:       task.Label,
		Reward:      task.Reward,
		Balance:     balance,
		StageBefore: stageBefore,
		StageAfter:  stageAfter,
	}
	s.mu.Unlock()

	kinds := []ChangeKind{ChangeBalance}
	if res.StageUp() {
		kinds = append(kinds, ChangeStage)
	}
	s.notify(kinds...)
	return res, nil
}
