package engine

import "sprout/internal/storage"

// MaxStage is the fully-flowering stage; plants start at stage 0 (seed).
const MaxStage = 5

// Milestones are cumulative-earned thresholds (inclusive lower bounds) that
// auto-unlock stages 0..5 for the active plant.
var Milestones = [MaxStage + 1]int{0, 100, 200, 300, 400, 500}

// UpgradeCost is the price of growing from stage to stage+1.
func UpgradeCost(stage int) int {
	return 100 * (stage + 1)
}

// MilestoneStage returns the stage unlocked by a cumulative-earned total.
func MilestoneStage(lifetimeEarned int) int {
	stage := 0
	for i, threshold := range Milestones {
		if lifetimeEarned >= threshold {
			stage = i
		}
	}
	return stage
}

// Growth owns the per-plant stage map inside a snapshot. Stages only ever
// move upward, one step at a time, whether driven by purchases or by
// milestones.
type Growth struct {
	snap *storage.Snapshot
}

func NewGrowth(snap *storage.Snapshot) Growth {
	return Growth{snap: snap}
}

func (g Growth) StageFor(plantID string) int {
	return g.snap.PlantStages[plantID]
}

func (g Growth) ActivePlantID() string { return g.snap.ActivePlantID }

func (g Growth) ActiveStage() int {
	return g.StageFor(g.snap.ActivePlantID)
}

// raiseTo lifts a plant toward the target stage through single increments,
// clamped to MaxStage. Targets at or below the current stage are no-ops.
// Returns the resulting stage.
func (g Growth) raiseTo(plantID string, target int) int {
	if target > MaxStage {
		target = MaxStage
	}
	stage := g.snap.PlantStages[plantID]
	for stage < target {
		stage++
	}
	g.snap.PlantStages[plantID] = stage
	return stage
}

// initPlant registers a newly purchased plant at stage 0. Existing stages
// are preserved.
func (g Growth) initPlant(plantID string) {
	if _, ok := g.snap.PlantStages[plantID]; !ok {
		g.snap.PlantStages[plantID] = 0
	}
}
