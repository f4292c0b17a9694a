package hero

import "time"

const (
	MaxHP = 100

	WaterXPPerGlass = 5
	WaterHPPerGlass = 5

	// Water goal: glasses/day from weight (kg) scaled by activity, one
	// glass per 250 weighted units, never below one.
	WaterGoalDivisor = 250.0
	MinWaterGoal     = 1

	MaxWeightKG = 500.0

	// Level curve: xpNeeded(level) = round(LevelBaseXP * LevelGrowth^(level-1)).
	LevelBaseXP = 100.0
	LevelGrowth = 1.15

	SnapshotTTL = 10 * time.Second

	// Daily rollover penalty when a day passes with no completions.
	MissedDayHPPenalty = 15
)

// Sleep reward tiers, strictly ordered, first match wins.
type SleepTier struct {
	MinHours float64
	XP       int
	HP       int
}

var SleepTiers = []SleepTier{
	{MinHours: 7.5, XP: 50, HP: 20},
	{MinHours: 5.0, XP: 30, HP: 15},
	{MinHours: 3.0, XP: 15, HP: 10},
	{MinHours: 0, XP: 10, HP: 5},
}

var ActivityFactors = []float64{1.0, 1.375, 1.55, 1.725}

func IsValidActivityFactor(factor float64) bool {
	for _, f := range ActivityFactors {
		if f == factor {
			return true
		}
	}
	return false
}
