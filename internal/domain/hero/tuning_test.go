package hero

import (
	"testing"
	"time"
)

func TestTuning_Defaults(t *testing.T) {
	if MaxHP != 100 {
		t.Fatalf("MaxHP = %d, want 100", MaxHP)
	}
	if WaterXPPerGlass != 5 || WaterHPPerGlass != 5 {
		t.Fatalf("water gains = (%d,%d), want (5,5)", WaterXPPerGlass, WaterHPPerGlass)
	}
	if WaterGoalDivisor != 250.0 || MinWaterGoal != 1 {
		t.Fatalf("water goal params = (%v,%d), want (250,1)", WaterGoalDivisor, MinWaterGoal)
	}
	if MaxWeightKG != 500.0 {
		t.Fatalf("MaxWeightKG = %v, want 500", MaxWeightKG)
	}
	if SnapshotTTL != 10*time.Second {
		t.Fatalf("SnapshotTTL = %s, want 10s", SnapshotTTL)
	}
	if MissedDayHPPenalty != 15 {
		t.Fatalf("MissedDayHPPenalty = %d, want 15", MissedDayHPPenalty)
	}
}

func TestTuning_SleepTiersOrdered(t *testing.T) {
	want := []SleepTier{
		{MinHours: 7.5, XP: 50, HP: 20},
		{MinHours: 5.0, XP: 30, HP: 15},
		{MinHours: 3.0, XP: 15, HP: 10},
		{MinHours: 0, XP: 10, HP: 5},
	}
	if len(SleepTiers) != len(want) {
		t.Fatalf("tier count = %d, want %d", len(SleepTiers), len(want))
	}
	for i, tier := range SleepTiers {
		if tier != want[i] {
			t.Fatalf("tier[%d] = %+v, want %+v", i, tier, want[i])
		}
		if i > 0 && tier.MinHours >= SleepTiers[i-1].MinHours {
			t.Fatalf("tiers not strictly descending at %d", i)
		}
	}
}

func TestTuning_ActivityFactors(t *testing.T) {
	for _, f := range []float64{1.0, 1.375, 1.55, 1.725} {
		if !IsValidActivityFactor(f) {
			t.Fatalf("factor %v should be valid", f)
		}
	}
	for _, f := range []float64{0, 1.2, 1.9, -1} {
		if IsValidActivityFactor(f) {
			t.Fatalf("factor %v should be invalid", f)
		}
	}
}
