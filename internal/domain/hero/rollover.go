package hero

import (
	"fmt"
	"time"
)

// RolloverDay closes out a day: completed tasks and the water counter reset,
// the streak grows if anything was done and breaks otherwise. A fully idle
// day also costs HP and leaves a penalty entry in the ledger. missedDays
// counts whole days since the last rollover beyond the first (0 for a
// normal nightly run).
func RolloverDay(h Hero, missedDays int, now time.Time) (Hero, *HistoryEntry) {
	active := len(h.CompletedTasks) > 0 || h.WaterCount > 0
	h.CompletedTasks = []string{}
	h.WaterCount = 0

	var entry *HistoryEntry
	if active && missedDays == 0 {
		h.Streak++
	} else {
		h.Streak = 0
		days := missedDays
		if days < 1 {
			days = 1
		}
		penalty := MissedDayHPPenalty * days
		if penalty > h.HP {
			penalty = h.HP
		}
		h.HP -= penalty
		entry = &HistoryEntry{
			EventType:   EventPenalty,
			Description: fmt.Sprintf("Penalty for %d missed day(s)", days),
			HPDelta:     -penalty,
			Timestamp:   now,
		}
	}
	commit(&h, now)
	return h, entry
}

// RolloverMonth resets the spendable balance. Lifetime XP is untouched.
func RolloverMonth(h Hero, now time.Time) Hero {
	h.MonthCurrency = 0
	commit(&h, now)
	return h
}
