package hero

import "math"

// XPNeededForLevel returns the XP span of the given level (not a lifetime
// threshold). Level 1 is the first level.
func XPNeededForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return int(math.Round(LevelBaseXP * math.Pow(LevelGrowth, float64(level-1))))
}

// Progress derives the progress-bar accounting from lifetime XP by walking
// the curve: consume each level's span until the remainder fits.
func Progress(totalXP int) (level, current, needed int) {
	if totalXP < 0 {
		totalXP = 0
	}
	level = 1
	remaining := totalXP
	for {
		needed = XPNeededForLevel(level)
		if remaining < needed {
			return level, remaining, needed
		}
		remaining -= needed
		level++
	}
}

func (h *Hero) syncProgress() {
	h.Level, h.XPCurrent, h.XPNeeded = Progress(h.XPTotal)
}
