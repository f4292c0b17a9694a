package hero

import "time"

// DefaultSystemTasks is the static task catalog. Read-only to the engine.
func DefaultSystemTasks() map[string]TaskSpec {
	return map[string]TaskSpec{
		"workout_light":  {Name: "Light workout", XP: 20, Category: "activity"},
		"workout_medium": {Name: "Medium workout", XP: 35, Category: "activity"},
		"workout_hard":   {Name: "Intense workout", XP: 50, Category: "activity"},
		"meditation":     {Name: "10 min meditation", XP: 15, Category: "activity"},
		"reading":        {Name: "30 min reading", XP: 15, Category: "activity"},
		"walk":           {Name: "Walk outside", XP: 20, Category: "activity"},
		"friend_call":    {Name: "Call a friend", XP: 20, Category: "relations"},
		"family_time":    {Name: "Spend time with family", XP: 25, Category: "relations"},
		"gratitude":      {Name: "Write a gratitude note", XP: 10, Category: "relations"},
		"social_event":   {Name: "Social event", XP: 30, Category: "relations"},
	}
}

// DefaultRewards is the static reward catalog. Read-only to the engine.
func DefaultRewards() map[string]RewardSpec {
	return map[string]RewardSpec{
		"coffee":     {Name: "Coffee to go", Cost: 50, Description: "A well-earned coffee"},
		"movie":      {Name: "Movie night", Cost: 100, Description: "A trip to the cinema"},
		"game_hour":  {Name: "Hour of gaming", Cost: 75, Description: "One hour of your favorite game"},
		"cheat_meal": {Name: "Cheat meal", Cost: 120, Description: "A cheat meal, guilt-free"},
		"spa":        {Name: "Spa day", Cost: 300, Description: "A day of rest and recovery"},
	}
}

// New returns the default hero template for a fresh identity.
func New(userID string, now time.Time) Hero {
	h := Hero{
		UserID:         userID,
		HP:             MaxHP,
		Weight:         70,
		ActivityFactor: 1.0,
		CompletedTasks: []string{},
		CustomHabits:   []CustomHabit{},
		SystemTasks:    DefaultSystemTasks(),
		Rewards:        DefaultRewards(),
		Version:        1,
		UpdatedAt:      now,
	}
	h.WaterGoal = waterGoalFor(h.Weight, h.ActivityFactor)
	h.syncProgress()
	return h
}

// EnsureCatalogs re-attaches the static catalogs after a load path that
// persists only mutable state.
func (h *Hero) EnsureCatalogs() {
	if h.SystemTasks == nil {
		h.SystemTasks = DefaultSystemTasks()
	}
	if h.Rewards == nil {
		h.Rewards = DefaultRewards()
	}
	if h.CompletedTasks == nil {
		h.CompletedTasks = []string{}
	}
	if h.CustomHabits == nil {
		h.CustomHabits = []CustomHabit{}
	}
}
