package hero

import "time"

// Hero is the per-user progression aggregate. The static task and reward
// catalogs ride along on the snapshot so clients render from a single
// payload, but they are read-only to the engine.
type Hero struct {
	UserID         string                `json:"user_id"`
	FirstName      string                `json:"first_name,omitempty"`
	HP             int                   `json:"hp"`
	XPTotal        int                   `json:"xp"`
	Level          int                   `json:"level"`
	XPCurrent      int                   `json:"xp_current"`
	XPNeeded       int                   `json:"xp_needed"`
	MonthCurrency  int                   `json:"current_month_xp"`
	Streak         int                   `json:"streak"`
	WaterCount     int                   `json:"water_count"`
	WaterGoal      int                   `json:"water_goal"`
	Weight         float64               `json:"weight"`
	ActivityFactor float64               `json:"activity_factor"`
	SleepStart     *time.Time            `json:"sleep_start"`
	CompletedTasks []string              `json:"completed_tasks"`
	CustomHabits   []CustomHabit         `json:"custom_habits"`
	SystemTasks    map[string]TaskSpec   `json:"tasks"`
	Rewards        map[string]RewardSpec `json:"rewards"`
	Version        int64                 `json:"version"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

type CustomHabit struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	XP       int    `json:"xp"`
	Category string `json:"category"`
}

type TaskSpec struct {
	Name     string `json:"name"`
	XP       int    `json:"xp"`
	Category string `json:"category"`
}

type RewardSpec struct {
	Name        string `json:"name"`
	Cost        int    `json:"cost"`
	Description string `json:"description"`
}

type ActionType string

const (
	ActionWater       ActionType = "water"
	ActionSleepStart  ActionType = "sleep_start"
	ActionSleepEnd    ActionType = "sleep_end"
	ActionTask        ActionType = "task_complete"
	ActionBuyReward   ActionType = "shop_buy"
	ActionBiometrics  ActionType = "bio_update"
	ActionHabitAdd    ActionType = "habit_add"
	ActionHabitEdit   ActionType = "habit_edit"
	ActionHabitDelete ActionType = "habit_delete"
)

// Action carries the parameters of one requested transition. Which fields
// are meaningful depends on Type.
type Action struct {
	Type           ActionType `json:"type"`
	Amount         int        `json:"amount,omitempty"`
	TaskID         string     `json:"task_id,omitempty"`
	RewardID       string     `json:"reward_id,omitempty"`
	HabitID        string     `json:"habit_id,omitempty"`
	Weight         float64    `json:"weight,omitempty"`
	ActivityFactor float64    `json:"activity_factor,omitempty"`
	Name           string     `json:"name,omitempty"`
	XP             int        `json:"xp,omitempty"`
	Category       string     `json:"category,omitempty"`
}

// Delta summarizes what a successful transition changed, with
// action-specific extras for the response body.
type Delta struct {
	XPGained      int     `json:"xp_gained"`
	HPGained      int     `json:"hp_gained"`
	DurationHours float64 `json:"duration_hours,omitempty"`
	Message       string  `json:"message,omitempty"`
	Purchased     string  `json:"purchased,omitempty"`
	WaterGoal     int     `json:"water_goal,omitempty"`
	HabitID       string  `json:"habit_id,omitempty"`
	SleepStart    string  `json:"sleep_start,omitempty"`
}

type EventType string

const (
	EventWater   EventType = "water"
	EventSleep   EventType = "sleep"
	EventTask    EventType = "task"
	EventShop    EventType = "shop"
	EventPenalty EventType = "penalty"
	EventHabit   EventType = "habit"
)

// HistoryEntry is one row of the append-only ledger. ID is assigned by the
// ledger store on append.
type HistoryEntry struct {
	ID          int64     `json:"id"`
	EventType   EventType `json:"event_type"`
	Description string    `json:"description"`
	XPDelta     int       `json:"xp_delta"`
	HPDelta     int       `json:"hp_delta"`
	Timestamp   time.Time `json:"timestamp"`
}

// Outcome is the full result of one successful transition. Entry is nil for
// transitions that do not reach the ledger.
type Outcome struct {
	Hero  Hero
	Delta Delta
	Entry *HistoryEntry
}
