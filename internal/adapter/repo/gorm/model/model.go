package model

import "time"

// HeroState persists only mutable hero fields; progress-bar accounting and
// the static catalogs are re-derived on load.
type HeroState struct {
	UserID         string `gorm:"primaryKey"`
	FirstName      string
	Hp             int32
	XpTotal        int64
	MonthCurrency  int64
	Streak         int32
	WaterCount     int32
	WaterGoal      int32
	Weight         float64
	ActivityFactor float64
	SleepStart     *time.Time
	CompletedTasks []byte `gorm:"type:jsonb"`
	CustomHabits   []byte `gorm:"type:jsonb"`
	Version        int64
	UpdatedAt      time.Time
}

func (HeroState) TableName() string { return "hero_states" }

type HistoryEntry struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	UserID      string
	EventType   string
	Description string
	XpDelta     int32
	HpDelta     int32
	Timestamp   time.Time
}

func (HistoryEntry) TableName() string { return "history_entries" }
