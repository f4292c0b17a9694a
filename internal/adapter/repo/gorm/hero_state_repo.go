package gormrepo

import (
	"context"
	"encoding/json"
	"errors"

	"liferpg/internal/adapter/repo/gorm/model"
	"liferpg/internal/app/ports"
	"liferpg/internal/domain/hero"

	"gorm.io/gorm"
)

type HeroStateRepo struct {
	db *gorm.DB
}

func NewHeroStateRepo(db *gorm.DB) HeroStateRepo {
	return HeroStateRepo{db: db}
}

func (r HeroStateRepo) GetByUserID(ctx context.Context, userID string) (hero.Hero, error) {
	var m model.HeroState
	if err := getDBFromCtx(ctx, r.db).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return hero.Hero{}, ports.ErrNotFound
		}
		return hero.Hero{}, err
	}
	return toDomain(m), nil
}

func (r HeroStateRepo) SaveWithVersion(ctx context.Context, h hero.Hero, expectedVersion int64) error {
	db := getDBFromCtx(ctx, r.db)
	row := toModel(h)

	if expectedVersion == 0 {
		if err := db.Create(&row).Error; err != nil {
			return err
		}
		return nil
	}

	res := db.Model(&model.HeroState{}).
		Where("user_id = ? AND version = ?", h.UserID, expectedVersion).
		Updates(map[string]any{
			"first_name":      row.FirstName,
			"hp":              row.Hp,
			"xp_total":        row.XpTotal,
			"month_currency":  row.MonthCurrency,
			"streak":          row.Streak,
			"water_count":     row.WaterCount,
			"water_goal":      row.WaterGoal,
			"weight":          row.Weight,
			"activity_factor": row.ActivityFactor,
			"sleep_start":     row.SleepStart,
			"completed_tasks": row.CompletedTasks,
			"custom_habits":   row.CustomHabits,
			"version":         row.Version,
			"updated_at":      row.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}

func toDomain(m model.HeroState) hero.Hero {
	h := hero.Hero{
		UserID:         m.UserID,
		FirstName:      m.FirstName,
		HP:             int(m.Hp),
		XPTotal:        int(m.XpTotal),
		MonthCurrency:  int(m.MonthCurrency),
		Streak:         int(m.Streak),
		WaterCount:     int(m.WaterCount),
		WaterGoal:      int(m.WaterGoal),
		Weight:         m.Weight,
		ActivityFactor: m.ActivityFactor,
		SleepStart:     m.SleepStart,
		Version:        m.Version,
		UpdatedAt:      m.UpdatedAt,
	}
	if len(m.CompletedTasks) > 0 {
		_ = json.Unmarshal(m.CompletedTasks, &h.CompletedTasks)
	}
	if len(m.CustomHabits) > 0 {
		_ = json.Unmarshal(m.CustomHabits, &h.CustomHabits)
	}
	h.EnsureCatalogs()
	h.Level, h.XPCurrent, h.XPNeeded = hero.Progress(h.XPTotal)
	return h
}

func toModel(h hero.Hero) model.HeroState {
	completed, _ := json.Marshal(h.CompletedTasks)
	habits, _ := json.Marshal(h.CustomHabits)
	return model.HeroState{
		UserID:         h.UserID,
		FirstName:      h.FirstName,
		Hp:             int32(h.HP),
		XpTotal:        int64(h.XPTotal),
		MonthCurrency:  int64(h.MonthCurrency),
		Streak:         int32(h.Streak),
		WaterCount:     int32(h.WaterCount),
		WaterGoal:      int32(h.WaterGoal),
		Weight:         h.Weight,
		ActivityFactor: h.ActivityFactor,
		SleepStart:     h.SleepStart,
		CompletedTasks: completed,
		CustomHabits:   habits,
		Version:        h.Version,
		UpdatedAt:      h.UpdatedAt,
	}
}
