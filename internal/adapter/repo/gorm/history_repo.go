package gormrepo

import (
	"context"
	"time"

	"liferpg/internal/adapter/repo/gorm/model"
	"liferpg/internal/domain/hero"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HistoryRepo struct {
	db *gorm.DB
}

func NewHistoryRepo(db *gorm.DB) HistoryRepo {
	return HistoryRepo{db: db}
}

func (r HistoryRepo) Append(ctx context.Context, userID string, entry hero.HistoryEntry) (hero.HistoryEntry, error) {
	row := model.HistoryEntry{
		UserID:      userID,
		EventType:   string(entry.EventType),
		Description: entry.Description,
		XpDelta:     int32(entry.XPDelta),
		HpDelta:     int32(entry.HPDelta),
		Timestamp:   entry.Timestamp,
	}
	if err := getDBFromCtx(ctx, r.db).Create(&row).Error; err != nil {
		return hero.HistoryEntry{}, err
	}
	entry.ID = row.ID
	return entry, nil
}

func (r HistoryRepo) List(ctx context.Context, userID string, limit int, before *time.Time) ([]hero.HistoryEntry, error) {
	rows := []model.HistoryEntry{}
	query := getDBFromCtx(ctx, r.db).
		Where(&model.HistoryEntry{UserID: userID}).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "timestamp"}, Desc: true}},
		})
	if before != nil {
		query = query.Where("timestamp < ?", *before)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]hero.HistoryEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, hero.HistoryEntry{
			ID:          row.ID,
			EventType:   hero.EventType(row.EventType),
			Description: row.Description,
			XPDelta:     int(row.XpDelta),
			HPDelta:     int(row.HpDelta),
			Timestamp:   row.Timestamp,
		})
	}
	return out, nil
}
