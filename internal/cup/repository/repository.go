// Package repository provides data access layer for the cup module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/veterans_league/internal/cup/model"
)

// Repository defines the interface for cup data access operations.
type Repository interface {
	// HasGroupCup reports whether the season's cup starts with groups.
	HasGroupCup(ctx context.Context, seasonID int64) (bool, error)

	// Matches returns the cup and supercup matches of a season, oldest first.
	Matches(ctx context.Context, seasonID int64) ([]model.CupMatch, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new cup repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func (r *repository) HasGroupCup(ctx context.Context, seasonID int64) (bool, error) {
	var season struct {
		HasGroupCup bool
	}
	err := r.db.WithContext(ctx).
		Table("seasons").
		Select("has_group_cup").
		Where("id = ?", seasonID).
		Take(&season).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, model.ErrSeasonNotFound
	}
	return season.HasGroupCup, err
}

func (r *repository) Matches(ctx context.Context, seasonID int64) ([]model.CupMatch, error) {
	matches := []model.CupMatch{}
	err := r.db.WithContext(ctx).
		Table("matches AS m").
		Select(`m.id, m.competition, m.scheduled_at, m.home_team_id, m.away_team_id,
			m.home_score, m.away_score, m.round, m.cup_group,
			h.name AS home_team_name, a.name AS away_team_name,
			h.excluded AS home_team_excluded, a.excluded AS away_team_excluded`).
		Joins("JOIN teams h ON h.id = m.home_team_id").
		Joins("JOIN teams a ON a.id = m.away_team_id").
		Where("m.season_id = ? AND m.competition IN ?", seasonID, []string{"Cup", "Supercup"}).
		Order("m.scheduled_at ASC, m.id ASC").
		Scan(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}
