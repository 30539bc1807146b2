// Package repository provides data access layer for match module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/veterans_league/internal/match/model"
)

// Repository defines the interface for match data access operations.
type Repository interface {
	// List returns the calendar of a season, oldest first.
	List(ctx context.Context, filter model.ListFilter) ([]model.CalendarEntry, error)

	// Weeks returns the distinct league weeks of a season in ascending order.
	Weeks(ctx context.Context, seasonID int64) ([]int, error)

	// GetByID finds a match by id.
	GetByID(ctx context.Context, id int64) (*model.Match, error)

	// Create inserts a match.
	Create(ctx context.Context, match *model.Match) error

	// Save updates all columns of a match.
	Save(ctx context.Context, match *model.Match) error

	// Delete removes a match.
	Delete(ctx context.Context, id int64) error

	// TeamSeason returns the season a team is registered for.
	TeamSeason(ctx context.Context, teamID int64) (int64, bool, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new match repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func (r *repository) List(ctx context.Context, filter model.ListFilter) ([]model.CalendarEntry, error) {
	q := r.db.WithContext(ctx).
		Table("matches AS m").
		Select("m.*, h.name AS home_team_name, a.name AS away_team_name").
		Joins("JOIN teams h ON h.id = m.home_team_id").
		Joins("JOIN teams a ON a.id = m.away_team_id").
		Where("m.season_id = ?", filter.SeasonID)

	if filter.Week != nil {
		q = q.Where("m.week = ?", *filter.Week)
	}
	if filter.Competition != "" {
		q = q.Where("m.competition = ?", filter.Competition)
	}

	entries := []model.CalendarEntry{}
	if err := q.Order("m.scheduled_at ASC, m.id ASC").Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *repository) Weeks(ctx context.Context, seasonID int64) ([]int, error) {
	weeks := []int{}
	err := r.db.WithContext(ctx).
		Model(&model.Match{}).
		Distinct("week").
		Where("season_id = ? AND competition = ? AND week IS NOT NULL", seasonID, model.CompetitionLeague).
		Order("week ASC").
		Pluck("week", &weeks).Error
	if err != nil {
		return nil, err
	}
	return weeks, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*model.Match, error) {
	var match model.Match
	if err := r.db.WithContext(ctx).First(&match, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *repository) Create(ctx context.Context, match *model.Match) error {
	return r.db.WithContext(ctx).Create(match).Error
}

func (r *repository) Save(ctx context.Context, match *model.Match) error {
	return r.db.WithContext(ctx).Save(match).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&model.Match{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrMatchNotFound
	}
	return nil
}

func (r *repository) TeamSeason(ctx context.Context, teamID int64) (int64, bool, error) {
	var seasonIDs []int64
	err := r.db.WithContext(ctx).
		Table("teams").
		Where("id = ?", teamID).
		Limit(1).
		Pluck("season_id", &seasonIDs).Error
	if err != nil || len(seasonIDs) == 0 {
		return 0, false, err
	}
	return seasonIDs[0], true, nil
}
