// Package repository provides data access layer for statistics module.
package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/veterans_league/internal/statistics/model"
)

// Repository defines the interface for statistics data access operations.
type Repository interface {
	// SeasonExists reports whether the season exists.
	SeasonExists(ctx context.Context, seasonID int64) (bool, error)

	// GetPlayerStatistics returns event totals for every player of the
	// season with at least one event, top scorers first.
	GetPlayerStatistics(ctx context.Context, seasonID int64) ([]model.PlayerStatistics, error)

	// GetSeasonStatistics returns league match and card totals for a season.
	GetSeasonStatistics(ctx context.Context, seasonID int64) (*model.SeasonStatistics, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new statistics repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{
		db:     db,
		logger: logger,
	}
}

func (r *repository) SeasonExists(ctx context.Context, seasonID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("seasons").Where("id = ?", seasonID).Count(&count).Error
	return count > 0, err
}

func (r *repository) GetPlayerStatistics(ctx context.Context, seasonID int64) ([]model.PlayerStatistics, error) {
	var stats []model.PlayerStatistics

	err := r.db.WithContext(ctx).
		Table("match_events AS e").
		Select(`
			p.id AS player_id,
			p.name AS player_name,
			t.id AS team_id,
			t.name AS team_name,
			SUM(CASE WHEN e.event_type = 'goal' THEN 1 ELSE 0 END) AS goals,
			SUM(CASE WHEN e.event_type = 'yellow_card' THEN 1 ELSE 0 END) AS yellow_cards,
			SUM(CASE WHEN e.event_type = 'red_card' THEN 1 ELSE 0 END) AS red_cards
		`).
		Joins("JOIN matches m ON m.id = e.match_id").
		Joins("JOIN players p ON p.id = e.player_id").
		Joins("JOIN teams t ON t.id = p.team_id").
		Where("m.season_id = ?", seasonID).
		Group("p.id, p.name, t.id, t.name").
		Order("goals DESC, p.name ASC, p.id ASC").
		Scan(&stats).Error

	if err != nil {
		r.logger.Errorw("GetPlayerStatistics database error", "error", err, "season_id", seasonID)
		return nil, err
	}

	if stats == nil {
		stats = []model.PlayerStatistics{}
	}
	return stats, nil
}

func (r *repository) GetSeasonStatistics(ctx context.Context, seasonID int64) (*model.SeasonStatistics, error) {
	var matches struct {
		TotalMatches  int64 `gorm:"column:total_matches"`
		PlayedMatches int64 `gorm:"column:played_matches"`
		HomeWins      int64 `gorm:"column:home_wins"`
		AwayWins      int64 `gorm:"column:away_wins"`
		Draws         int64 `gorm:"column:draws"`
		TotalGoals    int64 `gorm:"column:total_goals"`
	}

	err := r.db.WithContext(ctx).
		Table("matches").
		Select(`
			COUNT(*) AS total_matches,
			COALESCE(SUM(CASE WHEN home_score IS NOT NULL AND away_score IS NOT NULL THEN 1 ELSE 0 END), 0) AS played_matches,
			COALESCE(SUM(CASE WHEN home_score > away_score THEN 1 ELSE 0 END), 0) AS home_wins,
			COALESCE(SUM(CASE WHEN home_score < away_score THEN 1 ELSE 0 END), 0) AS away_wins,
			COALESCE(SUM(CASE WHEN home_score = away_score THEN 1 ELSE 0 END), 0) AS draws,
			COALESCE(SUM(COALESCE(home_score, 0) + COALESCE(away_score, 0)), 0) AS total_goals
		`).
		Where("season_id = ? AND competition = ?", seasonID, "League").
		Scan(&matches).Error
	if err != nil {
		r.logger.Errorw("GetSeasonStatistics database error", "error", err, "season_id", seasonID)
		return nil, err
	}

	var cards struct {
		YellowCards int64 `gorm:"column:yellow_cards"`
		RedCards    int64 `gorm:"column:red_cards"`
	}
	err = r.db.WithContext(ctx).
		Table("match_events AS e").
		Select(`
			COALESCE(SUM(CASE WHEN e.event_type = 'yellow_card' THEN 1 ELSE 0 END), 0) AS yellow_cards,
			COALESCE(SUM(CASE WHEN e.event_type = 'red_card' THEN 1 ELSE 0 END), 0) AS red_cards
		`).
		Joins("JOIN matches m ON m.id = e.match_id").
		Where("m.season_id = ?", seasonID).
		Scan(&cards).Error
	if err != nil {
		r.logger.Errorw("GetSeasonStatistics database error", "error", err, "season_id", seasonID)
		return nil, err
	}

	return &model.SeasonStatistics{
		TotalMatches:  int(matches.TotalMatches),
		PlayedMatches: int(matches.PlayedMatches),
		HomeWins:      int(matches.HomeWins),
		AwayWins:      int(matches.AwayWins),
		Draws:         int(matches.Draws),
		TotalGoals:    int(matches.TotalGoals),
		YellowCards:   int(cards.YellowCards),
		RedCards:      int(cards.RedCards),
	}, nil
}
