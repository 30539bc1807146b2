// Package repository provides data access layer for the standings module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/veterans_league/internal/standings/aggregate"
	"github.com/festy23/veterans_league/internal/standings/model"
)

// Repository defines the interface for standings data access operations.
type Repository interface {
	// Season returns a season by id.
	Season(ctx context.Context, id int64) (*model.SeasonRef, error)

	// CurrentSeason returns the season flagged as current.
	CurrentSeason(ctx context.Context) (*model.SeasonRef, error)

	// PastSeasons returns every season not flagged as current, newest label first.
	PastSeasons(ctx context.Context) ([]model.SeasonRef, error)

	// Teams returns the participants of a season.
	Teams(ctx context.Context, seasonID int64) ([]aggregate.Team, error)

	// Results returns the played league matches of a season.
	Results(ctx context.Context, seasonID int64) ([]aggregate.Result, error)

	// Deductions returns the points each team loses to punishments.
	Deductions(ctx context.Context, seasonID int64) ([]aggregate.Deduction, error)

	// ReplaceSeason deletes the stored rows of a season and inserts rows.
	ReplaceSeason(ctx context.Context, seasonID int64, rows []model.Standing) error

	// TableRows returns one row per team of the season joined with its
	// stored standings. Teams without a stored row get zero counters.
	TableRows(ctx context.Context, seasonID int64) ([]model.TableRow, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new standings repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func (r *repository) Season(ctx context.Context, id int64) (*model.SeasonRef, error) {
	return r.findSeason(r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *repository) CurrentSeason(ctx context.Context) (*model.SeasonRef, error) {
	return r.findSeason(r.db.WithContext(ctx).Where("is_current = ?", true))
}

func (r *repository) findSeason(q *gorm.DB) (*model.SeasonRef, error) {
	var ref model.SeasonRef
	err := q.Table("seasons").Select("id, label, is_current").Take(&ref).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrSeasonNotFound
		}
		return nil, err
	}
	return &ref, nil
}

func (r *repository) PastSeasons(ctx context.Context) ([]model.SeasonRef, error) {
	seasons := []model.SeasonRef{}
	err := r.db.WithContext(ctx).
		Table("seasons").
		Select("id, label, is_current").
		Where("is_current = ?", false).
		Order("label DESC").
		Scan(&seasons).Error
	if err != nil {
		return nil, err
	}
	return seasons, nil
}

func (r *repository) Teams(ctx context.Context, seasonID int64) ([]aggregate.Team, error) {
	var teams []aggregate.Team
	err := r.db.WithContext(ctx).
		Table("teams").
		Select("id, excluded").
		Where("season_id = ?", seasonID).
		Order("id ASC").
		Scan(&teams).Error
	return teams, err
}

func (r *repository) Results(ctx context.Context, seasonID int64) ([]aggregate.Result, error) {
	var results []aggregate.Result
	err := r.db.WithContext(ctx).
		Table("matches").
		Select("home_team_id, away_team_id, home_score, away_score").
		Where("season_id = ? AND competition = ?", seasonID, "League").
		Where("home_score IS NOT NULL AND away_score IS NOT NULL").
		Order("scheduled_at ASC, id ASC").
		Scan(&results).Error
	return results, err
}

func (r *repository) Deductions(ctx context.Context, seasonID int64) ([]aggregate.Deduction, error) {
	var deductions []aggregate.Deduction
	err := r.db.WithContext(ctx).
		Table("team_punishments AS tp").
		Select("tp.team_id, SUM(pt.points_deducted * tp.quantity) AS points").
		Joins("JOIN punishment_types pt ON pt.id = tp.punishment_type_id").
		Joins("JOIN teams t ON t.id = tp.team_id").
		Where("t.season_id = ? AND pt.points_deducted > 0", seasonID).
		Group("tp.team_id").
		Scan(&deductions).Error
	return deductions, err
}

func (r *repository) ReplaceSeason(ctx context.Context, seasonID int64, rows []model.Standing) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("season_id = ?", seasonID).Delete(&model.Standing{}).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return db.Create(&rows).Error
}

func (r *repository) TableRows(ctx context.Context, seasonID int64) ([]model.TableRow, error) {
	rows := []model.TableRow{}
	err := r.db.WithContext(ctx).
		Table("teams AS t").
		Select(`t.id AS team_id, t.name AS team_name, t.logo_url, t.excluded,
			COALESCE(s.played, 0) AS played,
			COALESCE(s.wins, 0) AS wins,
			COALESCE(s.draws, 0) AS draws,
			COALESCE(s.losses, 0) AS losses,
			COALESCE(s.goals_for, 0) AS goals_for,
			COALESCE(s.goals_against, 0) AS goals_against,
			COALESCE(s.points, 0) AS points`).
		Joins("LEFT JOIN standings s ON s.team_id = t.id AND s.season_id = t.season_id").
		Where("t.season_id = ?", seasonID).
		Order("t.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
