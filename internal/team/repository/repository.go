// Package repository provides data access layer for team module.
package repository

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/veterans_league/internal/database/dberr"
	"github.com/festy23/veterans_league/internal/team/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// ListBySeason returns the teams of a season ordered by name.
	ListBySeason(ctx context.Context, seasonID int64) ([]model.Team, error)

	// GetByID finds a team by id.
	GetByID(ctx context.Context, id int64) (*model.Team, error)

	// Create inserts a team.
	Create(ctx context.Context, team *model.Team) error

	// Save updates all columns of a team.
	Save(ctx context.Context, team *model.Team) error

	// Delete removes a team.
	Delete(ctx context.Context, id int64) error

	// SeasonExists reports whether the season exists.
	SeasonExists(ctx context.Context, seasonID int64) (bool, error)

	// Players returns the roster of a team ordered by name.
	Players(ctx context.Context, teamID int64) ([]model.PlayerSummary, error)

	// Matches returns every match the team takes part in, oldest first.
	Matches(ctx context.Context, teamID int64) ([]MatchRow, error)
}

// MatchRow is a match with both team names joined.
type MatchRow struct {
	ID           int64
	ScheduledAt  time.Time
	Competition  string
	Week         *int
	HomeTeamID   int64
	AwayTeamID   int64
	HomeTeamName string
	AwayTeamName string
	HomeScore    *int
	AwayScore    *int
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new team repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func (r *repository) ListBySeason(ctx context.Context, seasonID int64) ([]model.Team, error) {
	teams := []model.Team{}
	err := r.db.WithContext(ctx).
		Where("season_id = ?", seasonID).
		Order("name ASC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*model.Team, error) {
	var team model.Team
	if err := r.db.WithContext(ctx).First(&team, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

func (r *repository) Create(ctx context.Context, team *model.Team) error {
	err := r.db.WithContext(ctx).Create(team).Error
	switch {
	case dberr.IsDuplicate(err):
		return model.ErrTeamExists
	case dberr.IsForeignKey(err):
		return model.ErrSeasonNotFound
	}
	return err
}

func (r *repository) Save(ctx context.Context, team *model.Team) error {
	err := r.db.WithContext(ctx).Save(team).Error
	switch {
	case dberr.IsDuplicate(err):
		return model.ErrTeamExists
	case dberr.IsForeignKey(err):
		return model.ErrSeasonNotFound
	}
	return err
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&model.Team{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrTeamNotFound
	}
	return nil
}

func (r *repository) SeasonExists(ctx context.Context, seasonID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("seasons").
		Where("id = ?", seasonID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Players(ctx context.Context, teamID int64) ([]model.PlayerSummary, error) {
	players := []model.PlayerSummary{}
	err := r.db.WithContext(ctx).
		Table("players").
		Select("id, name, photo_url").
		Where("team_id = ?", teamID).
		Order("name ASC").
		Scan(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

func (r *repository) Matches(ctx context.Context, teamID int64) ([]MatchRow, error) {
	rows := []MatchRow{}
	err := r.db.WithContext(ctx).
		Table("matches AS m").
		Select(`m.id, m.scheduled_at, m.competition, m.week,
			m.home_team_id, m.away_team_id, m.home_score, m.away_score,
			h.name AS home_team_name, a.name AS away_team_name`).
		Joins("JOIN teams h ON h.id = m.home_team_id").
		Joins("JOIN teams a ON a.id = m.away_team_id").
		Where("m.home_team_id = ? OR m.away_team_id = ?", teamID, teamID).
		Order("m.scheduled_at ASC, m.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
