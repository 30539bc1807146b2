// Package repository provides data access layer for player module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/veterans_league/internal/database/dberr"
	"github.com/festy23/veterans_league/internal/player/model"
)

// Repository defines the interface for player data access operations.
type Repository interface {
	// ListByTeam returns a team's players ordered by name.
	ListByTeam(ctx context.Context, teamID int64) ([]model.Player, error)

	// GetByID finds a player by id.
	GetByID(ctx context.Context, id int64) (*model.Player, error)

	// Create inserts a player.
	Create(ctx context.Context, player *model.Player) error

	// Save updates all columns of a player.
	Save(ctx context.Context, player *model.Player) error

	// Delete removes a player.
	Delete(ctx context.Context, id int64) error

	// TeamExists reports whether the team exists.
	TeamExists(ctx context.Context, teamID int64) (bool, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new player repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func (r *repository) ListByTeam(ctx context.Context, teamID int64) ([]model.Player, error) {
	players := []model.Player{}
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("name ASC, id ASC").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*model.Player, error) {
	var player model.Player
	if err := r.db.WithContext(ctx).First(&player, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}
	return &player, nil
}

func (r *repository) Create(ctx context.Context, player *model.Player) error {
	err := r.db.WithContext(ctx).Create(player).Error
	if dberr.IsForeignKey(err) {
		return model.ErrTeamNotFound
	}
	return err
}

func (r *repository) Save(ctx context.Context, player *model.Player) error {
	err := r.db.WithContext(ctx).Save(player).Error
	if dberr.IsForeignKey(err) {
		return model.ErrTeamNotFound
	}
	return err
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&model.Player{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrPlayerNotFound
	}
	return nil
}

func (r *repository) TeamExists(ctx context.Context, teamID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("teams").
		Where("id = ?", teamID).
		Count(&count).Error
	return count > 0, err
}
