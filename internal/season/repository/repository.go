// Package repository provides data access layer for the season module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/veterans_league/internal/database/dberr"
	"github.com/festy23/veterans_league/internal/season/model"
)

// Repository defines the interface for season data access operations.
type Repository interface {
	// List returns all seasons, newest label first.
	List(ctx context.Context) ([]model.Season, error)

	// GetByID finds a season by id.
	GetByID(ctx context.Context, id int64) (*model.Season, error)

	// GetCurrent returns the season flagged as current.
	GetCurrent(ctx context.Context) (*model.Season, error)

	// Create inserts a season.
	Create(ctx context.Context, season *model.Season) error

	// Save updates all columns of an existing season.
	Save(ctx context.Context, season *model.Season) error

	// Delete removes a season and, through cascades, its teams and matches.
	Delete(ctx context.Context, id int64) error

	// ClearCurrent unsets the current flag on every season except exceptID.
	ClearCurrent(ctx context.Context, exceptID int64) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new season repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func (r *repository) List(ctx context.Context) ([]model.Season, error) {
	var seasons []model.Season
	err := r.db.WithContext(ctx).
		Order("label DESC").
		Find(&seasons).Error
	if err != nil {
		return nil, err
	}
	if seasons == nil {
		seasons = []model.Season{}
	}
	return seasons, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*model.Season, error) {
	var season model.Season
	err := r.db.WithContext(ctx).First(&season, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrSeasonNotFound
		}
		return nil, err
	}
	return &season, nil
}

func (r *repository) GetCurrent(ctx context.Context) (*model.Season, error) {
	var season model.Season
	err := r.db.WithContext(ctx).
		Where("is_current = ?", true).
		First(&season).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNoCurrentSeason
		}
		return nil, err
	}
	return &season, nil
}

func (r *repository) Create(ctx context.Context, season *model.Season) error {
	err := r.db.WithContext(ctx).Create(season).Error
	if dberr.IsDuplicate(err) {
		return model.ErrSeasonExists
	}
	return err
}

func (r *repository) Save(ctx context.Context, season *model.Season) error {
	err := r.db.WithContext(ctx).Save(season).Error
	if dberr.IsDuplicate(err) {
		return model.ErrSeasonExists
	}
	return err
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&model.Season{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrSeasonNotFound
	}
	return nil
}

func (r *repository) ClearCurrent(ctx context.Context, exceptID int64) error {
	return r.db.WithContext(ctx).
		Model(&model.Season{}).
		Where("is_current = ? AND id <> ?", true, exceptID).
		Update("is_current", false).Error
}
