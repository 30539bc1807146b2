// Package service provides business logic layer for the season module.
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/veterans_league/internal/season/model"
	"github.com/festy23/veterans_league/internal/season/repository"
)

// Service defines the interface for season business logic operations.
type Service interface {
	List(ctx context.Context) ([]model.Season, error)
	Get(ctx context.Context, id int64) (*model.Season, error)
	Current(ctx context.Context) (*model.Season, error)
	Create(ctx context.Context, req *model.CreateSeasonRequest) (*model.Season, error)
	Update(ctx context.Context, id int64, req *model.UpdateSeasonRequest) (*model.Season, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new season service instance.
func New(repo repository.Repository, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, db: db, logger: logger}
}

func (s *service) List(ctx context.Context) ([]model.Season, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, id int64) (*model.Season, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Current(ctx context.Context) (*model.Season, error) {
	return s.repo.GetCurrent(ctx)
}

// Create inserts a season. Flagging it current clears the flag elsewhere in
// the same transaction.
func (s *service) Create(ctx context.Context, req *model.CreateSeasonRequest) (*model.Season, error) {
	label := strings.TrimSpace(req.Label)
	if label == "" {
		return nil, model.ErrInvalidLabel
	}

	season := &model.Season{
		Label:       label,
		IsCurrent:   req.IsCurrent,
		HasGroupCup: req.HasGroupCup,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)
		if season.IsCurrent {
			if err := txRepo.ClearCurrent(ctx, 0); err != nil {
				return err
			}
		}
		return txRepo.Create(ctx, season)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("season created", "season_id", season.ID, "label", season.Label)
	return season, nil
}

func (s *service) Update(ctx context.Context, id int64, req *model.UpdateSeasonRequest) (*model.Season, error) {
	var season *model.Season
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		var err error
		season, err = txRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if req.Label != nil {
			label := strings.TrimSpace(*req.Label)
			if label == "" {
				return model.ErrInvalidLabel
			}
			season.Label = label
		}
		if req.HasGroupCup != nil {
			season.HasGroupCup = *req.HasGroupCup
		}
		if req.IsCurrent != nil {
			season.IsCurrent = *req.IsCurrent
			if season.IsCurrent {
				if err := txRepo.ClearCurrent(ctx, season.ID); err != nil {
					return err
				}
			}
		}

		return txRepo.Save(ctx, season)
	})
	if err != nil {
		return nil, err
	}
	return season, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("season deleted", "season_id", id)
	return nil
}
