// Package service provides business logic layer for statistics module.
package service

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/festy23/veterans_league/internal/statistics/model"
	"github.com/festy23/veterans_league/internal/statistics/repository"
)

// Service defines the interface for statistics business logic operations.
type Service interface {
	// GetScorers returns the season's players with events, top scorers
	// first. Players with cards but no goals are included.
	GetScorers(ctx context.Context, seasonID int64) (*model.ScorersResponse, error)

	// GetSeasonStatistics returns league totals for a season.
	GetSeasonStatistics(ctx context.Context, seasonID int64) (*model.SeasonStatisticsResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new statistics service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

func (s *service) checkSeason(ctx context.Context, seasonID int64) error {
	ok, err := s.repo.SeasonExists(ctx, seasonID)
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrSeasonNotFound
	}
	return nil
}

func (s *service) GetScorers(ctx context.Context, seasonID int64) (*model.ScorersResponse, error) {
	if err := s.checkSeason(ctx, seasonID); err != nil {
		return nil, err
	}

	scorers, err := s.repo.GetPlayerStatistics(ctx, seasonID)
	if err != nil {
		s.logger.Errorw("GetScorers failed", "error", err, "season_id", seasonID)
		return nil, err
	}

	if scorers == nil {
		scorers = []model.PlayerStatistics{}
	}

	s.logger.Debugw("GetScorers completed", "season_id", seasonID, "count", len(scorers))
	return &model.ScorersResponse{
		SeasonID: seasonID,
		Scorers:  scorers,
		Total:    len(scorers),
	}, nil
}

func (s *service) GetSeasonStatistics(ctx context.Context, seasonID int64) (*model.SeasonStatisticsResponse, error) {
	if err := s.checkSeason(ctx, seasonID); err != nil {
		return nil, err
	}

	stats, err := s.repo.GetSeasonStatistics(ctx, seasonID)
	if err != nil {
		s.logger.Errorw("GetSeasonStatistics failed", "error", err, "season_id", seasonID)
		return nil, err
	}

	if stats.PlayedMatches > 0 {
		avg := float64(stats.TotalGoals) / float64(stats.PlayedMatches)
		stats.AverageGoalsPerMatch = math.Round(avg*100) / 100
	}

	return &model.SeasonStatisticsResponse{
		SeasonID:   seasonID,
		Statistics: *stats,
	}, nil
}
