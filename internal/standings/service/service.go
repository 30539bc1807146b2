// Package service provides business logic layer for the standings module.
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/veterans_league/internal/standings/aggregate"
	"github.com/festy23/veterans_league/internal/standings/model"
	"github.com/festy23/veterans_league/internal/standings/ranker"
	"github.com/festy23/veterans_league/internal/standings/repository"
)

// Service defines the interface for standings business logic operations.
type Service interface {
	// Table returns the ranked table of a season. seasonID 0 selects the
	// current season.
	Table(ctx context.Context, seasonID int64, sort, dir string) (*model.Table, error)

	// Recompute rebuilds the stored rows of a season from its results.
	Recompute(ctx context.Context, seasonID int64) error

	// RecomputeTx is Recompute inside the caller's transaction.
	RecomputeTx(ctx context.Context, tx *gorm.DB, seasonID int64) error

	// History returns the champion of every finished season.
	History(ctx context.Context) ([]model.Champion, error)

	// Export renders the default-ranked table of a season as an XLSX workbook.
	Export(ctx context.Context, seasonID int64) ([]byte, string, error)
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new standings service instance.
func New(repo repository.Repository, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, db: db, logger: logger}
}

func (s *service) Table(ctx context.Context, seasonID int64, sort, dir string) (*model.Table, error) {
	key, err := ranker.ParseSortKey(sort)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidSort, err)
	}
	direction, err := ranker.ParseDirection(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidSort, err)
	}

	season, err := s.season(ctx, seasonID)
	if err != nil {
		return nil, err
	}

	rows, err := s.ranked(ctx, season.ID, key, direction)
	if err != nil {
		return nil, err
	}

	return &model.Table{
		SeasonID:  season.ID,
		Sort:      key.String(),
		Direction: direction.String(),
		Rows:      rows,
	}, nil
}

func (s *service) Recompute(ctx context.Context, seasonID int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.RecomputeTx(ctx, tx, seasonID)
	})
}

func (s *service) RecomputeTx(ctx context.Context, tx *gorm.DB, seasonID int64) error {
	txRepo := repository.New(tx, s.logger)

	if _, err := txRepo.Season(ctx, seasonID); err != nil {
		return err
	}

	teams, err := txRepo.Teams(ctx, seasonID)
	if err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}
	results, err := txRepo.Results(ctx, seasonID)
	if err != nil {
		return fmt.Errorf("failed to load results: %w", err)
	}
	deductions, err := txRepo.Deductions(ctx, seasonID)
	if err != nil {
		return fmt.Errorf("failed to load deductions: %w", err)
	}

	built := aggregate.Build(teams, results, deductions)
	rows := make([]model.Standing, 0, len(built))
	for _, b := range built {
		rows = append(rows, model.Standing{
			SeasonID:     seasonID,
			TeamID:       b.TeamID,
			Played:       b.Played,
			Wins:         b.Wins,
			Draws:        b.Draws,
			Losses:       b.Losses,
			GoalsFor:     b.GoalsFor,
			GoalsAgainst: b.GoalsAgainst,
			Points:       b.Points,
		})
	}

	if err := txRepo.ReplaceSeason(ctx, seasonID, rows); err != nil {
		return fmt.Errorf("failed to store standings: %w", err)
	}

	s.logger.Infow("standings recomputed",
		"season_id", seasonID,
		"teams", len(rows),
		"results", len(results),
	)
	return nil
}

func (s *service) History(ctx context.Context) ([]model.Champion, error) {
	seasons, err := s.repo.PastSeasons(ctx)
	if err != nil {
		return nil, err
	}

	champions := make([]model.Champion, 0, len(seasons))
	for _, season := range seasons {
		rows, err := s.ranked(ctx, season.ID, ranker.KeyNone, ranker.Desc)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 || rows[0].Excluded || rows[0].Played == 0 {
			continue
		}
		top := rows[0]
		champions = append(champions, model.Champion{
			SeasonID:    season.ID,
			SeasonLabel: season.Label,
			TeamID:      top.TeamID,
			TeamName:    top.TeamName,
			LogoURL:     top.LogoURL,
			Points:      top.Points,
		})
	}
	return champions, nil
}

func (s *service) season(ctx context.Context, seasonID int64) (*model.SeasonRef, error) {
	if seasonID == 0 {
		return s.repo.CurrentSeason(ctx)
	}
	return s.repo.Season(ctx, seasonID)
}

// ranked loads the season's rows, ranks them and numbers the positions.
func (s *service) ranked(ctx context.Context, seasonID int64, key ranker.SortKey, dir ranker.Direction) ([]model.TableRow, error) {
	rows, err := s.repo.TableRows(ctx, seasonID)
	if err != nil {
		return nil, err
	}

	ranker.Rank(rows, key, dir)
	for i := range rows {
		rows[i].Position = i + 1
		rows[i].GoalDifference = rows[i].GoalsFor - rows[i].GoalsAgainst
	}
	return rows, nil
}
