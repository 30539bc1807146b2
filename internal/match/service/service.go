// Package service provides business logic layer for match module.
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/veterans_league/internal/match/model"
	"github.com/festy23/veterans_league/internal/match/repository"
)

// StandingsRecomputer rebuilds the stored league table of a season inside
// an open transaction.
type StandingsRecomputer interface {
	RecomputeTx(ctx context.Context, tx *gorm.DB, seasonID int64) error
}

// Service defines the interface for match business logic operations.
type Service interface {
	List(ctx context.Context, filter model.ListFilter) ([]model.CalendarEntry, error)
	Weeks(ctx context.Context, seasonID int64) ([]int, error)
	Get(ctx context.Context, id int64) (*model.Match, error)
	Create(ctx context.Context, req *model.MatchRequest) (*model.Match, error)
	Update(ctx context.Context, id int64, req *model.MatchRequest) (*model.Match, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo      repository.Repository
	standings StandingsRecomputer
	db        *gorm.DB
	logger    *zap.SugaredLogger
}

// New creates a new match service instance.
func New(repo repository.Repository, standings StandingsRecomputer, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, standings: standings, db: db, logger: logger}
}

func (s *service) List(ctx context.Context, filter model.ListFilter) ([]model.CalendarEntry, error) {
	if filter.Competition != "" && !filter.Competition.Valid() {
		return nil, model.ErrInvalidCompetition
	}
	return s.repo.List(ctx, filter)
}

func (s *service) Weeks(ctx context.Context, seasonID int64) ([]int, error) {
	return s.repo.Weeks(ctx, seasonID)
}

func (s *service) Get(ctx context.Context, id int64) (*model.Match, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, req *model.MatchRequest) (*model.Match, error) {
	match := &model.Match{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)
		if err := apply(ctx, txRepo, match, req); err != nil {
			return err
		}
		if err := txRepo.Create(ctx, match); err != nil {
			return err
		}
		return s.recompute(ctx, tx, nil, match)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("match created",
		"match_id", match.ID,
		"season_id", match.SeasonID,
		"competition", match.Competition,
	)
	return match, nil
}

// Update replaces a match. A score change on a league match rebuilds the
// table in the same transaction.
func (s *service) Update(ctx context.Context, id int64, req *model.MatchRequest) (*model.Match, error) {
	var match *model.Match
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		var err error
		match, err = txRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		before := *match

		if err := apply(ctx, txRepo, match, req); err != nil {
			return err
		}
		if err := txRepo.Save(ctx, match); err != nil {
			return err
		}
		return s.recompute(ctx, tx, &before, match)
	})
	if err != nil {
		return nil, err
	}
	return match, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		match, err := txRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := txRepo.Delete(ctx, id); err != nil {
			return err
		}
		return s.recompute(ctx, tx, match, nil)
	})
	if err != nil {
		return err
	}

	s.logger.Infow("match deleted", "match_id", id)
	return nil
}

// recompute rebuilds every season whose table is affected by the change
// from before to after. Either side may be nil.
func (s *service) recompute(ctx context.Context, tx *gorm.DB, before, after *model.Match) error {
	seasons := make([]int64, 0, 2)
	for _, m := range []*model.Match{before, after} {
		if m == nil || !m.CountsForLeague() || !m.Played() {
			continue
		}
		if len(seasons) == 1 && seasons[0] == m.SeasonID {
			continue
		}
		seasons = append(seasons, m.SeasonID)
	}

	for _, seasonID := range seasons {
		if err := s.standings.RecomputeTx(ctx, tx, seasonID); err != nil {
			return fmt.Errorf("failed to recompute standings: %w", err)
		}
	}
	return nil
}

func apply(ctx context.Context, repo repository.Repository, match *model.Match, req *model.MatchRequest) error {
	if req.HomeTeamID == req.AwayTeamID {
		return model.ErrSameTeam
	}
	competition := req.Competition
	if competition == "" {
		competition = model.CompetitionLeague
	}
	if !competition.Valid() {
		return model.ErrInvalidCompetition
	}
	if (req.HomeScore == nil) != (req.AwayScore == nil) {
		return model.ErrPartialScore
	}

	for _, teamID := range []int64{req.HomeTeamID, req.AwayTeamID} {
		seasonID, ok, err := repo.TeamSeason(ctx, teamID)
		if err != nil {
			return err
		}
		if !ok || seasonID != req.SeasonID {
			return fmt.Errorf("%w: team %d", model.ErrTeamNotInSeason, teamID)
		}
	}

	match.SeasonID = req.SeasonID
	match.HomeTeamID = req.HomeTeamID
	match.AwayTeamID = req.AwayTeamID
	match.ScheduledAt = req.ScheduledAt
	match.HomeScore = req.HomeScore
	match.AwayScore = req.AwayScore
	match.Competition = competition
	match.Round = req.Round
	match.Week = req.Week
	match.CupGroup = req.CupGroup
	return nil
}
