// Package service provides business logic layer for team module.
package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/veterans_league/internal/team/model"
	"github.com/festy23/veterans_league/internal/team/repository"
)

// StandingsRecomputer rebuilds the stored league table of a season inside
// the caller's transaction.
type StandingsRecomputer interface {
	RecomputeTx(ctx context.Context, tx *gorm.DB, seasonID int64) error
}

// Service defines the interface for team business logic operations.
type Service interface {
	// ListBySeason returns the teams registered for a season.
	ListBySeason(ctx context.Context, seasonID int64) ([]model.Team, error)

	// Detail returns a team with its roster and fixtures.
	Detail(ctx context.Context, id int64) (*model.TeamDetail, error)

	// Create registers a team for a season.
	Create(ctx context.Context, req *model.TeamRequest) (*model.Team, error)

	// Update replaces a team's attributes. Moving a team to another season
	// rebuilds the tables of both seasons.
	Update(ctx context.Context, id int64, req *model.TeamRequest) (*model.Team, error)

	// Delete removes a team with its fixtures and rebuilds its season's table.
	Delete(ctx context.Context, id int64) error

	// PointsSeries returns cumulative league points after each played week.
	PointsSeries(ctx context.Context, id int64) ([]model.PointsPoint, error)

	// PointsChart renders PointsSeries as a PNG line chart.
	PointsChart(ctx context.Context, id int64) ([]byte, error)
}

type service struct {
	repo      repository.Repository
	standings StandingsRecomputer
	db        *gorm.DB
	logger    *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo repository.Repository, standings StandingsRecomputer, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, standings: standings, db: db, logger: logger}
}

func (s *service) ListBySeason(ctx context.Context, seasonID int64) ([]model.Team, error) {
	return s.repo.ListBySeason(ctx, seasonID)
}

func (s *service) Detail(ctx context.Context, id int64) (*model.TeamDetail, error) {
	team, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	players, err := s.repo.Players(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load players: %w", err)
	}

	matches, err := s.repo.Matches(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load fixtures: %w", err)
	}

	fixtures := make([]model.Fixture, 0, len(matches))
	for _, m := range matches {
		fixtures = append(fixtures, fixtureFor(id, m))
	}

	return &model.TeamDetail{Team: *team, Players: players, Fixtures: fixtures}, nil
}

func (s *service) Create(ctx context.Context, req *model.TeamRequest) (*model.Team, error) {
	team := &model.Team{}
	if err := apply(ctx, s.repo, team, req); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, team); err != nil {
		return nil, err
	}

	s.logger.Infow("team created", "team_id", team.ID, "season_id", team.SeasonID, "name", team.Name)
	return team, nil
}

func (s *service) Update(ctx context.Context, id int64, req *model.TeamRequest) (*model.Team, error) {
	var team *model.Team
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		var err error
		team, err = txRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		previousSeason := team.SeasonID

		if err := apply(ctx, txRepo, team, req); err != nil {
			return err
		}
		if err := txRepo.Save(ctx, team); err != nil {
			return err
		}
		if team.SeasonID == previousSeason {
			return nil
		}
		return s.recompute(ctx, tx, previousSeason, team.SeasonID)
	})
	if err != nil {
		return nil, err
	}
	return team, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	var seasonID int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		team, err := txRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		seasonID = team.SeasonID

		if err := txRepo.Delete(ctx, id); err != nil {
			return err
		}
		return s.recompute(ctx, tx, seasonID)
	})
	if err != nil {
		return err
	}

	s.logger.Infow("team deleted", "team_id", id, "season_id", seasonID)
	return nil
}

func (s *service) recompute(ctx context.Context, tx *gorm.DB, seasonIDs ...int64) error {
	for _, seasonID := range seasonIDs {
		if err := s.standings.RecomputeTx(ctx, tx, seasonID); err != nil {
			return fmt.Errorf("failed to recompute standings: %w", err)
		}
	}
	return nil
}

func (s *service) PointsSeries(ctx context.Context, id int64) ([]model.PointsPoint, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	matches, err := s.repo.Matches(ctx, id)
	if err != nil {
		return nil, err
	}

	perWeek := make(map[int]int)
	for _, m := range matches {
		if m.Competition != "League" || m.Week == nil || m.HomeScore == nil || m.AwayScore == nil {
			continue
		}
		f := fixtureFor(id, m)
		perWeek[*m.Week] += resultPoints(*f.GoalsFor, *f.GoalsAgainst)
	}
	if len(perWeek) == 0 {
		return nil, model.ErrNoResults
	}

	weeks := make([]int, 0, len(perWeek))
	for w := range perWeek {
		weeks = append(weeks, w)
	}
	sort.Ints(weeks)

	series := make([]model.PointsPoint, 0, len(weeks))
	total := 0
	for _, w := range weeks {
		total += perWeek[w]
		series = append(series, model.PointsPoint{Week: w, Points: total})
	}
	return series, nil
}

func (s *service) PointsChart(ctx context.Context, id int64) ([]byte, error) {
	series, err := s.PointsSeries(ctx, id)
	if err != nil {
		return nil, err
	}
	team, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return renderPointsChart(team.Name, series)
}

func apply(ctx context.Context, repo repository.Repository, team *model.Team, req *model.TeamRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return model.ErrInvalidTeamName
	}

	exists, err := repo.SeasonExists(ctx, req.SeasonID)
	if err != nil {
		return err
	}
	if !exists {
		return model.ErrSeasonNotFound
	}

	team.SeasonID = req.SeasonID
	team.Name = name
	team.LogoURL = req.LogoURL
	team.RosterImageURL = req.RosterImageURL
	team.Stadium = req.Stadium
	team.FoundedOn = req.FoundedOn
	team.HomeKit = req.HomeKit
	team.AwayKit = req.AwayKit
	team.Excluded = req.Excluded
	return nil
}

// fixtureFor turns a match into the team's point of view.
func fixtureFor(teamID int64, m repository.MatchRow) model.Fixture {
	f := model.Fixture{
		MatchID:     m.ID,
		ScheduledAt: m.ScheduledAt,
		Competition: m.Competition,
		Week:        m.Week,
	}
	if m.HomeTeamID == teamID {
		f.Home = true
		f.OpponentID = m.AwayTeamID
		f.OpponentName = m.AwayTeamName
		f.GoalsFor, f.GoalsAgainst = m.HomeScore, m.AwayScore
	} else {
		f.OpponentID = m.HomeTeamID
		f.OpponentName = m.HomeTeamName
		f.GoalsFor, f.GoalsAgainst = m.AwayScore, m.HomeScore
	}
	return f
}

func resultPoints(scored, conceded int) int {
	switch {
	case scored > conceded:
		return 3
	case scored == conceded:
		return 1
	}
	return 0
}
