// Package service provides business logic layer for the discipline module.
package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/veterans_league/internal/discipline/model"
	"github.com/festy23/veterans_league/internal/discipline/repository"
)

// StandingsRecomputer rebuilds the stored league table of a season inside
// an open transaction.
type StandingsRecomputer interface {
	RecomputeTx(ctx context.Context, tx *gorm.DB, seasonID int64) error
}

// Service defines the interface for discipline business logic operations.
type Service interface {
	ListEvents(ctx context.Context, matchID int64) ([]model.MatchEvent, error)
	CreateEvent(ctx context.Context, matchID int64, req *model.MatchEventRequest) (*model.MatchEvent, error)
	DeleteEvent(ctx context.Context, id int64) error

	ListSuspensions(ctx context.Context, filter model.SuspensionFilter) ([]model.SuspensionView, error)
	CreateSuspension(ctx context.Context, req *model.SuspensionRequest) (*model.Suspension, error)
	UpdateSuspension(ctx context.Context, id int64, req *model.UpdateSuspensionRequest) (*model.Suspension, error)
	DeleteSuspension(ctx context.Context, id int64) error

	ListPunishmentTypes(ctx context.Context) ([]model.PunishmentType, error)
	CreatePunishmentType(ctx context.Context, req *model.PunishmentTypeRequest) (*model.PunishmentType, error)

	ListTeamPunishments(ctx context.Context, seasonID int64) ([]model.TeamPunishmentView, error)
	CreateTeamPunishment(ctx context.Context, req *model.TeamPunishmentRequest) (*model.TeamPunishment, error)
	DeleteTeamPunishment(ctx context.Context, id int64) error

	// Report assembles the discipline page of a season. A section that
	// fails to load is logged and left empty.
	Report(ctx context.Context, seasonID int64) (*model.Report, error)
}

type service struct {
	repo      repository.Repository
	standings StandingsRecomputer
	db        *gorm.DB
	logger    *zap.SugaredLogger
}

// New creates a new discipline service instance.
func New(repo repository.Repository, standings StandingsRecomputer, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, standings: standings, db: db, logger: logger}
}

func (s *service) ListEvents(ctx context.Context, matchID int64) ([]model.MatchEvent, error) {
	return s.repo.ListEvents(ctx, matchID)
}

// CreateEvent records an event for a player whose team played the match.
func (s *service) CreateEvent(ctx context.Context, matchID int64, req *model.MatchEventRequest) (*model.MatchEvent, error) {
	if !req.EventType.Valid() {
		return nil, model.ErrInvalidEventType
	}

	home, away, err := s.repo.MatchTeams(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("match %d: %w", matchID, err)
	}
	teamID, err := s.repo.PlayerTeam(ctx, req.PlayerID)
	if err != nil {
		return nil, fmt.Errorf("player %d: %w", req.PlayerID, err)
	}
	if teamID != home && teamID != away {
		return nil, model.ErrPlayerNotInMatch
	}

	event := &model.MatchEvent{
		MatchID:   matchID,
		PlayerID:  req.PlayerID,
		EventType: req.EventType,
		Minute:    req.Minute,
	}
	if err := s.repo.CreateEvent(ctx, event); err != nil {
		return nil, err
	}

	s.logger.Infow("match event recorded",
		"match_id", matchID,
		"player_id", req.PlayerID,
		"event_type", req.EventType,
	)
	return event, nil
}

func (s *service) DeleteEvent(ctx context.Context, id int64) error {
	return s.repo.DeleteEvent(ctx, id)
}

func (s *service) ListSuspensions(ctx context.Context, filter model.SuspensionFilter) ([]model.SuspensionView, error) {
	return s.repo.ListSuspensions(ctx, filter)
}

func (s *service) CreateSuspension(ctx context.Context, req *model.SuspensionRequest) (*model.Suspension, error) {
	if _, err := s.repo.PlayerTeam(ctx, req.PlayerID); err != nil {
		return nil, fmt.Errorf("player %d: %w", req.PlayerID, err)
	}
	ok, err := s.repo.SeasonExists(ctx, req.SeasonID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("season %d: %w", req.SeasonID, model.ErrInvalidReference)
	}

	suspension := &model.Suspension{
		PlayerID: req.PlayerID,
		SeasonID: req.SeasonID,
		IssuedOn: req.IssuedOn,
		Matches:  req.Matches,
		Reason:   strings.TrimSpace(req.Reason),
		Active:   true,
	}
	if req.Active != nil {
		suspension.Active = *req.Active
	}
	if err := s.repo.CreateSuspension(ctx, suspension); err != nil {
		return nil, err
	}

	s.logger.Infow("suspension issued", "player_id", req.PlayerID, "matches", req.Matches)
	return suspension, nil
}

func (s *service) UpdateSuspension(ctx context.Context, id int64, req *model.UpdateSuspensionRequest) (*model.Suspension, error) {
	suspension, err := s.repo.GetSuspension(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Matches != nil {
		suspension.Matches = *req.Matches
	}
	if req.Reason != nil {
		suspension.Reason = strings.TrimSpace(*req.Reason)
	}
	if req.Active != nil {
		suspension.Active = *req.Active
	}
	if err := s.repo.SaveSuspension(ctx, suspension); err != nil {
		return nil, err
	}
	return suspension, nil
}

func (s *service) DeleteSuspension(ctx context.Context, id int64) error {
	return s.repo.DeleteSuspension(ctx, id)
}

func (s *service) ListPunishmentTypes(ctx context.Context) ([]model.PunishmentType, error) {
	return s.repo.ListPunishmentTypes(ctx)
}

func (s *service) CreatePunishmentType(ctx context.Context, req *model.PunishmentTypeRequest) (*model.PunishmentType, error) {
	pt := &model.PunishmentType{
		Name:           strings.TrimSpace(req.Name),
		PointsDeducted: req.PointsDeducted,
	}
	if err := s.repo.CreatePunishmentType(ctx, pt); err != nil {
		return nil, err
	}
	return pt, nil
}

func (s *service) ListTeamPunishments(ctx context.Context, seasonID int64) ([]model.TeamPunishmentView, error) {
	return s.repo.ListTeamPunishments(ctx, seasonID)
}

// CreateTeamPunishment records a sanction. A sanction that deducts points
// rebuilds the team's league table in the same transaction.
func (s *service) CreateTeamPunishment(ctx context.Context, req *model.TeamPunishmentRequest) (*model.TeamPunishment, error) {
	tp := &model.TeamPunishment{
		TeamID:           req.TeamID,
		PunishmentTypeID: req.PunishmentTypeID,
		IssuedOn:         req.IssuedOn,
		Description:      strings.TrimSpace(req.Description),
		Quantity:         req.Quantity,
		PlayerID:         req.PlayerID,
		MatchID:          req.MatchID,
	}
	if tp.Quantity == 0 {
		tp.Quantity = 1
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		seasonID, err := txRepo.TeamSeason(ctx, tp.TeamID)
		if err != nil {
			return fmt.Errorf("team %d: %w", tp.TeamID, err)
		}
		pt, err := txRepo.GetPunishmentType(ctx, tp.PunishmentTypeID)
		if err != nil {
			return fmt.Errorf("punishment type %d: %w", tp.PunishmentTypeID, err)
		}
		if tp.PlayerID != nil {
			if _, err := txRepo.PlayerTeam(ctx, *tp.PlayerID); err != nil {
				return fmt.Errorf("player %d: %w", *tp.PlayerID, err)
			}
		}
		if tp.MatchID != nil {
			if _, _, err := txRepo.MatchTeams(ctx, *tp.MatchID); err != nil {
				return fmt.Errorf("match %d: %w", *tp.MatchID, err)
			}
		}

		if err := txRepo.CreateTeamPunishment(ctx, tp); err != nil {
			return err
		}
		if pt.PointsDeducted > 0 {
			return s.standings.RecomputeTx(ctx, tx, seasonID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("team punishment recorded",
		"team_id", tp.TeamID,
		"punishment_type_id", tp.PunishmentTypeID,
		"quantity", tp.Quantity,
	)
	return tp, nil
}

func (s *service) DeleteTeamPunishment(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		tp, err := txRepo.GetTeamPunishment(ctx, id)
		if err != nil {
			return err
		}
		pt, err := txRepo.GetPunishmentType(ctx, tp.PunishmentTypeID)
		if err != nil {
			return err
		}
		seasonID, err := txRepo.TeamSeason(ctx, tp.TeamID)
		if err != nil {
			return err
		}

		if err := txRepo.DeleteTeamPunishment(ctx, id); err != nil {
			return err
		}
		if pt.PointsDeducted > 0 {
			return s.standings.RecomputeTx(ctx, tx, seasonID)
		}
		return nil
	})
}
