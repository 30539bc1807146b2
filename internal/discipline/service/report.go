package service

import (
	"context"

	"github.com/festy23/veterans_league/internal/discipline/model"
	"github.com/festy23/veterans_league/internal/discipline/risk"
)

func (s *service) Report(ctx context.Context, seasonID int64) (*model.Report, error) {
	ok, err := s.repo.SeasonExists(ctx, seasonID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, model.ErrSeasonNotFound
	}

	report := &model.Report{
		SeasonID:    seasonID,
		Players:     []risk.PlayerRisk{},
		Teams:       []risk.TeamRisk{},
		Suspensions: []model.SuspensionView{},
		Punishments: []model.TeamPunishmentView{},
	}

	if result, err := s.riskTable(ctx, seasonID); err != nil {
		s.logger.Errorw("failed to build risk table", "error", err, "season_id", seasonID)
	} else {
		report.Players = result.Players
		report.Teams = result.Teams
	}

	if suspensions, err := s.repo.ListSuspensions(ctx, model.SuspensionFilter{SeasonID: seasonID}); err != nil {
		s.logger.Errorw("failed to load suspensions", "error", err, "season_id", seasonID)
	} else {
		report.Suspensions = suspensions
	}

	if punishments, err := s.repo.ListTeamPunishments(ctx, seasonID); err != nil {
		s.logger.Errorw("failed to load team punishments", "error", err, "season_id", seasonID)
	} else {
		report.Punishments = punishments
	}

	return report, nil
}

func (s *service) riskTable(ctx context.Context, seasonID int64) (risk.Result, error) {
	players, err := s.repo.SeasonPlayers(ctx, seasonID)
	if err != nil {
		return risk.Result{}, err
	}
	teams, err := s.repo.SeasonTeams(ctx, seasonID)
	if err != nil {
		return risk.Result{}, err
	}
	cards, err := s.repo.YellowCards(ctx, seasonID)
	if err != nil {
		return risk.Result{}, err
	}
	suspended, err := s.repo.SuspendedPlayers(ctx, seasonID)
	if err != nil {
		return risk.Result{}, err
	}
	return risk.Calculate(players, teams, cards, suspended), nil
}
