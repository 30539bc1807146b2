// Package service provides business logic layer for player module.
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/festy23/veterans_league/internal/player/model"
	"github.com/festy23/veterans_league/internal/player/repository"
)

// Service defines the interface for player business logic operations.
type Service interface {
	ListByTeam(ctx context.Context, teamID int64) ([]model.Player, error)
	Get(ctx context.Context, id int64) (*model.Player, error)
	Create(ctx context.Context, req *model.PlayerRequest) (*model.Player, error)
	Update(ctx context.Context, id int64, req *model.PlayerRequest) (*model.Player, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new player service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) ListByTeam(ctx context.Context, teamID int64) ([]model.Player, error) {
	return s.repo.ListByTeam(ctx, teamID)
}

func (s *service) Get(ctx context.Context, id int64) (*model.Player, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, req *model.PlayerRequest) (*model.Player, error) {
	player := &model.Player{}
	if err := s.apply(ctx, player, req); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, player); err != nil {
		return nil, err
	}
	s.logger.Infow("player created", "player_id", player.ID, "team_id", player.TeamID)
	return player, nil
}

// Update may move the player to another team.
func (s *service) Update(ctx context.Context, id int64, req *model.PlayerRequest) (*model.Player, error) {
	player, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, player, req); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("player deleted", "player_id", id)
	return nil
}

func (s *service) apply(ctx context.Context, player *model.Player, req *model.PlayerRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return model.ErrInvalidName
	}
	ok, err := s.repo.TeamExists(ctx, req.TeamID)
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrTeamNotFound
	}

	player.TeamID = req.TeamID
	player.Name = name
	player.PhotoURL = strings.TrimSpace(req.PhotoURL)
	return nil
}
