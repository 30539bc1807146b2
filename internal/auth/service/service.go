// Package service resolves identity tokens into request sessions.
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/festy23/veterans_league/internal/auth/model"
	"github.com/festy23/veterans_league/internal/auth/repository"
	"github.com/festy23/veterans_league/internal/auth/token"
	"github.com/festy23/veterans_league/internal/session"
)

// Service defines session operations.
type Service interface {
	// Resolve validates a session token and looks up the admin flag.
	Resolve(ctx context.Context, tokenString string) (session.Session, error)

	// SignIn exchanges an identity provider token for a session token.
	SignIn(ctx context.Context, req *model.SignInRequest) (*model.SignInResult, error)
}

type service struct {
	repo   repository.Repository
	tokens token.Provider
	logger *zap.SugaredLogger
}

// New creates a new auth service instance.
func New(repo repository.Repository, tokens token.Provider, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, tokens: tokens, logger: logger}
}

func (s *service) Resolve(ctx context.Context, tokenString string) (session.Session, error) {
	claims, err := s.tokens.Validate(tokenString)
	if err != nil {
		return session.Session{}, errors.Join(model.ErrUnauthenticated, err)
	}

	isAdmin, err := s.repo.IsAdmin(ctx, claims.Email)
	if err != nil {
		return session.Session{}, err
	}

	return session.Session{Email: claims.Email, IsAdmin: isAdmin}, nil
}

func (s *service) SignIn(ctx context.Context, req *model.SignInRequest) (*model.SignInResult, error) {
	sess, err := s.Resolve(ctx, req.Token)
	if err != nil {
		return nil, err
	}

	signed, expires, err := s.tokens.Issue(sess.Email)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("session started", "email", sess.Email, "is_admin", sess.IsAdmin)
	return &model.SignInResult{Token: signed, ExpiresAt: expires, Session: sess}, nil
}
