package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/festy23/veterans_league/internal/player/model"
	"github.com/festy23/veterans_league/internal/player/repository"
	"github.com/festy23/veterans_league/internal/testutil"
)

func TestService_PlayerLifecycle(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	logger := zaptest.NewLogger(t).Sugar()
	svc := New(repository.New(db, logger), logger)

	f := testutil.NewFixture(t, db)
	season := f.Season("2024/25", true)
	alpha := f.Team(season.ID, "Alpha")
	beta := f.Team(season.ID, "Beta")

	p, err := svc.Create(ctx, &model.PlayerRequest{TeamID: alpha.ID, Name: " Míchel "})
	require.NoError(t, err)
	assert.Equal(t, "Míchel", p.Name)

	_, err = svc.Create(ctx, &model.PlayerRequest{TeamID: alpha.ID, Name: ""})
	assert.ErrorIs(t, err, model.ErrInvalidName)

	_, err = svc.Create(ctx, &model.PlayerRequest{TeamID: 999, Name: "Nobody"})
	assert.ErrorIs(t, err, model.ErrTeamNotFound)

	moved, err := svc.Update(ctx, p.ID, &model.PlayerRequest{TeamID: beta.ID, Name: "Míchel"})
	require.NoError(t, err)
	assert.Equal(t, beta.ID, moved.TeamID)

	alphaPlayers, err := svc.ListByTeam(ctx, alpha.ID)
	require.NoError(t, err)
	assert.Empty(t, alphaPlayers)

	require.NoError(t, svc.Delete(ctx, p.ID))
	_, err = svc.Get(ctx, p.ID)
	assert.ErrorIs(t, err, model.ErrPlayerNotFound)
}
