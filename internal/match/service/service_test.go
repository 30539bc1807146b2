package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"github.com/festy23/veterans_league/internal/match/model"
	"github.com/festy23/veterans_league/internal/match/repository"
	"github.com/festy23/veterans_league/internal/testutil"
)

type mockRecomputer struct {
	mock.Mock
}

func (m *mockRecomputer) RecomputeTx(ctx context.Context, tx *gorm.DB, seasonID int64) error {
	return m.Called(ctx, tx, seasonID).Error(0)
}

type fixture struct {
	svc       Service
	standings *mockRecomputer
	season    int64
	home      int64
	away      int64
}

func setup(t *testing.T) *fixture {
	db := testutil.NewDB(t)
	logger := zaptest.NewLogger(t).Sugar()
	f := testutil.NewFixture(t, db)
	season := f.Season("2024/25", true)
	standings := new(mockRecomputer)
	return &fixture{
		svc:       New(repository.New(db, logger), standings, db, logger),
		standings: standings,
		season:    season.ID,
		home:      f.Team(season.ID, "Home").ID,
		away:      f.Team(season.ID, "Away").ID,
	}
}

func (fx *fixture) request() *model.MatchRequest {
	week := 1
	return &model.MatchRequest{
		SeasonID:    fx.season,
		HomeTeamID:  fx.home,
		AwayTeamID:  fx.away,
		ScheduledAt: time.Date(2025, 9, 6, 10, 0, 0, 0, time.UTC),
		Week:        &week,
	}
}

func intPtr(v int) *int { return &v }

func TestService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	fx := setup(t)

	tests := []struct {
		name   string
		mutate func(*model.MatchRequest)
		want   error
	}{
		{"same team", func(r *model.MatchRequest) { r.AwayTeamID = r.HomeTeamID }, model.ErrSameTeam},
		{"unknown competition", func(r *model.MatchRequest) { r.Competition = "Friendly" }, model.ErrInvalidCompetition},
		{"partial score", func(r *model.MatchRequest) { r.HomeScore = intPtr(1) }, model.ErrPartialScore},
		{"team of another season", func(r *model.MatchRequest) { r.SeasonID = 999 }, model.ErrTeamNotInSeason},
		{"unknown team", func(r *model.MatchRequest) { r.AwayTeamID = 999 }, model.ErrTeamNotInSeason},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := fx.request()
			tt.mutate(req)
			_, err := fx.svc.Create(ctx, req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
	fx.standings.AssertNotCalled(t, "RecomputeTx", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_CreateUnplayedSkipsRecompute(t *testing.T) {
	fx := setup(t)

	m, err := fx.svc.Create(context.Background(), fx.request())
	require.NoError(t, err)
	assert.Equal(t, model.CompetitionLeague, m.Competition)
	fx.standings.AssertNotCalled(t, "RecomputeTx", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_ScoreWritesRecompute(t *testing.T) {
	ctx := context.Background()
	fx := setup(t)
	fx.standings.On("RecomputeTx", mock.Anything, mock.Anything, fx.season).Return(nil)

	m, err := fx.svc.Create(ctx, fx.request())
	require.NoError(t, err)

	req := fx.request()
	req.HomeScore, req.AwayScore = intPtr(2), intPtr(2)
	updated, err := fx.svc.Update(ctx, m.ID, req)
	require.NoError(t, err)
	assert.True(t, updated.Played())

	require.NoError(t, fx.svc.Delete(ctx, m.ID))
	fx.standings.AssertNumberOfCalls(t, "RecomputeTx", 2)

	_, err = fx.svc.Get(ctx, m.ID)
	assert.ErrorIs(t, err, model.ErrMatchNotFound)
}

func TestService_CupScoreSkipsRecompute(t *testing.T) {
	fx := setup(t)

	req := fx.request()
	req.Competition = model.CompetitionCup
	req.HomeScore, req.AwayScore = intPtr(1), intPtr(0)
	_, err := fx.svc.Create(context.Background(), req)
	require.NoError(t, err)
	fx.standings.AssertNotCalled(t, "RecomputeTx", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_RecomputeFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	fx := setup(t)
	fx.standings.On("RecomputeTx", mock.Anything, mock.Anything, fx.season).Return(errors.New("boom"))

	req := fx.request()
	req.HomeScore, req.AwayScore = intPtr(1), intPtr(0)
	_, err := fx.svc.Create(ctx, req)
	require.Error(t, err)

	entries, err := fx.svc.List(ctx, model.ListFilter{SeasonID: fx.season})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	fx := setup(t)

	_, err := fx.svc.List(ctx, model.ListFilter{SeasonID: fx.season, Competition: "Friendly"})
	assert.ErrorIs(t, err, model.ErrInvalidCompetition)

	_, err = fx.svc.Create(ctx, fx.request())
	require.NoError(t, err)

	weeks, err := fx.svc.Weeks(ctx, fx.season)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, weeks)
}
