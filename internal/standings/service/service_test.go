package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"github.com/festy23/veterans_league/internal/standings/model"
	"github.com/festy23/veterans_league/internal/standings/repository"
	"github.com/festy23/veterans_league/internal/testutil"
)

type league struct {
	svc    Service
	db     *gorm.DB
	f      *testutil.Fixture
	season int64
	teams  map[string]int64
}

// newLeague builds a four team season:
//
//	Norte  W 3-0 Sur, W 1-0 Este          6 pts
//	Oeste  W 2-1 Este, D 1-1 Sur          4 pts
//	Sur    L 0-3 Norte, D 1-1 Oeste       1 pt
//	Este   L 1-2 Oeste, L 0-1 Norte       0 pts
func newLeague(t *testing.T) *league {
	db := testutil.NewDB(t)
	logger := zaptest.NewLogger(t).Sugar()
	f := testutil.NewFixture(t, db)
	season := f.Season("2024/25", true)

	l := &league{
		svc:    New(repository.New(db, logger), db, logger),
		db:     db,
		f:      f,
		season: season.ID,
		teams:  map[string]int64{},
	}
	for _, name := range []string{"Norte", "Sur", "Este", "Oeste"} {
		l.teams[name] = f.Team(season.ID, name).ID
	}
	f.Result(season.ID, l.teams["Norte"], l.teams["Sur"], 1, 3, 0)
	f.Result(season.ID, l.teams["Oeste"], l.teams["Este"], 1, 2, 1)
	f.Result(season.ID, l.teams["Sur"], l.teams["Oeste"], 2, 1, 1)
	f.Result(season.ID, l.teams["Este"], l.teams["Norte"], 2, 0, 1)
	return l
}

func names(rows []model.TableRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.TeamName
	}
	return out
}

func TestService_RecomputeAndTable(t *testing.T) {
	ctx := context.Background()
	l := newLeague(t)

	require.NoError(t, l.svc.Recompute(ctx, l.season))

	table, err := l.svc.Table(ctx, 0, "", "")
	require.NoError(t, err)
	assert.Equal(t, l.season, table.SeasonID)
	assert.Equal(t, "default", table.Sort)
	assert.Equal(t, "desc", table.Direction)
	assert.Equal(t, []string{"Norte", "Oeste", "Sur", "Este"}, names(table.Rows))

	top := table.Rows[0]
	assert.Equal(t, 1, top.Position)
	assert.Equal(t, 6, top.Points)
	assert.Equal(t, 4, top.GoalDifference)
	assert.Equal(t, 4, table.Rows[3].Position)

	asc, err := l.svc.Table(ctx, l.season, "points", "asc")
	require.NoError(t, err)
	assert.Equal(t, []string{"Este", "Sur", "Oeste", "Norte"}, names(asc.Rows))

	byGA, err := l.svc.Table(ctx, l.season, "goalsAgainst", "desc")
	require.NoError(t, err)
	assert.Equal(t, "goals_against", byGA.Sort)
	assert.Equal(t, "Sur", byGA.Rows[0].TeamName)
}

func TestService_RecomputeAppliesDeductionsAndExclusion(t *testing.T) {
	ctx := context.Background()
	l := newLeague(t)

	l.f.Deduction(l.teams["Norte"], "Registration fine", 3, 1)
	require.NoError(t, l.db.Table("teams").Where("id = ?", l.teams["Oeste"]).Update("excluded", true).Error)
	require.NoError(t, l.svc.Recompute(ctx, l.season))

	table, err := l.svc.Table(ctx, l.season, "", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Norte", "Sur", "Este", "Oeste"}, names(table.Rows))
	assert.Equal(t, 3, table.Rows[0].Points)
	assert.True(t, table.Rows[3].Excluded)
}

func TestService_TableErrors(t *testing.T) {
	ctx := context.Background()
	l := newLeague(t)

	_, err := l.svc.Table(ctx, l.season, "shirt_colour", "")
	assert.ErrorIs(t, err, model.ErrInvalidSort)

	_, err = l.svc.Table(ctx, l.season, "points", "sideways")
	assert.ErrorIs(t, err, model.ErrInvalidSort)

	_, err = l.svc.Table(ctx, 999, "", "")
	assert.ErrorIs(t, err, model.ErrSeasonNotFound)

	assert.ErrorIs(t, l.svc.Recompute(ctx, 999), model.ErrSeasonNotFound)
}

func TestService_TableBeforeRecompute(t *testing.T) {
	l := newLeague(t)

	table, err := l.svc.Table(context.Background(), l.season, "", "")
	require.NoError(t, err)
	require.Len(t, table.Rows, 4)
	for _, r := range table.Rows {
		assert.Zero(t, r.Played)
	}
}

func TestService_History(t *testing.T) {
	ctx := context.Background()
	l := newLeague(t)

	old := l.f.Season("2023/24", false)
	champ := l.f.Team(old.ID, "Campeón")
	runner := l.f.Team(old.ID, "Subcampeón")
	l.f.Result(old.ID, runner.ID, champ.ID, 1, 0, 2)
	l.f.Season("2022/23", false)

	require.NoError(t, l.svc.Recompute(ctx, old.ID))

	champions, err := l.svc.History(ctx)
	require.NoError(t, err)
	require.Len(t, champions, 1)
	assert.Equal(t, "2023/24", champions[0].SeasonLabel)
	assert.Equal(t, "Campeón", champions[0].TeamName)
	assert.Equal(t, 3, champions[0].Points)
}

func TestService_Export(t *testing.T) {
	ctx := context.Background()
	l := newLeague(t)
	require.NoError(t, l.svc.Recompute(ctx, l.season))

	data, name, err := l.svc.Export(ctx, l.season)
	require.NoError(t, err)
	assert.Equal(t, "standings-2024-25.xlsx", name)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, "Team", rows[0][1])
	assert.Equal(t, []string{"1", "Norte", "2", "2", "0", "0", "4", "0", "4", "6"}, rows[1])
}
