package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	authModel "github.com/festy23/veterans_league/internal/auth/model"
	standingsModel "github.com/festy23/veterans_league/internal/standings/model"
	"github.com/festy23/veterans_league/internal/testutil"
)

func run(t *testing.T, db *gorm.DB, args ...string) (string, error) {
	t.Helper()
	connect := func() (*gorm.DB, func() error, error) {
		return db, func() error { return nil }, nil
	}
	app := newApp(connect, zaptest.NewLogger(t).Sugar())
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"leaguectl"}, args...))
	return out.String(), err
}

func TestSeedAndRecompute(t *testing.T) {
	db := testutil.NewDB(t)
	path := filepath.Join(t.TempDir(), "league.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
seasons:
  - label: 2025/26
    current: true
    teams:
      - name: Norte
      - name: Sur
`), 0o600))

	out, err := run(t, db, "seed", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "seeded 1 seasons, 2 teams")

	f := testutil.NewFixture(t, db)
	var teams []struct{ ID, SeasonID int64 }
	require.NoError(t, db.Table("teams").Order("name").Find(&teams).Error)
	require.Len(t, teams, 2)
	f.Result(teams[0].SeasonID, teams[0].ID, teams[1].ID, 1, 3, 1)

	out, err = run(t, db, "recompute", "--season", fmt.Sprint(teams[0].SeasonID))
	require.NoError(t, err)
	assert.Contains(t, out, "recomputed standings")

	var rows []standingsModel.Standing
	require.NoError(t, db.Order("points DESC").Find(&rows).Error)
	require.Len(t, rows, 2)
	assert.Equal(t, 3, rows[0].Points)
	assert.Equal(t, teams[0].ID, rows[0].TeamID)
}

func TestAdmin(t *testing.T) {
	db := testutil.NewDB(t)

	out, err := run(t, db, "admin", " Presidente@Liga.es")
	require.NoError(t, err)
	assert.Contains(t, out, "presidente@liga.es")

	var admins []authModel.Admin
	require.NoError(t, db.Find(&admins).Error)
	require.Len(t, admins, 1)

	_, err = run(t, db, "admin")
	assert.Error(t, err)
}

func TestSeed_RequiresFile(t *testing.T) {
	_, err := run(t, testutil.NewDB(t), "seed")
	assert.Error(t, err)
}
