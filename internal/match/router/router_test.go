package router

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	standingsModel "github.com/festy23/veterans_league/internal/standings/model"
	standingsRouter "github.com/festy23/veterans_league/internal/standings/router"
	"github.com/festy23/veterans_league/internal/testutil"
)

func TestRoutes_ScoreUpdatesStandings(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testutil.NewDB(t)
	logger := zaptest.NewLogger(t).Sugar()
	f := testutil.NewFixture(t, db)
	season := f.Season("2024/25", true)
	home := f.Team(season.ID, "Home")
	away := f.Team(season.ID, "Away")

	r := gin.New()
	RegisterRoutes(r, r, db, standingsRouter.NewService(db, logger), logger)

	body := fmt.Sprintf(`{"season_id":%d,"home_team_id":%d,"away_team_id":%d,
		"scheduled_at":"2025-09-06T10:00:00Z","week":1,"home_score":4,"away_score":1}`,
		season.ID, home.ID, away.ID)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/matches", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var rows []standingsModel.Standing
	require.NoError(t, db.Where("season_id = ?", season.ID).Order("points DESC").Find(&rows).Error)
	require.Len(t, rows, 2)
	assert.Equal(t, home.ID, rows[0].TeamID)
	assert.Equal(t, 3, rows[0].Points)
	assert.Equal(t, 1, rows[1].Losses)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/matches/weeks?season_id=%d", season.ID), nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"weeks":[1]}`, w.Body.String())
}
