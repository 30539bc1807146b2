package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/festy23/veterans_league/internal/cup/model"
	matchModel "github.com/festy23/veterans_league/internal/match/model"
	"github.com/festy23/veterans_league/internal/testutil"
)

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testutil.NewDB(t)
	f := testutil.NewFixture(t, db)

	season := f.Season("2025/26", true)
	a := f.Team(season.ID, "A")
	b := f.Team(season.ID, "B")
	two, one := 2, 1
	f.Match(&matchModel.Match{SeasonID: season.ID, HomeTeamID: a.ID, AwayTeamID: b.ID,
		ScheduledAt: time.Date(2026, 1, 10, 10, 0, 0, 0, time.UTC), Competition: matchModel.CompetitionCup,
		Round: "Final", HomeScore: &two, AwayScore: &one})

	r := gin.New()
	RegisterRoutes(r, db, zaptest.NewLogger(t).Sugar())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/cup?season_id=%d", season.ID), nil))
	require.Equal(t, http.StatusOK, w.Code)

	var cup model.Cup
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cup))
	assert.Equal(t, model.FormatKnockout, cup.Format)
	require.Len(t, cup.Rounds, 1)
	assert.Equal(t, 2, *cup.Rounds[0].Matches[0].HomeScore)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cup?season_id=999", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
