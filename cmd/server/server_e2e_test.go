//go:build e2e

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap/zaptest"
	postgresDriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	authRepository "github.com/festy23/veterans_league/internal/auth/repository"
	"github.com/festy23/veterans_league/internal/auth/token"
	cupModel "github.com/festy23/veterans_league/internal/cup/model"
	"github.com/festy23/veterans_league/internal/database/migrate"
	disciplineModel "github.com/festy23/veterans_league/internal/discipline/model"
	standingsModel "github.com/festy23/veterans_league/internal/standings/model"
)

const migrationsDir = "../../migrations"

// LeagueTestSuite runs the HTTP API against a real PostgreSQL schema.
type LeagueTestSuite struct {
	suite.Suite
	ctx         context.Context
	pgContainer *postgres.PostgresContainer
	db          *gorm.DB
	server      *httptest.Server
	adminToken  string
}

func TestLeague(t *testing.T) {
	suite.Run(t, new(LeagueTestSuite))
}

func (s *LeagueTestSuite) SetupSuite() {
	s.ctx = context.Background()

	pgContainer, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("league"),
		postgres.WithUsername("league"),
		postgres.WithPassword("league"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err, "failed to start PostgreSQL container")
	s.pgContainer = pgContainer

	connStr, err := pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := gorm.Open(postgresDriver.Open(connStr), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	s.Require().NoError(err)
	s.db = db
	s.Require().NoError(migrate.Up(db, migrationsDir))

	cfg := testConfig()
	log := zaptest.NewLogger(s.T()).Sugar()
	s.server = httptest.NewServer(newRouter(cfg, db, prometheus.NewRegistry(), log))

	s.Require().NoError(authRepository.New(db, log).AddAdmin(s.ctx, "comite@liga.es"))
	tokens := token.NewProvider(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.SessionTTL, clockwork.NewRealClock())
	s.adminToken, _, err = tokens.Issue("comite@liga.es")
	s.Require().NoError(err)
}

func (s *LeagueTestSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(s.ctx)
	}
}

func (s *LeagueTestSuite) SetupTest() {
	s.Require().NoError(s.db.Exec(`TRUNCATE seasons, punishment_types RESTART IDENTITY CASCADE`).Error)
}

// do sends an admin-authenticated JSON request and decodes a 2xx body into out.
func (s *LeagueTestSuite) do(method, path string, body, out any) int {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(s.ctx, method, s.server.URL+path, reader)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.adminToken)

	resp, err := s.server.Client().Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

type created struct {
	ID int64 `json:"id"`
}

func (s *LeagueTestSuite) create(path string, body any) int64 {
	var c created
	s.Require().Equal(http.StatusCreated, s.do(http.MethodPost, path, body, &c), "POST %s", path)
	return c.ID
}

func (s *LeagueTestSuite) match(seasonID, home, away int64, week, hs, as int) int64 {
	at := time.Date(2025, 9, 6, 10, 0, 0, 0, time.UTC).AddDate(0, 0, 7*(week-1))
	return s.create("/matches", map[string]any{
		"season_id": seasonID, "home_team_id": home, "away_team_id": away,
		"scheduled_at": at, "home_score": hs, "away_score": as, "week": week,
	})
}

func (s *LeagueTestSuite) TestSeasonLifecycle() {
	season := s.create("/seasons", map[string]any{"label": "2025/26", "is_current": true})
	teams := map[string]int64{}
	for _, name := range []string{"Norte", "Sur", "Este"} {
		teams[name] = s.create("/teams", map[string]any{"season_id": season, "name": name})
	}
	ramos := s.create("/players", map[string]any{"team_id": teams["Norte"], "name": "Ramos"})

	first := s.match(season, teams["Norte"], teams["Sur"], 1, 2, 0)
	s.match(season, teams["Este"], teams["Norte"], 2, 1, 1)
	s.match(season, teams["Sur"], teams["Este"], 3, 3, 0)

	var table standingsModel.Table
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, "/standings", nil, &table))
	s.Require().Len(table.Rows, 3)
	s.Equal("Norte", table.Rows[0].TeamName)
	s.Equal(4, table.Rows[0].Points)
	s.Equal("Sur", table.Rows[1].TeamName)

	for minute := 10; minute <= 30; minute += 10 {
		s.create(fmt.Sprintf("/matches/%d/events", first), map[string]any{
			"player_id": ramos, "event_type": "yellow_card", "minute": minute,
		})
	}
	var report disciplineModel.Report
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, fmt.Sprintf("/discipline?season_id=%d", season), nil, &report))
	s.Require().Len(report.Players, 1)
	s.Equal(3, report.Players[0].YellowCards)

	deduction := s.create("/punishment-types", map[string]any{"name": "Alineacion indebida", "points_deducted": 3})
	s.create("/team-punishments", map[string]any{
		"team_id": teams["Norte"], "punishment_type_id": deduction, "issued_on": time.Now().UTC(),
	})
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, "/standings?sort=points&dir=desc", nil, &table))
	s.Equal("Sur", table.Rows[0].TeamName)
	s.Equal(1, table.Rows[len(table.Rows)-1].Points)

	resp, err := s.server.Client().Get(fmt.Sprintf("%s/standings/export?season_id=%d", s.server.URL, season))
	s.Require().NoError(err)
	resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)
	s.True(strings.HasPrefix(resp.Header.Get("Content-Disposition"), "attachment"))

	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, fmt.Sprintf("/matches/%d", first), nil, nil))
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, "/standings", nil, &table))
	s.Equal("Sur", table.Rows[0].TeamName)
	s.Equal(3, table.Rows[0].Points)
}

func (s *LeagueTestSuite) TestCupAndHistory() {
	past := s.create("/seasons", map[string]any{"label": "2024/25", "has_group_cup": true})
	a := s.create("/teams", map[string]any{"season_id": past, "name": "Oeste"})
	b := s.create("/teams", map[string]any{"season_id": past, "name": "Centro"})
	s.match(past, a, b, 1, 0, 1)
	s.create("/matches", map[string]any{
		"season_id": past, "home_team_id": a, "away_team_id": b, "competition": "Cup",
		"cup_group": "A", "scheduled_at": time.Date(2025, 1, 4, 10, 0, 0, 0, time.UTC),
		"home_score": 2, "away_score": 2,
	})
	s.create("/seasons", map[string]any{"label": "2025/26", "is_current": true})

	var cup cupModel.Cup
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, fmt.Sprintf("/cup?season_id=%d", past), nil, &cup))
	s.Equal(cupModel.FormatGroups, cup.Format)
	s.Require().Len(cup.Groups, 1)
	s.Equal(1, cup.Groups[0].Table[0].Points)

	var history struct {
		Champions []standingsModel.Champion `json:"champions"`
	}
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, "/history", nil, &history))
	s.Require().Len(history.Champions, 1)
	s.Equal("Centro", history.Champions[0].TeamName)
	s.Equal("2024/25", history.Champions[0].SeasonLabel)
}
