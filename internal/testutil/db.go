// Package testutil provides shared fixtures for package tests.
package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	authModel "github.com/festy23/veterans_league/internal/auth/model"
	disciplineModel "github.com/festy23/veterans_league/internal/discipline/model"
	matchModel "github.com/festy23/veterans_league/internal/match/model"
	playerModel "github.com/festy23/veterans_league/internal/player/model"
	seasonModel "github.com/festy23/veterans_league/internal/season/model"
	standingsModel "github.com/festy23/veterans_league/internal/standings/model"
	teamModel "github.com/festy23/veterans_league/internal/team/model"
)

// NewDB returns an in-memory sqlite database with every league table.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// Every connection to :memory: opens a new database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&seasonModel.Season{},
		&teamModel.Team{},
		&playerModel.Player{},
		&matchModel.Match{},
		&standingsModel.Standing{},
		&disciplineModel.MatchEvent{},
		&disciplineModel.Suspension{},
		&disciplineModel.PunishmentType{},
		&disciplineModel.TeamPunishment{},
		&authModel.Admin{},
	))
	return db
}

// Fixture inserts rows directly for tests.
type Fixture struct {
	t  testing.TB
	db *gorm.DB
}

// NewFixture wraps db.
func NewFixture(t testing.TB, db *gorm.DB) *Fixture {
	return &Fixture{t: t, db: db}
}

// Season inserts a season.
func (f *Fixture) Season(label string, current bool) *seasonModel.Season {
	s := &seasonModel.Season{Label: label, IsCurrent: current}
	require.NoError(f.t, f.db.Create(s).Error)
	return s
}

// Team inserts a team.
func (f *Fixture) Team(seasonID int64, name string) *teamModel.Team {
	tm := &teamModel.Team{SeasonID: seasonID, Name: name}
	require.NoError(f.t, f.db.Create(tm).Error)
	return tm
}

// ExcludeTeam flags a team as excluded.
func (f *Fixture) ExcludeTeam(team *teamModel.Team) {
	team.Excluded = true
	require.NoError(f.t, f.db.Save(team).Error)
}

// Player inserts a player.
func (f *Fixture) Player(teamID int64, name string) *playerModel.Player {
	p := &playerModel.Player{TeamID: teamID, Name: name}
	require.NoError(f.t, f.db.Create(p).Error)
	return p
}

// Result inserts a played league match in week.
func (f *Fixture) Result(seasonID, homeID, awayID int64, week, home, away int) *matchModel.Match {
	m := &matchModel.Match{
		SeasonID:    seasonID,
		HomeTeamID:  homeID,
		AwayTeamID:  awayID,
		ScheduledAt: time.Date(2025, 9, 6, 10, 0, 0, 0, time.UTC).AddDate(0, 0, 7*(week-1)),
		HomeScore:   &home,
		AwayScore:   &away,
		Competition: matchModel.CompetitionLeague,
		Week:        &week,
	}
	require.NoError(f.t, f.db.Create(m).Error)
	return m
}

// Match inserts an arbitrary match.
func (f *Fixture) Match(m *matchModel.Match) *matchModel.Match {
	if m.Competition == "" {
		m.Competition = matchModel.CompetitionLeague
	}
	require.NoError(f.t, f.db.Create(m).Error)
	return m
}

// YellowCard records a yellow card.
func (f *Fixture) YellowCard(matchID, playerID int64, minute int) {
	f.Event(matchID, playerID, disciplineModel.EventYellowCard, minute)
}

// Event records a match event of any type.
func (f *Fixture) Event(matchID, playerID int64, eventType disciplineModel.EventType, minute int) {
	e := &disciplineModel.MatchEvent{
		MatchID:   matchID,
		PlayerID:  playerID,
		EventType: eventType,
		Minute:    minute,
	}
	require.NoError(f.t, f.db.Create(e).Error)
}

// Suspension records a suspension.
func (f *Fixture) Suspension(seasonID, playerID int64, active bool) *disciplineModel.Suspension {
	s := &disciplineModel.Suspension{
		SeasonID: seasonID,
		PlayerID: playerID,
		IssuedOn: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		Matches:  1,
		Active:   active,
	}
	require.NoError(f.t, f.db.Create(s).Error)
	return s
}

// Deduction records a team punishment of a type deducting points.
func (f *Fixture) Deduction(teamID int64, name string, points, quantity int) *disciplineModel.TeamPunishment {
	pt := &disciplineModel.PunishmentType{Name: name, PointsDeducted: points}
	require.NoError(f.t, f.db.Create(pt).Error)
	tp := &disciplineModel.TeamPunishment{
		TeamID:           teamID,
		PunishmentTypeID: pt.ID,
		IssuedOn:         time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
		Quantity:         quantity,
	}
	require.NoError(f.t, f.db.Create(tp).Error)
	return tp
}
