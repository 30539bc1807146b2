// Package aggregate builds league table rows from played matches.
package aggregate

import "github.com/festy23/veterans_league/internal/standings/ranker"

// Points awarded per result.
const (
	PointsWin  = 3
	PointsDraw = 1
	PointsLoss = 0
)

// Team is a participant of the table.
type Team struct {
	ID       int64
	Excluded bool
}

// Result is a played match.
type Result struct {
	HomeTeamID int64
	AwayTeamID int64
	HomeScore  int
	AwayScore  int
}

// Deduction removes points from a team.
type Deduction struct {
	TeamID int64
	Points int
}

// Row is one team's aggregated record.
type Row struct {
	TeamID       int64
	Played       int
	Wins         int
	Draws        int
	Losses       int
	GoalsFor     int
	GoalsAgainst int
	Points       int
	Excluded     bool
}

// RankStats implements ranker.Ranked.
func (r Row) RankStats() ranker.Stats {
	return ranker.Stats{
		Points:       r.Points,
		GoalsFor:     r.GoalsFor,
		GoalsAgainst: r.GoalsAgainst,
		Played:       r.Played,
		Wins:         r.Wins,
		Draws:        r.Draws,
		Losses:       r.Losses,
		Excluded:     r.Excluded,
	}
}

// Build returns one row per team in input order. Results and deductions for
// teams not in teams are ignored.
func Build(teams []Team, results []Result, deductions []Deduction) []Row {
	rows := make([]Row, len(teams))
	index := make(map[int64]*Row, len(teams))
	for i, t := range teams {
		rows[i] = Row{TeamID: t.ID, Excluded: t.Excluded}
		index[t.ID] = &rows[i]
	}

	for _, res := range results {
		home, away := index[res.HomeTeamID], index[res.AwayTeamID]
		if home == nil || away == nil {
			continue
		}
		home.record(res.HomeScore, res.AwayScore)
		away.record(res.AwayScore, res.HomeScore)
	}

	for _, d := range deductions {
		if r := index[d.TeamID]; r != nil {
			r.Points -= d.Points
		}
	}

	return rows
}

func (r *Row) record(scored, conceded int) {
	r.Played++
	r.GoalsFor += scored
	r.GoalsAgainst += conceded
	switch {
	case scored > conceded:
		r.Wins++
		r.Points += PointsWin
	case scored == conceded:
		r.Draws++
		r.Points += PointsDraw
	default:
		r.Losses++
		r.Points += PointsLoss
	}
}
