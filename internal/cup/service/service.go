// Package service builds cup brackets and group tables.
package service

import (
	"context"
	"slices"

	"go.uber.org/zap"

	"github.com/festy23/veterans_league/internal/cup/model"
	"github.com/festy23/veterans_league/internal/cup/repository"
	"github.com/festy23/veterans_league/internal/standings/aggregate"
	"github.com/festy23/veterans_league/internal/standings/ranker"
)

const unnamedRound = "Round"

// Service defines the interface for cup business logic operations.
type Service interface {
	// Cup returns the season's cup. Group-stage seasons get ranked group
	// tables; matches outside any group form knockout rounds ordered by
	// their first match date.
	Cup(ctx context.Context, seasonID int64) (*model.Cup, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new cup service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) Cup(ctx context.Context, seasonID int64) (*model.Cup, error) {
	grouped, err := s.repo.HasGroupCup(ctx, seasonID)
	if err != nil {
		return nil, err
	}
	matches, err := s.repo.Matches(ctx, seasonID)
	if err != nil {
		return nil, err
	}

	cup := &model.Cup{
		SeasonID: seasonID,
		Format:   model.FormatKnockout,
		Groups:   []model.Group{},
		Rounds:   []model.Round{},
		Supercup: []model.CupMatch{},
	}
	if grouped {
		cup.Format = model.FormatGroups
	}

	var knockout []model.CupMatch
	groups := make(map[string]*model.Group)
	var groupOrder []string
	for _, m := range matches {
		switch {
		case m.Competition == "Supercup":
			cup.Supercup = append(cup.Supercup, m)
		case grouped && m.CupGroup != "":
			g, ok := groups[m.CupGroup]
			if !ok {
				g = &model.Group{Name: m.CupGroup}
				groups[m.CupGroup] = g
				groupOrder = append(groupOrder, m.CupGroup)
			}
			g.Matches = append(g.Matches, m)
		default:
			knockout = append(knockout, m)
		}
	}

	slices.Sort(groupOrder)
	for _, name := range groupOrder {
		g := groups[name]
		g.Table = groupTable(g.Matches)
		cup.Groups = append(cup.Groups, *g)
	}
	cup.Rounds = rounds(knockout)

	return cup, nil
}

// groupTable ranks the teams appearing in a group's matches with the
// default league ordering.
func groupTable(matches []model.CupMatch) []model.GroupRow {
	names := make(map[int64]string)
	var teams []aggregate.Team
	var results []aggregate.Result
	add := func(id int64, name string, excluded bool) {
		if _, ok := names[id]; !ok {
			names[id] = name
			teams = append(teams, aggregate.Team{ID: id, Excluded: excluded})
		}
	}
	for _, m := range matches {
		add(m.HomeTeamID, m.HomeTeamName, m.HomeTeamExcluded)
		add(m.AwayTeamID, m.AwayTeamName, m.AwayTeamExcluded)
		if m.Played() {
			results = append(results, aggregate.Result{
				HomeTeamID: m.HomeTeamID,
				AwayTeamID: m.AwayTeamID,
				HomeScore:  *m.HomeScore,
				AwayScore:  *m.AwayScore,
			})
		}
	}

	built := aggregate.Build(teams, results, nil)
	rows := make([]model.GroupRow, len(built))
	for i, b := range built {
		rows[i] = model.GroupRow{
			TeamID:         b.TeamID,
			TeamName:       names[b.TeamID],
			Played:         b.Played,
			Wins:           b.Wins,
			Draws:          b.Draws,
			Losses:         b.Losses,
			GoalsFor:       b.GoalsFor,
			GoalsAgainst:   b.GoalsAgainst,
			GoalDifference: b.GoalsFor - b.GoalsAgainst,
			Points:         b.Points,
			Excluded:       b.Excluded,
		}
	}

	ranker.Rank(rows, ranker.KeyNone, ranker.Desc)
	for i := range rows {
		rows[i].Position = i + 1
	}
	return rows
}

// rounds groups date-ordered matches by round name. A round takes the
// position of its earliest match.
func rounds(matches []model.CupMatch) []model.Round {
	out := []model.Round{}
	index := make(map[string]int)
	for _, m := range matches {
		name := m.Round
		if name == "" {
			name = unnamedRound
		}
		i, ok := index[name]
		if !ok {
			i = len(out)
			index[name] = i
			out = append(out, model.Round{Name: name})
		}
		out[i].Matches = append(out[i].Matches, m)
	}
	return out
}
