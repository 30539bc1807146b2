package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/festy23/veterans_league/internal/standings/ranker"
)

const exportSheet = "Standings"

var exportHeader = []any{"Pos", "Team", "P", "W", "D", "L", "GF", "GA", "GD", "Pts"}

func (s *service) Export(ctx context.Context, seasonID int64) ([]byte, string, error) {
	season, err := s.season(ctx, seasonID)
	if err != nil {
		return nil, "", err
	}
	rows, err := s.ranked(ctx, season.ID, ranker.KeyNone, ranker.Desc)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warnw("failed to close workbook", "error", err)
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), exportSheet); err != nil {
		return nil, "", err
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return nil, "", err
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, "", err
		}
		team := r.TeamName
		if r.Excluded {
			team += " (excluded)"
		}
		values := []any{r.Position, team, r.Played, r.Wins, r.Draws, r.Losses,
			r.GoalsFor, r.GoalsAgainst, r.GoalDifference, r.Points}
		if err := f.SetSheetRow(exportSheet, cell, &values); err != nil {
			return nil, "", err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to write workbook: %w", err)
	}

	name := "standings-" + strings.NewReplacer("/", "-", " ", "_").Replace(season.Label) + ".xlsx"
	return buf.Bytes(), name, nil
}
