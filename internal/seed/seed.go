// Package seed loads an initial league (admins, seasons, teams, players and
// punishment types) from a YAML document.
package seed

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authModel "github.com/festy23/veterans_league/internal/auth/model"
	"github.com/festy23/veterans_league/internal/auth/token"
	disciplineModel "github.com/festy23/veterans_league/internal/discipline/model"
	playerModel "github.com/festy23/veterans_league/internal/player/model"
	seasonModel "github.com/festy23/veterans_league/internal/season/model"
	teamModel "github.com/festy23/veterans_league/internal/team/model"
)

// File is the seed document.
type File struct {
	Admins          []string         `yaml:"admins"`
	PunishmentTypes []PunishmentType `yaml:"punishment_types"`
	Seasons         []Season         `yaml:"seasons"`
}

// PunishmentType is a seeded punishment type.
type PunishmentType struct {
	Name           string `yaml:"name"`
	PointsDeducted int    `yaml:"points_deducted"`
}

// Season is a seeded season with its teams.
type Season struct {
	Label       string `yaml:"label"`
	Current     bool   `yaml:"current"`
	HasGroupCup bool   `yaml:"has_group_cup"`
	Teams       []Team `yaml:"teams"`
}

// Team is a seeded team with its roster.
type Team struct {
	Name    string   `yaml:"name"`
	Stadium string   `yaml:"stadium"`
	HomeKit string   `yaml:"home_kit"`
	AwayKit string   `yaml:"away_kit"`
	Players []string `yaml:"players"`
}

// Summary counts the rows created by a load.
type Summary struct {
	Admins          int
	PunishmentTypes int
	Seasons         int
	Teams           int
	Players         int
}

// Parse decodes and validates a seed document.
func Parse(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) validate() error {
	current := 0
	for i, s := range f.Seasons {
		if strings.TrimSpace(s.Label) == "" {
			return fmt.Errorf("season %d: label is required", i+1)
		}
		if s.Current {
			current++
		}
		seen := make(map[string]bool)
		for _, t := range s.Teams {
			name := strings.TrimSpace(t.Name)
			if name == "" {
				return fmt.Errorf("season %q: team name is required", s.Label)
			}
			if seen[name] {
				return fmt.Errorf("season %q: duplicate team %q", s.Label, name)
			}
			seen[name] = true
		}
	}
	if current > 1 {
		return fmt.Errorf("at most one season can be current, got %d", current)
	}
	for _, p := range f.PunishmentTypes {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("punishment type name is required")
		}
		if p.PointsDeducted < 0 {
			return fmt.Errorf("punishment type %q: points_deducted must not be negative", p.Name)
		}
	}
	return nil
}

// LoadFile parses path and loads it into db.
func LoadFile(ctx context.Context, db *gorm.DB, path string, logger *zap.SugaredLogger) (Summary, error) {
	fh, err := os.Open(path)
	if err != nil {
		return Summary{}, fmt.Errorf("open seed file: %w", err)
	}
	defer fh.Close()

	f, err := Parse(fh)
	if err != nil {
		return Summary{}, err
	}
	return Load(ctx, db, f, logger)
}

// Load inserts the document in one transaction. Admins and punishment types
// that already exist are skipped; seasons are always created.
func Load(ctx context.Context, db *gorm.DB, f *File, logger *zap.SugaredLogger) (Summary, error) {
	var sum Summary
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, email := range f.Admins {
			email = token.NormalizeEmail(email)
			if email == "" {
				continue
			}
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&authModel.Admin{Email: email})
			if res.Error != nil {
				return fmt.Errorf("admin %s: %w", email, res.Error)
			}
			sum.Admins += int(res.RowsAffected)
		}

		for _, p := range f.PunishmentTypes {
			pt := &disciplineModel.PunishmentType{Name: strings.TrimSpace(p.Name), PointsDeducted: p.PointsDeducted}
			res := tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).Create(pt)
			if res.Error != nil {
				return fmt.Errorf("punishment type %s: %w", p.Name, res.Error)
			}
			sum.PunishmentTypes += int(res.RowsAffected)
		}

		for _, s := range f.Seasons {
			if s.Current {
				if err := tx.Model(&seasonModel.Season{}).Where("is_current = ?", true).
					Update("is_current", false).Error; err != nil {
					return err
				}
			}
			season := &seasonModel.Season{Label: strings.TrimSpace(s.Label), IsCurrent: s.Current, HasGroupCup: s.HasGroupCup}
			if err := tx.Create(season).Error; err != nil {
				return fmt.Errorf("season %s: %w", s.Label, err)
			}
			sum.Seasons++

			for _, t := range s.Teams {
				team := &teamModel.Team{
					SeasonID: season.ID,
					Name:     strings.TrimSpace(t.Name),
					Stadium:  t.Stadium,
					HomeKit:  t.HomeKit,
					AwayKit:  t.AwayKit,
				}
				if err := tx.Create(team).Error; err != nil {
					return fmt.Errorf("team %s: %w", t.Name, err)
				}
				sum.Teams++

				for _, name := range t.Players {
					name = strings.TrimSpace(name)
					if name == "" {
						continue
					}
					if err := tx.Create(&playerModel.Player{TeamID: team.ID, Name: name}).Error; err != nil {
						return fmt.Errorf("player %s: %w", name, err)
					}
					sum.Players++
				}
			}
		}
		return nil
	})
	if err != nil {
		logger.Errorw("seed failed", "error", err)
		return Summary{}, err
	}

	logger.Infow("seed loaded",
		"admins", sum.Admins,
		"punishment_types", sum.PunishmentTypes,
		"seasons", sum.Seasons,
		"teams", sum.Teams,
		"players", sum.Players,
	)
	return sum, nil
}
