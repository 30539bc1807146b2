// Package repository provides data access layer for the discipline module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/veterans_league/internal/database/dberr"
	"github.com/festy23/veterans_league/internal/discipline/model"
	"github.com/festy23/veterans_league/internal/discipline/risk"
)

// Repository defines the interface for discipline data access operations.
type Repository interface {
	// ListEvents returns the events of a match by minute.
	ListEvents(ctx context.Context, matchID int64) ([]model.MatchEvent, error)
	CreateEvent(ctx context.Context, event *model.MatchEvent) error
	DeleteEvent(ctx context.Context, id int64) error

	// MatchTeams returns the home and away team of a match.
	MatchTeams(ctx context.Context, matchID int64) (home, away int64, err error)

	// PlayerTeam returns the team of a player.
	PlayerTeam(ctx context.Context, playerID int64) (int64, error)

	// TeamSeason returns the season of a team.
	TeamSeason(ctx context.Context, teamID int64) (int64, error)

	SeasonExists(ctx context.Context, seasonID int64) (bool, error)

	ListSuspensions(ctx context.Context, filter model.SuspensionFilter) ([]model.SuspensionView, error)
	GetSuspension(ctx context.Context, id int64) (*model.Suspension, error)
	CreateSuspension(ctx context.Context, s *model.Suspension) error
	SaveSuspension(ctx context.Context, s *model.Suspension) error
	DeleteSuspension(ctx context.Context, id int64) error

	ListPunishmentTypes(ctx context.Context) ([]model.PunishmentType, error)
	GetPunishmentType(ctx context.Context, id int64) (*model.PunishmentType, error)
	CreatePunishmentType(ctx context.Context, pt *model.PunishmentType) error

	ListTeamPunishments(ctx context.Context, seasonID int64) ([]model.TeamPunishmentView, error)
	GetTeamPunishment(ctx context.Context, id int64) (*model.TeamPunishment, error)
	CreateTeamPunishment(ctx context.Context, tp *model.TeamPunishment) error
	DeleteTeamPunishment(ctx context.Context, id int64) error

	// SeasonPlayers returns every player registered with a team of the season.
	SeasonPlayers(ctx context.Context, seasonID int64) ([]risk.Player, error)

	// SeasonTeams returns the teams of the season ordered by name.
	SeasonTeams(ctx context.Context, seasonID int64) ([]risk.Team, error)

	// YellowCards returns the season's yellow cards in the order they were shown.
	YellowCards(ctx context.Context, seasonID int64) ([]risk.CardEvent, error)

	// SuspendedPlayers returns the ids of players with an active suspension.
	SuspendedPlayers(ctx context.Context, seasonID int64) ([]int64, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new discipline repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func (r *repository) ListEvents(ctx context.Context, matchID int64) ([]model.MatchEvent, error) {
	events := []model.MatchEvent{}
	err := r.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Order("minute ASC, id ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *repository) CreateEvent(ctx context.Context, event *model.MatchEvent) error {
	err := r.db.WithContext(ctx).Create(event).Error
	if dberr.IsForeignKey(err) {
		return model.ErrInvalidReference
	}
	return err
}

func (r *repository) DeleteEvent(ctx context.Context, id int64) error {
	return deleteByID(r.db.WithContext(ctx), &model.MatchEvent{}, id, model.ErrEventNotFound)
}

func (r *repository) MatchTeams(ctx context.Context, matchID int64) (int64, int64, error) {
	var row struct {
		HomeTeamID int64
		AwayTeamID int64
	}
	err := r.db.WithContext(ctx).
		Table("matches").
		Select("home_team_id, away_team_id").
		Where("id = ?", matchID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, 0, model.ErrInvalidReference
	}
	return row.HomeTeamID, row.AwayTeamID, err
}

func (r *repository) PlayerTeam(ctx context.Context, playerID int64) (int64, error) {
	return r.lookupID(ctx, "players", "team_id", playerID)
}

func (r *repository) TeamSeason(ctx context.Context, teamID int64) (int64, error) {
	return r.lookupID(ctx, "teams", "season_id", teamID)
}

func (r *repository) lookupID(ctx context.Context, table, column string, id int64) (int64, error) {
	var values []int64
	err := r.db.WithContext(ctx).
		Table(table).
		Where("id = ?", id).
		Limit(1).
		Pluck(column, &values).Error
	if err != nil {
		return 0, err
	}
	if len(values) == 0 {
		return 0, model.ErrInvalidReference
	}
	return values[0], nil
}

func (r *repository) SeasonExists(ctx context.Context, seasonID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("seasons").Where("id = ?", seasonID).Count(&count).Error
	return count > 0, err
}

func (r *repository) ListSuspensions(ctx context.Context, filter model.SuspensionFilter) ([]model.SuspensionView, error) {
	q := r.db.WithContext(ctx).
		Table("suspensions AS s").
		Select("s.*, p.name AS player_name, p.team_id, t.name AS team_name").
		Joins("JOIN players p ON p.id = s.player_id").
		Joins("JOIN teams t ON t.id = p.team_id").
		Where("s.season_id = ?", filter.SeasonID)
	if filter.Active != nil {
		q = q.Where("s.active = ?", *filter.Active)
	}

	views := []model.SuspensionView{}
	if err := q.Order("s.issued_on DESC, s.id DESC").Scan(&views).Error; err != nil {
		return nil, err
	}
	return views, nil
}

func (r *repository) GetSuspension(ctx context.Context, id int64) (*model.Suspension, error) {
	var s model.Suspension
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrSuspensionNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *repository) CreateSuspension(ctx context.Context, s *model.Suspension) error {
	err := r.db.WithContext(ctx).Create(s).Error
	if dberr.IsForeignKey(err) {
		return model.ErrInvalidReference
	}
	return err
}

func (r *repository) SaveSuspension(ctx context.Context, s *model.Suspension) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *repository) DeleteSuspension(ctx context.Context, id int64) error {
	return deleteByID(r.db.WithContext(ctx), &model.Suspension{}, id, model.ErrSuspensionNotFound)
}

func (r *repository) ListPunishmentTypes(ctx context.Context) ([]model.PunishmentType, error) {
	types := []model.PunishmentType{}
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (r *repository) GetPunishmentType(ctx context.Context, id int64) (*model.PunishmentType, error) {
	var pt model.PunishmentType
	if err := r.db.WithContext(ctx).First(&pt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrInvalidReference
		}
		return nil, err
	}
	return &pt, nil
}

func (r *repository) CreatePunishmentType(ctx context.Context, pt *model.PunishmentType) error {
	err := r.db.WithContext(ctx).Create(pt).Error
	if dberr.IsDuplicate(err) {
		return model.ErrPunishmentTypeExists
	}
	return err
}

func (r *repository) ListTeamPunishments(ctx context.Context, seasonID int64) ([]model.TeamPunishmentView, error) {
	views := []model.TeamPunishmentView{}
	err := r.db.WithContext(ctx).
		Table("team_punishments AS tp").
		Select("tp.*, t.name AS team_name, pt.name AS punishment_name, pt.points_deducted * tp.quantity AS points_deducted").
		Joins("JOIN teams t ON t.id = tp.team_id").
		Joins("JOIN punishment_types pt ON pt.id = tp.punishment_type_id").
		Where("t.season_id = ?", seasonID).
		Order("tp.issued_on DESC, tp.id DESC").
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (r *repository) GetTeamPunishment(ctx context.Context, id int64) (*model.TeamPunishment, error) {
	var tp model.TeamPunishment
	if err := r.db.WithContext(ctx).First(&tp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrPunishmentNotFound
		}
		return nil, err
	}
	return &tp, nil
}

func (r *repository) CreateTeamPunishment(ctx context.Context, tp *model.TeamPunishment) error {
	err := r.db.WithContext(ctx).Create(tp).Error
	if dberr.IsForeignKey(err) {
		return model.ErrInvalidReference
	}
	return err
}

func (r *repository) DeleteTeamPunishment(ctx context.Context, id int64) error {
	return deleteByID(r.db.WithContext(ctx), &model.TeamPunishment{}, id, model.ErrPunishmentNotFound)
}

func (r *repository) SeasonPlayers(ctx context.Context, seasonID int64) ([]risk.Player, error) {
	var players []risk.Player
	err := r.db.WithContext(ctx).
		Table("players AS p").
		Select("p.id, p.name, p.team_id").
		Joins("JOIN teams t ON t.id = p.team_id").
		Where("t.season_id = ?", seasonID).
		Order("p.id ASC").
		Scan(&players).Error
	return players, err
}

func (r *repository) SeasonTeams(ctx context.Context, seasonID int64) ([]risk.Team, error) {
	var teams []risk.Team
	err := r.db.WithContext(ctx).
		Table("teams").
		Select("id, name").
		Where("season_id = ?", seasonID).
		Order("name ASC").
		Scan(&teams).Error
	return teams, err
}

func (r *repository) YellowCards(ctx context.Context, seasonID int64) ([]risk.CardEvent, error) {
	var events []risk.CardEvent
	err := r.db.WithContext(ctx).
		Table("match_events AS e").
		Select("e.player_id, e.match_id, e.minute").
		Joins("JOIN matches m ON m.id = e.match_id").
		Where("m.season_id = ? AND e.event_type = ?", seasonID, model.EventYellowCard).
		Order("m.scheduled_at ASC, e.minute ASC, e.id ASC").
		Scan(&events).Error
	return events, err
}

func (r *repository) SuspendedPlayers(ctx context.Context, seasonID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&model.Suspension{}).
		Distinct("player_id").
		Where("season_id = ? AND active = ?", seasonID, true).
		Order("player_id ASC").
		Pluck("player_id", &ids).Error
	return ids, err
}

func deleteByID(db *gorm.DB, value any, id int64, notFound error) error {
	result := db.Delete(value, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound
	}
	return nil
}
