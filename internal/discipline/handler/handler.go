// Package handler provides HTTP handlers for discipline endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/veterans_league/internal/discipline/model"
	"github.com/festy23/veterans_league/internal/discipline/service"
	"github.com/festy23/veterans_league/internal/response"
)

// Handler handles HTTP requests for discipline endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new discipline handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Report handles GET /discipline?season_id=.
func (h *Handler) Report(c *gin.Context) {
	seasonID, ok := response.QueryID(c, "season_id", true)
	if !ok {
		return
	}
	report, err := h.service.Report(c.Request.Context(), seasonID)
	if err != nil {
		h.writeError(c, "error building discipline report", err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// ListEvents handles GET /matches/:id/events.
func (h *Handler) ListEvents(c *gin.Context) {
	matchID, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	events, err := h.service.ListEvents(c.Request.Context(), matchID)
	if err != nil {
		h.writeError(c, "error listing match events", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// CreateEvent handles POST /matches/:id/events.
func (h *Handler) CreateEvent(c *gin.Context) {
	matchID, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	var req model.MatchEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	event, err := h.service.CreateEvent(c.Request.Context(), matchID, &req)
	if err != nil {
		h.writeError(c, "error creating match event", err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

// DeleteEvent handles DELETE /events/:id.
func (h *Handler) DeleteEvent(c *gin.Context) {
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteEvent(c.Request.Context(), id); err != nil {
		h.writeError(c, "error deleting match event", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListSuspensions handles GET /suspensions?season_id=&active=.
func (h *Handler) ListSuspensions(c *gin.Context) {
	seasonID, ok := response.QueryID(c, "season_id", true)
	if !ok {
		return
	}
	filter := model.SuspensionFilter{SeasonID: seasonID}
	if raw := c.Query("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			response.BadRequest(c, "active must be a boolean")
			return
		}
		filter.Active = &active
	}

	suspensions, err := h.service.ListSuspensions(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, "error listing suspensions", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suspensions": suspensions})
}

// CreateSuspension handles POST /suspensions.
func (h *Handler) CreateSuspension(c *gin.Context) {
	var req model.SuspensionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	suspension, err := h.service.CreateSuspension(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, "error creating suspension", err)
		return
	}
	c.JSON(http.StatusCreated, suspension)
}

// UpdateSuspension handles PUT /suspensions/:id.
func (h *Handler) UpdateSuspension(c *gin.Context) {
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	var req model.UpdateSuspensionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	suspension, err := h.service.UpdateSuspension(c.Request.Context(), id, &req)
	if err != nil {
		h.writeError(c, "error updating suspension", err)
		return
	}
	c.JSON(http.StatusOK, suspension)
}

// DeleteSuspension handles DELETE /suspensions/:id.
func (h *Handler) DeleteSuspension(c *gin.Context) {
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteSuspension(c.Request.Context(), id); err != nil {
		h.writeError(c, "error deleting suspension", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListPunishmentTypes handles GET /punishment-types.
func (h *Handler) ListPunishmentTypes(c *gin.Context) {
	types, err := h.service.ListPunishmentTypes(c.Request.Context())
	if err != nil {
		h.writeError(c, "error listing punishment types", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"punishment_types": types})
}

// CreatePunishmentType handles POST /punishment-types.
func (h *Handler) CreatePunishmentType(c *gin.Context) {
	var req model.PunishmentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	pt, err := h.service.CreatePunishmentType(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, "error creating punishment type", err)
		return
	}
	c.JSON(http.StatusCreated, pt)
}

// ListTeamPunishments handles GET /team-punishments?season_id=.
func (h *Handler) ListTeamPunishments(c *gin.Context) {
	seasonID, ok := response.QueryID(c, "season_id", true)
	if !ok {
		return
	}
	punishments, err := h.service.ListTeamPunishments(c.Request.Context(), seasonID)
	if err != nil {
		h.writeError(c, "error listing team punishments", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"team_punishments": punishments})
}

// CreateTeamPunishment handles POST /team-punishments.
func (h *Handler) CreateTeamPunishment(c *gin.Context) {
	var req model.TeamPunishmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	tp, err := h.service.CreateTeamPunishment(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, "error creating team punishment", err)
		return
	}
	c.JSON(http.StatusCreated, tp)
}

// DeleteTeamPunishment handles DELETE /team-punishments/:id.
func (h *Handler) DeleteTeamPunishment(c *gin.Context) {
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteTeamPunishment(c.Request.Context(), id); err != nil {
		h.writeError(c, "error deleting team punishment", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) writeError(c *gin.Context, msg string, err error) {
	switch {
	case errors.Is(err, model.ErrEventNotFound),
		errors.Is(err, model.ErrSuspensionNotFound),
		errors.Is(err, model.ErrPunishmentNotFound),
		errors.Is(err, model.ErrSeasonNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, model.ErrPunishmentTypeExists):
		response.Conflict(c, err.Error())
	case errors.Is(err, model.ErrInvalidEventType),
		errors.Is(err, model.ErrInvalidReference),
		errors.Is(err, model.ErrPlayerNotInMatch):
		response.BadRequest(c, err.Error())
	default:
		h.logger.Errorw(msg, "error", err)
		response.Internal(c)
	}
}
