// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/veterans_league/internal/response"
	"github.com/festy23/veterans_league/internal/team/model"
	"github.com/festy23/veterans_league/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// List handles GET /teams?season_id=.
func (h *Handler) List(c *gin.Context) {
	seasonID, ok := response.QueryID(c, "season_id", true)
	if !ok {
		return
	}
	teams, err := h.service.ListBySeason(c.Request.Context(), seasonID)
	if err != nil {
		h.logger.Errorw("error listing teams", "error", err, "season_id", seasonID)
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"teams": teams})
}

// Get handles GET /teams/:id.
func (h *Handler) Get(c *gin.Context) {
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	detail, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, "error getting team", err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// PointsChart handles GET /teams/:id/points-chart.
func (h *Handler) PointsChart(c *gin.Context) {
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	png, err := h.service.PointsChart(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, "error rendering points chart", err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// Create handles POST /teams.
func (h *Handler) Create(c *gin.Context) {
	var req model.TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	team, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, "error creating team", err)
		return
	}
	c.JSON(http.StatusCreated, team)
}

// Update handles PUT /teams/:id.
func (h *Handler) Update(c *gin.Context) {
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	var req model.TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	team, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.writeError(c, "error updating team", err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// Delete handles DELETE /teams/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, "error deleting team", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) writeError(c *gin.Context, msg string, err error) {
	switch {
	case errors.Is(err, model.ErrTeamNotFound):
		response.NotFound(c, "team not found")
	case errors.Is(err, model.ErrNoResults):
		response.NotFound(c, "team has no played league matches")
	case errors.Is(err, model.ErrSeasonNotFound):
		response.BadRequest(c, "season does not exist")
	case errors.Is(err, model.ErrInvalidTeamName):
		response.BadRequest(c, "name is required")
	case errors.Is(err, model.ErrTeamExists):
		response.Conflict(c, "team name already used in this season")
	default:
		h.logger.Errorw(msg, "error", err)
		response.Internal(c)
	}
}
