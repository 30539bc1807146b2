// Package handler provides HTTP handlers for player endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/veterans_league/internal/player/model"
	"github.com/festy23/veterans_league/internal/player/service"
	"github.com/festy23/veterans_league/internal/response"
)

// Handler handles HTTP requests for player endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new player handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// List handles GET /players?team_id=.
func (h *Handler) List(c *gin.Context) {
	teamID, ok := response.QueryID(c, "team_id", true)
	if !ok {
		return
	}
	players, err := h.service.ListByTeam(c.Request.Context(), teamID)
	if err != nil {
		h.logger.Errorw("error listing players", "error", err, "team_id", teamID)
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"players": players})
}

// Get handles GET /players/:id.
func (h *Handler) Get(c *gin.Context) {
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	player, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, "error getting player", err)
		return
	}
	c.JSON(http.StatusOK, player)
}

// Create handles POST /players.
func (h *Handler) Create(c *gin.Context) {
	var req model.PlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	player, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, "error creating player", err)
		return
	}
	c.JSON(http.StatusCreated, player)
}

// Update handles PUT /players/:id.
func (h *Handler) Update(c *gin.Context) {
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	var req model.PlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	player, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.writeError(c, "error updating player", err)
		return
	}
	c.JSON(http.StatusOK, player)
}

// Delete handles DELETE /players/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, "error deleting player", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) writeError(c *gin.Context, msg string, err error) {
	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		response.NotFound(c, "player not found")
	case errors.Is(err, model.ErrTeamNotFound):
		response.BadRequest(c, "team does not exist")
	case errors.Is(err, model.ErrInvalidName):
		response.BadRequest(c, "name is required")
	default:
		h.logger.Errorw(msg, "error", err)
		response.Internal(c)
	}
}
