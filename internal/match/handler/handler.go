// Package handler provides HTTP handlers for match endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/veterans_league/internal/match/model"
	"github.com/festy23/veterans_league/internal/match/service"
	"github.com/festy23/veterans_league/internal/response"
)

// Handler handles HTTP requests for match endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new match handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// List handles GET /matches?season_id=&week=&competition=.
func (h *Handler) List(c *gin.Context) {
	seasonID, ok := response.QueryID(c, "season_id", true)
	if !ok {
		return
	}
	filter := model.ListFilter{
		SeasonID:    seasonID,
		Competition: model.Competition(c.Query("competition")),
	}
	if raw := c.Query("week"); raw != "" {
		week, err := strconv.Atoi(raw)
		if err != nil || week <= 0 {
			response.BadRequest(c, "week must be a positive integer")
			return
		}
		filter.Week = &week
	}

	matches, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, "error listing matches", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

// Weeks handles GET /matches/weeks?season_id=.
func (h *Handler) Weeks(c *gin.Context) {
	seasonID, ok := response.QueryID(c, "season_id", true)
	if !ok {
		return
	}
	weeks, err := h.service.Weeks(c.Request.Context(), seasonID)
	if err != nil {
		h.writeError(c, "error listing weeks", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"weeks": weeks})
}

// Get handles GET /matches/:id.
func (h *Handler) Get(c *gin.Context) {
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	match, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, "error getting match", err)
		return
	}
	c.JSON(http.StatusOK, match)
}

// Create handles POST /matches.
func (h *Handler) Create(c *gin.Context) {
	var req model.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	match, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, "error creating match", err)
		return
	}
	c.JSON(http.StatusCreated, match)
}

// Update handles PUT /matches/:id.
func (h *Handler) Update(c *gin.Context) {
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	var req model.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	match, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.writeError(c, "error updating match", err)
		return
	}
	c.JSON(http.StatusOK, match)
}

// Delete handles DELETE /matches/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, "error deleting match", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) writeError(c *gin.Context, msg string, err error) {
	switch {
	case errors.Is(err, model.ErrMatchNotFound):
		response.NotFound(c, "match not found")
	case errors.Is(err, model.ErrSameTeam),
		errors.Is(err, model.ErrInvalidCompetition),
		errors.Is(err, model.ErrPartialScore),
		errors.Is(err, model.ErrTeamNotInSeason):
		response.BadRequest(c, err.Error())
	default:
		h.logger.Errorw(msg, "error", err)
		response.Internal(c)
	}
}
