// Package handler provides HTTP handlers for season endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/veterans_league/internal/response"
	"github.com/festy23/veterans_league/internal/season/model"
	"github.com/festy23/veterans_league/internal/season/service"
)

// Handler handles HTTP requests for season endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new season handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// List handles GET /seasons.
func (h *Handler) List(c *gin.Context) {
	seasons, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing seasons", "error", err)
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"seasons": seasons})
}

// Current handles GET /seasons/current.
func (h *Handler) Current(c *gin.Context) {
	season, err := h.service.Current(c.Request.Context())
	if err != nil {
		h.writeError(c, "error getting current season", err)
		return
	}
	c.JSON(http.StatusOK, season)
}

// Get handles GET /seasons/:id.
func (h *Handler) Get(c *gin.Context) {
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	season, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, "error getting season", err)
		return
	}
	c.JSON(http.StatusOK, season)
}

// Create handles POST /seasons.
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateSeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	season, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, "error creating season", err)
		return
	}
	c.JSON(http.StatusCreated, season)
}

// Update handles PUT /seasons/:id.
func (h *Handler) Update(c *gin.Context) {
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	var req model.UpdateSeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	season, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.writeError(c, "error updating season", err)
		return
	}
	c.JSON(http.StatusOK, season)
}

// Delete handles DELETE /seasons/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, "error deleting season", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) writeError(c *gin.Context, msg string, err error) {
	switch {
	case errors.Is(err, model.ErrSeasonNotFound):
		response.NotFound(c, "season not found")
	case errors.Is(err, model.ErrNoCurrentSeason):
		response.NotFound(c, "no current season")
	case errors.Is(err, model.ErrSeasonExists):
		response.Conflict(c, "season label already exists")
	case errors.Is(err, model.ErrInvalidLabel):
		response.BadRequest(c, "label is required")
	default:
		h.logger.Errorw(msg, "error", err)
		response.Internal(c)
	}
}
