// Package handler provides HTTP handlers for statistics endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/veterans_league/internal/response"
	"github.com/festy23/veterans_league/internal/statistics/model"
	"github.com/festy23/veterans_league/internal/statistics/service"
)

// Handler handles HTTP requests for statistics endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new statistics handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetScorers handles GET /statistics/scorers?season_id= request.
func (h *Handler) GetScorers(c *gin.Context) {
	seasonID, ok := response.QueryID(c, "season_id", true)
	if !ok {
		return
	}

	resp, err := h.service.GetScorers(c.Request.Context(), seasonID)
	if err != nil {
		h.writeError(c, err, "error getting scorers")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetSeasonStatistics handles GET /statistics/season?season_id= request.
func (h *Handler) GetSeasonStatistics(c *gin.Context) {
	seasonID, ok := response.QueryID(c, "season_id", true)
	if !ok {
		return
	}

	resp, err := h.service.GetSeasonStatistics(c.Request.Context(), seasonID)
	if err != nil {
		h.writeError(c, err, "error getting season statistics")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) writeError(c *gin.Context, err error, msg string) {
	if errors.Is(err, model.ErrSeasonNotFound) {
		response.NotFound(c, "season not found")
		return
	}
	h.logger.Errorw(msg, "error", err)
	response.Internal(c)
}
