// Package handler provides HTTP handlers for cup endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/veterans_league/internal/cup/model"
	"github.com/festy23/veterans_league/internal/cup/service"
	"github.com/festy23/veterans_league/internal/response"
)

// Handler handles HTTP requests for cup endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new cup handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Get handles GET /cup?season_id=.
func (h *Handler) Get(c *gin.Context) {
	seasonID, ok := response.QueryID(c, "season_id", true)
	if !ok {
		return
	}
	cup, err := h.service.Cup(c.Request.Context(), seasonID)
	if err != nil {
		if errors.Is(err, model.ErrSeasonNotFound) {
			response.NotFound(c, "season not found")
			return
		}
		h.logger.Errorw("error building cup", "error", err, "season_id", seasonID)
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, cup)
}
