// Package handler provides HTTP handlers for standings endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/veterans_league/internal/response"
	"github.com/festy23/veterans_league/internal/standings/model"
	"github.com/festy23/veterans_league/internal/standings/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Handler handles HTTP requests for standings endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new standings handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Table handles GET /standings.
func (h *Handler) Table(c *gin.Context) {
	seasonID, ok := response.QueryID(c, "season_id", false)
	if !ok {
		return
	}
	table, err := h.service.Table(c.Request.Context(), seasonID, c.Query("sort"), c.Query("dir"))
	if err != nil {
		h.writeError(c, "error getting standings", err)
		return
	}
	c.JSON(http.StatusOK, table)
}

// Export handles GET /standings/export.
func (h *Handler) Export(c *gin.Context) {
	seasonID, ok := response.QueryID(c, "season_id", false)
	if !ok {
		return
	}
	data, filename, err := h.service.Export(c.Request.Context(), seasonID)
	if err != nil {
		h.writeError(c, "error exporting standings", err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}

// History handles GET /history.
func (h *Handler) History(c *gin.Context) {
	champions, err := h.service.History(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error getting history", "error", err)
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"champions": champions})
}

// Recompute handles POST /standings/recompute.
func (h *Handler) Recompute(c *gin.Context) {
	seasonID, ok := response.QueryID(c, "season_id", true)
	if !ok {
		return
	}
	if err := h.service.Recompute(c.Request.Context(), seasonID); err != nil {
		h.writeError(c, "error recomputing standings", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) writeError(c *gin.Context, msg string, err error) {
	switch {
	case errors.Is(err, model.ErrSeasonNotFound):
		response.NotFound(c, "season not found")
	case errors.Is(err, model.ErrInvalidSort):
		response.BadRequest(c, err.Error())
	default:
		h.logger.Errorw(msg, "error", err)
		response.Internal(c)
	}
}
