// Package handler provides HTTP handlers for session endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/veterans_league/internal/auth/model"
	"github.com/festy23/veterans_league/internal/auth/service"
	"github.com/festy23/veterans_league/internal/config"
	"github.com/festy23/veterans_league/internal/response"
	"github.com/festy23/veterans_league/internal/session"
)

// Handler handles HTTP requests for session endpoints.
type Handler struct {
	service service.Service
	cfg     config.AuthConfig
	logger  *zap.SugaredLogger
}

// New creates a new auth handler instance.
func New(svc service.Service, cfg config.AuthConfig, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, cfg: cfg, logger: logger}
}

// SignIn handles POST /auth/session.
func (h *Handler) SignIn(c *gin.Context) {
	var req model.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "token is required")
		return
	}

	result, err := h.service.SignIn(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrUnauthenticated) {
			response.Error(c, response.CodeUnauthorized, "invalid identity token", http.StatusUnauthorized)
			return
		}
		h.logger.Errorw("error starting session", "error", err)
		response.Internal(c)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.CookieName, result.Token, int(h.cfg.SessionTTL.Seconds()), "/", "", h.cfg.SecureCookie, true)
	c.JSON(http.StatusOK, result)
}

// Me handles GET /auth/me.
func (h *Handler) Me(c *gin.Context) {
	sess := session.FromContext(c)
	if sess.Anonymous() {
		response.Error(c, response.CodeUnauthorized, "not signed in", http.StatusUnauthorized)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// Logout handles POST /auth/logout.
func (h *Handler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.CookieName, "", -1, "/", "", h.cfg.SecureCookie, true)
	c.Status(http.StatusNoContent)
}
