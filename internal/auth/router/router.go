// Package router provides auth module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/veterans_league/internal/auth/handler"
	"github.com/festy23/veterans_league/internal/auth/service"
	"github.com/festy23/veterans_league/internal/config"
)

// RegisterRoutes registers session routes. svc is shared with the session
// middleware so it is built by the caller.
func RegisterRoutes(r gin.IRoutes, svc service.Service, cfg config.AuthConfig, logger *zap.SugaredLogger) {
	h := handler.New(svc, cfg, logger)

	r.POST("/auth/session", h.SignIn)
	r.GET("/auth/me", h.Me)
	r.POST("/auth/logout", h.Logout)
}
