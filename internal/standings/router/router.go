// Package router provides standings module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/veterans_league/internal/standings/handler"
	"github.com/festy23/veterans_league/internal/standings/repository"
	"github.com/festy23/veterans_league/internal/standings/service"
)

// NewService builds the standings service. Other modules use it to
// recompute tables after writes.
func NewService(db *gorm.DB, logger *zap.SugaredLogger) service.Service {
	return service.New(repository.New(db, logger), db, logger)
}

// RegisterRoutes registers standings module routes.
func RegisterRoutes(public, admin gin.IRoutes, svc service.Service, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	public.GET("/standings", h.Table)
	public.GET("/standings/export", h.Export)
	public.GET("/history", h.History)

	admin.POST("/standings/recompute", h.Recompute)
}
