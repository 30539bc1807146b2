// Package router provides player module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/veterans_league/internal/player/handler"
	"github.com/festy23/veterans_league/internal/player/repository"
	"github.com/festy23/veterans_league/internal/player/service"
)

// RegisterRoutes registers player module routes.
func RegisterRoutes(public, admin gin.IRoutes, db *gorm.DB, logger *zap.SugaredLogger) {
	h := handler.New(service.New(repository.New(db, logger), logger), logger)

	public.GET("/players", h.List)
	public.GET("/players/:id", h.Get)

	admin.POST("/players", h.Create)
	admin.PUT("/players/:id", h.Update)
	admin.DELETE("/players/:id", h.Delete)
}
