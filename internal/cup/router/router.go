// Package router provides cup module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/veterans_league/internal/cup/handler"
	"github.com/festy23/veterans_league/internal/cup/repository"
	"github.com/festy23/veterans_league/internal/cup/service"
)

// RegisterRoutes registers cup module routes. The cup is read-only; its
// matches are written through the match module.
func RegisterRoutes(public gin.IRoutes, db *gorm.DB, logger *zap.SugaredLogger) {
	h := handler.New(service.New(repository.New(db, logger), logger), logger)
	public.GET("/cup", h.Get)
}
