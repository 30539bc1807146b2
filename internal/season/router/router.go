// Package router provides season module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/veterans_league/internal/season/handler"
	"github.com/festy23/veterans_league/internal/season/repository"
	"github.com/festy23/veterans_league/internal/season/service"
)

// RegisterRoutes registers season module routes. Writes go on admin.
func RegisterRoutes(public, admin gin.IRoutes, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, db, logger)
	h := handler.New(svc, logger)

	public.GET("/seasons", h.List)
	public.GET("/seasons/current", h.Current)
	public.GET("/seasons/:id", h.Get)

	admin.POST("/seasons", h.Create)
	admin.PUT("/seasons/:id", h.Update)
	admin.DELETE("/seasons/:id", h.Delete)
}
