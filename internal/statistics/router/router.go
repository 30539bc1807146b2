// Package router provides statistics module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/veterans_league/internal/statistics/handler"
	"github.com/festy23/veterans_league/internal/statistics/repository"
	"github.com/festy23/veterans_league/internal/statistics/service"
)

// RegisterRoutes registers statistics module routes.
func RegisterRoutes(public gin.IRoutes, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	public.GET("/statistics/scorers", h.GetScorers)
	public.GET("/statistics/season", h.GetSeasonStatistics)
}
