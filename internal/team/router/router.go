// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/veterans_league/internal/team/handler"
	"github.com/festy23/veterans_league/internal/team/repository"
	"github.com/festy23/veterans_league/internal/team/service"
)

// RegisterRoutes registers team module routes.
func RegisterRoutes(public, admin gin.IRoutes, db *gorm.DB, standings service.StandingsRecomputer, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, standings, db, logger)
	h := handler.New(svc, logger)

	public.GET("/teams", h.List)
	public.GET("/teams/:id", h.Get)
	public.GET("/teams/:id/points-chart", h.PointsChart)

	admin.POST("/teams", h.Create)
	admin.PUT("/teams/:id", h.Update)
	admin.DELETE("/teams/:id", h.Delete)
}
