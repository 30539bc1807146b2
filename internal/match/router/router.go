// Package router provides match module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/veterans_league/internal/match/handler"
	"github.com/festy23/veterans_league/internal/match/repository"
	"github.com/festy23/veterans_league/internal/match/service"
)

// RegisterRoutes registers match module routes. Score writes rebuild the
// league table through standings.
func RegisterRoutes(public, admin gin.IRoutes, db *gorm.DB, standings service.StandingsRecomputer, logger *zap.SugaredLogger) {
	svc := service.New(repository.New(db, logger), standings, db, logger)
	h := handler.New(svc, logger)

	public.GET("/matches", h.List)
	public.GET("/matches/weeks", h.Weeks)
	public.GET("/matches/:id", h.Get)

	admin.POST("/matches", h.Create)
	admin.PUT("/matches/:id", h.Update)
	admin.DELETE("/matches/:id", h.Delete)
}
