// Package router provides discipline module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/veterans_league/internal/discipline/handler"
	"github.com/festy23/veterans_league/internal/discipline/repository"
	"github.com/festy23/veterans_league/internal/discipline/service"
)

// RegisterRoutes registers discipline module routes.
func RegisterRoutes(public, admin gin.IRoutes, db *gorm.DB, standings service.StandingsRecomputer, logger *zap.SugaredLogger) {
	svc := service.New(repository.New(db, logger), standings, db, logger)
	h := handler.New(svc, logger)

	public.GET("/discipline", h.Report)
	public.GET("/matches/:id/events", h.ListEvents)
	public.GET("/suspensions", h.ListSuspensions)
	public.GET("/punishment-types", h.ListPunishmentTypes)
	public.GET("/team-punishments", h.ListTeamPunishments)

	admin.POST("/matches/:id/events", h.CreateEvent)
	admin.DELETE("/events/:id", h.DeleteEvent)
	admin.POST("/suspensions", h.CreateSuspension)
	admin.PUT("/suspensions/:id", h.UpdateSuspension)
	admin.DELETE("/suspensions/:id", h.DeleteSuspension)
	admin.POST("/punishment-types", h.CreatePunishmentType)
	admin.POST("/team-punishments", h.CreateTeamPunishment)
	admin.DELETE("/team-punishments/:id", h.DeleteTeamPunishment)
}
