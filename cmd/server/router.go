package main

import (
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	authRepository "github.com/festy23/veterans_league/internal/auth/repository"
	authRouter "github.com/festy23/veterans_league/internal/auth/router"
	authService "github.com/festy23/veterans_league/internal/auth/service"
	"github.com/festy23/veterans_league/internal/auth/token"
	appConfig "github.com/festy23/veterans_league/internal/config"
	cupRouter "github.com/festy23/veterans_league/internal/cup/router"
	disciplineRouter "github.com/festy23/veterans_league/internal/discipline/router"
	"github.com/festy23/veterans_league/internal/health"
	matchRouter "github.com/festy23/veterans_league/internal/match/router"
	"github.com/festy23/veterans_league/internal/middleware"
	playerRouter "github.com/festy23/veterans_league/internal/player/router"
	seasonRouter "github.com/festy23/veterans_league/internal/season/router"
	standingsRouter "github.com/festy23/veterans_league/internal/standings/router"
	statisticsRouter "github.com/festy23/veterans_league/internal/statistics/router"
	teamRouter "github.com/festy23/veterans_league/internal/team/router"
)

// newRouter assembles the HTTP API. Reads are public; writes sit behind
// RequireAdmin and the per-IP rate limiter.
func newRouter(cfg appConfig.Config, db *gorm.DB, reg *prometheus.Registry, logger *zap.SugaredLogger) *gin.Engine {
	r := gin.New()

	tokens := token.NewProvider(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.SessionTTL, clockwork.NewRealClock())
	auth := authService.New(authRepository.New(db, logger), tokens, logger)

	r.Use(
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.NewMetrics(reg).Handler(),
		middleware.CORS(cfg.CORS.AllowedOrigins),
		middleware.Session(auth, cfg.Auth.CookieName, logger),
	)

	r.GET("/health", health.New(db, logger).Check)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	limiter := middleware.NewIPRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	admin := r.Group("/", middleware.RequireAdmin(), middleware.RateLimit(limiter))

	authRouter.RegisterRoutes(r.Group("/", middleware.RateLimit(limiter)), auth, cfg.Auth, logger)

	standings := standingsRouter.NewService(db, logger)
	seasonRouter.RegisterRoutes(r, admin, db, logger)
	teamRouter.RegisterRoutes(r, admin, db, standings, logger)
	playerRouter.RegisterRoutes(r, admin, db, logger)
	matchRouter.RegisterRoutes(r, admin, db, standings, logger)
	standingsRouter.RegisterRoutes(r, admin, standings, logger)
	disciplineRouter.RegisterRoutes(r, admin, db, standings, logger)
	cupRouter.RegisterRoutes(r, db, logger)
	statisticsRouter.RegisterRoutes(r, db, logger)

	return r
}
