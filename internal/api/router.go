package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/showcasehub/showcase-system/internal/api/handler"
	"github.com/showcasehub/showcase-system/internal/api/middleware"
	"github.com/showcasehub/showcase-system/internal/core/service"
	"github.com/showcasehub/showcase-system/internal/infrastructure/config"
	"github.com/showcasehub/showcase-system/internal/infrastructure/db/jsonstore"
	"github.com/showcasehub/showcase-system/internal/infrastructure/db/redis"
	"github.com/showcasehub/showcase-system/internal/infrastructure/storage"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the rate limiter and readiness probe then skip Redis.
func NewRouter(cfg *config.Config, store *jsonstore.Store, uploads *storage.UploadStore, rdb *goredis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())

	// Per-instance registry so building a second router in the same process
	// does not collide on the request metrics. The app counters live in the
	// default registry and are merged in at the /metrics handler.
	promRegistry := prometheus.NewRegistry()
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "showcase",
		Registerer: promRegistry,
	}))

	// --- Dependencies ---
	userRepo := jsonstore.NewUserRepository(store)
	projectRepo := jsonstore.NewProjectRepository(store)
	codeRepo := jsonstore.NewCodeRepository(store)
	feedbackRepo := jsonstore.NewFeedbackRepository(store)
	rankRepo := jsonstore.NewRankRepository(store)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	economyService := service.NewEconomyService(userRepo, rankRepo, log)
	voteService := service.NewVoteService(projectRepo, log)
	projectService := service.NewProjectService(projectRepo, uploads, log)
	codeService := service.NewCodeService(codeRepo, log)
	feedbackService := service.NewFeedbackService(feedbackRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	economyHandler := handler.NewEconomyHandler(economyService)
	voteHandler := handler.NewVoteHandler(voteService)
	projectHandler := handler.NewProjectHandler(projectService, codeService)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)
	uploadHandler := handler.NewUploadHandler(uploads)

	auth := middleware.Auth(cfg.JWTSecret)

	var limiter middleware.Limiter
	if rdb != nil {
		limiter = redis.NewRateLimiter(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window)
	}
	rateLimit := middleware.RateLimit(limiter, log)

	// --- Public routes ---
	e.GET("/health-check", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(store.Dir(), rdb).Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{promRegistry, prometheus.DefaultGatherer},
	}))

	e.POST("/sign", authHandler.Sign)
	e.POST("/login", authHandler.Login)
	e.POST("/check-username", authHandler.CheckUsername)

	e.GET("/show-public", projectHandler.ListPublic)

	e.POST("/like-project", voteHandler.Like, rateLimit)
	e.POST("/unlike-project", voteHandler.Unlike, rateLimit)
	e.POST("/dislike-project", voteHandler.Dislike, rateLimit)
	e.POST("/undislike-project", voteHandler.Undislike, rateLimit)
	e.GET("/user-status", voteHandler.Status)

	e.GET("/feedback", feedbackHandler.List)
	e.POST("/submit-feedback", feedbackHandler.Submit, rateLimit)

	e.POST("/upload", uploadHandler.Upload, rateLimit)
	e.Static("/uploads", uploads.Dir())

	// --- Authenticated routes ---
	e.POST("/delete-user", authHandler.DeleteUser, auth)

	e.POST("/show-rank", economyHandler.ShowRank, auth)
	e.POST("/buy-rank", economyHandler.BuyRank, auth)
	e.GET("/check-rank", economyHandler.CheckRank, auth)
	e.POST("/buy-tokens", economyHandler.BuyTokens, auth)
	e.GET("/check-tokens", economyHandler.CheckTokens, auth)

	e.POST("/add-project", projectHandler.AddProject, auth)
	e.GET("/projects", projectHandler.ListOwn, auth)
	e.GET("/projects-mentored", projectHandler.ListMentored, auth)
	e.POST("/edit-project", projectHandler.EditProject, auth)
	e.POST("/delete-project", projectHandler.DeleteProject, auth)

	e.POST("/add-code", projectHandler.AddCode, auth)
	e.GET("/code", projectHandler.ListCode, auth)

	return e
}
