package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/careermap/careermap-api/docs"
	"github.com/careermap/careermap-api/internal/api/handler"
	"github.com/careermap/careermap-api/internal/api/middleware"
	"github.com/careermap/careermap-api/internal/auth"
	"github.com/careermap/careermap-api/internal/core/ports"
	"github.com/careermap/careermap-api/internal/core/service"
	mongodb "github.com/careermap/careermap-api/internal/infrastructure/db/mongo"
	redisdb "github.com/careermap/careermap-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	codec *auth.TokenCodec,
	activityRecorder ports.ActivityRecorder,
	activityService ports.ActivityService,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("careermap"))

	resolver := auth.NewResolver(codec)
	e.Use(middleware.Identity(resolver))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	companyRepo := mongodb.NewCompanyRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	publicCache := redisdb.NewPublicListingCache(rdb, log)

	authService := service.NewAuthService(userRepo, codec, activityRecorder, log)
	companyService := service.NewCompanyService(companyRepo, commentRepo, userRepo, publicCache, activityRecorder, log)
	commentService := service.NewCommentService(commentRepo, companyRepo, userRepo, activityRecorder, log)
	adminService := service.NewAdminService(userRepo, companyRepo, commentRepo, activityRecorder, log)

	authHandler := handler.NewAuthHandler(authService)
	companyHandler := handler.NewCompanyHandler(companyService)
	commentHandler := handler.NewCommentHandler(commentService)
	adminHandler := handler.NewAdminHandler(adminService, activityService)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, middleware.RequireAuth())

	// --- Company routes (list/get are public-aware, mutations need auth) ---
	v1 := e.Group("/v1")
	v1.GET("/companies", companyHandler.List)
	v1.POST("/companies", companyHandler.Create, middleware.RequireAuth())
	v1.GET("/companies/:id", companyHandler.Get)
	v1.PATCH("/companies/:id", companyHandler.Update, middleware.RequireAuth())
	v1.DELETE("/companies/:id", companyHandler.Delete, middleware.RequireAuth())
	v1.GET("/companies/:id/comments", commentHandler.List)
	v1.POST("/companies/:id/comments", commentHandler.Create, middleware.RequireAuth())

	// --- Admin panel ---
	admin := e.Group("/admin", middleware.AdminOnly())
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/users/:id", adminHandler.GetUser)
	admin.PATCH("/users/:id", adminHandler.UpdateUser)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.GET("/activity", adminHandler.Activity)

	// --- Health probes and operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
