package api

import (
	"context"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/loopservices/talent-platform/docs"
	"github.com/loopservices/talent-platform/internal/api/handler"
	"github.com/loopservices/talent-platform/internal/api/middleware"
	"github.com/loopservices/talent-platform/internal/core/domain"
	"github.com/loopservices/talent-platform/internal/core/service"
	"github.com/loopservices/talent-platform/internal/infrastructure/config"
	mongostore "github.com/loopservices/talent-platform/internal/infrastructure/db/mongo"
	redisinfra "github.com/loopservices/talent-platform/internal/infrastructure/db/redis"
	"github.com/loopservices/talent-platform/internal/infrastructure/queue"
	"github.com/loopservices/talent-platform/internal/infrastructure/storage"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The context bounds the lifetime of the audit trail workers.
func NewRouter(ctx context.Context, db *mongo.Database, rdb *redis.Client, objects *storage.MinioStore, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("loop"))

	// --- Dependencies ---
	authRepo := mongostore.NewAuthRepository(db)
	applicantRepo := mongostore.NewApplicantRepository(db)
	throttle := redisinfra.NewLoginThrottle(rdb, cfg.Login.MaxAttempts, cfg.Login.Window)
	authService := service.NewAuthService(authRepo, applicantRepo, throttle, cfg.JWTSecret, cfg.TokenTTL)
	applicantService := service.NewApplicantService(applicantRepo, objects, log)

	auditRepo := mongostore.NewAuditRepository(db)
	auditTrail := queue.NewDispatcher(0, auditRepo, log)
	auditTrail.Start(ctx)

	authHandler := handler.NewAuthHandler(authService)
	applicantHandler := handler.NewApplicantHandler(applicantService, auditTrail)
	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, authMiddleware)

	// --- Applicant routes ---
	applicants := e.Group("/applicants", authMiddleware)
	applicants.GET("/profile", applicantHandler.GetProfile, middleware.RBAC(domain.RoleApplicant))
	applicants.PUT("/profile", applicantHandler.UpdateProfile, middleware.RBAC(domain.RoleApplicant))
	applicants.POST("/upload", applicantHandler.Upload, middleware.RBAC(domain.RoleApplicant))
	applicants.POST("/submit", applicantHandler.Submit, middleware.RBAC(domain.RoleApplicant))
	applicants.GET("/admin/all", applicantHandler.ListAll, middleware.RBAC(domain.RoleAdmin))
	applicants.PUT("/admin/:id/review", applicantHandler.Review, middleware.RBAC(domain.RoleAdmin))
	applicants.GET("/admin/:id/history", applicantHandler.History, middleware.RBAC(domain.RoleAdmin))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb, objects)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
