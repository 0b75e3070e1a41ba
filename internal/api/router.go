package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lifebit/platform/internal/api/handler"
	"github.com/lifebit/platform/internal/api/middleware"
	"github.com/lifebit/platform/internal/core/ports"
	"github.com/lifebit/platform/internal/core/service"
	"github.com/lifebit/platform/internal/infrastructure/config"
	mongodb "github.com/lifebit/platform/internal/infrastructure/db/mongo"
	redisdb "github.com/lifebit/platform/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, mail ports.MailDispatcher, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("lifebit"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	residentRepo := mongodb.NewResidentRepository(db)
	resourceRepo := mongodb.NewResourceRepository(db)
	condoRepo := mongodb.NewCondoRepository(db)
	sessionStore := redisdb.NewSessionStore(rdb)
	ticketStore := redisdb.NewChangeTicketStore(rdb)

	authService := service.NewAuthService(userRepo, sessionStore, cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	accountService := service.NewAccountService(userRepo, sessionStore, ticketStore, mail, cfg.AppBaseURL, cfg.ChangeTicketTTL, log)
	residentService := service.NewResidentService(residentRepo)
	resourceService := service.NewResourceService(resourceRepo)
	setupService := service.NewSetupService(condoRepo)

	cookieSecure := cfg.Env == "production"
	authHandler := handler.NewAuthHandler(authService, accountService, cookieSecure, cfg.RefreshTokenTTL)
	accountHandler := handler.NewAccountHandler(accountService)
	residentHandler := handler.NewResidentHandler(residentService)
	resourceHandler := handler.NewResourceHandler(resourceService)
	setupHandler := handler.NewSetupHandler(setupService)

	authenticated := middleware.Auth(cfg.JWTSecret)

	// --- Public auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/refresh", authHandler.Refresh)
	e.POST("/auth/logout", authHandler.Logout)
	e.POST("/auth/verify-email-change", authHandler.VerifyEmailChange)
	e.PATCH("/auth/update-password", authHandler.UpdatePassword, authenticated)

	// --- Profile routes (authentication-only per the policy table) ---
	perfil := e.Group("/perfil", authenticated, middleware.RBAC(RolesFor("/perfil")...))
	perfil.GET("", accountHandler.Profile)
	perfil.PATCH("", accountHandler.UpdateProfile)
	perfil.POST("/verify-password", accountHandler.VerifyPassword)
	perfil.POST("/request-email-change", accountHandler.RequestEmailChange)
	perfil.POST("/google/desvincular", accountHandler.UnlinkGoogle)

	// --- Role-gated modules ---
	residentes := e.Group("/residentes", authenticated, middleware.RBAC(RolesFor("/residentes")...))
	residentes.POST("", residentHandler.Create)
	residentes.GET("", residentHandler.List)
	residentes.GET("/:id", residentHandler.Get)
	residentes.PUT("/:id", residentHandler.Update)
	residentes.DELETE("/:id", residentHandler.Delete)

	recursos := e.Group("/recursos", authenticated, middleware.RBAC(RolesFor("/recursos")...))
	recursos.POST("", resourceHandler.Create)
	recursos.GET("", resourceHandler.List)
	recursos.GET("/:id", resourceHandler.Get)
	recursos.PUT("/:id", resourceHandler.Update)
	recursos.DELETE("/:id", resourceHandler.Delete)

	setup := e.Group("/setup", authenticated, middleware.RBAC(RolesFor("/setup")...))
	setup.GET("", setupHandler.Status)
	setup.PUT("", setupHandler.Save)

	// --- Observability (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
