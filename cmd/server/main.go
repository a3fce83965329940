package main

import (
	"log"
	"net/http"

	"profilehub/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"profilehub/internal/auth"
	"profilehub/internal/cache"
	"profilehub/internal/config"
	"profilehub/internal/db"
	"profilehub/internal/handler"
	"profilehub/internal/model"
	"profilehub/internal/render"
	"profilehub/internal/repository"
	"profilehub/internal/router"
	"profilehub/internal/service"
	"profilehub/internal/session"
)

// @title ProfileHub API
// @version 1.0
// @description Multi-tenant profile hosting with cookie-session auth and per-user subdomain pages.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	// Host-based rewrite must run before route matching.
	e.Pre(router.SubdomainRewrite(cfg.RootDomain))

	renderer, err := render.New()
	if err != nil {
		log.Fatalf("template init: %v", err)
	}
	e.Renderer = renderer

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	sessions := session.NewManager(jwtService, cfg.IsProduction())

	// Initialize services
	authService := service.NewAuthService(userRepo)
	profileService := service.NewProfileService(userRepo, cacheClient)
	seedService := service.NewSeedService(userRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, profileService, sessions)
	profileHandler := handler.NewProfileHandler(profileService)
	pageHandler := handler.NewPageHandler(profileService)
	seedHandler := handler.NewSeedHandler(seedService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		profileHandler,
		pageHandler,
		seedHandler,
	)

	if cfg.UsesDefaultJWTSecret() {
		log.Println("WARNING: using the default JWT secret; set JWT_SECRET before deploying")
	}
	log.Printf("root domain: %s (profiles served at <username>.%s)", cfg.RootDomain, cfg.RootDomain)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
