package main

import (
	"log"
	"time"

	"builtbydesign_go/config"
	"builtbydesign_go/db"
	"builtbydesign_go/handlers"
	"builtbydesign_go/middleware"
	"builtbydesign_go/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// The lead form limiter is configurable via environment
	services.LeadLimiter = services.NewSubmissionLimiter(cfg.RateLimitWindow, cfg.RateLimitMax)

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	// Static files
	e.Static("/static", "static")

	// Public pages
	e.GET("/", handlers.LandingHandler)
	e.GET("/thank-you", handlers.ThankYouHandler)
	e.GET("/privacy-policy", handlers.PrivacyPolicyHandler)
	e.GET("/terms-of-service", handlers.TermsOfServiceHandler)
	e.GET("/cookie-policy", handlers.CookiePolicyHandler)
	e.GET("/sitemap.xml", handlers.GetSitemapHandler)

	// Lead submission (the handler applies its own sliding-window limiter)
	e.POST("/leads", handlers.SubmitLeadHandler)

	// Consent endpoints
	e.GET("/api/consent", handlers.GetConsentHandler)
	e.POST("/api/consent", handlers.UpdateConsentHandler)

	// Click-tracking events
	e.POST("/api/events", handlers.TrackEventHandler, middleware.EventRateLimiter.Middleware())

	// Admin area
	e.GET("/admin/login", handlers.AdminLoginHandler)
	e.POST("/admin/login", handlers.AdminLoginPostHandler, middleware.LoginRateLimiter.Middleware())

	admin := e.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/leads", handlers.AdminLeadsHandler)
		admin.GET("/leads/export", handlers.AdminLeadsExportHandler)
		admin.POST("/logout", handlers.AdminLogoutHandler)
	}

	// Start background cleanup jobs (runs every hour)
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			if err := services.CleanupExpiredSessions(db.DB); err != nil {
				log.Printf("Error cleaning up expired sessions: %v", err)
			}
		}
	}()

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
