package router

import (
	"log"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sanmarcos/conecta/backend/internal/handlers"
	"github.com/sanmarcos/conecta/backend/internal/middleware"
	"github.com/sanmarcos/conecta/backend/internal/session"
	"github.com/sanmarcos/conecta/backend/pkg/config"
	"github.com/sanmarcos/conecta/backend/pkg/gemini"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo, cfg *config.Config) {
	e.Use(eMiddleware.RequestLogger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORSWithConfig(cfg.CORSConfig()))
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, cfg *config.Config, sessions *session.Manager, assistant *gemini.Assistant) {
	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Unprotected routes: starting a session ---
	public := e.Group("/api/v1")
	sessionHandler := handlers.NewSessionHandler(sessions, cfg.JWTSecret)
	sessionHandler.RegisterPublicRoutes(public)
	log.Println("Public session routes configured.")

	// --- Protected routes (require a session token) ---
	api := e.Group("/api/v1")
	api.Use(middleware.SessionAuthMiddleware(cfg.JWTSecret, sessions))
	log.Println("Session authentication middleware applied to /api/v1 group.")

	sessionHandler.RegisterSessionRoutes(api)
	log.Println("Session and auth routes configured.")

	// User profile routes
	userHandler := handlers.NewUserHandler()
	userHandler.RegisterProfileRoutes(api)
	log.Println("User profile routes configured.")

	// Categories, faculties and courses
	catalogHandler := handlers.NewCatalogHandler()
	catalogHandler.RegisterCatalogRoutes(api)
	log.Println("Catalog routes configured.")

	// Feed routes
	feedHandler := handlers.NewFeedHandler()
	feedHandler.RegisterFeedRoutes(api)
	log.Println("Feed routes configured.")

	// Post routes
	postHandler := handlers.NewPostHandler()
	postHandler.RegisterPostRoutes(api)
	log.Println("Post routes configured.")

	// Comment routes
	commentHandler := handlers.NewCommentHandler()
	commentHandler.RegisterCommentRoutes(api)
	log.Println("Comment routes configured.")

	// Vote routes
	voteHandler := handlers.NewVoteHandler()
	voteHandler.RegisterVoteRoutes(api)
	log.Println("Vote routes configured.")

	// Saved post routes
	savedPostHandler := handlers.NewSavedPostHandler()
	savedPostHandler.RegisterSavedPostRoutes(api)
	log.Println("Saved post routes configured.")

	// Report routes
	reportHandler := handlers.NewReportHandler()
	reportHandler.RegisterReportRoutes(api)
	log.Println("Report routes configured.")

	// Notification routes
	notificationHandler := handlers.NewNotificationHandler()
	notificationHandler.RegisterNotificationRoutes(api)
	log.Println("Notification routes configured.")

	// Chat assistant
	chatHandler := handlers.NewChatHandler(assistant)
	chatHandler.RegisterChatRoutes(api)
	log.Println("Chat routes configured.")

	// --- Moderation (admin only) ---
	admin := api.Group("/admin", middleware.RequireAdmin())
	adminHandler := handlers.NewAdminHandler()
	adminHandler.RegisterAdminRoutes(admin)
	log.Println("Admin routes configured.")

	log.Println("All routes configured.")
}
