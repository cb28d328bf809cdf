package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sanmarcos/conecta/backend/internal/router"
	"github.com/sanmarcos/conecta/backend/internal/services"
	"github.com/sanmarcos/conecta/backend/internal/session"
	"github.com/sanmarcos/conecta/backend/internal/validators"
	"github.com/sanmarcos/conecta/backend/pkg/config"
	"github.com/sanmarcos/conecta/backend/pkg/gemini"
	"github.com/sanmarcos/conecta/backend/pkg/imageurl"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if cfg.IsProduction() && cfg.JWTSecret == "supersecretjwtkey" {
		log.Fatal("JWT_SECRET must be set in production")
	}

	// Initialize the chat assistant
	ctx := context.Background()
	assistant, err := gemini.NewAssistant(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini: %v", err)
	}

	// Every session gets its own seeded forum
	sessions := session.NewManager(
		session.Limits{IdleTimeout: cfg.SessionIdleTimeout, MaxSessions: cfg.MaxSessions},
		services.WithImageNormalizer(imageurl.New(cfg.BasePath)),
	)
	go sessions.Run(ctx, time.Minute)

	// Create Echo instance
	e := echo.New()

	// Validator
	e.Validator = validators.NewValidator()

	// Setup global middleware
	router.SetupMiddleware(e, cfg)

	// Setup routes and dependencies
	router.SetupRoutes(e, cfg, sessions, assistant)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
