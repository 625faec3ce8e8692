package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"laptop-inventory-api/internal/config"
	"laptop-inventory-api/internal/database"
	"laptop-inventory-api/internal/handler"
	"laptop-inventory-api/internal/middleware"
	"laptop-inventory-api/internal/notification"
	"laptop-inventory-api/internal/repository"
	"laptop-inventory-api/internal/router"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env when present; environment variables win either way
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env file")
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Initialize repository
	repo := repository.NewAssetRepository(db)

	// Registration webhook is optional; leave it nil when unconfigured
	var notifier notification.Notifier
	if cfg.Notifier.URL != "" {
		notifier = notification.NewNotifierWithConfig(notification.Config{
			URL:            cfg.Notifier.URL,
			Timeout:        cfg.Notifier.Timeout,
			RetryAttempts:  cfg.Notifier.RetryAttempts,
			RetryDelay:     cfg.Notifier.RetryDelay,
			MaxPayloadSize: cfg.Notifier.MaxPayloadSize,
		})
	}

	// Initialize handler with logger
	logger := log.Default()
	h := handler.NewAssetHandler(repo, notifier, logger)

	// Setup router with security configuration
	r := router.NewRouter(h, cfg)

	// Initialize logging middleware
	loggingMW := middleware.NewLoggingMiddleware(logger)

	// Wrap router with logging middleware
	finalHandler := loggingMW.LogRequests(r)

	// Configure server with security settings
	server := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Port),
		Handler:        finalHandler,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	// Channel to listen for interrupt signal to gracefully shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		log.Printf("Server running on port %d", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Block until we receive a signal
	<-done
	log.Println("Server is shutting down...")

	// Create a deadline for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Security.ShutdownTimeout)
	defer cancel()

	// Attempt graceful shutdown
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	} else {
		log.Println("Server exited gracefully")
	}
}
