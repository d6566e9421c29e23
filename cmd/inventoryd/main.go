package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resource-inventory-backend/config"
	"resource-inventory-backend/internal/api"
	"resource-inventory-backend/internal/db"
	"resource-inventory-backend/internal/seed"
	"resource-inventory-backend/internal/store"
)

func main() {
	seedOnly := flag.Bool("seed", false, "load sample resources and exit")
	flag.Parse()

	// Setup logger
	logger := log.New(os.Stdout, "resource-inventory ", log.LstdFlags)

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
		}
		logger.Printf("no configuration file at %s, using defaults", configPath)
		cfg = config.Default()
	} else {
		logger.Printf("configuration loaded successfully from %s", configPath)
	}

	// Initialize database
	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	logger.Println("database initialized successfully")

	appStore := store.NewGormStore(gormDB)
	logger.Println("data store initialized")

	if *seedOnly {
		n, err := seed.Run(context.Background(), appStore)
		if err != nil {
			logger.Fatalf("seeding failed: %v", err)
		}
		logger.Printf("seeding complete, %d resources inserted", n)
		return
	}

	// Initialize router
	router := api.NewRouter(appStore, cfg)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start the server in a goroutine
	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	// Setup signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Block until a signal is received.
	<-stop
	logger.Println("Shutdown signal received, stopping server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
