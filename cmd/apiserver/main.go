// Package main provides a standalone REST API server for the Game Profile.
// It serves stored games without a desktop window.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ramonehamilton/replay-companion/internal/api"
	"github.com/ramonehamilton/replay-companion/internal/config"
	"github.com/ramonehamilton/replay-companion/internal/gui"
	"github.com/ramonehamilton/replay-companion/internal/version"
)

var (
	port       = flag.Int("port", 0, "API server port (overrides config)")
	dbPath     = flag.String("db-path", "", "Database path (default: ~/.replay-companion/games.db)")
	configPath = flag.String("config", "", "Path to config.toml (default: ~/.replay-companion/config.toml)")
)

func main() {
	flag.Parse()

	fmt.Println("Replay Companion - REST API Server")
	fmt.Println("==================================")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFrom(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *dbPath != "" {
		cfg.Storage.DBPath = *dbPath
	}
	if *port != 0 {
		cfg.API.Port = *port
	}

	ctx := context.Background()

	services, err := gui.OpenServices(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	defer func() {
		if err := services.Close(); err != nil {
			log.Printf("Error closing storage service: %v", err)
		}
	}()

	apiConfig := &api.Config{
		Port:           cfg.API.Port,
		RateLimit:      cfg.API.RateLimit,
		RateLimitBurst: cfg.API.RateLimitBurst,
	}
	server := api.NewServer(apiConfig, gui.NewProfileFacade(services))

	fmt.Printf("Starting API server on port %d...\n", server.Port())
	if err := server.Start(); err != nil {
		log.Fatalf("Failed to start API server: %v", err)
	}

	fmt.Println()
	fmt.Printf("API server running at http://localhost:%d\n", server.Port())
	fmt.Println("Press Ctrl+C to stop")
	fmt.Println()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	fmt.Println()
	fmt.Println("Shutting down...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	fmt.Println("API server stopped.")
}
