// Command replay-companion runs the desktop Game Profile viewer.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/ramonehamilton/replay-companion/internal/config"
	"github.com/ramonehamilton/replay-companion/internal/gui"
)

var (
	configPath     = flag.String("config", "", "Path to config.toml (default: ~/.replay-companion/config.toml)")
	dbPath         = flag.String("db-path", "", "Database path (overrides config)")
	debugMode      = flag.Bool("debug-mode", false, "Enable verbose debug logging")
	debugModeShort = flag.Bool("d", false, "Enable debug logging (shorthand for -debug-mode)")
)

func main() {
	flag.Parse()

	path := *configPath
	if path == "" {
		p, err := config.Path()
		if err != nil {
			log.Fatalf("Failed to resolve config path: %v", err)
		}
		path = p
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	applyFlags(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	services, err := gui.OpenServices(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	defer func() {
		if err := services.Close(); err != nil {
			log.Printf("Error closing storage service: %v", err)
		}
	}()

	go func() {
		err := config.Watch(ctx, path, func(updated *config.Config) {
			applyFlags(updated)
			if err := services.ApplyConfig(updated); err != nil {
				log.Printf("[WARN] Ignoring config reload: %v", err)
				return
			}
			log.Printf("Config reloaded from %s", path)
		})
		if err != nil && ctx.Err() == nil {
			log.Printf("[WARN] Config watcher stopped: %v", err)
		}
	}()

	gui.NewApp(services).Run()
}

// applyFlags layers command-line overrides on top of the loaded config.
func applyFlags(cfg *config.Config) {
	if *dbPath != "" {
		cfg.Storage.DBPath = *dbPath
	}
	if *debugMode || *debugModeShort {
		cfg.App.DebugMode = true
	}
}
