package main

import (
	"context"
	"log"

	wailsruntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/ramonehamilton/replay-companion/internal/config"
	"github.com/ramonehamilton/replay-companion/internal/gui"
	"github.com/ramonehamilton/replay-companion/internal/profile"
	"github.com/ramonehamilton/replay-companion/internal/storage/models"
)

// App struct
type App struct {
	ctx      context.Context
	cancel   context.CancelFunc
	services *gui.Services
	facade   *gui.ProfileFacade
}

// NewApp creates a new App application struct
func NewApp() *App {
	return &App{}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx, a.cancel = context.WithCancel(ctx)

	path, err := config.Path()
	if err != nil {
		log.Printf("Warning: Failed to resolve config path: %v", err)
		return
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		log.Printf("Warning: Failed to load config, using defaults: %v", err)
		cfg = config.DefaultConfig()
	}

	if err := a.Initialize(cfg); err != nil {
		log.Printf("Warning: Failed to initialize game store: %v", err)
		log.Printf("You may need to configure the database path in %s", path)
		return
	}

	go func() {
		err := config.Watch(a.ctx, path, func(updated *config.Config) {
			if err := a.services.ApplyConfig(updated); err != nil {
				log.Printf("[WARN] Ignoring config reload: %v", err)
			}
		})
		if err != nil && a.ctx.Err() == nil {
			log.Printf("[WARN] Config watcher stopped: %v", err)
		}
	}()
}

// shutdown is called when the app shuts down
func (a *App) shutdown(_ context.Context) {
	if a.cancel != nil {
		a.cancel()
	}
	if a.services != nil {
		if err := a.services.Close(); err != nil {
			log.Printf("Error closing storage service: %v", err)
		}
	}
}

// Initialize opens the game store described by cfg.
func (a *App) Initialize(cfg *config.Config) error {
	services, err := gui.OpenServices(a.ctx, cfg)
	if err != nil {
		return err
	}
	a.services = services
	a.facade = gui.NewProfileFacade(services)
	return nil
}

// ListGames returns up to limit recent games
func (a *App) ListGames(limit int) ([]*models.Game, error) {
	if a.facade == nil {
		return nil, errNotInitialized
	}
	return a.facade.ListGames(a.ctx, limit)
}

// GetGameProfile returns the Game Profile of a stored game
func (a *App) GetGameProfile(gameID string) (*profile.Profile, error) {
	if a.facade == nil {
		return nil, errNotInitialized
	}
	return a.facade.GetGameProfile(a.ctx, gameID)
}

// GetLatestProfile returns the Game Profile of the most recent game
func (a *App) GetLatestProfile() (*profile.Profile, error) {
	if a.facade == nil {
		return nil, errNotInitialized
	}
	return a.facade.GetLatestProfile(a.ctx)
}

// Compare evaluates a single stat comparison
func (a *App) Compare(in profile.ComparisonInput) (profile.ComparisonResult, error) {
	return profile.Evaluate(in)
}

// ExportChart asks for a destination and writes the game's comparison chart there
func (a *App) ExportChart(gameID string) error {
	if a.facade == nil {
		return errNotInitialized
	}

	filePath, err := wailsruntime.SaveFileDialog(a.ctx, wailsruntime.SaveDialogOptions{
		Title:           "Export Comparison Chart",
		DefaultFilename: "game-" + gameID + ".html",
		Filters: []wailsruntime.FileFilter{
			{DisplayName: "HTML Files (*.html)", Pattern: "*.html"},
		},
	})
	if err != nil {
		return &gui.AppError{Message: "Failed to open save dialog", Err: err}
	}
	if filePath == "" {
		return nil // User cancelled
	}

	return a.facade.ExportChart(a.ctx, gameID, filePath)
}

var errNotInitialized = &gui.AppError{Message: "Database not initialized. Please configure database path in Settings."}
