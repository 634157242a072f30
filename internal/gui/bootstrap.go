package gui

import (
	"context"
	"fmt"
	"log"

	"github.com/ramonehamilton/replay-companion/internal/assets"
	"github.com/ramonehamilton/replay-companion/internal/config"
	"github.com/ramonehamilton/replay-companion/internal/melee"
	"github.com/ramonehamilton/replay-companion/internal/profile"
	"github.com/ramonehamilton/replay-companion/internal/storage"
)

// OpenServices opens the game store and assembles the profile builder from cfg.
func OpenServices(ctx context.Context, cfg *config.Config) (*Services, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	dbPath, err := cfg.DatabasePath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve database path: %w", err)
	}

	dbConfig := storage.DefaultConfig(dbPath)
	dbConfig.AutoMigrate = true
	db, err := storage.Open(dbConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	services := &Services{
		Context: ctx,
		Storage: storage.NewService(db),
	}
	if err := services.ApplyConfig(cfg); err != nil {
		_ = services.Close()
		return nil, err
	}

	log.Printf("Game store opened at %s", dbPath)
	return services, nil
}

// ApplyConfig rebuilds the profile builder and asset resolver from cfg.
// The database path is fixed for the lifetime of the Services.
func (s *Services) ApplyConfig(cfg *config.Config) error {
	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("failed to load timezone %q: %w", cfg.Display.Timezone, err)
	}
	assetsDir, err := cfg.AssetsDir()
	if err != nil {
		return fmt.Errorf("failed to resolve assets directory: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Assets == nil || s.Assets.BaseDir() != assetsDir {
		s.Assets = assets.NewResolver(assetsDir)
	} else {
		s.Assets.Invalidate()
	}

	if s.Config != nil && s.Config.Storage.DBPath != cfg.Storage.DBPath {
		log.Printf("[WARN] Database path change to %q takes effect after restart", cfg.Storage.DBPath)
	}

	clock := melee.NewClock(loc, cfg.Display.TimestampLayout)
	s.Builder = profile.NewBuilder(melee.DefaultStages(), clock, clock, s.Assets)
	s.Config = cfg
	return nil
}

// Close releases the game store.
func (s *Services) Close() error {
	if s.Storage == nil {
		return nil
	}
	return s.Storage.Close()
}

func (s *Services) current() (*profile.Builder, *config.Config) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Builder, s.Config
}
