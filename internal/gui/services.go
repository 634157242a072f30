package gui

import (
	"context"
	"sync"

	"github.com/ramonehamilton/replay-companion/internal/assets"
	"github.com/ramonehamilton/replay-companion/internal/config"
	"github.com/ramonehamilton/replay-companion/internal/profile"
	"github.com/ramonehamilton/replay-companion/internal/storage"
)

// Services contains all shared services needed by facades.
type Services struct {
	// Context for the application
	Context context.Context

	// Storage service holding game records
	Storage *storage.Service

	// Builder assembles Game Profile models
	Builder *profile.Builder

	// Assets resolves local images
	Assets *assets.Resolver

	// Config is the active configuration
	Config *config.Config

	mu sync.RWMutex
}

// AppError represents an application error with a user-friendly message.
type AppError struct {
	Message string `json:"message"`
	Err     error  `json:"-"` // Wrapped error for errors.Is/As chain
}

func (e *AppError) Error() string {
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As chain.
func (e *AppError) Unwrap() error {
	return e.Err
}

// errStorageNotInitialized is returned by facades used before a database is configured.
var errStorageNotInitialized = &AppError{Message: "Database not initialized. Please configure database path in Settings."}
