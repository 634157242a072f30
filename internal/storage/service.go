package storage

import (
	"context"
	"fmt"

	"github.com/ramonehamilton/replay-companion/internal/storage/models"
	"github.com/ramonehamilton/replay-companion/internal/storage/repository"
)

// Service provides high-level operations for storing and retrieving games.
type Service struct {
	db    *DB
	games repository.GameRepository
}

// NewService creates a new storage service.
func NewService(db *DB) *Service {
	return &Service{
		db:    db,
		games: repository.NewGameRepository(db.Conn()),
	}
}

// Games returns the game repository.
func (s *Service) Games() repository.GameRepository {
	return s.games
}

// StoreGame persists a game record. Records are produced by an external
// statistics pipeline; the store only holds them.
func (s *Service) StoreGame(ctx context.Context, game *models.Game) error {
	if game == nil {
		return fmt.Errorf("game cannot be nil")
	}
	return s.games.Create(ctx, game)
}

// GetGame returns a game by ID, or nil if it does not exist.
func (s *Service) GetGame(ctx context.Context, id string) (*models.Game, error) {
	return s.games.GetByID(ctx, id)
}

// GetLatestGame returns the most recently stored game, or nil if the store is empty.
func (s *Service) GetLatestGame(ctx context.Context) (*models.Game, error) {
	return s.games.GetLatest(ctx)
}

// ListGames returns up to limit recent games.
func (s *Service) ListGames(ctx context.Context, limit int) ([]*models.Game, error) {
	return s.games.List(ctx, limit)
}

// Close closes the underlying database.
func (s *Service) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
