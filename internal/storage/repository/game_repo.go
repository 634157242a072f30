// Package repository provides data access layers for stored games.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ramonehamilton/replay-companion/internal/storage/models"
)

// GameRepository handles database operations for games and their players.
type GameRepository interface {
	// Create inserts a game and its players. An empty ID is assigned a new UUID.
	Create(ctx context.Context, game *models.Game) error

	// GetByID retrieves a game by its ID. Returns nil if not found.
	GetByID(ctx context.Context, id string) (*models.Game, error)

	// GetLatest retrieves the most recently stored game. Returns nil if none.
	GetLatest(ctx context.Context) (*models.Game, error)

	// List retrieves the most recent games, newest first.
	List(ctx context.Context, limit int) ([]*models.Game, error)

	// Delete removes a game and its players.
	Delete(ctx context.Context, id string) error
}

// gameRepository is the concrete implementation of GameRepository.
type gameRepository struct {
	db *sql.DB
}

// NewGameRepository creates a new game repository.
func NewGameRepository(db *sql.DB) GameRepository {
	return &gameRepository{db: db}
}

const selectGameColumns = `
	SELECT id, stage_id, game_duration, played_on, start_at, created_at
	FROM games
`

// Create inserts a game and its players in one transaction.
func (r *gameRepository) Create(ctx context.Context, game *models.Game) (err error) {
	if game.ID == "" {
		game.ID = uuid.NewString()
	}
	if game.CreatedAt.IsZero() {
		game.CreatedAt = time.Now().UTC()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var stageID sql.NullInt64
	if game.StageID != nil {
		stageID = sql.NullInt64{Int64: int64(*game.StageID), Valid: true}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO games (id, stage_id, game_duration, played_on, start_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, game.ID, stageID, game.GameDuration, game.PlayedOn, game.StartAt, game.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	for i := range game.Players {
		p := &game.Players[i]
		p.Index = i
		_, err = tx.ExecContext(ctx, `
			INSERT INTO game_players (game_id, player_index, port, character_id, character_color)
			VALUES (?, ?, ?, ?, ?)
		`, game.ID, p.Index, p.Port, p.CharacterID, p.CharacterColor)
		if err != nil {
			return fmt.Errorf("failed to create player %d: %w", i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit game: %w", err)
	}
	return nil
}

// GetByID retrieves a game by its ID.
func (r *gameRepository) GetByID(ctx context.Context, id string) (*models.Game, error) {
	game, err := scanGame(r.db.QueryRowContext(ctx, selectGameColumns+" WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if err := r.loadPlayers(ctx, []*models.Game{game}); err != nil {
		return nil, err
	}
	return game, nil
}

// GetLatest retrieves the most recently stored game.
func (r *gameRepository) GetLatest(ctx context.Context) (*models.Game, error) {
	games, err := r.List(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, nil
	}
	return games[0], nil
}

// List retrieves the most recent games.
func (r *gameRepository) List(ctx context.Context, limit int) ([]*models.Game, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx, selectGameColumns+" ORDER BY created_at DESC, id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	defer func() {
		//nolint:errcheck // Ignore error on cleanup - this is a defer cleanup operation
		_ = rows.Close()
	}()

	var games []*models.Game
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}
		games = append(games, game)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating games: %w", err)
	}

	if err := r.loadPlayers(ctx, games); err != nil {
		return nil, err
	}
	return games, nil
}

// Delete removes a game and its players in one transaction.
func (r *gameRepository) Delete(ctx context.Context, id string) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM game_players WHERE game_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete players: %w", err)
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM games WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanGame(row rowScanner) (*models.Game, error) {
	game := &models.Game{}
	var stageID sql.NullInt64
	err := row.Scan(
		&game.ID,
		&stageID,
		&game.GameDuration,
		&game.PlayedOn,
		&game.StartAt,
		&game.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if stageID.Valid {
		id := int(stageID.Int64)
		game.StageID = &id
	}
	return game, nil
}

func (r *gameRepository) loadPlayers(ctx context.Context, games []*models.Game) error {
	if len(games) == 0 {
		return nil
	}

	byID := make(map[string]*models.Game, len(games))
	args := make([]interface{}, 0, len(games))
	for _, g := range games {
		g.Players = []models.Player{}
		byID[g.ID] = g
		args = append(args, g.ID)
	}

	query := `
		SELECT game_id, player_index, port, character_id, character_color
		FROM game_players
		WHERE game_id IN (?` + strings.Repeat(", ?", len(games)-1) + `)
		ORDER BY game_id, player_index
	`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to get players: %w", err)
	}
	defer func() {
		//nolint:errcheck // Ignore error on cleanup - this is a defer cleanup operation
		_ = rows.Close()
	}()

	for rows.Next() {
		var gameID string
		var p models.Player
		if err := rows.Scan(&gameID, &p.Index, &p.Port, &p.CharacterID, &p.CharacterColor); err != nil {
			return fmt.Errorf("failed to scan player: %w", err)
		}
		if g, ok := byID[gameID]; ok {
			g.Players = append(g.Players, p)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating players: %w", err)
	}
	return nil
}
