package gui

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/ramonehamilton/replay-companion/internal/charts"
	"github.com/ramonehamilton/replay-companion/internal/profile"
	"github.com/ramonehamilton/replay-companion/internal/storage/models"
)

// ErrGameNotFound is wrapped by AppErrors for unknown game ids.
var ErrGameNotFound = errors.New("game not found")

// ProfileFacade handles Game Profile operations shared by the desktop
// frontends and the REST API.
type ProfileFacade struct {
	services *Services
}

// NewProfileFacade creates a new ProfileFacade with the given services.
func NewProfileFacade(services *Services) *ProfileFacade {
	return &ProfileFacade{services: services}
}

// ListGames returns up to limit recent games.
func (f *ProfileFacade) ListGames(ctx context.Context, limit int) ([]*models.Game, error) {
	if f.services.Storage == nil {
		return nil, errStorageNotInitialized
	}
	return f.services.Storage.ListGames(ctx, limit)
}

// GetGameProfile builds the profile of a stored game.
func (f *ProfileFacade) GetGameProfile(ctx context.Context, gameID string) (*profile.Profile, error) {
	if f.services.Storage == nil {
		return nil, errStorageNotInitialized
	}

	game, err := f.services.Storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, &AppError{Message: fmt.Sprintf("Failed to load game: %v", err), Err: err}
	}
	if game == nil {
		return nil, &AppError{Message: fmt.Sprintf("Game %s not found", gameID), Err: ErrGameNotFound}
	}
	return f.BuildProfile(game)
}

// GetLatestGame returns the most recently stored game.
func (f *ProfileFacade) GetLatestGame(ctx context.Context) (*models.Game, error) {
	if f.services.Storage == nil {
		return nil, errStorageNotInitialized
	}

	game, err := f.services.Storage.GetLatestGame(ctx)
	if err != nil {
		return nil, &AppError{Message: fmt.Sprintf("Failed to load latest game: %v", err), Err: err}
	}
	if game == nil {
		return nil, &AppError{Message: "No games stored yet", Err: ErrGameNotFound}
	}
	return game, nil
}

// GetLatestProfile builds the profile of the most recently stored game.
func (f *ProfileFacade) GetLatestProfile(ctx context.Context) (*profile.Profile, error) {
	game, err := f.GetLatestGame(ctx)
	if err != nil {
		return nil, err
	}
	return f.BuildProfile(game)
}

// BuildProfile converts a stored game into the screen model.
func (f *ProfileFacade) BuildProfile(game *models.Game) (*profile.Profile, error) {
	builder, _ := f.services.current()
	if builder == nil {
		return nil, &AppError{Message: "Profile builder not configured"}
	}

	p, err := builder.Build(GameInput(game))
	if err != nil {
		log.Printf("Failed to build profile for game %s: %v", game.ID, err)
		return nil, &AppError{Message: fmt.Sprintf("Failed to build game profile: %v", err), Err: err}
	}
	if f.debug() {
		log.Printf("[DEBUG] Built profile for game %s (empty=%v, sections=%d)", game.ID, p.Empty, len(p.Sections))
	}
	return p, nil
}

// Compare evaluates a single comparison.
func (f *ProfileFacade) Compare(in profile.ComparisonInput) (profile.ComparisonResult, error) {
	result, err := profile.Evaluate(in)
	if err != nil {
		return profile.ComparisonResult{}, &AppError{Message: err.Error(), Err: err}
	}
	return result, nil
}

// ExportChart writes the comparison chart of a game to outputPath.
func (f *ProfileFacade) ExportChart(ctx context.Context, gameID, outputPath string) error {
	p, err := f.GetGameProfile(ctx, gameID)
	if err != nil {
		return err
	}

	config := charts.DefaultChartConfig()
	if _, cfg := f.services.current(); cfg != nil && cfg.Display.ChartTheme != "" {
		config.Theme = cfg.Display.ChartTheme
	}
	config.Subtitle = gameID

	if err := charts.RenderComparisonChart(p, config, outputPath); err != nil {
		return &AppError{Message: fmt.Sprintf("Failed to export chart: %v", err), Err: err}
	}
	log.Printf("Exported comparison chart for game %s to %s", gameID, outputPath)
	return nil
}

func (f *ProfileFacade) debug() bool {
	_, cfg := f.services.current()
	return cfg != nil && cfg.App.DebugMode
}

// GameInput extracts the fields the Game Profile reads from a stored game.
func GameInput(game *models.Game) profile.GameInput {
	if game == nil {
		return profile.GameInput{}
	}

	players := make([]profile.Player, 0, len(game.Players))
	for _, p := range game.Players {
		players = append(players, profile.Player{
			Port:           p.Port,
			CharacterID:    p.CharacterID,
			CharacterColor: p.CharacterColor,
		})
	}

	return profile.GameInput{
		Players:      players,
		StageID:      game.StageID,
		GameDuration: game.GameDuration,
		PlayedOn:     game.PlayedOn,
		StartAt:      game.StartAt,
	}
}
