package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramonehamilton/replay-companion/internal/storage/models"
)

func TestService_StoreAndGetGame(t *testing.T) {
	service := NewTestService(t)
	ctx := context.Background()

	stage := 31
	game := &models.Game{
		StageID:      &stage,
		GameDuration: 7200,
		PlayedOn:     "dolphin",
		StartAt:      "2018-06-22T07:52:59Z",
		Players: []models.Player{
			{Port: 1, CharacterID: 20, CharacterColor: 0},
			{Port: 4, CharacterID: 2, CharacterColor: 3},
		},
	}
	require.NoError(t, service.StoreGame(ctx, game))
	require.NotEmpty(t, game.ID)

	got, err := service.GetGame(ctx, game.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, game.ID, got.ID)
	require.NotNil(t, got.StageID)
	assert.Equal(t, 31, *got.StageID)
	assert.Equal(t, 7200, got.GameDuration)
	assert.Equal(t, "dolphin", got.PlayedOn)
	assert.Equal(t, "2018-06-22T07:52:59Z", got.StartAt)
	assert.Equal(t, []models.Player{
		{Index: 0, Port: 1, CharacterID: 20, CharacterColor: 0},
		{Index: 1, Port: 4, CharacterID: 2, CharacterColor: 3},
	}, got.Players)
}

func TestService_GetGame_NotFound(t *testing.T) {
	service := NewTestService(t)

	got, err := service.GetGame(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestService_StoreGame_Nil(t *testing.T) {
	service := NewTestService(t)
	assert.Error(t, service.StoreGame(context.Background(), nil))
}

func TestService_MissingFields(t *testing.T) {
	service := NewTestService(t)
	ctx := context.Background()

	game := &models.Game{ID: "bare"}
	require.NoError(t, service.StoreGame(ctx, game))

	got, err := service.GetGame(ctx, "bare")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.StageID)
	assert.Empty(t, got.Players)
	assert.Equal(t, "", got.PlayedOn)
}

func TestService_ListAndLatest(t *testing.T) {
	service := NewTestService(t)
	ctx := context.Background()

	latest, err := service.GetLatestGame(ctx)
	require.NoError(t, err)
	assert.Nil(t, latest)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"first", "second", "third"} {
		game := &models.Game{
			ID:        id,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
			Players:   []models.Player{{Port: i + 1, CharacterID: i}},
		}
		require.NoError(t, service.StoreGame(ctx, game))
	}

	games, err := service.ListGames(ctx, 2)
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, "third", games[0].ID)
	assert.Equal(t, "second", games[1].ID)
	assert.Equal(t, 3, games[0].Players[0].Port)

	latest, err = service.GetLatestGame(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "third", latest.ID)
}

func TestService_DuplicateIDRollsBack(t *testing.T) {
	service := NewTestService(t)
	ctx := context.Background()

	require.NoError(t, service.StoreGame(ctx, &models.Game{ID: "dup", Players: []models.Player{{Port: 1}}}))
	assert.Error(t, service.StoreGame(ctx, &models.Game{ID: "dup", Players: []models.Player{{Port: 2}}}))

	got, err := service.GetGame(ctx, "dup")
	require.NoError(t, err)
	require.Len(t, got.Players, 1)
	assert.Equal(t, 1, got.Players[0].Port)
}

func TestService_Delete(t *testing.T) {
	service := NewTestService(t)
	ctx := context.Background()

	require.NoError(t, service.StoreGame(ctx, &models.Game{ID: "gone", Players: []models.Player{{Port: 1}}}))
	require.NoError(t, service.Games().Delete(ctx, "gone"))

	got, err := service.GetGame(ctx, "gone")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func countPlayers(t *testing.T, service *Service, gameID string) int {
	t.Helper()
	var n int
	require.NoError(t, service.db.Conn().QueryRow("SELECT COUNT(*) FROM game_players WHERE game_id = ?", gameID).Scan(&n))
	return n
}

func TestService_DeleteRemovesOnlyThatGamesPlayers(t *testing.T) {
	service := NewTestService(t)
	ctx := context.Background()

	require.NoError(t, service.StoreGame(ctx, &models.Game{ID: "a", Players: []models.Player{{Port: 1}, {Port: 2}}}))
	require.NoError(t, service.StoreGame(ctx, &models.Game{ID: "b", Players: []models.Player{{Port: 3}, {Port: 4}}}))

	require.NoError(t, service.Games().Delete(ctx, "a"))

	assert.Equal(t, 0, countPlayers(t, service, "a"))
	assert.Equal(t, 2, countPlayers(t, service, "b"))
}

func TestService_DeleteCancelledLeavesGame(t *testing.T) {
	service := NewTestService(t)
	ctx := context.Background()

	require.NoError(t, service.StoreGame(ctx, &models.Game{ID: "kept", Players: []models.Player{{Port: 1}, {Port: 2}}}))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	assert.Error(t, service.Games().Delete(cancelled, "kept"))

	got, err := service.GetGame(ctx, "kept")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Len(t, got.Players, 2)
	assert.Equal(t, 2, countPlayers(t, service, "kept"))
}
