package gui

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramonehamilton/replay-companion/internal/config"
	"github.com/ramonehamilton/replay-companion/internal/storage/models"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Storage.DBPath = filepath.Join(dir, "games.db")
	cfg.Assets.Dir = filepath.Join(dir, "images")
	cfg.Display.Timezone = "UTC"
	return cfg
}

func TestOpenServices(t *testing.T) {
	services, err := OpenServices(context.Background(), testConfig(t))
	require.NoError(t, err)
	defer services.Close() //nolint:errcheck

	require.NotNil(t, services.Storage)
	require.NotNil(t, services.Builder)
	require.NotNil(t, services.Assets)

	ctx := context.Background()
	require.NoError(t, services.Storage.StoreGame(ctx, &models.Game{
		ID:      "g1",
		StartAt: "2024-03-01T18:30:00Z",
		Players: []models.Player{{Port: 1}, {Port: 4}},
	}))

	p, err := NewProfileFacade(services).GetLatestProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Mar 1, 2024 6:30 PM", p.Details[2].Content)
	assert.Equal(t, "Player 4", p.Players[1].Label)
}

func TestOpenServices_InvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.API.Port = -1

	_, err := OpenServices(context.Background(), cfg)
	assert.Error(t, err)
}

func TestServices_ApplyConfig(t *testing.T) {
	cfg := testConfig(t)
	services, err := OpenServices(context.Background(), cfg)
	require.NoError(t, err)
	defer services.Close() //nolint:errcheck

	firstBuilder := services.Builder
	firstAssets := services.Assets

	updated := *cfg
	updated.Display.Timezone = "Local"
	require.NoError(t, services.ApplyConfig(&updated))

	builder, current := services.current()
	assert.NotSame(t, firstBuilder, builder)
	assert.Same(t, firstAssets, services.Assets, "unchanged asset dir keeps the resolver")
	assert.Equal(t, "Local", current.Display.Timezone)

	updated.Assets.Dir = t.TempDir()
	require.NoError(t, services.ApplyConfig(&updated))
	assert.NotSame(t, firstAssets, services.Assets)
}

func TestServices_ApplyConfig_BadTimezone(t *testing.T) {
	cfg := testConfig(t)
	services, err := OpenServices(context.Background(), cfg)
	require.NoError(t, err)
	defer services.Close() //nolint:errcheck

	bad := *cfg
	bad.Display.Timezone = "Not/AZone"
	assert.Error(t, services.ApplyConfig(&bad))

	_, current := services.current()
	assert.Equal(t, "UTC", current.Display.Timezone)
}
