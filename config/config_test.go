package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestEnvironment creates a temporary directory structure for config files.
// It returns the path to the temporary Castle config directory and a cleanup function.
func setupTestEnvironment(t *testing.T) (string, func()) {
	tempDir, err := os.MkdirTemp("", "castle-config-test")
	require.NoError(t, err)

	configPath := filepath.Join(tempDir, "Castle", "config")
	err = os.MkdirAll(configPath, 0755)
	require.NoError(t, err)

	originalHomeDirFunc := osUserHomeDir
	osUserHomeDir = func() (string, error) {
		return tempDir, nil
	}

	cleanup := func() {
		osUserHomeDir = originalHomeDirFunc
		os.RemoveAll(tempDir)
	}

	return configPath, cleanup
}

func TestLoadAllConfigs_Success(t *testing.T) {
	configPath, cleanup := setupTestEnvironment(t)
	defer cleanup()

	mainCfg := MainConfig{
		DiscordConfig: "discord.json",
		RedisConfig:   "redis.json",
		LichessConfig: "lichess.json",
		GlyphConfig:   "glyphs.json",
	}
	mainData, _ := json.Marshal(mainCfg)
	err := os.WriteFile(filepath.Join(configPath, "config.json"), mainData, 0644)
	require.NoError(t, err)

	discordCfg := DiscordConfig{Token: "test-token", LogChannelID: "123", NavigationIdleSeconds: 45}
	discordData, _ := json.Marshal(discordCfg)
	err = os.WriteFile(filepath.Join(configPath, "discord.json"), discordData, 0644)
	require.NoError(t, err)

	redisCfg := RedisConfig{Addr: "localhost:1234"}
	redisData, _ := json.Marshal(redisCfg)
	err = os.WriteFile(filepath.Join(configPath, "redis.json"), redisData, 0644)
	require.NoError(t, err)

	allConfig, err := LoadAllConfigs()

	assert.NoError(t, err)
	require.NotNil(t, allConfig)
	assert.Equal(t, "test-token", allConfig.Discord.Token)
	assert.Equal(t, "123", allConfig.Discord.LogChannelID)
	assert.Equal(t, 45, allConfig.Discord.NavigationIdleSeconds)
	assert.Equal(t, "localhost:1234", allConfig.Redis.Addr)
	assert.Equal(t, "https://lichess.org", allConfig.Lichess.BaseURL)
}

func TestLoadAllConfigs_FileCreation(t *testing.T) {
	configPath, cleanup := setupTestEnvironment(t)
	defer cleanup()

	allConfig, err := LoadAllConfigs()

	assert.NoError(t, err)
	require.NotNil(t, allConfig)

	// Check that the default files were created
	assert.FileExists(t, filepath.Join(configPath, "config.json"))
	assert.FileExists(t, filepath.Join(configPath, "discord.json"))
	assert.FileExists(t, filepath.Join(configPath, "redis.json"))
	assert.FileExists(t, filepath.Join(configPath, "lichess.json"))
	assert.FileExists(t, filepath.Join(configPath, "glyphs.json"))

	// Check that the config struct has the default values
	assert.Equal(t, "", allConfig.Discord.Token)
	assert.Equal(t, "!", allConfig.Discord.CommandPrefix)
	assert.Equal(t, "localhost:6379", allConfig.Redis.Addr)
	assert.Equal(t, 120, allConfig.Discord.NavigationIdleSeconds)
}

func TestLoadAllConfigs_InvalidJSON(t *testing.T) {
	configPath, cleanup := setupTestEnvironment(t)
	defer cleanup()

	err := os.WriteFile(filepath.Join(configPath, "config.json"), []byte("{ not valid json }"), 0644)
	require.NoError(t, err)

	_, err = LoadAllConfigs()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "could not decode config file")
}

func TestGlyphValidate(t *testing.T) {
	modes := []string{"bullet", "blitz"}
	views := []string{"summary", "ratings", "history"}

	g := DefaultGlyphs()
	assert.NoError(t, g.Validate(modes, views))

	g = DefaultGlyphs()
	delete(g.Charts, "blitz")
	err := g.Validate(modes, views)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "blitz")

	g = DefaultGlyphs()
	delete(g.Views, "history")
	assert.Error(t, g.Validate(modes, views))

	g = DefaultGlyphs()
	g.Other["up"] = ""
	assert.Error(t, g.Validate(modes, views))

	g = DefaultGlyphs()
	g.Status.Closed = ""
	assert.Error(t, g.Validate(modes, views))
}

func TestDefaultGlyphsCoverAllModes(t *testing.T) {
	g := DefaultGlyphs()
	for mode := range g.Modes {
		_, ok := g.Charts[mode]
		assert.True(t, ok, "mode %s has no chart style", mode)
	}
}
