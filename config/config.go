package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Re-assign os.UserHomeDir to a variable so we can mock it in tests.
var osUserHomeDir = os.UserHomeDir

// MainConfig maps config names to the files that hold them.
type MainConfig struct {
	DiscordConfig string `json:"discord_config"`
	RedisConfig   string `json:"redis_config"`
	LichessConfig string `json:"lichess_config"`
	GlyphConfig   string `json:"glyph_config"`
}

// DiscordConfig holds Discord-specific settings.
type DiscordConfig struct {
	Token           string `json:"token"`
	CommandPrefix   string `json:"command_prefix"`
	LogChannelID    string `json:"log_channel_id"`
	UploadChannelID string `json:"upload_channel_id"`
	// NavigationIdleSeconds is how long a profile message keeps its
	// select menu without anyone using it.
	NavigationIdleSeconds int `json:"navigation_idle_seconds"`
}

// RedisConfig holds the connection settings for the stats store.
type RedisConfig struct {
	Addr     string `json:"addr"`
	Username string `json:"username"`
	Password string `json:"password"`
	DB       int    `json:"db"`
}

// LichessConfig holds the upstream API settings.
type LichessConfig struct {
	BaseURL        string `json:"base_url"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

// AllConfig bundles every loaded config file.
type AllConfig struct {
	Discord *DiscordConfig
	Redis   *RedisConfig
	Lichess *LichessConfig
	Glyphs  *GlyphConfig
}

func getConfigDir() (string, error) {
	home, err := osUserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get user home directory: %w", err)
	}
	return filepath.Join(home, "Castle", "config"), nil
}

// loadOrCreate reads a JSON config file, creating it with the provided
// defaults when it does not exist yet.
func loadOrCreate(dir, filename string, v interface{}) error {
	path := filepath.Join(dir, filename)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		data, err = json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("could not marshal defaults for %s: %w", filename, err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("could not create config file %s: %w", filename, err)
		}
		return nil
	} else if err != nil {
		return fmt.Errorf("could not read config file %s: %w", filename, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("could not decode config file %s: %w", filename, err)
	}
	return nil
}

// LoadAllConfigs loads every config file from ~/Castle/config, creating
// missing files with their defaults.
func LoadAllConfigs() (*AllConfig, error) {
	dir, err := getConfigDir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create config directory: %w", err)
	}

	main := &MainConfig{
		DiscordConfig: "discord.json",
		RedisConfig:   "redis.json",
		LichessConfig: "lichess.json",
		GlyphConfig:   "glyphs.json",
	}
	if err := loadOrCreate(dir, "config.json", main); err != nil {
		return nil, err
	}

	discord := &DiscordConfig{
		CommandPrefix:         "!",
		NavigationIdleSeconds: 120,
	}
	if err := loadOrCreate(dir, main.DiscordConfig, discord); err != nil {
		return nil, err
	}

	redis := &RedisConfig{Addr: "localhost:6379"}
	if err := loadOrCreate(dir, main.RedisConfig, redis); err != nil {
		return nil, err
	}

	lichess := &LichessConfig{
		BaseURL:        "https://lichess.org",
		TimeoutSeconds: 15,
	}
	if err := loadOrCreate(dir, main.LichessConfig, lichess); err != nil {
		return nil, err
	}

	glyphs := DefaultGlyphs()
	if err := loadOrCreate(dir, main.GlyphConfig, glyphs); err != nil {
		return nil, err
	}

	return &AllConfig{
		Discord: discord,
		Redis:   redis,
		Lichess: lichess,
		Glyphs:  glyphs,
	}, nil
}
