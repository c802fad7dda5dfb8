package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

const (
	DefaultPath              = "teamtype.toml"
	DefaultLanguage          = "en"
	DefaultAutocompleteLimit = 25

	// Discord rejects autocomplete responses with more choices than this.
	maxAutocompleteLimit = 25
)

const envPrefix = "TEAMTYPE_"

type Config struct {
	Discord struct {
		Token string `toml:"token" env:"DISCORD_TOKEN"`
	} `toml:"discord"`
	DB struct {
		Path string `toml:"path" env:"DB_PATH"`
	} `toml:"database"`
	Language          string `toml:"language" env:"LANGUAGE"`
	AutocompleteLimit int    `toml:"autocomplete_limit" env:"AUTOCOMPLETE_LIMIT"`
}

var ErrInvalidConfig = errors.New("invalid config")

// Read decodes the TOML file at path, if it exists, and overlays any
// TEAMTYPE_* environment variables.
func Read(path string) (Config, error) {
	cfg := Config{
		Language:          DefaultLanguage,
		AutocompleteLimit: DefaultAutocompleteLimit,
	}

	_, err := toml.DecodeFile(path, &cfg)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("error while decoding config file %q: %w", path, err)
	}

	err = env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix})
	if err != nil {
		return Config{}, fmt.Errorf("error while parsing config from environment: %w", err)
	}

	if cfg.AutocompleteLimit <= 0 || cfg.AutocompleteLimit > maxAutocompleteLimit {
		return Config{}, fmt.Errorf(
			"autocomplete_limit must be between 1 and %d, got %d: %w",
			maxAutocompleteLimit,
			cfg.AutocompleteLimit,
			ErrInvalidConfig,
		)
	}
	if cfg.Language == "" {
		return Config{}, fmt.Errorf("language must not be empty: %w", ErrInvalidConfig)
	}

	return cfg, nil
}

// RequireDB checks that a dex database is configured.
func (cfg Config) RequireDB() error {
	if cfg.DB.Path == "" {
		return fmt.Errorf("database.path (or %sDB_PATH) is required: %w", envPrefix, ErrInvalidConfig)
	}
	return nil
}

// RequireBot checks that everything the Discord bot needs is configured.
func (cfg Config) RequireBot() error {
	if cfg.Discord.Token == "" {
		return fmt.Errorf("discord.token (or %sDISCORD_TOKEN) is required: %w", envPrefix, ErrInvalidConfig)
	}
	return cfg.RequireDB()
}
