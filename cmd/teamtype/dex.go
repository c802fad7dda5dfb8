package main

import (
	"context"
	"fmt"
	"log"

	"github.com/notjagan/teamtype/pkg/config"
	"github.com/notjagan/teamtype/pkg/model"
	"github.com/notjagan/teamtype/pkg/team"
)

var (
	configPath string
	dbPath     string
)

func loadConfig() (config.Config, error) {
	cfg, err := config.Read(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if dbPath != "" {
		cfg.DB.Path = dbPath
	}
	return cfg, nil
}

// openDex opens the configured dex. Without a database path it returns a nil
// Dex, so only type-based slots can be resolved.
func openDex(ctx context.Context, cfg config.Config) (team.Dex, func(), error) {
	if cfg.DB.Path == "" {
		return nil, func() {}, nil
	}

	mdl, err := model.New(ctx, cfg.DB.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("error while opening dex: %w", err)
	}

	err = mdl.SetLanguageByLocalizationCode(ctx, model.LocalizationCode(cfg.Language))
	if err != nil {
		mdl.Close()
		return nil, nil, fmt.Errorf("error while setting dex language: %w", err)
	}

	closer := func() {
		if err := mdl.Close(); err != nil {
			log.Printf("error while closing dex: %v", err)
		}
	}
	return mdl, closer, nil
}
