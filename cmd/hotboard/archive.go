package main

import (
	"context"
	"fmt"

	"github.com/abdulachik/hotboard/internal/config"
	"github.com/abdulachik/hotboard/internal/db"
)

// openArchive loads config and opens the migrated snapshot archive.
func openArchive(ctx context.Context) (*config.Config, *db.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	if err := cfg.ValidateForArchive(); err != nil {
		return nil, nil, fmt.Errorf("validate config: %w", err)
	}

	store, err := db.NewStore(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	// Ensure migrations are run
	if err := store.Migrate(ctx); err != nil {
		store.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}

	return cfg, store, nil
}
