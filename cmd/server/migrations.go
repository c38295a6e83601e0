package main

import (
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"

	"github.com/ktiva/ktiva-api/internal/config"
	"github.com/ktiva/ktiva-api/migrations"
)

// runMigrations applies the embedded migrations against the configured
// postgres database. Supported commands are up, down, and status. The
// superdata backend is schemaless and has nothing to migrate.
func runMigrations(cfg *config.Config, logger *slog.Logger, command string) error {
	if cfg.Store.Backend != config.StoreBackendPostgres {
		return fmt.Errorf("migrations require store backend postgres, got %q", cfg.Store.Backend)
	}

	db, err := setupAppDatabase(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("error closing database connection", slog.String("error", err.Error()))
		}
	}()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	logger.Info("running migrations", slog.String("command", command))

	switch command {
	case "up":
		err = goose.Up(db, ".")
	case "down":
		err = goose.Down(db, ".")
	case "status":
		err = goose.Status(db, ".")
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}

	if err != nil {
		return fmt.Errorf("migration %s failed: %w", command, err)
	}

	logger.Info("migrations completed", slog.String("command", command))
	return nil
}
