package main

// Run database migrations:
//   go run ./cmd/migrate            apply pending migrations
//   go run ./cmd/migrate --status   list applied and pending migrations
//   go run ./cmd/migrate --down     roll back the latest migration

import (
	"context"
	"os"

	"github.com/spf13/pflag"

	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/storage/db"
	"resume-builder/internal/shared/telemetry"
)

func main() {
	down := pflag.Bool("down", false, "roll back the latest migration")
	status := pflag.Bool("status", false, "print migration status without changing the schema")
	pflag.Parse()

	cfg := config.Load()
	telemetry.Init(telemetry.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	ctx := context.Background()

	if cfg.DatabaseURL == "" {
		telemetry.Error("migrate.database_url_empty", nil)
		os.Exit(1)
	}

	command := db.MigrateUp
	switch {
	case *status:
		command = db.MigrateStatus
	case *down:
		command = db.MigrateDown
	}

	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		telemetry.Error("migrate.connect_failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := db.Migrate(ctx, sqlDB, command); err != nil {
		telemetry.Error("migrate.failed", map[string]any{"command": command, "error": err.Error()})
		os.Exit(1)
	}

	version, err := db.SchemaVersion(ctx, sqlDB)
	if err != nil {
		telemetry.Warn("migrate.version_unknown", map[string]any{"error": err.Error()})
		return
	}
	telemetry.Info("migrate.done", map[string]any{"command": command, "version": version})
}
