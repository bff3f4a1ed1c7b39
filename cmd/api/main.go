package main

import (
	"os"

	"resume-builder/internal/bootstrap"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/server"
	"resume-builder/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()
	telemetry.Init(telemetry.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	app, err := bootstrap.Build(cfg)
	if err != nil {
		telemetry.Error("api.bootstrap_failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer app.Close()

	addr := server.Addr(cfg.Port)
	telemetry.Info("api.starting", map[string]any{
		"addr":           addr,
		"env":            cfg.Env,
		"snapshot_store": cfg.SnapshotStore,
		"object_store":   cfg.ObjectStoreType,
		"export_engine":  cfg.ExportEngine,
	})

	if err := app.Router.Run(addr); err != nil {
		telemetry.Error("api.server_error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
