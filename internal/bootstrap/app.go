package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/builder"
	"resume-builder/internal/export"
	"resume-builder/internal/imaging"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/server"
	"resume-builder/internal/shared/storage/db"
	"resume-builder/internal/shared/storage/object"
	localstore "resume-builder/internal/shared/storage/object/local"
	s3store "resume-builder/internal/shared/storage/object/s3"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/internal/snapshots"
	"resume-builder/resume/model"
	"resume-builder/resume/render"
)

// App holds shared dependencies and the wired router.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	DB               *sql.DB
	Store            object.ObjectStore
	SnapshotStore    snapshots.Store
	Renderer         *render.HTMLRenderer
	SessionStore     builder.SessionStore
	SnapshotsService *snapshots.Service
	ExportService    *export.Service
	BuilderService   *builder.Service
	BuilderHandler   *builder.Handler
	closers          []func() error
}

// Close releases connections opened by Build.
func (a *App) Close() error {
	var errs []error
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Build prepares shared dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	if strings.TrimSpace(cfg.SnapshotStore) == "" {
		cfg.SnapshotStore = "memory"
	}
	ctx := context.Background()

	app := &App{Config: cfg}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	app.DB = sqlDB

	if err := app.buildSnapshotStore(ctx); err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	app.Store = store

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         app.Config,
		BuilderHandler: app.BuilderHandler,
		HealthChecks:   app.healthChecks(),
	})

	return app, nil
}

// buildDB connects only when a component needs Postgres.
func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if cfg.SnapshotStore != "postgres" && !cfg.ArchiveExports {
		return nil, nil
	}
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.database_url_empty", map[string]any{"fallback": "memory"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.GetSingleton(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.database_connect_failed", map[string]any{"fallback": "memory", "error": err.Error()})
			return nil, nil
		}
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func (a *App) buildSnapshotStore(ctx context.Context) error {
	switch a.Config.SnapshotStore {
	case "postgres":
		if a.DB != nil {
			a.SnapshotStore = &snapshots.PGStore{DB: a.DB}
			return nil
		}
	case "redis":
		store, err := snapshots.NewRedisStore(a.Config.RedisURL, 0)
		if err == nil {
			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err = store.Ping(pingCtx)
			cancel()
		}
		if err == nil {
			a.SnapshotStore = store
			a.closers = append(a.closers, store.Close)
			return nil
		}
		if !isDevLike(a.Config.Env) {
			return fmt.Errorf("redis snapshot store: %w", err)
		}
		telemetry.Warn("bootstrap.redis_unavailable", map[string]any{"fallback": "memory", "error": err.Error()})
	case "file":
		a.SnapshotStore = snapshots.NewFileStore(a.Config.SnapshotDir)
		return nil
	}
	a.SnapshotStore = snapshots.NewMemoryStore()
	return nil
}

// healthChecks covers the network dependencies actually in use.
func (a *App) healthChecks() map[string]func(context.Context) error {
	checks := map[string]func(context.Context) error{}
	if a.DB != nil {
		checks["database"] = func(ctx context.Context) error {
			return db.Check(ctx, a.DB, time.Second)
		}
	}
	if p, ok := a.SnapshotStore.(interface{ Ping(context.Context) error }); ok {
		checks["snapshots"] = p.Ping
	}
	return checks
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, s3store.Options{
			Region:   cfg.AWSRegion,
			Bucket:   cfg.S3Bucket,
			Prefix:   cfg.S3Prefix,
			KMSKeyID: cfg.SSEKMSKeyID,
			Endpoint: cfg.S3Endpoint,
		})
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildServices(app *App) error {
	renderer, err := render.NewHTMLRenderer()
	if err != nil {
		return err
	}

	engine, err := export.NewEngine(app.Config.ExportEngine, app.Config.WkhtmltopdfPath)
	if err != nil {
		if !errors.Is(err, export.ErrEngineUnavailable) {
			return err
		}
		telemetry.Warn("bootstrap.export_engine_unavailable", map[string]any{
			"engine":   app.Config.ExportEngine,
			"fallback": export.EngineHTML,
			"error":    err.Error(),
		})
		engine = export.HTMLEngine{}
	}

	exportSvc := &export.Service{Engine: engine}
	if app.Config.ArchiveExports {
		exportSvc.Store = app.Store
		if app.DB != nil {
			exportSvc.Archives = &export.PGArchiveRepo{DB: app.DB}
		} else {
			exportSvc.Archives = export.NewMemoryArchiveRepo()
		}
	}

	defaultTemplate, err := model.ParseTemplateID(app.Config.DefaultTemplate)
	if err != nil {
		defaultTemplate = model.DefaultTemplate
	}

	app.Renderer = renderer
	app.SessionStore = builder.NewMemorySessionStore(app.Config.SessionTTL, app.Config.MaxSessions)
	app.SnapshotsService = &snapshots.Service{Store: app.SnapshotStore}
	app.ExportService = exportSvc
	app.BuilderService = &builder.Service{
		Sessions:        app.SessionStore,
		Renderer:        renderer,
		Images:          imaging.NewEncoder(app.Config.MaxUploadBytes),
		Snapshots:       app.SnapshotsService,
		Exports:         exportSvc,
		DefaultTemplate: defaultTemplate,
	}
	app.BuilderHandler = builder.NewHandler(app.BuilderService, app.Config.MaxUploadBytes)
	return nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local", "test":
		return true
	default:
		return false
	}
}
