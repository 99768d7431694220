// Package cli provides the lumen-cycle CLI using Bubble Tea TUI.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/lumen-shell/lumen/internal/application/usecase"
	"github.com/lumen-shell/lumen/internal/cli/styles"
	"github.com/lumen-shell/lumen/internal/domain/build"
	"github.com/lumen-shell/lumen/internal/domain/repository"
	"github.com/lumen-shell/lumen/internal/infrastructure/config"
	"github.com/lumen-shell/lumen/internal/infrastructure/persistence/sqlite"
	"github.com/lumen-shell/lumen/internal/infrastructure/prefs"
	"github.com/lumen-shell/lumen/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Theme     *styles.Theme
	BuildInfo build.Info
	Telemetry repository.TelemetryRepository
	Prefs     *prefs.Store

	TelemetryUC *usecase.CycleTelemetryUseCase

	db  *sql.DB
	ctx context.Context
}

// NewApp creates the CLI application with all dependencies.
func NewApp() (*App, error) {
	cfg := loadConfig()

	logLevel := cfg.Logging.Level
	if envLevel := os.Getenv("LUMEN_LOG_LEVEL"); envLevel != "" {
		logLevel = envLevel
	}
	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(logLevel),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	})
	ctx := logging.WithContext(context.Background(), logger)

	dbFile := cfg.Telemetry.DatabasePath
	if dbFile == "" {
		dataDir, err := config.GetDataDir()
		if err != nil {
			return nil, fmt.Errorf("determine data dir: %w", err)
		}
		dbFile = filepath.Join(dataDir, "lumen.db")
	}

	// The database open runs migrations; the prefs store may create its
	// file. Neither depends on the other.
	var (
		db    *sql.DB
		store *prefs.Store
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		db, err = sqlite.NewConnection(gctx, dbFile)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		store, err = prefs.NewStore(gctx, cfg.Preferences.Path)
		if err != nil {
			return fmt.Errorf("open preference store: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, err
	}

	telemetryRepo := sqlite.NewTelemetryRepository(db)

	return &App{
		Config:      cfg,
		Theme:       styles.NewTheme(),
		Telemetry:   telemetryRepo,
		Prefs:       store,
		TelemetryUC: usecase.NewCycleTelemetryUseCase(telemetryRepo),
		db:          db,
		ctx:         ctx,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from standard locations, falling back to
// defaults when no usable file exists.
func loadConfig() *config.Config {
	mgr, err := config.NewManager()
	if err != nil {
		return config.Defaults()
	}
	cfg, err := mgr.Load()
	if err != nil {
		return config.Defaults()
	}
	return cfg
}
