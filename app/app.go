// Package app wires the console together: configuration, logging,
// session store, API client and the shared collaborators every command
// depends on.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"salespulse/api"
	"salespulse/config"
	"salespulse/notify"
	"salespulse/service"
	"salespulse/session"
)

// App holds the initialized collaborators for one console invocation.
type App struct {
	Config   config.Config
	Log      *zap.Logger
	Sessions *session.Store
	Client   *api.Client
	Notify   *notify.Console
	Errors   *api.ErrorHandler
	Photos   *service.PhotoOptimizer
	PDF      *service.OrderFormPDF
}

// Initialize builds the application. Logs go to a file in the state
// directory so stdout stays clean for tables and exports.
func Initialize(verbose bool) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	logCfg := zap.NewProductionConfig()
	logCfg.OutputPaths = []string{filepath.Join(dir, "console.log")}
	logCfg.ErrorOutputPaths = []string{filepath.Join(dir, "console.log")}
	if verbose {
		logCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	log, err := logCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	sessions, err := session.Open(filepath.Join(dir, "state.db"))
	if err != nil {
		return nil, err
	}

	notifier := notify.NewConsole(os.Stderr)
	client := api.NewClient(cfg.APIBaseURL, sessions, log, time.Duration(cfg.HTTPTimeoutSec)*time.Second)
	errors := api.NewErrorHandler(notifier, sessions, log)

	return &App{
		Config:   cfg,
		Log:      log,
		Sessions: sessions,
		Client:   client,
		Notify:   notifier,
		Errors:   errors,
		Photos:   service.NewPhotoOptimizer(cfg.PhotoMaxDim, cfg.PhotoQuality, log),
		PDF:      service.NewOrderFormPDF(cfg.PDFRowsPerPage, cfg.ChromePath, log),
	}, nil
}

// Close releases the application's resources.
func (a *App) Close() {
	if a.Sessions != nil {
		a.Sessions.Close()
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}

// RequireSession returns the stored session or warns that login is
// needed first.
func (a *App) RequireSession() (*session.Session, error) {
	sess, err := a.Sessions.Current()
	if err != nil {
		return nil, err
	}
	if sess == nil {
		a.Notify.Warn("Please login")
		return nil, api.ErrUnauthorized
	}
	return sess, nil
}
