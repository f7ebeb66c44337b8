// Package server initializes and runs the dashboard backend: it selects the
// configured storage backend, wires services and the HTTP API, and handles
// graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/kanishkgoel/gridboard/internal/logging"
	"github.com/kanishkgoel/gridboard/internal/server/config"
	"github.com/kanishkgoel/gridboard/internal/server/httpapi"
	"github.com/kanishkgoel/gridboard/internal/server/repositories/storemanager"
	"github.com/kanishkgoel/gridboard/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	stores storemanager.Manager
	server *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	stores, err := storemanager.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	auth := services.NewAuthService(stores.Users(), stores.Prefs())
	prefs := services.NewPreferencesService(stores.Prefs())

	srv := httpapi.NewServer(cfg.EndpointAddr, logger, auth, prefs, stores.Dataset())

	return &App{config: cfg, logger: logger, stores: stores, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app", "backend", app.config.Backend)

	app.initSignalHandler(cancelFunc)

	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
	}

	if err := app.stores.Close(); err != nil {
		app.logger.Error(ctx, "closing stores", "error", err.Error())
	}
}
