package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	drepo "github.com/bl00dycrusher/trade-nexus-orchestrator/internal/domain/repository"
	"github.com/bl00dycrusher/trade-nexus-orchestrator/internal/service/filedrop"
	"github.com/bl00dycrusher/trade-nexus-orchestrator/pkg/config"
	xhttp "github.com/bl00dycrusher/trade-nexus-orchestrator/pkg/http"
	applogger "github.com/bl00dycrusher/trade-nexus-orchestrator/pkg/logger"
)

// App encapsulates the entire application lifecycle: the websocket server,
// the file-drop poller, and the optional copy journal.
type App struct {
	cfg        *config.Config
	log        *applogger.Logger
	httpServer *xhttp.Server
	poller     *filedrop.Poller
	journal    drepo.EventSink
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config, log *applogger.Logger, httpServer *xhttp.Server, poller *filedrop.Poller, journal drepo.EventSink) *App {
	return &App{
		cfg:        cfg,
		log:        log,
		httpServer: httpServer,
		poller:     poller,
		journal:    journal,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// File-drop poller runs for the whole process lifetime.
	go a.poller.Start(ctx)

	if err := a.httpServer.Start(); err != nil {
		a.log.Error("http server start error", applogger.Error(err))
		return err
	}
	a.log.Info("bridge started",
		applogger.Int("port", a.cfg.Server.Port),
		applogger.String("filedrop_dir", a.cfg.FileDrop.Dir),
		applogger.Bool("journal", a.journal != nil),
	)

	// Wait for interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.log.Info("shutdown signal received")
	cancel()
	return a.shutdown(ctx)
}

// shutdown gracefully stops all services.
func (a *App) shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.log.Error("http shutdown error", applogger.Error(err))
	}

	if a.journal != nil {
		if err := a.journal.Close(); err != nil {
			a.log.Warn("journal close error", applogger.Error(err))
		}
	}

	a.log.Info("shutdown complete")
	return nil
}
