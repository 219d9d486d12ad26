package app

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Rami-ben-jouira/rag-agent-project/internal/data/graph"
	server "github.com/Rami-ben-jouira/rag-agent-project/internal/http"
	"github.com/Rami-ben-jouira/rag-agent-project/internal/ingest"
	"github.com/Rami-ben-jouira/rag-agent-project/internal/observability"
	"github.com/Rami-ben-jouira/rag-agent-project/internal/platform/envutil"
	"github.com/Rami-ben-jouira/rag-agent-project/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	Cfg      Config
	Clients  Clients
	Services Services
	Server   *server.Server

	otelShutdown func(context.Context) error
}

// New loads configuration, connects to Neo4j and wires the HTTP server.
// A failed connection is logged and not retried: the app still serves, and
// every graph operation reports the connection error.
func New(ctx context.Context) (*App, error) {
	loaded, envErr := envutil.LoadDotEnv()
	cfg := LoadConfig()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	if envErr != nil {
		log.Warn("could not load .env (continuing)", "error", envErr)
	} else if !loaded {
		log.Debug("no .env file found")
	}

	otelShutdown := observability.InitOTel(ctx, log, cfg.Otel)

	var store graph.Store
	clients, err := wireClients(log)
	if err != nil {
		log.Warn("neo4j unavailable, serving without a graph (continuing)", "error", err)
		store = graph.NewUnavailableStore(err)
	} else {
		store = graph.NewCypherStore(clients.Neo4j, log)
	}

	a := assemble(log, cfg, store)
	a.Clients = clients
	a.otelShutdown = otelShutdown
	return a, nil
}

func assemble(log *logger.Logger, cfg Config, store graph.Store) *App {
	services := wireServices(log, cfg, store)
	handlers := wireHandlers(log, services)
	return &App{
		Log:      log,
		Cfg:      cfg,
		Services: services,
		Server:   wireServer(log, cfg, handlers),
	}
}

// Bootstrap seeds an empty graph when enabled. It never fails startup.
func (a *App) Bootstrap(ctx context.Context) ingest.BootstrapOutcome {
	if !a.Cfg.Bootstrap {
		a.Log.Info("bootstrap disabled")
		return ingest.BootstrapOutcome{}
	}
	return a.Services.Bootstrapper.Run(ctx)
}

// Run serves HTTP until ctx is cancelled, then shuts the server down within
// the configured timeout.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return errors.New("app not initialized")
	}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Log.Info("http server listening", "addr", a.Server.Addr())
		return a.Server.Run()
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Cfg.ShutdownTimeout)
		defer cancel()
		a.Log.Info("http server shutting down")
		return a.Server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (a *App) Close(ctx context.Context) {
	if a == nil {
		return
	}
	if err := a.Clients.Close(ctx); err != nil {
		a.Log.Warn("neo4j close failed", "error", err)
	}
	if a.otelShutdown != nil {
		if err := a.otelShutdown(ctx); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
	}
	a.Log.Sync()
}
