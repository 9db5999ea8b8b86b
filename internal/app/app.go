package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"go.uber.org/zap"

	"github.com/emiliopalmerini/projectboard/internal/adapters/otel"
	"github.com/emiliopalmerini/projectboard/internal/adapters/prometheus"
	"github.com/emiliopalmerini/projectboard/internal/api"
	"github.com/emiliopalmerini/projectboard/internal/board"
	"github.com/emiliopalmerini/projectboard/internal/domain"
	"github.com/emiliopalmerini/projectboard/internal/ports"
	"github.com/emiliopalmerini/projectboard/internal/projectinput"
	"github.com/emiliopalmerini/projectboard/internal/projectlist"
	"github.com/emiliopalmerini/projectboard/internal/server"
	"github.com/emiliopalmerini/projectboard/internal/state"
)

// App is one running project board: a single store and everything wired to it.
type App struct {
	Store    *state.Store
	Active   *projectlist.View
	Finished *projectlist.View
	Metrics  ports.MetricsRecorder
	Handler  http.Handler

	cfg    *Config
	logger *zap.Logger
}

// Build wires the store, views, form and routes. The OTLP exporter is only
// started when configured; failures there degrade to a no-op.
func Build(ctx context.Context, cfg *Config, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}

	var recorders ports.MultiRecorder
	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		rec := prometheus.NewRecorder()
		recorders = append(recorders, rec)
		metricsHandler = rec.Handler()
	}
	if cfg.OTEL.Active() {
		exp, err := otel.NewExporter(ctx, cfg.OTEL)
		if err != nil {
			logger.Warn("otel exporter unavailable", zap.Error(err))
			recorders = append(recorders, otel.NewNoOpExporter())
		} else {
			recorders = append(recorders, exp)
		}
	}

	store := state.NewStore()
	active := projectlist.NewView(store, domain.StatusActive)
	finished := projectlist.NewView(store, domain.StatusFinished)
	store.Subscribe("metrics", func(projects []domain.Project) {
		recorders.StoreSize(context.Background(), len(projects))
	})

	b := board.New(active, finished)
	service := projectinput.NewService(store, recorders, logger.Named("projectinput"))

	handler := server.NewRouter(server.Config{MetricsPath: cfg.Metrics.Path}, server.Deps{
		Input:   projectinput.NewHandler(service, b, logger.Named("projectinput")),
		Lists:   projectlist.NewHandler(logger.Named("projectlist"), active, finished),
		Board:   board.NewHandler(b, logger.Named("board")),
		API:     api.NewHandler(store, logger.Named("api")),
		Metrics: metricsHandler,
		Logger:  logger.Named("http"),
	})

	return &App{
		Store:    store,
		Active:   active,
		Finished: finished,
		Metrics:  recorders,
		Handler:  handler,
		cfg:      cfg,
		logger:   logger,
	}
}

// Run serves until ctx is cancelled, then shuts down within the configured
// timeout. Metrics are closed on every return path.
func (a *App) Run(ctx context.Context) error {
	defer a.closeMetrics()

	ln, err := net.Listen("tcp", a.cfg.Addr)
	if err != nil {
		return fmt.Errorf("http server: %w", err)
	}

	httpSrv := &http.Server{
		Handler:      a.Handler,
		ReadTimeout:  server.ReadTimeout,
		WriteTimeout: server.WriteTimeout,
		IdleTimeout:  server.IdleTimeout,
	}

	a.logger.Info("http server listening", zap.String("addr", ln.Addr().String()))

	errCh := make(chan error, 1)
	go func() {
		if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	return httpSrv.Shutdown(shutdownCtx)
}

func (a *App) closeMetrics() {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.Metrics.Close(ctx); err != nil {
		a.logger.Warn("closing metrics", zap.Error(err))
	}
}
