package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"wacblog/app/metrics"
	"wacblog/app/routes"
	"wacblog/app/services"
	"wacblog/app/sessions"
	"wacblog/app/views"
	"wacblog/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// App is the blog web service: a seeded store behind the HTTP router.
type App struct {
	cfg     *config.Config
	logger  *zap.Logger
	store   *services.Store
	handler http.Handler
	close   func() error
}

// NewApp opens the configured storage and wires the router.
func NewApp(cfg *config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	store, closeFn, err := OpenStore(cfg.Storage, logger, services.WithMetrics(m))
	if err != nil {
		return nil, err
	}

	templates, err := views.Load()
	if err != nil {
		closeFn()
		return nil, err
	}

	var limiter *rate.Limiter
	if cfg.RateLimit.RPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)
	}

	router := routes.SetupRoutes(routes.Dependencies{
		Store:     store,
		Sessions:  sessions.NewManager(cfg.Session.CookieName, logger),
		Templates: templates,
		Logger:    logger,
		Metrics:   m,
		Gatherer:  registry,
		Limiter:   limiter,
	})

	return &App{
		cfg:     cfg,
		logger:  logger,
		store:   store,
		handler: router,
		close:   closeFn,
	}, nil
}

// Handler returns the root HTTP handler.
func (a *App) Handler() http.Handler {
	return a.handler
}

// Store returns the content store served by the app.
func (a *App) Store() *services.Store {
	return a.store
}

// Run listens on the configured address and serves until ctx is done.
func (a *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.cfg.Server.Addr, err)
	}
	return a.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then drains in-flight
// requests for at most the configured shutdown timeout.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{Handler: a.handler}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("starting blog service", zap.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	a.logger.Info("shutting down", zap.Duration("timeout", a.cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return nil
}

// Close releases the storage backend.
func (a *App) Close() error {
	return a.close()
}
