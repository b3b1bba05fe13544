package app

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/localmart/storefront/internal/config"
	"github.com/localmart/storefront/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

type application struct {
	logger *slog.Logger

	router  chi.Router
	httpSrv *http.Server

	consumers []Consumer
	starters  []Starter

	eg *errgroup.Group
}

func New(logger *slog.Logger, cfg config.Config) *application {
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.Recoverer)
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Metrics)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Cors.AllowedOrigins,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Handle("/metrics", promhttp.Handler())

	httpSrv := &http.Server{
		Handler: router,
		Addr:    net.JoinHostPort(cfg.Http.Host, cfg.Http.Port),
	}

	return &application{
		logger:  logger,
		httpSrv: httpSrv,
		router:  router,
	}
}

type HTTPHandler interface {
	Init(r chi.Router)
}

func (a *application) SetHTTPHandlers(handlers ...HTTPHandler) {
	for _, h := range handlers {
		h.Init(a.router)
	}
}

type Consumer interface {
	Consume(ctx context.Context)
	Close() error
}

func (a *application) SetConsumers(consumers ...Consumer) {
	a.consumers = consumers
}

// Starter is a background component tied to the application lifetime,
// like the cache janitor.
type Starter interface {
	Start(ctx context.Context) error
}

func (a *application) SetStarters(starters ...Starter) {
	a.starters = starters
}

func (a *application) Start(ctx context.Context) error {
	for _, s := range a.starters {
		if err := s.Start(ctx); err != nil {
			return err
		}
	}

	eg, egCtx := errgroup.WithContext(ctx)
	a.eg = eg

	for _, c := range a.consumers {
		c := c
		eg.Go(func() error {
			c.Consume(egCtx)
			return nil
		})
	}

	eg.Go(func() error {
		a.logger.Info("starting http server", slog.String("addr", a.httpSrv.Addr))
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	a.logger.Info("application started")
	return nil
}

const gracefulShutdownTimeout = 5 * time.Second

func (a *application) Stop() error {
	for _, c := range a.consumers {
		if err := c.Close(); err != nil {
			a.logger.Error("failed to close consumer", slog.Any("error", err))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	if err := a.httpSrv.Shutdown(ctx); err != nil {
		a.logger.Error("failed to shutdown http server", slog.Any("error", err))
	}

	err := a.eg.Wait()
	a.logger.Info("application stopped")
	return err
}
