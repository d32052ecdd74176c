package server

import (
	"context"
	"log/slog"
	"net/http"

	"gamewatch/internal/config"
	"gamewatch/internal/dedup"
	"gamewatch/internal/domain"
	httpapi "gamewatch/internal/http"
	"gamewatch/internal/metrics"
	"gamewatch/internal/notify"
	"gamewatch/internal/ntfy"
	"gamewatch/internal/providers"
	"gamewatch/internal/scheduler"
	"gamewatch/internal/store"
	"gamewatch/internal/users"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	games         *store.MemoryStore
	users         *users.FileStore
	notified      *dedup.Store
	gate          *notify.Gate
	httpServer    httpServer
	metricsServer httpServer
	scheduler     Scheduler
	metricsStop   func(context.Context) error
}

// New constructs a server with default provider wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProviders(cfg, logger, buildProviders(cfg))
}

func newServerWithProviders(cfg config.Config, logger *slog.Logger, provs []providers.ScheduleProvider) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	directory := domain.NewDirectory()
	userStore := users.NewFileStore(cfg.DataDir, logger)
	notified := dedup.NewStore(cfg.DataDir, logger)
	notified.Load()
	games := store.NewMemoryStore()

	aggregator := providers.NewAggregator(provs, logger, recorder)
	sender := ntfy.NewClient(ntfy.Config{BaseURL: cfg.Ntfy.BaseURL})
	notifier := notify.NewNotifier(sender, directory, cfg.PublicBaseURL, logger, recorder)
	gate := notify.NewGate(aggregator, games, userStore, notified, notifier, logger, recorder)
	sched := scheduler.New(gate, notified, logger, cfg.PollInterval, cfg.ResetHour)

	httpSrv := buildHTTPServer(cfg, userStore, directory, games, gate, sender, logger, recorder, sched)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		games:         games,
		users:         userStore,
		notified:      notified,
		gate:          gate,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		scheduler:     sched,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, sched Scheduler) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		scheduler:  sched,
	}
}

func buildHTTPServer(cfg config.Config, userStore *users.FileStore, directory *domain.Directory, games *store.MemoryStore, gate *notify.Gate, sender *ntfy.Client, logger *slog.Logger, recorder *metrics.Recorder, sched Scheduler) httpServer {
	var statusFn func() scheduler.Status
	if sched != nil {
		statusFn = sched.Status
	}

	handler := httpapi.NewHandler(userStore, directory, games, gate, sender, cfg.StreamBaseURL, logger, statusFn)
	router := httpapi.NewRouter(handler, logger, recorder)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the scheduler and HTTP server, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.scheduler.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.scheduler.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop scheduler", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	// Final flush so a clean shutdown never loses dedup state.
	if s.notified != nil {
		if err := s.notified.Flush(); err != nil && s.logger != nil {
			s.logger.Warn("failed to flush notified set on shutdown", "error", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
