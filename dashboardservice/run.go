// Package dashboardservice boots the Mentoro dashboard HTTP service.
package dashboardservice

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/mentoro-app/mentoro-server/internal/api"
	"github.com/mentoro-app/mentoro-server/internal/auth"
	"github.com/mentoro-app/mentoro-server/internal/config"
	"github.com/mentoro-app/mentoro-server/internal/health"
	"github.com/mentoro-app/mentoro-server/internal/logger"
	"github.com/mentoro-app/mentoro-server/internal/services"
	"github.com/mentoro-app/mentoro-server/internal/store"
	"github.com/mentoro-app/mentoro-server/internal/store/postgres"
	"github.com/mentoro-app/mentoro-server/internal/store/sqlite"
	"github.com/mentoro-app/mentoro-server/internal/streak"
	"github.com/mentoro-app/mentoro-server/internal/suggest"
)

// Run starts the dashboard service HTTP server and blocks until shutdown or error.
func Run() error {
	log := logger.New("mentoro-service")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}

	log.Info().
		Str("db_driver", cfg.DBDriver).
		Int("http_port", cfg.HTTPPort).
		Bool("dev_mode", cfg.DevMode).
		Str("suggest_base_url", cfg.SuggestBaseURL).
		Msg("Mentoro service starting")

	// Cancellable root context bound to SIGINT/SIGTERM
	ctx, stop := newServerContext()
	defer stop()

	st, storePinger, err := newStore(ctx, cfg)
	if err != nil {
		log.Error().Stack().Err(err).Msg("Store adapter unavailable")
		return err
	}

	provider := newSuggestProvider(cfg, log)

	authorizer, err := auth.NewAuthorizer(cfg)
	if err != nil {
		log.Error().Stack().Err(err).Msg("Authorizer unavailable")
		return err
	}

	clock := streak.SystemClock()
	habitSvc := services.NewHabitService(st, clock, log)

	// Midnight reconciliation sweep
	scheduler := streak.NewScheduler(func(runCtx context.Context, now time.Time) {
		sweepCtx, cancel := context.WithTimeout(runCtx, time.Duration(cfg.ReconcileTimeoutSeconds)*time.Second)
		defer cancel()
		habitSvc.ReconcileAll(sweepCtx, now)
	}, clock, log)
	go func() {
		if err := scheduler.Run(ctx); err != nil && err != context.Canceled {
			log.Error().Stack().Err(err).Msg("streak scheduler stopped")
		}
	}()

	// Health checkers and service aggregate
	svcHealth := startHealthCheckers(ctx, cfg, log, storePinger, provider)

	deps := api.Deps{
		Users:       services.NewUserService(st),
		Habits:      habitSvc,
		Roadmap:     services.NewRoadmapService(st),
		Actions:     services.NewActionService(st),
		Skills:      services.NewSkillService(st),
		Brand:       services.NewBrandService(st),
		Finance:     services.NewFinanceService(st),
		Suggestions: services.NewSuggestionService(st, provider),
		Authorizer:  authorizer,
		IsHealthy:   svcHealth.IsHealthy,
	}
	router := api.NewRouter(deps)

	if err := waitUntilHealthy(ctx, cfg, svcHealth); err != nil {
		log.Error().Stack().Err(err).Msg("startup health check failed")
		return err
	}

	server := newHTTPServer(ctx, cfg, router)
	errCh := serveHTTP(server, log, cfg)

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Stack().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Stack().Err(err).Msg("HTTP server failed")
		return err
	}
}

// newStore builds the configured store adapter and its health pinger.
func newStore(ctx context.Context, cfg *config.Config) (store.Store, health.HealthPinger, error) {
	switch cfg.DBDriver {
	case "postgres":
		db, err := postgres.Open(cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.Bootstrap(ctx, db); err != nil {
			return nil, nil, err
		}
		st := postgres.NewWithDB(db)
		pinger, _ := st.(health.HealthPinger)
		return st, pinger, nil
	case "sqlite":
		st, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		pinger, _ := st.(health.HealthPinger)
		return st, pinger, nil
	default:
		return nil, nil, fmt.Errorf("unsupported DB_DRIVER: %s", cfg.DBDriver)
	}
}

// newSuggestProvider picks the completion provider; without an API key the
// static fallback keeps the suggestions endpoint working.
func newSuggestProvider(cfg *config.Config, log zerolog.Logger) suggest.Provider {
	if cfg.SuggestAPIKey == "" {
		log.Warn().Msg("no suggestion API key configured, using static suggestions")
		return suggest.StaticProvider{}
	}
	return suggest.NewGroqProvider(cfg.SuggestBaseURL, cfg.SuggestAPIKey, cfg.SuggestModel)
}

// startHealthCheckers starts component checkers and the service-level aggregator.
func startHealthCheckers(ctx context.Context, cfg *config.Config, log zerolog.Logger, storePinger health.HealthPinger, provider suggest.Provider) *health.ServiceHealthChecker {
	probeTimeout := time.Duration(cfg.HealthProbeTimeoutSeconds) * time.Second
	interval := time.Duration(cfg.HealthIntervalSeconds) * time.Second

	var checkers []health.HealthChecker
	storeChecker := health.NewPingChecker("store", storePinger, log, probeTimeout)
	go storeChecker.Start(ctx, interval)
	checkers = append(checkers, storeChecker)

	// The static provider has no upstream to probe.
	if p, ok := provider.(health.HealthPinger); ok {
		provChecker := health.NewPingChecker("suggest", p, log, probeTimeout)
		go provChecker.Start(ctx, interval)
		checkers = append(checkers, provChecker)
	}

	svcHealth := health.NewServiceHealthChecker(log, checkers...)
	go svcHealth.Start(ctx, interval)
	return svcHealth
}

func newHTTPServer(ctx context.Context, cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.GetHTTPAddr(),
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
}

func serveHTTP(server *http.Server, log zerolog.Logger, cfg *config.Config) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	return errCh
}

// calculateStartupHealthTimeout returns the startup health timeout in seconds,
// calculated as interval*2 with a minimum of 60 seconds.
func calculateStartupHealthTimeout(healthIntervalSeconds int) int {
	timeout := healthIntervalSeconds * 2
	if timeout < 60 {
		return 60
	}
	return timeout
}

// waitUntilHealthy blocks until service health is healthy or the startup window expires.
func waitUntilHealthy(ctx context.Context, cfg *config.Config, svcHealth *health.ServiceHealthChecker) error {
	timeoutSeconds := calculateStartupHealthTimeout(cfg.HealthIntervalSeconds)
	deadline := time.Now().Add(time.Duration(timeoutSeconds) * time.Second)
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()
	for {
		if svcHealth.IsHealthy() {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("startup aborted: dependencies not healthy within %d seconds", timeoutSeconds)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// newServerContext returns a cancellable context that is cancelled on SIGINT/SIGTERM.
func newServerContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
