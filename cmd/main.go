package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/FenadoAI/fv2-ai-vibe-07ek7a/internal/adapters/agent"
	"github.com/FenadoAI/fv2-ai-vibe-07ek7a/internal/adapters/http/api"
	app "github.com/FenadoAI/fv2-ai-vibe-07ek7a/internal/app"
	"github.com/FenadoAI/fv2-ai-vibe-07ek7a/internal/config"
	"github.com/FenadoAI/fv2-ai-vibe-07ek7a/pkg/logger"
	"github.com/FenadoAI/fv2-ai-vibe-07ek7a/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout               = 10 * time.Second
	writeTimeout              = 60 * time.Second
	idleTimeout               = 60 * time.Second
	readHeaderTimeout         = 5 * time.Second
	shutdownTimeout           = 30 * time.Second
	systemMetricsInterval     = 10 * time.Second
	serviceMetricsInterval    = 5 * time.Second
	nanosecondsPerMillisecond = 1e6
)

func main() {
	// Disable default Go metrics collection to avoid duplicate metrics;
	// the custom registry collects its own system metrics.
	prometheus.Unregister(collectors.NewGoCollector())
	prometheus.Unregister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	opts := []app.Option{
		app.WithLogger(log),
		app.WithDBPath(cfg.DBPath),
		app.WithClearLedgerOnSeed(cfg.ClearLedgerOnSeed),
		app.WithStatusListLimit(cfg.StatusListLimit),
	}
	opts = append(opts, agentOptions(ctx, cfg, log)...)

	svc := app.New(opts...)
	if err := svc.Start(ctx); err != nil {
		os.Stderr.WriteString("failed to start service: " + err.Error() + "\n")
		return
	}
	defer svc.Stop()

	go startSystemMetricsUpdater(ctx)
	go startServiceMetricsUpdater(ctx, svc)

	// HTTP mux and routes.
	mux := http.NewServeMux()
	apiServer := api.NewServer(svc, svc)
	apiServer.Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
		}
	}()

	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
}

// agentOptions builds agent injection options from config. A missing API key
// leaves that agent unconfigured; its endpoints answer 503.
func agentOptions(ctx context.Context, cfg *config.Config, log logger.Logger) []app.Option {
	var opts []app.Option

	if cfg.ChatAPIKey != "" {
		chat, err := agent.NewChatAgent(agent.Config{
			APIKey:    cfg.ChatAPIKey,
			Model:     cfg.ChatModel,
			MaxTokens: cfg.AgentMaxTokens,
		})
		if err != nil {
			log.Warn(ctx, "chat agent disabled", logger.Error(err))
		} else {
			opts = append(opts, app.WithChatAgent(chat))
		}
	} else {
		log.Warn(ctx, "chat agent disabled: no API key configured")
	}

	if cfg.SearchAPIKey != "" {
		search, err := agent.NewSearchAgent(agent.Config{
			APIKey:    cfg.SearchAPIKey,
			Model:     cfg.SearchModel,
			MaxTokens: cfg.AgentMaxTokens,
		})
		if err != nil {
			log.Warn(ctx, "search agent disabled", logger.Error(err))
		} else {
			opts = append(opts, app.WithSearchAgent(search))
		}
	} else {
		log.Warn(ctx, "search agent disabled: no API key configured")
	}

	return opts
}

// startSystemMetricsUpdater starts a background goroutine that updates system metrics.
func startSystemMetricsUpdater(ctx context.Context) {
	ticker := time.NewTicker(systemMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updateSystemMetrics()
		}
	}
}

// startServiceMetricsUpdater starts a background goroutine that refreshes
// catalog and ledger gauges from the store.
func startServiceMetricsUpdater(ctx context.Context, svc *app.Service) {
	ticker := time.NewTicker(serviceMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// GetStats updates the totalModels/totalVotes gauges as a side effect.
			svc.GetStats()
		}
	}
}

// updateSystemMetrics updates system-level metrics.
func updateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	metrics.UpdateSystemMemoryUsage(m.Alloc)
	metrics.UpdateSystemGoroutineCount(runtime.NumGoroutine())

	if m.NumGC > 0 {
		avgPauseMs := float64(m.PauseTotalNs) / float64(m.NumGC) / nanosecondsPerMillisecond
		metrics.RecordSystemGCPauseTime(avgPauseMs)
	}
}
