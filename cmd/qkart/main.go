package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/prashant-tajane/qkart-frontend/config"
	"github.com/prashant-tajane/qkart-frontend/internal/health"
	"github.com/prashant-tajane/qkart-frontend/internal/infrastructure/qkartapi"
	ctxlog "github.com/prashant-tajane/qkart-frontend/internal/log"
	"github.com/prashant-tajane/qkart-frontend/internal/metrics"
	"github.com/prashant-tajane/qkart-frontend/internal/session"
	"github.com/prashant-tajane/qkart-frontend/internal/ui"
	"github.com/prashant-tajane/qkart-frontend/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	statePath, err := cfg.ResolveStatePath()
	if err != nil {
		log.Fatalf("state path: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(statePath), 0o700); err != nil {
		log.Fatalf("state dir: %v", err)
	}

	// The terminal belongs to the interface, so logs go to a file next to
	// the state database.
	logFile, err := os.OpenFile(filepath.Join(filepath.Dir(statePath), "qkart.log"),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		log.Fatalf("log file: %v", err)
	}
	defer logFile.Close()

	logger := newLogger(cfg.Env, cfg.SlogLevel(), logFile)

	store, err := session.NewStore(statePath)
	if err != nil {
		log.Fatalf("session store: %v", err)
	}
	defer store.Close()

	manager := session.NewManager(store, logger)
	if _, err := manager.Init(); err != nil {
		// A corrupt session is recoverable: start logged out.
		logger.Error("load persisted session", "error", err)
	}

	client := qkartapi.NewClient(cfg.Endpoint, cfg.RequestTimeout(), logger)

	metrics.Register()
	var metricsSrv *http.Server
	if cfg.MetricsPort != "" {
		checker := health.NewChecker(client, logger, prometheus.DefaultRegisterer)
		metricsSrv = metrics.NewServer(":"+cfg.MetricsPort, checker)
		go func() {
			logger.Info("metrics server started", "port", cfg.MetricsPort)
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server", "error", err)
			}
		}()
	}

	m := ui.New(ui.Deps{
		Catalog:      client,
		Cart:         usecase.NewCartUsecase(client, logger),
		Auth:         usecase.NewAuthUsecase(client, logger),
		Session:      manager,
		Logger:       logger,
		SearchWindow: cfg.SearchDebounce(),
	})

	logger.Info("client started", "endpoint", cfg.Endpoint)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		logger.Error("interface", "error", err)
		log.Fatalf("qkart: %v", err)
	}

	if metricsSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown", "error", err)
		}
	}
}

func newLogger(env string, level slog.Level, out *os.File) *slog.Logger {
	var inner slog.Handler
	if env == "local" {
		inner = tint.NewHandler(out, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    true,
		})
	} else {
		inner = slog.NewJSONHandler(out, &slog.HandlerOptions{
			Level: level,
		})
	}
	return slog.New(ctxlog.NewContextHandler(inner))
}
