package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"statwars/internal/app"
	"statwars/internal/config"
	"statwars/internal/domain"
	"statwars/internal/ports/ws"
)

func main() {
	cfg, err := config.ParseEnv()
	if err != nil {
		slog.Error("load configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)

	catalog := domain.DefaultCatalog()
	if cfg.CatalogPath != "" {
		catalog, err = domain.LoadCatalog(cfg.CatalogPath)
		if err != nil {
			logger.Error("load catalog", "path", cfg.CatalogPath, "error", err)
			os.Exit(1)
		}
		logger.Info("catalog loaded", "path", cfg.CatalogPath, "cards", len(catalog))
	}

	hub := ws.NewHub(func() *app.Service {
		return app.NewService(catalog, nil)
	}, logger)
	handler := ws.NewHandler(hub, logger)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening", "addr", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down", "rooms", hub.RoomCount())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "error", err)
	}
}

func newLogger(cfg config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}
