package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"pokedex/internal/config"
	"pokedex/internal/http/server"
	"pokedex/internal/logging"
	"pokedex/internal/model"
	"pokedex/internal/otel"
	"pokedex/internal/repository/memory"
	"pokedex/internal/service"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	logger := logging.New(os.Stdout, cfg.Location())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, cfg.Tracing, logger)
	if err != nil {
		logger.Fatal("tracing_init_failed", err, nil)
	}

	// The roster is built once here and handed down; nothing below holds globals.
	pokemonRepo := memory.NewPokemonMemory(model.DefaultRoster())
	pokemonSvc := service.NewPokemonService(pokemonRepo)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	app, err := server.New(cfg, server.Deps{
		Logger:     logger,
		PokemonSvc: pokemonSvc,
		Registry:   reg,
	})
	if err != nil {
		logger.Fatal("server_init_failed", err, nil)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server_starting", logging.Fields{"addr": cfg.Addr(), "debug": cfg.Debug})
		errCh <- app.Listen(cfg.Addr())
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal("server_failed", err, nil)
		}
	case <-ctx.Done():
	}

	timeout := time.Duration(cfg.ShutdownTimeoutSec) * time.Second
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("server_shutdown_failed", err, nil)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("tracing_shutdown_failed", err, nil)
	}
	logger.Info("server_stopped", nil)
}
