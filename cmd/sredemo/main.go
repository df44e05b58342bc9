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

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"sredemo/internal/api/handlers"
	"sredemo/internal/api/router"
	"sredemo/internal/config"
	"sredemo/internal/core/health"
	"sredemo/internal/db/postgres"
	"sredemo/internal/experimental"
)

func main() {
	// A missing .env is fine; the real environment wins either way.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := config.Load()
	instanceID := uuid.New()

	logger.Info("starting sredemo",
		"port", cfg.Port,
		"force_healthy", config.ForceHealthy(),
		"instance_id", instanceID.String(),
	)

	if cfg.BrokenStartup {
		logger.Info("experimental analytics feature enabled")
		experimental.ProcessData() // panics on purpose, see internal/experimental
	}

	connector := postgres.NewConnector(cfg.DatabaseURL())

	// Schema init is best-effort: the service boots even if the store is
	// down, so the fault-injection endpoints stay reachable.
	schemaCtx, cancelSchema := context.WithTimeout(context.Background(), 5*time.Second)
	postgres.EnsureSchema(schemaCtx, connector, logger)
	cancelSchema()

	todoRepo := postgres.NewTodoRepo(connector)
	state := health.NewState(config.ForceHealthy, connector, logger)

	mux := router.NewRouter(router.RouterConfig{
		InfoHandler:   handlers.NewInfoHandler(state, config.ForceHealthy, instanceID),
		TodoHandler:   handlers.NewTodoHandler(todoRepo),
		HealthHandler: handlers.NewHealthHandler(state, logger, os.Exit),
		Logger:        logger,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server crashed", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	logger.Info("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
}
