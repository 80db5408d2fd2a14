package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"sheweds-backend/internal/app"
	"sheweds-backend/internal/config"
	"sheweds-backend/pkg/logger"
	"sheweds-backend/pkg/validator"
)

func main() {
	logger.Init()
	defer logger.Close()

	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, using environment variables", nil)
	}

	cfg := config.New()
	validator.Init()

	application, err := app.New(cfg)
	if err != nil {
		logger.Error(err, "Failed to initialize application", nil)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		if err := application.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		logger.Error(err, "Server stopped unexpectedly", nil)
		os.Exit(1)
	case <-ctx.Done():
		logger.Info("Shutdown signal received", nil)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		logger.Error(err, "Graceful shutdown failed", nil)
		os.Exit(1)
	}
	logger.Info("Server exited", nil)
}
