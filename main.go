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

	"github.com/joho/godotenv"
	"github.com/tomsarry/woyt_sentiment/clients"
	"github.com/tomsarry/woyt_sentiment/config"
	"github.com/tomsarry/woyt_sentiment/handlers"
	"github.com/tomsarry/woyt_sentiment/logging"
	"github.com/tomsarry/woyt_sentiment/sentiment"
)

const shutdownTimeout = 10 * time.Second

// retrieve the env variables first, a missing .env file is fine
func init() {
	_ = godotenv.Load()
}

func main() {
	if err := run(); err != nil {
		slog.Error("Server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logging.NewLogger(os.Stdout, cfg.LogLevel)
	slog.SetDefault(log)

	// refuse to start without credentials
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	youtube, err := clients.NewYouTubeClient(ctx, cfg.APIKey, cfg.Endpoint)
	if err != nil {
		return err
	}

	h := handlers.NewHandler(youtube, sentiment.NewAnalyzer(), log)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: handlers.NewRouter(h, log),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
