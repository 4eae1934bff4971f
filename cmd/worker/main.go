package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sentinel/internal/infrastructure/config"
	"sentinel/internal/infrastructure/database"
	"sentinel/internal/infrastructure/repository"
	"sentinel/internal/shared/logger"
)

// Session retention worker. Periodically deletes session records older
// than the configured retention window so the sessions table does not
// grow without bound.
func main() {
	env := "development"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger()
	log.Infow("starting session retention worker",
		"environment", env,
		"retention_days", cfg.Auth.Session.RetentionDays,
		"sweep_minutes", cfg.Auth.Session.SweepMinutes)

	if err := database.Init(&cfg.Database); err != nil {
		log.Errorw("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	sessionRepo := repository.NewSessionRepository(database.Get())

	retention := time.Duration(cfg.Auth.Session.RetentionDays) * 24 * time.Hour
	interval := time.Duration(cfg.Auth.Session.SweepMinutes) * time.Minute

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	sweep := func(ctx context.Context) {
		cutoff := time.Now().UTC().Add(-retention)
		deleted, err := sessionRepo.DeleteExpired(ctx, cutoff)
		if err != nil {
			log.Errorw("session sweep failed", "error", err)
			return
		}
		if deleted > 0 {
			log.Infow("expired sessions removed",
				"deleted", deleted,
				"cutoff", cutoff)
		}
	}

	log.Infow("running initial sweep")
	sweep(ctx)

	log.Infow("session retention worker started", "interval", interval)

	for {
		select {
		case <-ticker.C:
			sweep(ctx)

		case sig := <-sigChan:
			log.Infow("received signal, shutting down", "signal", sig)

			finalCtx, finalCancel := context.WithTimeout(context.Background(), 30*time.Second)
			sweep(finalCtx)
			finalCancel()

			log.Infow("session retention worker stopped")
			return
		}
	}
}
