package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	prapp "pr-webhook-service/internal/application/pullrequest"
	webhookapp "pr-webhook-service/internal/application/webhook"
	"pr-webhook-service/internal/infrastructure/config"
	httpserver "pr-webhook-service/internal/infrastructure/http"
	"pr-webhook-service/internal/infrastructure/logger"
	"pr-webhook-service/internal/infrastructure/migrator"
	pg_uow "pr-webhook-service/internal/infrastructure/persistence/postgres/uow"
	"pr-webhook-service/internal/infrastructure/signature"
)

func main() {
	cfg := config.MustLoad()

	dsn := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DbName,
	)

	ctx := context.Background()
	log := logger.New(cfg.Env)

	if cfg.Webhook.Secret == "" {
		log.Warn("Webhook secret is not configured, deliveries will be rejected")
	}

	m, err := migrator.NewMigrator(cfg.Database.MigrationsPath, dsn, log)
	if err != nil {
		log.Error("Failed to open migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := m.Up(); err != nil {
		log.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	_ = m.Close()

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Error("Failed to parse postgres pool config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error("Failed to create postgres pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	uow := pg_uow.NewPostgresUOW(pool, log)
	verifier := signature.NewVerifier(cfg.Webhook.Secret)

	webhookService := webhookapp.NewService(uow, log)
	prService := prapp.NewService(uow, log)

	addr := fmt.Sprintf("%s:%d", cfg.HTTPServer.Address, cfg.HTTPServer.Port)
	server := httpserver.NewServer(addr, log, verifier, webhookService, prService)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan bool, 1)

	go func() {
		if err := server.Run(cfg); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		done <- true
	}()

	<-quit
	log.Info("Shutting down HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	<-done
	log.Info("Server exited")
}
