package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"anoa.com/lebenslauf/internal/bootstrap"
	"anoa.com/lebenslauf/internal/config"
	"anoa.com/lebenslauf/internal/scheduler"
	"anoa.com/lebenslauf/internal/server"
	"anoa.com/lebenslauf/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := server.Connect(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("failed to connect", zap.Error(err))
	}
	defer deps.Close()

	if err := bootstrap.Migrate(deps.DB); err != nil {
		zl.Fatal("migration failed", zap.Error(err))
	}
	if _, err := bootstrap.SeedCv(deps.DB, zl); err != nil {
		zl.Fatal("failed to seed cv data", zap.Error(err))
	}
	if err := bootstrap.SeedAdminUser(deps.DB, cfg.AdminEmail, cfg.AdminPassword, zl); err != nil {
		zl.Fatal("failed to seed admin user", zap.Error(err))
	}

	services := server.NewServices(deps)

	if err := services.Search.InitIndex(ctx); err != nil {
		zl.Warn("failed to initialize search index", zap.Error(err))
	} else if deps.Meili != nil {
		go func() {
			if _, err := services.Search.Reindex(ctx); err != nil {
				zl.Warn("initial reindex failed", zap.Error(err))
			}
		}()
	}

	jobs := scheduler.New(zl.Named("scheduler"))
	for _, job := range services.Jobs(cfg, zl) {
		if err := jobs.Register(job); err != nil {
			zl.Fatal("failed to register job", zap.Error(err))
		}
	}
	jobs.Start()
	defer jobs.Stop()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.NewServer(deps, services).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server exited with error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zl.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("graceful shutdown failed", zap.Error(err))
	}
}
