package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"logistica/internal/config"
	"logistica/internal/core/logger"
	"logistica/internal/devserver"

	"go.uber.org/zap"
)

// Standalone development backend, equivalent to "logistica serve".
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	appLog := logger.NewLogger(true)
	defer func() { _ = appLog.Sync() }()

	srv, err := devserver.New(devserver.Options{JWTSecret: cfg.JWTSecret, TrustedProxies: cfg.TrustedProxies, Seed: true}, appLog)
	if err != nil {
		appLog.Fatal("Unable to build backend", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx, cfg.ServeAddr); err != nil {
		appLog.Error("Backend stopped", zap.Error(err))
		os.Exit(1)
	}
}
