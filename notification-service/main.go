package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/carzone/spareparts-shop/notification-service/service"
	"github.com/carzone/spareparts-shop/shared/config"
)

func main() {
	cfg := config.Load()
	config.InitLogger(cfg.LogMode)
	defer func() { _ = zap.L().Sync() }()

	if cfg.KafkaBroker == "" {
		zap.S().Fatal("KAFKA_BROKER is required for the notification service")
	}

	notificationService := service.NewNotificationService([]string{cfg.KafkaBroker})

	ctx, cancel := context.WithCancel(context.Background())
	go notificationService.ProcessOrderEvents(ctx)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.S().Info("Shutting down Notification Service...")

	cancel()
	zap.S().Info("Notification Service stopped")
}
