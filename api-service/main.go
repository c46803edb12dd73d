package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/carzone/spareparts-shop/api-service/handlers"
	"github.com/carzone/spareparts-shop/api-service/store"
	"github.com/carzone/spareparts-shop/shared/config"
	"github.com/carzone/spareparts-shop/shared/kafka"
)

func main() {
	cfg := config.Load()
	config.InitLogger(cfg.LogMode)
	defer func() { _ = zap.L().Sync() }()

	// A failed store connection is not fatal: the server still starts and
	// every data endpoint reports "Database not configured" until restart.
	st, err := store.New(cfg)
	if err != nil {
		zap.S().Errorf("Store unavailable, data endpoints disabled: %v", err)
		st = nil
	}

	var orderWriter *kafkago.Writer
	if cfg.KafkaBroker != "" {
		orderWriter = kafka.NewOrderWriter([]string{cfg.KafkaBroker})
		defer orderWriter.Close()
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Validator = handlers.NewPayloadValidator()

	handlers.New(st, cfg, orderWriter).Register(e)

	go func() {
		zap.S().Infof("Starting API service on :%s", cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.S().Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.S().Info("Shutting down API service...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		zap.S().Errorf("Server shutdown error: %v", err)
	}
	if st != nil {
		if err := st.Close(ctx); err != nil {
			zap.S().Errorf("Store close error: %v", err)
		}
	}
	zap.S().Info("API service stopped")
}
