package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/atelierkoba/site-api/internal/api/router"
	appconfig "github.com/atelierkoba/site-api/internal/config"
	"github.com/atelierkoba/site-api/internal/consent"
	"github.com/atelierkoba/site-api/internal/contact"
	"github.com/atelierkoba/site-api/internal/notify"
	"github.com/atelierkoba/site-api/internal/observability/metrics"
	"github.com/atelierkoba/site-api/pkg/logging"
)

func main() {
	// Local development convenience; missing .env is not an error.
	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting site-api server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	sender, err := notify.NewFromConfig(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("failed to configure email provider", "error", err)
		os.Exit(1)
	}

	contactMetrics := metrics.NewContactMetrics(nil)
	contactSvc := contact.NewService(sender, contact.ServiceConfig{
		FromEmail: cfg.ContactFromEmail,
		FromName:  cfg.ContactFromName,
		ToEmail:   cfg.ContactToEmail,
	}, contactMetrics, logger)

	var consentHandler *consent.Handler
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		consentHandler = consent.NewHandler(consent.NewStore(rdb, logger), logger)
	} else {
		logger.Warn("redis not configured, consent endpoints disabled")
	}

	r := router.New(&router.Config{
		Logger:             logger,
		ContactHandler:     contact.NewHandler(contactSvc, logger),
		ConsentHandler:     consentHandler,
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		ContactRateLimit:   cfg.ContactRateLimit,
		ContactRateBurst:   cfg.ContactRateBurst,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
