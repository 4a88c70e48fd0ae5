package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/brandguard-app/brandguard/internal/application"
	appbrand "github.com/brandguard-app/brandguard/internal/application/brand"
	"github.com/brandguard-app/brandguard/internal/config"
	"github.com/brandguard-app/brandguard/internal/infra/ai/gemini"
	"github.com/brandguard-app/brandguard/internal/infra/httpserver"
	"github.com/brandguard-app/brandguard/internal/middleware"
)

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	// load config
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	// init logger
	var logger *zap.Logger
	if cfg.Development() {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	defer logger.Sync()

	creds := cfg.Credentials()
	if len(creds) == 0 {
		logger.Warn("no API key configured, analyze requests will fail until GEMINI_API_KEY is set")
	}

	// init service
	svc := &appbrand.Service{
		Client:      gemini.NewClient(""),
		Credentials: creds,
		Clock:       application.SystemClock{},
		Log:         logger,
	}

	// init router with middleware chain
	var handler http.Handler = httpserver.NewRouter(svc, cfg.Development(), logger)
	handler = middleware.RateLimit(cfg.RateLimit.Capacity, cfg.RateLimit.RefillRate)(handler)
	handler = middleware.MetricsMiddleware(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.RequestID(handler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:        addr,
		Handler:     handler,
		ReadTimeout: 15 * time.Second,
		// Two provider attempts at 30s each must fit inside the write window.
		WriteTimeout: 75 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// run server
	go func() {
		logger.Info("server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
