package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"prompthub/config"
	"prompthub/handlers"
	"prompthub/helper"
	"prompthub/logger"
	"prompthub/repositories"
	"prompthub/router"
	"prompthub/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	}); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	gin.SetMode(cfg.GinMode)

	// Storage backend is chosen once for the process lifetime
	promptRepo, err := repositories.SelectPromptRepository(cfg)
	if err != nil {
		logger.Log.Fatal("failed to open prompt storage", zap.Error(err))
	}
	defer promptRepo.Close()

	promptService := services.NewPromptService(promptRepo)
	promptHandler := handlers.NewPromptHandler(promptService, helper.NewHTTPHelper())

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router.NewRouter(promptHandler, cfg.AllowedOrigins),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Log.Info("Server starting",
			zap.String("port", cfg.Port),
			zap.String("backend", promptRepo.Backend()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("graceful shutdown failed", zap.Error(err))
	}
}
