package main

// @title Price Predictor API
// @version 1.0.0
// @description Форма и JSON API для оценки цены за м² через удалённый сервис предсказания.
// @description Сервис проверяет описание объекта (surface_bati, nombre_pieces, type_local,
// @description surface_terrain, nombre_lots), отправляет его с Basic-аутентификацией и
// @description классифицирует ответ.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8000
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/price-predictor/docs"
	"github.com/price-predictor/internal/config"
	httpDelivery "github.com/price-predictor/internal/delivery/http"
	"github.com/price-predictor/internal/delivery/http/handler"
	"github.com/price-predictor/internal/infrastructure/predictionapi"
	"github.com/price-predictor/internal/pkg/logger"
	"github.com/price-predictor/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Price Predictor")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("prediction_endpoint", cfg.PredictionAPI.Endpoint()),
		zap.Duration("prediction_timeout", cfg.PredictionAPI.Timeout),
	)

	// 3. Prediction service client
	predictionClient := predictionapi.NewPredictionClient(&cfg.PredictionAPI, log)

	// 4. Use cases
	predictionUC := usecase.NewPredictionUseCase(predictionClient, log)

	// 5. Views and handlers
	views, err := handler.NewViews()
	if err != nil {
		log.Fatal("Failed to parse templates", zap.Error(err))
	}
	predictHandler := handler.NewPredictHandler(predictionUC, views, log)

	// 6. HTTP server
	server := httpDelivery.NewServer(cfg, log, predictHandler)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 7. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
