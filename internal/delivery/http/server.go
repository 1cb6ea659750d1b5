package http

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/price-predictor/internal/config"
	"github.com/price-predictor/internal/delivery/http/handler"
	"github.com/price-predictor/internal/delivery/http/middleware"
	"github.com/price-predictor/internal/pkg/errors"
	"github.com/price-predictor/internal/pkg/utils"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	predictHandler *handler.PredictHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	predictHandler *handler.PredictHandler,
) *Server {
	// WriteTimeout больше таймаута исходящего запроса, иначе ответ об ошибке не успеет уйти
	app := fiber.New(fiber.Config{
		AppName:      "Price Predictor",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.PredictionAPI.Timeout + 10*time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:            app,
		config:         cfg,
		logger:         logger,
		predictHandler: predictHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.CORS.AllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// HTML форма
	s.app.Get("/", s.predictHandler.ShowForm)
	s.app.Post("/", s.predictHandler.SubmitForm)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", healthCheck)

	api.Post("/predict", s.predictHandler.Predict)
}

// App - доступ к fiber.App (используется в тестах)
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// healthCheck godoc
// @Summary Проверка состояния сервиса
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /api/v1/health [get]
func healthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "healthy",
		"time":   time.Now(),
	})
}

// customErrorHandler - кастомный обработчик ошибок.
// Любая ошибка, дошедшая до fiber, превращается в JSON-конверт без стека.
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		appErr := errors.ErrInternalServer

		var fiberErr *fiber.Error
		if stderrors.As(err, &fiberErr) {
			code = fiberErr.Code
			appErr = errors.New(errorCodeForStatus(code), fiberErr.Message, code)
		}

		logger.Error("HTTP Error",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(utils.ErrorResponse{Error: appErr})
	}
}

func errorCodeForStatus(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusBadRequest:
		return errors.CodeInvalidRequest
	default:
		if status >= fiber.StatusInternalServerError {
			return errors.CodeInternalServer
		}
		return "HTTP_ERROR"
	}
}
