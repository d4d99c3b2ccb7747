package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/johnquangdev/meeting-analyzer/pkg/validator"

	"github.com/johnquangdev/meeting-analyzer/internal/adapter/handler"
	httpmw "github.com/johnquangdev/meeting-analyzer/internal/infrastructure/http/middleware"
	aiuse "github.com/johnquangdev/meeting-analyzer/internal/usecase/ai"
	pkgai "github.com/johnquangdev/meeting-analyzer/pkg/ai"
	"github.com/johnquangdev/meeting-analyzer/pkg/config"
)

// @title           Meeting Analyzer API
// @version         1.0
// @description     Extracts a title, summary, action items and key points from meeting transcripts

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /

func main() {
	// Load configuration; a missing model credential stops the process here
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg.Server.Debug)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()
	e.Debug = cfg.Server.Debug
	e.HideBanner = true
	e.HidePort = false

	// Register validator for request validation
	e.Validator = pkgvalidator.New()
	e.HTTPErrorHandler = handler.NewHTTPErrorHandler(logger)

	e.Use(httpmw.RequestID())
	e.Use(httpmw.RequestLogger(logger))

	// Recover from panics
	e.Use(middleware.Recover())

	e.Use(middleware.BodyLimit(cfg.Server.MaxBodySize))

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))

	// Initialize the model client once; it is shared read-only by all requests
	logger.Info("🤖 Initializing AI components...",
		zap.String("provider", cfg.AI.Provider),
		zap.String("model", cfg.AI.Model),
	)
	generator, err := pkgai.NewGenerator(context.Background(), &cfg.AI)
	if err != nil {
		logger.Fatal("Failed to initialize model client", zap.Error(err))
	}
	aiService := aiuse.NewAIService(generator, cfg.AI.Timeout, logger)
	analysisController := handler.NewAnalysisController(aiService, logger)

	router := handler.NewRouter(analysisController)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.Addr()
		logger.Info("🚀 Starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
			zap.Bool("debug", cfg.Server.Debug),
		)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal("❌ Server forced to shutdown", zap.Error(err))
	}

	logger.Info("✅ Server stopped gracefully")
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
