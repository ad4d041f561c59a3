package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-intelligence/config"
	_ "task-intelligence/docs" // Swagger docs
	analysisHTTP "task-intelligence/internal/analysis/delivery/http"
	analysisUC "task-intelligence/internal/analysis/usecase"
	"task-intelligence/internal/checklist"
	"task-intelligence/internal/decompose"
	"task-intelligence/internal/dependency"
	"task-intelligence/internal/effort"
	"task-intelligence/internal/httpserver"
	"task-intelligence/internal/middleware"
	"task-intelligence/internal/priority"
	"task-intelligence/internal/recurrence"
	"task-intelligence/internal/template"
	"task-intelligence/pkg/datemath"
	"task-intelligence/pkg/log"
)

// @title       Task Intelligence API
// @description Heuristic analysis for Vietnamese personal task management: priority scoring, effort estimation, decomposition, dependencies and recurrence.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Intelligence Engine...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Timezone: %s", cfg.Engine.Timezone)

	// 3. Engine services
	dateMathParser, dtErr := datemath.NewParser(cfg.Engine.Timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Engine.Timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	templates := template.New(nil)

	prioritySvc := priority.New(logger)
	dependencySvc := dependency.New(logger)
	effortSvc := effort.New(logger, templates, nil)
	recurrenceSvc := recurrence.New(logger)
	decomposeSvc := decompose.New(logger, templates)
	checklistSvc := checklist.New()

	// 4. Analysis UseCase
	uc := analysisUC.New(
		logger,
		prioritySvc,
		dependencySvc,
		effortSvc,
		recurrenceSvc,
		decomposeSvc,
		checklistSvc,
		templates,
		dateMathParser,
		analysisUC.CacheConfig{
			Size: cfg.Engine.Cache.Size,
			TTL:  cfg.Engine.Cache.TTL,
		},
	)

	// 5. Delivery
	handler := analysisHTTP.New(logger, uc)
	mw := middleware.New(logger, cfg.Engine.Limits.RateLimitPerMin)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		AnalysisHandler: handler,
		Middleware:      mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
