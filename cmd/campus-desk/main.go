package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"campus-desk/internal/api"
	"campus-desk/internal/api/handlers"
	"campus-desk/internal/repository"
	"campus-desk/internal/service"
	"campus-desk/pkg/config"
	"campus-desk/pkg/logger"
	"campus-desk/pkg/postgres"

	"go.uber.org/zap"
)

// @title Campus Desk API
// @version 1.0
// @description Backend for the campus complaint-management portal with an AI help assistant

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting Campus Desk service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	studentRepo := repository.NewStudentRepository(db, appLogger)
	facultyRepo := repository.NewFacultyRepository(db, appLogger)
	complaintRepo := repository.NewComplaintRepository(db, appLogger)

	// Initialize the AI client when a key is configured; without one the
	// assistant endpoint reports a fixed error and the rest of the API works.
	var aiClient service.AIClient
	if cfg.Gemini.APIKey != "" {
		llmService, err := service.NewLLMService(ctx, &cfg.Gemini, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize LLM service", zap.Error(err))
		}
		aiClient = llmService
	} else {
		appLogger.Warn("GEMINI_API_KEY is not set, AI assistant is disabled")
	}

	knowledgeService := service.NewKnowledgeService(aiClient, &cfg.Gemini, appLogger)

	// Initialize services
	studentService := service.NewStudentService(studentRepo, appLogger)
	facultyService := service.NewFacultyService(facultyRepo, appLogger)
	complaintService := service.NewComplaintService(complaintRepo, facultyRepo, appLogger)
	assistantService := service.NewAssistantService(aiClient, knowledgeService, appLogger)

	// Initialize handlers
	studentHandler := handlers.NewStudentHandler(studentService, appLogger)
	facultyHandler := handlers.NewFacultyHandler(facultyService, appLogger)
	complaintHandler := handlers.NewComplaintHandler(complaintService, appLogger)
	assistantHandler := handlers.NewAssistantHandler(assistantService, appLogger)

	// Setup router
	app := api.SetupRouter(studentHandler, facultyHandler, complaintHandler, assistantHandler)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
