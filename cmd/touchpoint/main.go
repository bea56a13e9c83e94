package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/touchpoint-ai/touchpoint/internal/api"
	"github.com/touchpoint-ai/touchpoint/internal/config"
	"github.com/touchpoint-ai/touchpoint/internal/llm"
	"github.com/touchpoint-ai/touchpoint/internal/repository"
	"github.com/touchpoint-ai/touchpoint/internal/service"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	// Initialize database
	db, err := repository.NewDB(cfg.Database.Path)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	agentRepo := repository.NewAgentRepository(db)
	touchpointRepo := repository.NewTouchpointRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Initialize the downstream generator. Without an API key the server
	// still runs; conversations degrade to the standard fallback reply.
	var generator llm.Generator = llm.Unavailable{}
	if cfg.Gemini.APIKey != "" {
		client, err := llm.NewGeminiClient(context.Background(), cfg.Gemini)
		if err != nil {
			logger.Fatal("failed to initialize gemini client", zap.Error(err))
		}
		generator = client
	} else {
		logger.Warn("no gemini api key configured, conversations will return fallback replies")
	}

	// Initialize services
	grounding := service.NewGroundingBuilder(cfg.Gemini.ChatModel)
	agentService := service.NewAgentService(agentRepo, settingsRepo, logger)
	touchpointService := service.NewTouchpointService(touchpointRepo, agentRepo, settingsRepo, cfg.Touchpoint.ActivationBaseURL, logger)
	conversationService := service.NewConversationService(agentRepo, sessionRepo, settingsRepo, generator, grounding, logger)
	proposalService := service.NewProposalService(agentRepo, sessionRepo, generator, logger)
	workspaceService := service.NewWorkspaceService(agentRepo, touchpointRepo, sessionRepo, settingsRepo, generator, logger)
	crmService := service.NewCRMService(logger)

	// Initialize router
	router := api.NewRouter(cfg, agentService, touchpointService, conversationService, proposalService, workspaceService, crmService, logger)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Address(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("starting server", zap.String("address", cfg.Address()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
