package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/leanttro/feiras-de-rua/internal/api"
	"github.com/leanttro/feiras-de-rua/internal/api/handlers"
	"github.com/leanttro/feiras-de-rua/internal/repository"
	"github.com/leanttro/feiras-de-rua/internal/service"
	"github.com/leanttro/feiras-de-rua/pkg/config"
	"github.com/leanttro/feiras-de-rua/pkg/logger"
	"github.com/leanttro/feiras-de-rua/pkg/postgres"
	"github.com/leanttro/feiras-de-rua/pkg/redisdb"

	"go.uber.org/zap"
)

// @title Feiras de Rua API
// @version 1.0
// @description Diretório de feiras de rua de São Paulo

// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level, cfg.Logger.Development); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting Feiras de Rua service")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	marketRepo := repository.NewMarketRepository(db, appLogger)
	contactRepo := repository.NewContactRepository(db, appLogger)

	var sessions repository.ChatSessionStore
	if cfg.Redis.Addr != "" {
		redisClient, err := redisdb.NewClient(ctx, &cfg.Redis, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to connect to redis", zap.Error(err))
		}
		defer redisClient.Close()
		sessions = repository.NewRedisSessionStore(redisClient, cfg.Chat.SessionTTL, cfg.Chat.HistoryMaxTurns)
	} else {
		appLogger.Info("REDIS_ADDR not set, chat sessions kept in memory")
		sessions = repository.NewMemorySessionStore(cfg.Chat.SessionTTL, cfg.Chat.HistoryMaxTurns)
	}

	// Initialize chat model and its data snapshot
	chatModel, err := service.NewChatModel(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize chat model", zap.Error(err))
	}

	var chatContext *service.ChatContext
	if chatModel != nil {
		defer chatModel.Close()

		chatContext = service.NewChatContext(marketRepo, cfg.Chat.ContextTables, cfg.Chat.ContextMaxRows, appLogger)
		if err := chatContext.Load(ctx); err != nil {
			appLogger.Warn("Chat context not loaded, assistant will answer without market data", zap.Error(err))
		}
		go chatContext.Run(ctx, cfg.Chat.SnapshotRefresh)
	} else {
		appLogger.Warn("CHAT_PROVIDER not set, chat endpoint disabled")
	}

	// Initialize services
	marketService := service.NewMarketService(marketRepo, appLogger)
	submissionService, err := service.NewSubmissionService(contactRepo, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize submission service", zap.Error(err))
	}
	sitemapService := service.NewSitemapService(marketRepo, cfg.Site.BaseURL, appLogger)
	chatService := service.NewChatService(chatModel, chatContext, sessions, cfg.Chat.Timeout, appLogger)

	// Initialize handlers
	marketHandler := handlers.NewMarketHandler(marketService, appLogger)
	submissionHandler := handlers.NewSubmissionHandler(submissionService, appLogger)
	chatHandler := handlers.NewChatHandler(chatService, appLogger)
	staticHandler := handlers.NewStaticHandler(cfg.Site.StaticDir, cfg.Site.StaticIndex, sitemapService, appLogger)

	// Setup router
	app := api.SetupRouter(&cfg.Server, marketHandler, submissionHandler, chatHandler, staticHandler, appLogger)

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
	cancel()
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
