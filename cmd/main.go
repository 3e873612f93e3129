package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"staffbot/internal/api"
	"staffbot/internal/bot"
	"staffbot/internal/config"
	"staffbot/internal/database"
	"staffbot/internal/knowledge"
	"staffbot/internal/llm"
	"staffbot/pkg/logger"
)

var (
	port        = flag.Int("port", 0, "API server port (overrides config)")
	metricsPort = flag.Int("metrics-port", 0, "Metrics server port (overrides config)")
	configFile  = flag.String("config", "configs/config.yaml", "Path to configuration file")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *port != 0 {
		cfg.Port = *port
	}
	if *metricsPort != 0 {
		cfg.MetricsConfig.Port = *metricsPort
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := database.InitDB(cfg.DatabasePath); err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer database.CloseDB()

	db := database.GetDB()
	store := knowledge.NewStore(database.NewKnowledgeRepository(db))
	chats := database.NewChatRepository(db)
	tasks := database.NewTaskRepository(db)
	botConfig := bot.NewConfigManager(cfg.BotConfigPath)

	provider := initializeLLM(cfg)
	pipeline := bot.NewPipeline(store, botConfig, provider, chats)

	server := api.NewServer(pipeline, store, botConfig, chats, tasks, cfg.JWTSecret)

	if cfg.MetricsConfig.Enabled {
		go startMetricsServer(cfg.MetricsConfig.Port, cfg.MetricsConfig.Path)
	}

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: server.Router,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down servers...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("API server shutdown error", zap.Error(err))
		}
	}()

	logger.Info("Starting API server", zap.Int("port", cfg.Port))
	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		logger.Fatal("API server error", zap.Error(err))
	}
}

// initializeLLM resolves the configured provider. A missing or broken
// provider is not fatal: the bot runs on the templated path alone.
func initializeLLM(cfg *config.Config) llm.Provider {
	if cfg.LLM.Provider == "" {
		logger.Info("No LLM provider configured, running template-only")
		return nil
	}
	provider, err := llm.NewRegistry().Get(cfg.LLM.Provider, cfg.LLM.Model)
	if err != nil {
		logger.Warn("LLM provider unavailable, running template-only",
			zap.String("provider", cfg.LLM.Provider), zap.Error(err))
		return nil
	}
	logger.Info("LLM provider initialized",
		zap.String("provider", provider.Name()), zap.String("model", cfg.LLM.Model))
	return provider
}

func startMetricsServer(port int, path string) {
	if path == "" {
		path = "/metrics"
	}
	metricsRouter := gin.New()
	metricsRouter.GET(path, gin.WrapH(promhttp.Handler()))

	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: metricsRouter,
	}

	logger.Info("Starting metrics server", zap.Int("port", port))
	if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
		logger.Error("Metrics server error", zap.Error(err))
	}
}
