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

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"superteam-bot/internal/api"
	"superteam-bot/internal/config"
	"superteam-bot/internal/knowledge"
	"superteam-bot/internal/logger"
	"superteam-bot/internal/service"
	"superteam-bot/internal/store"
	"superteam-bot/internal/telegram"
	"superteam-bot/internal/twitter"
)

const shutdownTimeout = 5 * time.Second

func main() {
	// .env is optional, used for local development.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{Level: cfg.LogLevel, Encoding: "json"})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()
	sugar := zapLogger.Sugar()
	sugar.Infow("Logger initialized", "level", cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The AI client is initialized once at startup and shared by every
	// caller (knowledge fallback, draft generation).
	aiClient, err := service.NewAIClient(cfg, zapLogger)
	if err != nil {
		sugar.Fatalf("Failed to initialize AI client: %v", err)
	}
	sugar.Infow("AI client initialized", "provider", cfg.AIProvider, "model", cfg.AIModel)

	approvalStore, err := newApprovalStore(ctx, cfg, zapLogger)
	if err != nil {
		sugar.Fatalf("Failed to initialize approval store: %v", err)
	}
	sugar.Infow("Approval store initialized", "backend", cfg.StoreBackend)

	twitterClient := twitter.NewClient(cfg, zapLogger)
	drafts := service.NewDraftService(aiClient, twitterClient, zapLogger)

	entries, err := knowledge.LoadBase(cfg.KnowledgeBasePath)
	if err != nil {
		sugar.Fatalf("Failed to load knowledge base: %v", err)
	}
	sugar.Infow("Knowledge base loaded", "entries", len(entries), "path", cfg.KnowledgeBasePath)
	kb := knowledge.NewService(entries, cfg.SimilarityThreshold, aiClient, zapLogger)

	bot, err := telegram.NewBot(cfg, kb, drafts, zapLogger)
	if err != nil {
		sugar.Fatalf("Failed to initialize telegram bot: %v", err)
	}

	workflow := service.NewApprovalWorkflow(approvalStore, bot, twitterClient, zapLogger)
	bot.SetWorkflow(workflow)

	janitor := store.NewJanitor(approvalStore, cfg.ExpiryInterval, cfg.PendingMaxAge, zapLogger)
	go janitor.Run(ctx)

	httpSrv := startHTTPServer(cfg.HTTPPort, zapLogger)

	botErrChan := make(chan error, 1)
	go func() {
		botErrChan <- bot.Run(ctx)
	}()

	sugar.Info("Superteam bot started. Press Ctrl+C to exit.")
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		sugar.Info("Shutdown signal received, stopping...")
	case err := <-botErrChan:
		if err != nil {
			sugar.Errorf("Telegram bot stopped with error, shutting down: %v", err)
		} else {
			sugar.Info("Telegram bot stopped, shutting down.")
		}
		botErrChan <- nil // keep the final drain below from blocking
	}

	// Graceful drain: stop accepting new submissions, let in-flight
	// decisions resolve, then stop the transports.
	workflow.Drain()
	cancel()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorf("Failed to stop HTTP server: %v", err)
	}

	<-botErrChan
	sugar.Info("Superteam bot stopped.")
}

// newApprovalStore builds the configured store backend. Losing in-flight
// approvals on restart is acceptable only for the memory backend; the
// redis backend keeps them for PENDING_MAX_AGE.
func newApprovalStore(ctx context.Context, cfg *config.Config, zapLogger *zap.Logger) (store.ApprovalStore, error) {
	if cfg.StoreBackend == config.StoreBackendRedis {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		return store.NewRedisStore(client, cfg.PendingMaxAge, zapLogger), nil
	}
	return store.NewMemoryStore(zapLogger), nil
}

// startHTTPServer serves /health and /metrics in a background goroutine.
func startHTTPServer(port string, zapLogger *zap.Logger) *http.Server {
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: api.NewRouter(zapLogger),
	}

	go func() {
		zapLogger.Info("HTTP server started", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	return srv
}
