package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Store backends for pending approvals.
const (
	StoreBackendMemory = "memory"
	StoreBackendRedis  = "redis"
)

// AI providers.
const (
	AIProviderOpenAI = "openai"
	AIProviderOllama = "ollama"
)

// Config contains the full configuration of the bot process.
type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Telegram settings
	TelegramBotToken    string `envconfig:"TELEGRAM_BOT_TOKEN" required:"true"`
	TelegramAdminChatID int64  `envconfig:"TELEGRAM_ADMIN_CHAT_ID" required:"true"`

	// Twitter settings
	TwitterAPIKey       string `envconfig:"TWITTER_API_KEY"`
	TwitterAPISecret    string `envconfig:"TWITTER_API_SECRET"`
	TwitterAccessToken  string `envconfig:"TWITTER_ACCESS_TOKEN"`
	TwitterAccessSecret string `envconfig:"TWITTER_ACCESS_SECRET"`

	// AI settings. The default base URL points at a local
	// OpenAI-compatible model runtime.
	AIProvider string        `envconfig:"AI_PROVIDER" default:"openai"`
	AIBaseURL  string        `envconfig:"AI_BASE_URL" default:"http://localhost:4891/v1"`
	AIAPIKey   string        `envconfig:"AI_API_KEY"`
	AIModel    string        `envconfig:"AI_MODEL" default:"gpt4all-lora-quantized"`
	AITimeout  time.Duration `envconfig:"AI_TIMEOUT" default:"120s"`

	// Knowledge base settings
	KnowledgeBasePath   string  `envconfig:"KNOWLEDGE_BASE_PATH" default:"knowledgeBase.json"`
	SimilarityThreshold float64 `envconfig:"SIMILARITY_THRESHOLD" default:"0.3"`

	// Pending approval store settings
	StoreBackend   string        `envconfig:"STORE_BACKEND" default:"memory"`
	RedisAddr      string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword  string        `envconfig:"REDIS_PASSWORD"`
	RedisDB        int           `envconfig:"REDIS_DB" default:"0"`
	PendingMaxAge  time.Duration `envconfig:"PENDING_MAX_AGE" default:"24h"`
	ExpiryInterval time.Duration `envconfig:"EXPIRY_INTERVAL" default:"10m"`

	// HTTP server for health checks and Prometheus metrics
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	switch cfg.StoreBackend {
	case StoreBackendMemory, StoreBackendRedis:
	default:
		return nil, fmt.Errorf("unknown store backend %q (expected %q or %q)",
			cfg.StoreBackend, StoreBackendMemory, StoreBackendRedis)
	}

	switch cfg.AIProvider {
	case AIProviderOpenAI, AIProviderOllama:
	default:
		return nil, fmt.Errorf("unknown AI provider %q (expected %q or %q)",
			cfg.AIProvider, AIProviderOpenAI, AIProviderOllama)
	}

	if cfg.SimilarityThreshold < 0 || cfg.SimilarityThreshold > 1 {
		return nil, fmt.Errorf("similarity threshold %v out of range [0,1]", cfg.SimilarityThreshold)
	}

	return &cfg, nil
}
