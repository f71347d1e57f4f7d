package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	ollama "github.com/ollama/ollama/api"
	"github.com/pkoukk/tiktoken-go"
	openaigo "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"superteam-bot/internal/config"
)

// ErrAIGenerationFailed indicates the model runtime failed or returned an
// empty completion.
var ErrAIGenerationFailed = errors.New("AI text generation failed")

// AIClient defines the interface for text generation against the model
// runtime. Implementations are initialized once at startup and shared by
// all callers.
type AIClient interface {
	// GenerateText generates a completion for the given prompt.
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// NewAIClient creates the AI client selected by the configuration.
func NewAIClient(cfg *config.Config, logger *zap.Logger) (AIClient, error) {
	switch cfg.AIProvider {
	case config.AIProviderOllama:
		return newOllamaClient(cfg, logger)
	default:
		return newOpenAIClient(cfg, logger), nil
	}
}

// openAIClient talks to any OpenAI-compatible runtime (a local model server
// by default) through the go-openai client.
type openAIClient struct {
	client  *openaigo.Client
	model   string
	timeout time.Duration
	logger  *zap.Logger
	encoder *tiktoken.Tiktoken // nil when the encoding is unavailable
}

func newOpenAIClient(cfg *config.Config, logger *zap.Logger) *openAIClient {
	clientConfig := openaigo.DefaultConfig(cfg.AIAPIKey)
	clientConfig.BaseURL = cfg.AIBaseURL
	clientConfig.HTTPClient = &http.Client{Timeout: cfg.AITimeout}

	log := logger.Named("OpenAIClient")

	encoder, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		log.Warn("Token encoder unavailable, token metrics will rely on API usage only", zap.Error(err))
		encoder = nil
	}

	return &openAIClient{
		client:  openaigo.NewClientWithConfig(clientConfig),
		model:   cfg.AIModel,
		timeout: cfg.AITimeout,
		logger:  log,
		encoder: encoder,
	}
}

func (c *openAIClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, openaigo.ChatCompletionRequest{
		Model: c.model,
		Messages: []openaigo.ChatCompletionMessage{
			{Role: openaigo.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		aiRequestsTotal.WithLabelValues(config.AIProviderOpenAI, c.model, "error").Inc()
		c.logger.Error("Chat completion request failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrAIGenerationFailed, err)
	}

	aiRequestsTotal.WithLabelValues(config.AIProviderOpenAI, c.model, "success").Inc()
	aiRequestDuration.WithLabelValues(config.AIProviderOpenAI, c.model).Observe(time.Since(start).Seconds())

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty response", ErrAIGenerationFailed)
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)

	c.observeTokens(prompt, text, resp.Usage.TotalTokens)
	return text, nil
}

// observeTokens records the token histogram, preferring the usage reported
// by the runtime and falling back to a local tiktoken estimate.
func (c *openAIClient) observeTokens(prompt, completion string, reported int) {
	total := reported
	if total == 0 && c.encoder != nil {
		total = len(c.encoder.Encode(prompt, nil, nil)) + len(c.encoder.Encode(completion, nil, nil))
	}
	if total > 0 {
		aiTotalTokens.WithLabelValues(config.AIProviderOpenAI, c.model).Observe(float64(total))
	}
}

// ollamaClient talks to a local ollama runtime.
type ollamaClient struct {
	client  *ollama.Client
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

func newOllamaClient(cfg *config.Config, logger *zap.Logger) (*ollamaClient, error) {
	baseURL, err := url.Parse(cfg.AIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid AI base URL %q: %w", cfg.AIBaseURL, err)
	}

	return &ollamaClient{
		client:  ollama.NewClient(baseURL, &http.Client{Timeout: cfg.AITimeout}),
		model:   cfg.AIModel,
		timeout: cfg.AITimeout,
		logger:  logger.Named("OllamaClient"),
	}, nil
}

func (c *ollamaClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	stream := false
	req := &ollama.GenerateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: &stream,
	}

	start := time.Now()
	var sb strings.Builder
	err := c.client.Generate(ctx, req, func(resp ollama.GenerateResponse) error {
		sb.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		aiRequestsTotal.WithLabelValues(config.AIProviderOllama, c.model, "error").Inc()
		c.logger.Error("Generate request failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrAIGenerationFailed, err)
	}

	aiRequestsTotal.WithLabelValues(config.AIProviderOllama, c.model, "success").Inc()
	aiRequestDuration.WithLabelValues(config.AIProviderOllama, c.model).Observe(time.Since(start).Seconds())

	return strings.TrimSpace(sb.String()), nil
}
