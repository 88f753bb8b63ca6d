package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"github.com/norman8823/tariff-analyzer/config"
	"github.com/norman8823/tariff-analyzer/pkg/logger"
)

// openAIRepository is an AIRepository backed by any OpenAI-compatible chat
// completion endpoint. Set base_url in config to point at a self-hosted
// server; leave it empty for api.openai.com.
type openAIRepository struct {
	client *openai.Client
	cfg    *config.Config
	logger *logger.Logger
}

func NewOpenAIRepository(cfg *config.Config, log *logger.Logger) AIRepository {
	clientCfg := openai.DefaultConfig(cfg.AI.OpenAI.APIKey)
	if cfg.AI.OpenAI.BaseURL != "" {
		clientCfg.BaseURL = cfg.AI.OpenAI.BaseURL
	}

	return &openAIRepository{
		client: openai.NewClientWithConfig(clientCfg),
		cfg:    cfg,
		logger: log,
	}
}

func (r *openAIRepository) AnalyzeTariffNews(ctx context.Context, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.AI.OpenAI.Timeout)
	defer cancel()

	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: r.cfg.AI.OpenAI.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: analysisSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: analysisPrompt(text)},
		},
	})
	if err != nil {
		r.logger.ErrorContext(ctx, "openai chat completion failed", logger.ErrorField(err))
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode < http.StatusInternalServerError && apiErr.HTTPStatusCode != http.StatusTooManyRequests {
			return "", fmt.Errorf("openai rejected request: %w", err)
		}
		return "", fmt.Errorf("%w: %v", ErrAIUnavailable, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty response from model %q", ErrAIUnavailable, r.cfg.AI.OpenAI.Model)
	}

	return resp.Choices[0].Message.Content, nil
}
