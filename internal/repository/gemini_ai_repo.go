package repository

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/norman8823/tariff-analyzer/config"
	"github.com/norman8823/tariff-analyzer/internal/dto"
	"github.com/norman8823/tariff-analyzer/pkg/httpclient"
	"github.com/norman8823/tariff-analyzer/pkg/logger"
	"github.com/norman8823/tariff-analyzer/pkg/ratelimit"
)

// AIRepository produces one free-text completion for a pasted news article.
// Segmentation of the completion is the caller's concern.
type AIRepository interface {
	AnalyzeTariffNews(ctx context.Context, text string) (string, error)
}

// geminiAIRepository is an AIRepository backed by the Google Gemini API.
type geminiAIRepository struct {
	httpClient     httpclient.HTTPClient
	cfg            *config.Config
	logger         *logger.Logger
	tokenLimiter   *ratelimit.TokenLimiter
	requestLimiter *rate.Limiter
	genAiClient    *genai.Client
}

// NewGeminiAIRepository creates a new instance of geminiAIRepository.
func NewGeminiAIRepository(cfg *config.Config, log *logger.Logger) (AIRepository, error) {
	secondsPerRequest := time.Minute / time.Duration(cfg.AI.Gemini.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	tokenLimiter := ratelimit.NewTokenLimiter(cfg.AI.Gemini.MaxTokenPerMinute)
	genAiClient, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.AI.Gemini.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiAIRepository{
		httpClient:     httpclient.New(cfg.AI.Gemini.BaseURL, cfg.AI.Gemini.Timeout, ""),
		cfg:            cfg,
		logger:         log,
		requestLimiter: requestLimiter,
		tokenLimiter:   tokenLimiter,
		genAiClient:    genAiClient,
	}, nil
}

func (r *geminiAIRepository) AnalyzeTariffNews(ctx context.Context, text string) (string, error) {
	prompt := analysisPrompt(text)

	response, err := r.sendRequest(ctx, prompt)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to send request to gemini", logger.ErrorField(err))
		return "", err
	}

	completion, err := r.parseResponse(response)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to parse response from gemini", logger.ErrorField(err))
		return "", fmt.Errorf("%w: %v", ErrAIUnavailable, err)
	}

	return completion, nil
}

func (r *geminiAIRepository) sendRequest(ctx context.Context, prompt string) (*dto.GeminiAPIResponse, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, "user"),
	}
	geminiTokenResp, err := r.genAiClient.Models.CountTokens(ctx, r.cfg.AI.Gemini.BaseModel, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to count tokens: %v", ErrAIUnavailable, err)
	}

	r.logger.Debug("Gemini token count",
		logger.IntField("total_tokens", int(geminiTokenResp.TotalTokens)),
		logger.IntField("remaining", r.tokenLimiter.GetRemaining()),
	)
	if err := r.tokenLimiter.Wait(ctx, int(geminiTokenResp.TotalTokens)); err != nil {
		return nil, fmt.Errorf("failed to wait for gemini token limit: %w", err)
	}

	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for gemini request limit: %w", err)
	}

	payload := dto.GeminiAPIRequest{
		Contents: []dto.Content{{Parts: []dto.Part{{Text: prompt}}}},
	}

	geminiAPIResponse := dto.GeminiAPIResponse{}

	apiURL := fmt.Sprintf("/%s:generateContent?key=%s", r.cfg.AI.Gemini.BaseModel, r.cfg.AI.Gemini.APIKey)

	geminiResp, err := r.httpClient.Post(ctx, apiURL, payload, nil, &geminiAPIResponse)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAIUnavailable, err)
	}

	if geminiResp.StatusCode != http.StatusOK {
		r.logger.ErrorContext(ctx, "failed to get data from gemini", logger.IntField("status_code", geminiResp.StatusCode))
		if geminiResp.StatusCode >= http.StatusInternalServerError {
			return nil, fmt.Errorf("%w: gemini returned status %d", ErrAIUnavailable, geminiResp.StatusCode)
		}
		// 4xx means the request itself was malformed; not recoverable by retrying later.
		return nil, fmt.Errorf("gemini rejected request with status %d", geminiResp.StatusCode)
	}

	return &geminiAPIResponse, nil
}

func (r *geminiAIRepository) parseResponse(response *dto.GeminiAPIResponse) (string, error) {
	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("invalid response from Gemini API: no content found")
	}

	return response.Candidates[0].Content.Parts[0].Text, nil
}
