package repository

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/samber/lo"
	"golang.org/x/time/rate"

	"github.com/norman8823/tariff-analyzer/config"
	"github.com/norman8823/tariff-analyzer/internal/dto"
	"github.com/norman8823/tariff-analyzer/pkg/httpclient"
	"github.com/norman8823/tariff-analyzer/pkg/logger"
)

type NewsRepository interface {
	Search(ctx context.Context, param dto.SearchNewsParam) ([]dto.Article, error)
}

// newsAPIRepository is a NewsRepository backed by newsapi.org. Provider
// field names stop at this adapter; everything downstream sees dto.Article.
type newsAPIRepository struct {
	httpClient     httpclient.HTTPClient
	cfg            *config.Config
	logger         *logger.Logger
	requestLimiter *rate.Limiter
}

func NewNewsAPIRepository(cfg *config.Config, log *logger.Logger) NewsRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.News.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	return &newsAPIRepository{
		httpClient:     httpclient.New(cfg.News.BaseURL, cfg.News.Timeout, ""),
		cfg:            cfg,
		logger:         log,
		requestLimiter: requestLimiter,
	}
}

func (r *newsAPIRepository) Search(ctx context.Context, param dto.SearchNewsParam) ([]dto.Article, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for news request limit: %w", err)
	}

	queryParams := map[string]string{
		"q":        param.Keywords,
		"from":     param.FromDate,
		"to":       param.ToDate,
		"sortBy":   "publishedAt",
		"language": "en",
		"pageSize": strconv.Itoa(param.PageSize),
	}

	headers := map[string]string{
		"X-Api-Key": r.cfg.News.APIKey,
	}

	var apiResp dto.NewsAPIResponse
	resp, err := r.httpClient.Get(ctx, "/everything", queryParams, headers, &apiResp)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch data from news provider: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		r.logger.ErrorContext(ctx, "news provider returned non-OK status",
			logger.IntField("status_code", resp.StatusCode),
			logger.StringField("provider_code", apiResp.Code),
		)
		return nil, fmt.Errorf("news provider returned status %d", resp.StatusCode)
	}

	if apiResp.Status != "ok" {
		return nil, fmt.Errorf("news provider error: %s (%s)", apiResp.Message, apiResp.Code)
	}

	articles := lo.Map(apiResp.Articles, func(a dto.NewsAPIArticle, _ int) dto.Article {
		return normalizeNewsAPIArticle(a)
	})

	r.logger.DebugContext(ctx, "fetched articles from news provider",
		logger.IntField("total_results", apiResp.TotalResults),
		logger.IntField("returned", len(articles)),
	)

	return articles, nil
}

func normalizeNewsAPIArticle(a dto.NewsAPIArticle) dto.Article {
	content := a.Content
	if content == "" {
		content = a.Description
	}

	return dto.Article{
		Title:       a.Title,
		Description: a.Description,
		Content:     content,
		URL:         a.URL,
		Source:      a.Source.Name,
		Author:      a.Author,
		ImageURL:    a.URLToImage,
		PublishedAt: a.PublishedAt,
	}
}
