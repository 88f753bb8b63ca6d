package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/norman8823/tariff-analyzer/config"
	"github.com/norman8823/tariff-analyzer/internal/dto"
	"github.com/norman8823/tariff-analyzer/internal/model"
	"github.com/norman8823/tariff-analyzer/internal/repository"
	"github.com/norman8823/tariff-analyzer/internal/segment"
	"github.com/norman8823/tariff-analyzer/pkg/cache"
	"github.com/norman8823/tariff-analyzer/pkg/logger"
)

// FallbackNotice is returned (and stored) in place of a summary when the
// analysis backend is unreachable. The request still succeeds; only an
// unrecoverable provider rejection surfaces as an error.
const FallbackNotice = "We apologize, but we couldn't connect to our analysis service at this time. Please try again later."

const analysisCacheTTL = 10 * time.Minute

type AnalysisService interface {
	Analyze(ctx context.Context, userID string, req dto.AnalyzeRequest) (*dto.AnalyzeResponse, error)
	List(ctx context.Context, userID, query string) ([]model.AnalysisListItem, error)
	Get(ctx context.Context, userID string, id uint) (*model.Analysis, error)
}

type analysisService struct {
	cfg          *config.Config
	log          *logger.Logger
	aiRepo       repository.AIRepository
	analysisRepo repository.AnalysisRepository
	cache        cache.Cache
}

func NewAnalysisService(
	cfg *config.Config,
	log *logger.Logger,
	aiRepo repository.AIRepository,
	analysisRepo repository.AnalysisRepository,
	inmemoryCache cache.Cache,
) AnalysisService {
	return &analysisService{
		cfg:          cfg,
		log:          log,
		aiRepo:       aiRepo,
		analysisRepo: analysisRepo,
		cache:        inmemoryCache,
	}
}

func (s *analysisService) Analyze(ctx context.Context, userID string, req dto.AnalyzeRequest) (*dto.AnalyzeResponse, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, fmt.Errorf("%w: text is required", ErrInvalidInput)
	}

	var result dto.AIAnalysisResult

	completion, err := s.aiRepo.AnalyzeTariffNews(ctx, text)
	switch {
	case err == nil:
		result = segment.Split(completion)
	case errors.Is(err, repository.ErrAIUnavailable):
		// Recoverable upstream outage: the caller still gets a
		// well-formed record carrying the fixed notice.
		s.log.WarnContext(ctx, "analysis backend unavailable, storing fallback notice", logger.ErrorField(err))
		result = dto.AIAnalysisResult{
			Summary:   FallbackNotice,
			Sentiment: segment.FailedSentiment,
		}
	default:
		return nil, fmt.Errorf("failed to analyze text: %w", err)
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = model.DefaultAnalysisTitle
	}

	analysis := model.Analysis{
		UserID:    userID,
		Title:     title,
		InputText: text,
		Summary:   result.Summary,
		Sentiment: result.Sentiment,
	}
	if err := s.analysisRepo.Create(ctx, &analysis); err != nil {
		return nil, fmt.Errorf("failed to store analysis: %w", err)
	}

	s.log.InfoContext(ctx, "stored analysis",
		logger.IntField("analysis_id", int(analysis.ID)),
		logger.StringField("title", title),
	)

	return &dto.AnalyzeResponse{
		Summary:    result.Summary,
		Sentiment:  result.Sentiment,
		AnalysisID: analysis.ID,
	}, nil
}

func (s *analysisService) List(ctx context.Context, userID, query string) ([]model.AnalysisListItem, error) {
	if query != "" {
		return s.analysisRepo.SearchByUser(ctx, userID, query)
	}
	return s.analysisRepo.ListByUser(ctx, userID)
}

func (s *analysisService) Get(ctx context.Context, userID string, id uint) (*model.Analysis, error) {
	analysis, found := cache.Get[*model.Analysis](s.cache, analysisCacheKey(id))
	if !found {
		var err error
		analysis, err = s.analysisRepo.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch analysis: %w", err)
		}
		if analysis == nil {
			return nil, ErrNotFound
		}
		// Records are immutable once written, so caching is safe.
		s.cache.Set(analysisCacheKey(id), analysis, analysisCacheTTL)
	}

	// Ownership is checked after the cache so a hit can never leak another
	// owner's record.
	if analysis.UserID != userID {
		return nil, ErrForbidden
	}
	return analysis, nil
}

func analysisCacheKey(id uint) string {
	return fmt.Sprintf("analysis:%d", id)
}
