package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/norman8823/tariff-analyzer/config"
	"github.com/norman8823/tariff-analyzer/internal/dto"
	"github.com/norman8823/tariff-analyzer/internal/model"
	"github.com/norman8823/tariff-analyzer/internal/newscache"
	"github.com/norman8823/tariff-analyzer/internal/relevance"
	"github.com/norman8823/tariff-analyzer/internal/repository"
	"github.com/norman8823/tariff-analyzer/pkg/logger"
)

// DefaultKeywords is the provider query used when the caller supplies none.
const DefaultKeywords = "tariffs OR trade tariffs OR import tariffs OR export tariffs OR customs duty"

// defaultLookback is how far back the date range reaches when the caller
// does not give one. Computed from wall-clock time per request.
const defaultLookback = 48 * time.Hour

const dateLayout = "2006-01-02"

// historyLimit caps how many past searches a single history read returns.
const historyLimit = 20

type NewsService interface {
	Fetch(ctx context.Context, userID string, req dto.FetchNewsRequest) ([]dto.Article, error)
	History(ctx context.Context, userID string) ([]model.Search, error)
	Cached(ctx context.Context, refresh bool) (*newscache.Entry, error)
	Refresh(ctx context.Context) (*newscache.Entry, error)
}

type newsService struct {
	cfg        *config.Config
	log        *logger.Logger
	newsRepo   repository.NewsRepository
	searchRepo repository.SearchRepository
	filter     *relevance.Filter
	fileCache  *newscache.FileCache
	notifier   Notifier
	now        func() time.Time
}

func NewNewsService(
	cfg *config.Config,
	log *logger.Logger,
	newsRepo repository.NewsRepository,
	searchRepo repository.SearchRepository,
	fileCache *newscache.FileCache,
	notifier Notifier,
) NewsService {
	return &newsService{
		cfg:        cfg,
		log:        log,
		newsRepo:   newsRepo,
		searchRepo: searchRepo,
		filter:     relevance.NewFilter(cfg.News.BodyMatchThreshold),
		fileCache:  fileCache,
		notifier:   notifier,
		now:        time.Now,
	}
}

// Fetch queries the provider with defaults applied, keeps only
// tariff-relevant articles in provider order, and records the search for the
// caller's history.
func (s *newsService) Fetch(ctx context.Context, userID string, req dto.FetchNewsRequest) ([]dto.Article, error) {
	param := s.resolveParam(req)

	articles, err := s.newsRepo.Search(ctx, param)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch news: %w", err)
	}

	filtered := lo.Filter(articles, func(a dto.Article, _ int) bool {
		return s.filter.IsRelevant(a)
	})

	s.log.InfoContext(ctx, "filtered news articles",
		logger.IntField("fetched", len(articles)),
		logger.IntField("relevant", len(filtered)),
	)

	if userID != "" {
		s.recordSearch(ctx, userID, param, filtered)
	}

	return filtered, nil
}

// History returns the caller's most recent searches, newest first.
func (s *newsService) History(ctx context.Context, userID string) ([]model.Search, error) {
	searches, err := s.searchRepo.ListByUser(ctx, userID, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch search history: %w", err)
	}
	return searches, nil
}

// Cached serves the single-slot file cache while it is fresh; a stale or
// missing slot, or an explicit refresh, triggers one provider fetch that
// overwrites the slot.
func (s *newsService) Cached(ctx context.Context, refresh bool) (*newscache.Entry, error) {
	if !refresh {
		entry, err := s.fileCache.Load()
		if err != nil {
			// A corrupt slot is repaired by the fetch below.
			s.log.WarnContext(ctx, "failed to load news cache", logger.ErrorField(err))
		}
		if entry != nil && entry.IsFresh(s.now(), s.cfg.News.CacheTTL) {
			return entry, nil
		}
	}

	return s.Refresh(ctx)
}

// Refresh always bypasses the cache and overwrites it.
func (s *newsService) Refresh(ctx context.Context) (*newscache.Entry, error) {
	previous, _ := s.fileCache.Load()

	articles, err := s.Fetch(ctx, "", dto.FetchNewsRequest{})
	if err != nil {
		return nil, err
	}

	entry, err := s.fileCache.Store(articles, s.now())
	if err != nil {
		return nil, err
	}

	s.notifyNewArticles(ctx, previous, articles)

	return entry, nil
}

func (s *newsService) resolveParam(req dto.FetchNewsRequest) dto.SearchNewsParam {
	keywords := req.Keywords
	if keywords == "" {
		keywords = DefaultKeywords
	}

	fromDate, toDate := req.FromDate, req.ToDate
	if fromDate == "" {
		fromDate = s.now().Add(-defaultLookback).Format(dateLayout)
	}
	if toDate == "" {
		toDate = s.now().Format(dateLayout)
	}

	return dto.SearchNewsParam{
		Keywords: keywords,
		FromDate: fromDate,
		ToDate:   toDate,
		PageSize: s.cfg.News.PageSize,
	}
}

// recordSearch is best effort: losing a history row never fails the fetch.
func (s *newsService) recordSearch(ctx context.Context, userID string, param dto.SearchNewsParam, articles []dto.Article) {
	snapshot, err := json.Marshal(articles)
	if err != nil {
		s.log.WarnContext(ctx, "failed to marshal article snapshot", logger.ErrorField(err))
		return
	}

	search := model.Search{
		UserID:   userID,
		Keywords: param.Keywords,
		FromDate: param.FromDate,
		ToDate:   param.ToDate,
		Articles: snapshot,
	}
	if err := s.searchRepo.Create(ctx, &search); err != nil {
		s.log.WarnContext(ctx, "failed to record search history", logger.ErrorField(err))
	}
}

func (s *newsService) notifyNewArticles(ctx context.Context, previous *newscache.Entry, articles []dto.Article) {
	if s.notifier == nil {
		return
	}

	seen := map[string]bool{}
	if previous != nil {
		for _, a := range previous.Articles {
			seen[a.URL] = true
		}
	}

	fresh := lo.Filter(articles, func(a dto.Article, _ int) bool {
		return !seen[a.URL]
	})
	if len(fresh) == 0 {
		return
	}

	if err := s.notifier.NotifyArticles(ctx, fresh); err != nil {
		s.log.WarnContext(ctx, "failed to send article notification", logger.ErrorField(err))
	}
}
