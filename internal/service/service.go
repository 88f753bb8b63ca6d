package service

import (
	"github.com/norman8823/tariff-analyzer/config"
	"github.com/norman8823/tariff-analyzer/internal/newscache"
	"github.com/norman8823/tariff-analyzer/internal/repository"
	"github.com/norman8823/tariff-analyzer/pkg/cache"
	"github.com/norman8823/tariff-analyzer/pkg/logger"
)

type Service struct {
	AnalysisService AnalysisService
	NewsService     NewsService
}

func NewService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
	inmemoryCache cache.Cache,
	fileCache *newscache.FileCache,
	notifier Notifier,
) *Service {
	return &Service{
		AnalysisService: NewAnalysisService(cfg, log, repo.AIRepo, repo.AnalysisRepo, inmemoryCache),
		NewsService:     NewNewsService(cfg, log, repo.NewsRepo, repo.SearchRepo, fileCache, notifier),
	}
}
