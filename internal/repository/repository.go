package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/norman8823/tariff-analyzer/config"
	"github.com/norman8823/tariff-analyzer/pkg/logger"
)

type Repository struct {
	AnalysisRepo AnalysisRepository
	SearchRepo   SearchRepository
	AIRepo       AIRepository
	NewsRepo     NewsRepository
}

func NewRepository(cfg *config.Config, db *gorm.DB, log *logger.Logger) (*Repository, error) {
	var (
		aiRepo AIRepository
		err    error
	)
	switch cfg.AI.Provider {
	case "openai":
		aiRepo = NewOpenAIRepository(cfg, log)
	case "gemini", "":
		aiRepo, err = NewGeminiAIRepository(cfg, log)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown ai provider: %q", cfg.AI.Provider)
	}

	return &Repository{
		AnalysisRepo: NewAnalysisRepository(db),
		SearchRepo:   NewSearchRepository(db),
		AIRepo:       aiRepo,
		NewsRepo:     NewNewsAPIRepository(cfg, log),
	}, nil
}
