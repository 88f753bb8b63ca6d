package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/norman8823/tariff-analyzer/internal/model"
)

type AnalysisRepository interface {
	Create(ctx context.Context, analysis *model.Analysis) error
	ListByUser(ctx context.Context, userID string) ([]model.AnalysisListItem, error)
	SearchByUser(ctx context.Context, userID, query string) ([]model.AnalysisListItem, error)
	GetByID(ctx context.Context, id uint) (*model.Analysis, error)
}

type analysisRepository struct {
	db *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

func (r *analysisRepository) Create(ctx context.Context, analysis *model.Analysis) error {
	return r.db.WithContext(ctx).Create(analysis).Error
}

func (r *analysisRepository) ListByUser(ctx context.Context, userID string) ([]model.AnalysisListItem, error) {
	var items []model.AnalysisListItem
	err := r.db.WithContext(ctx).
		Model(&model.Analysis{}).
		Select("id", "title", "created_at").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// SearchByUser runs a websearch-style full-text match over the GIN-indexed
// text columns, scoped to the caller's own records.
func (r *analysisRepository) SearchByUser(ctx context.Context, userID, query string) ([]model.AnalysisListItem, error) {
	var items []model.AnalysisListItem
	err := r.db.WithContext(ctx).
		Model(&model.Analysis{}).
		Select("id", "title", "created_at").
		Where("user_id = ?", userID).
		Where("to_tsvector('english', coalesce(title, '') || ' ' || coalesce(input_text, '') || ' ' || coalesce(summary, '')) @@ websearch_to_tsquery('english', ?)", query).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *analysisRepository) GetByID(ctx context.Context, id uint) (*model.Analysis, error) {
	var analysis model.Analysis
	result := r.db.WithContext(ctx).First(&analysis, id)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, result.Error
	}
	return &analysis, nil
}
