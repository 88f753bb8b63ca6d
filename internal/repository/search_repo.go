package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/norman8823/tariff-analyzer/internal/model"
)

type SearchRepository interface {
	Create(ctx context.Context, search *model.Search) error
	ListByUser(ctx context.Context, userID string, limit int) ([]model.Search, error)
}

type searchRepository struct {
	db *gorm.DB
}

func NewSearchRepository(db *gorm.DB) SearchRepository {
	return &searchRepository{db: db}
}

func (r *searchRepository) Create(ctx context.Context, search *model.Search) error {
	return r.db.WithContext(ctx).Create(search).Error
}

func (r *searchRepository) ListByUser(ctx context.Context, userID string, limit int) ([]model.Search, error) {
	var searches []model.Search
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&searches).Error; err != nil {
		return nil, err
	}
	return searches, nil
}
