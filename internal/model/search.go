package model

import (
	"time"

	"gorm.io/datatypes"
)

// Search is one news-fetch request and the article snapshot it produced.
// Rows are written per request and never referenced by other records.
type Search struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	UserID          string         `gorm:"not null;index" json:"user_id"`
	Keywords        string         `gorm:"not null" json:"keywords"`
	FromDate        string         `json:"from_date"`
	ToDate          string         `json:"to_date"`
	Articles        datatypes.JSON `gorm:"type:jsonb" json:"articles"`
	SelectedArticle datatypes.JSON `gorm:"type:jsonb" json:"selected_article"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (Search) TableName() string {
	return "searches"
}
