package model

import (
	"time"
)

// DefaultAnalysisTitle is used when the caller does not name an analysis.
const DefaultAnalysisTitle = "Untitled Analysis"

// Analysis is one persisted LLM analysis of a pasted news article. Records
// are immutable after creation; there is no update or delete path.
type Analysis struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    string    `gorm:"not null;index" json:"user_id"`
	Title     string    `gorm:"not null" json:"title"`
	InputText string    `gorm:"not null" json:"input_text"`
	Summary   string    `gorm:"not null" json:"summary"`
	Sentiment string    `gorm:"not null" json:"sentiment"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Analysis) TableName() string {
	return "analyses"
}

// AnalysisListItem is the projection returned by the history listing.
type AnalysisListItem struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}
