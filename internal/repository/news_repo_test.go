package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/norman8823/tariff-analyzer/internal/dto"
)

func TestNormalizeNewsAPIArticle(t *testing.T) {
	published := time.Date(2025, 4, 9, 8, 0, 0, 0, time.UTC)

	raw := dto.NewsAPIArticle{
		Author:      "Jane Reporter",
		Title:       "Tariffs raised on imports",
		Description: "Short description.",
		URL:         "https://example.com/article",
		URLToImage:  "https://example.com/image.jpg",
		PublishedAt: published,
		Content:     "Full truncated content...",
	}
	raw.Source.ID = "example-news"
	raw.Source.Name = "Example News"

	article := normalizeNewsAPIArticle(raw)

	assert.Equal(t, "Tariffs raised on imports", article.Title)
	assert.Equal(t, "Full truncated content...", article.Content)
	assert.Equal(t, "Example News", article.Source)
	assert.Equal(t, "Jane Reporter", article.Author)
	assert.Equal(t, published, article.PublishedAt)
}

func TestNormalizeNewsAPIArticle_ContentFallsBackToDescription(t *testing.T) {
	raw := dto.NewsAPIArticle{
		Title:       "Tariff title",
		Description: "Only a description is available.",
	}

	article := normalizeNewsAPIArticle(raw)
	assert.Equal(t, "Only a description is available.", article.Content)
	assert.Equal(t, "Only a description is available.", article.Description)
}

func TestGeminiParseResponse(t *testing.T) {
	r := &geminiAIRepository{}

	resp := &dto.GeminiAPIResponse{
		Candidates: []dto.Candidate{
			{Content: dto.Content{Parts: []dto.Part{{Text: "summary\n**Part 2: outlook"}}}},
		},
	}
	text, err := r.parseResponse(resp)
	assert.NoError(t, err)
	assert.Equal(t, "summary\n**Part 2: outlook", text)

	_, err = r.parseResponse(&dto.GeminiAPIResponse{})
	assert.Error(t, err)
}
