package newscache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/norman8823/tariff-analyzer/internal/dto"
)

// Entry is the single cached news result, stored as a flat JSON file.
// LastUpdated is epoch milliseconds.
type Entry struct {
	Articles    []dto.Article `json:"articles"`
	LastUpdated int64         `json:"lastUpdated"`
}

// IsFresh reports whether the entry is younger than the freshness window at
// the given instant.
func (e *Entry) IsFresh(now time.Time, window time.Duration) bool {
	age := now.UnixMilli() - e.LastUpdated
	return age >= 0 && age < window.Milliseconds()
}

// FileCache is a single-slot, file-backed cache of the default news query.
// There is deliberately no lock: concurrent refreshes race and the last
// writer wins, which is acceptable for a whole-entry-replace cache.
type FileCache struct {
	path string
}

func New(path string) *FileCache {
	return &FileCache{path: path}
}

// Load reads the cached entry. A missing file is returned as (nil, nil);
// a corrupt file is an error.
func (c *FileCache) Load() (*Entry, error) {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read news cache: %w", err)
	}

	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, fmt.Errorf("failed to decode news cache: %w", err)
	}
	return &entry, nil
}

// Store replaces the cache slot with the given articles, stamped at now.
func (c *FileCache) Store(articles []dto.Article, now time.Time) (*Entry, error) {
	entry := Entry{
		Articles:    articles,
		LastUpdated: now.UnixMilli(),
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to encode news cache: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create news cache directory: %w", err)
	}
	if err := os.WriteFile(c.path, raw, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write news cache: %w", err)
	}
	return &entry, nil
}
