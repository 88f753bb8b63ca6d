package relevance

import (
	"strings"

	"github.com/norman8823/tariff-analyzer/internal/dto"
)

// tariffKeywords are the phrases that mark an article as tariff news.
// Matching is case-insensitive substring matching, so singular forms also
// cover their plurals.
var tariffKeywords = []string{
	"tariff",
	"trade war",
	"import duty",
	"import duties",
	"export duty",
	"export duties",
	"customs duty",
	"customs duties",
	"trade barrier",
	"trade policy",
	"trade restriction",
	"trade dispute",
}

// DefaultBodyThreshold is the number of distinct keyword phrases a body must
// contain when the title alone does not match. The original data set was
// built with a threshold of 1; 2 is a stricter config choice.
const DefaultBodyThreshold = 1

// Filter decides whether an article is about tariffs. It is a pure
// predicate: same input always yields the same answer.
type Filter struct {
	keywords      []string
	bodyThreshold int
}

func NewFilter(bodyThreshold int) *Filter {
	if bodyThreshold < 1 {
		bodyThreshold = DefaultBodyThreshold
	}
	return &Filter{
		keywords:      tariffKeywords,
		bodyThreshold: bodyThreshold,
	}
}

// IsRelevant reports whether the article is tariff-related. A single keyword
// hit in the title is sufficient on its own. Otherwise the body must contain
// at least bodyThreshold distinct keyword phrases. No body and no title hit
// means not relevant.
func (f *Filter) IsRelevant(article dto.Article) bool {
	title := strings.ToLower(article.Title)
	for _, keyword := range f.keywords {
		if strings.Contains(title, keyword) {
			return true
		}
	}

	body := article.Content
	if body == "" {
		body = article.Description
	}
	if body == "" {
		return false
	}

	body = strings.ToLower(body)
	matches := 0
	for _, keyword := range f.keywords {
		if strings.Contains(body, keyword) {
			matches++
			if matches >= f.bodyThreshold {
				return true
			}
		}
	}
	return false
}
