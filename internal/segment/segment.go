// Package segment splits a free-text LLM completion into its summary and
// sentiment-outlook sections. The completion is prompted to contain a
// literal section marker, but the parse is best effort: third-party model
// output is never trusted to be well formed, and segmentation must not fail
// even when it is not.
package segment

import (
	"strings"

	"github.com/norman8823/tariff-analyzer/internal/dto"
)

// Marker is the literal substring that opens the sentiment section.
const Marker = "**Part 2:"

// FailedSentiment is stored when the completion carries no marker. The
// sentiment column is non-nullable, so a parse miss still has to produce a
// value.
const FailedSentiment = "Analysis failed"

// Split segments a completion on the first occurrence of Marker. The summary
// is the trimmed text before the marker; the sentiment is the marker plus
// everything after it, trimmed. Without a marker the whole text becomes the
// summary and the sentiment is FailedSentiment. Split never fails.
func Split(responseText string) dto.AIAnalysisResult {
	idx := strings.Index(responseText, Marker)
	if idx < 0 {
		return dto.AIAnalysisResult{
			Summary:   strings.TrimSpace(responseText),
			Sentiment: FailedSentiment,
		}
	}

	return dto.AIAnalysisResult{
		Summary:   strings.TrimSpace(responseText[:idx]),
		Sentiment: strings.TrimSpace(responseText[idx:]),
	}
}
