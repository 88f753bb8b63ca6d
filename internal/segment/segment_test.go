package segment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		wantSummary   string
		wantSentiment string
	}{
		{
			name:          "marker present",
			input:         "Summary text here.\n\n**Part 2: Sentiment is positive.",
			wantSummary:   "Summary text here.",
			wantSentiment: "**Part 2: Sentiment is positive.",
		},
		{
			name:          "marker absent",
			input:         "Just a plain completion with no sections at all.",
			wantSummary:   "Just a plain completion with no sections at all.",
			wantSentiment: FailedSentiment,
		},
		{
			name:          "empty input",
			input:         "",
			wantSummary:   "",
			wantSentiment: FailedSentiment,
		},
		{
			name:          "whitespace only input",
			input:         "   \n\t  ",
			wantSummary:   "",
			wantSentiment: FailedSentiment,
		},
		{
			name:          "splits on first marker occurrence only",
			input:         "Intro.\n**Part 2: Negative outlook.\nMore text **Part 2: repeated marker.",
			wantSummary:   "Intro.",
			wantSentiment: "**Part 2: Negative outlook.\nMore text **Part 2: repeated marker.",
		},
		{
			name:          "marker at start leaves empty summary",
			input:         "**Part 2: Sentiment only, no summary.",
			wantSummary:   "",
			wantSentiment: "**Part 2: Sentiment only, no summary.",
		},
		{
			name:          "surrounding whitespace trimmed from both sections",
			input:         "  Tariff action summarized.  \n\n  **Part 2: Mixed outlook.  ",
			wantSummary:   "Tariff action summarized.",
			wantSentiment: "**Part 2: Mixed outlook.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.input)
			assert.Equal(t, tt.wantSummary, got.Summary)
			assert.Equal(t, tt.wantSentiment, got.Sentiment)
		})
	}
}

func TestSplit_SentimentStartsWithMarker(t *testing.T) {
	inputs := []string{
		"a **Part 2: b",
		"**Part 2:",
		"summary\n**Part 2:\noutlook",
	}
	for _, input := range inputs {
		got := Split(input)
		assert.True(t, strings.HasPrefix(got.Sentiment, Marker), "input %q", input)
	}
}
