package dto

type AnalyzeRequest struct {
	Title string `json:"title"`
	Text  string `json:"text" validate:"required"`
}

type AnalyzeResponse struct {
	Summary    string `json:"summary"`
	Sentiment  string `json:"sentiment"`
	AnalysisID uint   `json:"analysis_id"`
}

// AIAnalysisResult is the segmented output of one LLM completion.
type AIAnalysisResult struct {
	Summary   string `json:"summary"`
	Sentiment string `json:"sentiment"`
}
