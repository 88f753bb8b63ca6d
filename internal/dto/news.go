package dto

import "time"

// Article is the internal, provider-neutral article shape. Every external
// provider response is normalized into this before the relevance filter or
// any caller sees it.
type Article struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	Author      string    `json:"author,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}

type FetchNewsRequest struct {
	Keywords string `json:"keywords"`
	FromDate string `json:"from_date" validate:"omitempty,datetime=2006-01-02"`
	ToDate   string `json:"to_date" validate:"omitempty,datetime=2006-01-02"`
}

type FetchNewsResponse struct {
	Articles []Article `json:"articles"`
}

// SearchNewsParam is the resolved provider query after defaults are applied.
type SearchNewsParam struct {
	Keywords string
	FromDate string
	ToDate   string
	PageSize int
}

// NewsAPIResponse mirrors the newsapi.org /v2/everything payload.
type NewsAPIResponse struct {
	Status       string           `json:"status"`
	TotalResults int              `json:"totalResults"`
	Code         string           `json:"code"`
	Message      string           `json:"message"`
	Articles     []NewsAPIArticle `json:"articles"`
}

type NewsAPIArticle struct {
	Source struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"source"`
	Author      string    `json:"author"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	URLToImage  string    `json:"urlToImage"`
	PublishedAt time.Time `json:"publishedAt"`
	Content     string    `json:"content"`
}
