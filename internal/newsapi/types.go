// Package newsapi provides a client for the NewsAPI top-headlines endpoint.
// This package centralizes all news-provider interactions for the application.
package newsapi

import (
	"fmt"
	"time"
)

// headlinesResponse is the provider's top-headlines envelope.
type headlinesResponse struct {
	Status       string        `json:"status"` // "ok" or "error"
	Code         string        `json:"code,omitempty"`
	Message      string        `json:"message,omitempty"`
	TotalResults int           `json:"totalResults"`
	Articles     []articleJSON `json:"articles"`
}

// articleJSON is one article as returned by the provider.
type articleJSON struct {
	Source struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"source"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"publishedAt"`
	Content     string    `json:"content"`
}

// APIError represents an error from the news provider API.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("NewsAPI error: %s (code: %s, status: %d, endpoint: %s)", e.Message, e.Code, e.StatusCode, e.Endpoint)
}

// RateLimitError represents a rate limit error.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("NewsAPI rate limit exceeded, retry after %v", e.RetryAfter)
}
