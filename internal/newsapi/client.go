package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"

	"github.com/auspexlabs/auspex/internal/interfaces"
	"github.com/auspexlabs/auspex/internal/models"
)

const (
	// DefaultBaseURL is the base URL for the NewsAPI service.
	DefaultBaseURL = "https://newsapi.org/v2"

	// DefaultTimeout is the default HTTP timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultRateLimit is the default rate limit (requests per second).
	DefaultRateLimit = 5
)

// Client is a NewsAPI client. It implements interfaces.ArticleSource.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     arbor.ILogger
	limiter    *rate.Limiter
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets a logger.
func WithLogger(logger arbor.ILogger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets a custom rate limit.
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// NewClient creates a new NewsAPI client.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// get performs a GET request to the API.
func (c *Client) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &RateLimitError{RetryAfter: time.Second}
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("apiKey", c.apiKey)

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if c.logger != nil {
		c.logger.Debug().
			Str("url", c.baseURL+path).
			Msg("NewsAPI request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Endpoint:   path,
		}
		// The provider wraps errors in a JSON envelope; surface its
		// code/message when present
		var envelope headlinesResponse
		if json.Unmarshal(body, &envelope) == nil && envelope.Status == "error" {
			apiErr.Code = envelope.Code
			apiErr.Message = envelope.Message
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// TopHeadlines retrieves top headlines matching the query. Articles without
// content are dropped: they carry no analyzable signal.
func (c *Client) TopHeadlines(ctx context.Context, query interfaces.HeadlineQuery) ([]models.Article, error) {
	params := url.Values{}
	if query.Country != "" {
		params.Set("country", query.Country)
	}
	if query.Category != "" {
		params.Set("category", query.Category)
	}
	if query.Query != "" {
		params.Set("q", query.Query)
	}
	if query.PageSize > 0 {
		params.Set("pageSize", strconv.Itoa(query.PageSize))
	}

	var result headlinesResponse
	if err := c.get(ctx, "/top-headlines", params, &result); err != nil {
		return nil, err
	}

	if result.Status == "error" {
		return nil, &APIError{
			StatusCode: http.StatusOK,
			Code:       result.Code,
			Message:    result.Message,
			Endpoint:   "/top-headlines",
		}
	}

	articles := make([]models.Article, 0, len(result.Articles))
	for _, a := range result.Articles {
		if a.Content == "" {
			continue
		}
		articles = append(articles, models.Article{
			Source:      a.Source.Name,
			Title:       a.Title,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
			Content:     a.Content,
		})
	}

	if c.logger != nil {
		c.logger.Debug().
			Int("total", result.TotalResults).
			Int("with_content", len(articles)).
			Msg("NewsAPI top headlines fetched")
	}

	return articles, nil
}
