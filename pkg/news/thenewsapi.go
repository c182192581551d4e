package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const theNewsAPITopURL = "https://api.thenewsapi.com/v1/news/top"

type TheNewsAPIClient struct {
	apiKey     string
	language   string
	country    string
	httpClient *http.Client
}

func NewTheNewsAPIClient(apiKey, language, country string) *TheNewsAPIClient {
	return &TheNewsAPIClient{
		apiKey:     apiKey,
		language:   language,
		country:    country,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *TheNewsAPIClient) Name() string {
	return "TheNewsAPI"
}

// Fetch returns the first limit top stories in the order the API lists them.
func (c *TheNewsAPIClient) Fetch(ctx context.Context, limit int) ([]Article, error) {
	query := url.Values{}
	query.Set("api_token", c.apiKey)
	query.Set("language", c.language)
	query.Set("country", c.country)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, theNewsAPITopURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("thenewsapi request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("thenewsapi fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr tnaErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("thenewsapi fetch: status %d: %s", resp.StatusCode, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("thenewsapi fetch: status %d", resp.StatusCode)
	}

	var raw tnaResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("thenewsapi decode: %w", err)
	}

	items := raw.Data
	if limit >= 0 && len(items) > limit {
		items = items[:limit]
	}

	articles := make([]Article, 0, len(items))
	for _, item := range items {
		publishedAt, err := time.Parse(time.RFC3339, item.PublishedAt)
		if err != nil {
			publishedAt = time.Time{}
		}

		articles = append(articles, Article{
			ID:          item.UUID,
			Title:       item.Title,
			Source:      item.Source,
			URL:         item.URL,
			Content:     item.Content,
			Description: item.Description,
			PublishedAt: publishedAt,
		})
	}

	return articles, nil
}

type tnaResponse struct {
	Data []tnaArticle `json:"data"`
}

type tnaArticle struct {
	UUID        string `json:"uuid"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	PublishedAt string `json:"published_at"`
}

type tnaErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
