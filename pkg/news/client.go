package news

import (
	"context"
	"time"
)

const (
	defaultTitle  = "No Title"
	defaultSource = "Unknown"
	defaultURL    = "#"
)

// Article is one record returned by a news-listing API. Empty fields were
// absent in the upstream payload.
type Article struct {
	ID          string
	Title       string
	Source      string
	URL         string
	Content     string
	Description string
	PublishedAt time.Time
}

// BodyText picks the text to summarize: content, else description, else title.
func (a Article) BodyText() string {
	switch {
	case a.Content != "":
		return a.Content
	case a.Description != "":
		return a.Description
	default:
		return a.Title
	}
}

func (a Article) DisplayTitle() string {
	return orDefault(a.Title, defaultTitle)
}

func (a Article) DisplaySource() string {
	return orDefault(a.Source, defaultSource)
}

func (a Article) DisplayURL() string {
	return orDefault(a.URL, defaultURL)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

type NewsClient interface {
	Fetch(ctx context.Context, limit int) ([]Article, error)
	Name() string
}
