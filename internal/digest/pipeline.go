// Package digest fetches the top stories and summarizes each one in turn.
package digest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"newsbrief/internal/model"
	"newsbrief/pkg/llm"
	"newsbrief/pkg/news"
)

const (
	DefaultLimit = 5
	// MinSummaryChars is the shortest trimmed body text worth sending to the model.
	MinSummaryChars = 30
)

type Pipeline struct {
	news       news.NewsClient
	summarizer llm.Summarizer
	limit      int
}

func NewPipeline(newsClient news.NewsClient, summarizer llm.Summarizer, limit int) *Pipeline {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Pipeline{news: newsClient, summarizer: summarizer, limit: limit}
}

// Run fetches the articles once and processes them strictly in order. onUpdate,
// when set, sees a pending item before each summarization call and every final
// item. A summarization failure is recorded on its item and the run moves on;
// only a fetch failure or a cancelled ctx stops the run.
func (p *Pipeline) Run(ctx context.Context, onUpdate func(model.DigestItem)) ([]model.DigestItem, error) {
	source := p.news.Name()

	articles, err := p.news.Fetch(ctx, p.limit)
	if err != nil {
		return nil, fmt.Errorf("fetch news from %s: %w", source, err)
	}

	if len(articles) > p.limit {
		articles = articles[:p.limit]
	}

	slog.Info("news fetched", "source", source, "count", len(articles))

	emit := func(item model.DigestItem) {
		if onUpdate != nil {
			onUpdate(item)
		}
	}

	items := make([]model.DigestItem, 0, len(articles))
	for i, a := range articles {
		if err := ctx.Err(); err != nil {
			return items, err
		}

		item := model.DigestItem{
			Index:  i,
			Title:  a.DisplayTitle(),
			Source: a.DisplaySource(),
			URL:    a.DisplayURL(),
			Text:   a.BodyText(),
		}

		if utf8.RuneCountInString(strings.TrimSpace(item.Text)) < MinSummaryChars {
			item.Outcome = model.OutcomePreview
			emit(item)
			items = append(items, item)
			continue
		}

		item.Outcome = model.OutcomePending
		emit(item)

		summary, err := p.summarizer.Summarize(ctx, item.Text)
		if err != nil {
			slog.Error("error summarizing article", "source", source, "model", p.summarizer.ModelName(), "url", item.URL, "error", err)
			item.Outcome = model.OutcomeError
			item.ErrorMsg = err.Error()
		} else {
			item.Outcome = model.OutcomeSummary
			item.Summary = summary
		}

		emit(item)
		items = append(items, item)
	}

	return items, nil
}
