package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"newsbrief/internal/config"
	"newsbrief/internal/digest"
	"newsbrief/internal/model"
	"newsbrief/pkg/llm"

	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summarizer, err := llm.New(ctx, cfg.LLM())
	if err != nil {
		log.Fatalf("%s model could not be initialized: %v", llm.Label(cfg.LLMProvider), err)
	}

	newsClient := cfg.NewsClient()
	pipeline := digest.NewPipeline(newsClient, summarizer, cfg.DigestLimit)

	slog.Info("running digest", "source", newsClient.Name(), "provider", cfg.LLMProvider, "model", summarizer.ModelName(), "limit", cfg.DigestLimit)

	items, err := pipeline.Run(ctx, nil)
	if err != nil {
		log.Fatalf("error running digest: %v", err)
	}

	var summarized, previewed, failed int
	for _, item := range items {
		switch item.Outcome {
		case model.OutcomeSummary:
			slog.Info("article summarized", "index", item.Index, "title", item.Title, "source", item.Source, "url", item.URL, "summary", item.Summary)
			summarized++
		case model.OutcomePreview:
			slog.Info("not enough content to summarize", "index", item.Index, "title", item.Title, "source", item.Source, "url", item.URL, "preview", item.Text)
			previewed++
		case model.OutcomeError:
			slog.Error("error during summarization", "index", item.Index, "title", item.Title, "url", item.URL, "error", item.ErrorMsg)
			failed++
		}
	}

	slog.Info("digest complete", "articles", len(items), "summarized", summarized, "previewed", previewed, "errors", failed)
}
