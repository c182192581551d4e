package llm

import (
	"context"
	"fmt"
)

const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Summarizer turns the text of one article into a short summary.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
	ModelName() string
}

type Config struct {
	Provider string
	APIKey   string
	Model    string
}

// New builds the summarizer for cfg.Provider. An error here means the model
// could not be initialized and summarization must stay disabled.
func New(ctx context.Context, cfg Config) (Summarizer, error) {
	var (
		s   Summarizer
		err error
	)

	switch cfg.Provider {
	case ProviderGemini, "":
		s, err = NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
	case ProviderOpenAI:
		s, err = NewOpenAIClient(cfg.APIKey)
	case ProviderAnthropic:
		s, err = NewAnthropicClient(cfg.APIKey)
	default:
		err = fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}

	if err != nil {
		return nil, err
	}
	return s, nil
}

// Label is the human-facing name of a provider.
func Label(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return "OpenAI"
	case ProviderAnthropic:
		return "Anthropic"
	case ProviderGemini, "":
		return "Gemini"
	default:
		return provider
	}
}
