package config

import (
	"fmt"
	"os"
	"strconv"

	"newsbrief/internal/digest"
	"newsbrief/pkg/llm"
	"newsbrief/pkg/news"
)

const (
	SourceTheNewsAPI = "thenewsapi"
	SourceFinnHub    = "finnhub"
	SourceMassive    = "massive"
)

type Config struct {
	Port        string
	FrontendURL string

	LLMProvider string
	LLMAPIKey   string
	GeminiModel string

	NewsSource   string
	NewsAPIKey   string
	NewsLanguage string
	NewsCountry  string

	DigestLimit int
}

// Load reads the configuration from the environment. Call godotenv.Load first
// so values from .env are visible.
func Load() (*Config, error) {
	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		FrontendURL:  os.Getenv("FRONTEND_URL"),
		LLMProvider:  getEnv("LLM_PROVIDER", llm.ProviderGemini),
		GeminiModel:  os.Getenv("GEMINI_MODEL"),
		NewsSource:   getEnv("NEWS_SOURCE", SourceTheNewsAPI),
		NewsLanguage: getEnv("NEWS_LANGUAGE", "en"),
		NewsCountry:  getEnv("NEWS_COUNTRY", "in"),
		DigestLimit:  digest.DefaultLimit,
	}

	switch cfg.LLMProvider {
	case llm.ProviderGemini:
		cfg.LLMAPIKey = os.Getenv("GEMINI_API_KEY")
	case llm.ProviderOpenAI:
		cfg.LLMAPIKey = os.Getenv("OPENAI_API_KEY")
	case llm.ProviderAnthropic:
		cfg.LLMAPIKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	// An unknown LLM_PROVIDER is left for llm.New to reject, so the page shows
	// it as a model initialization error instead of the server refusing to boot.

	switch cfg.NewsSource {
	case SourceTheNewsAPI:
		cfg.NewsAPIKey = os.Getenv("THENEWSAPI_KEY")
	case SourceFinnHub:
		cfg.NewsAPIKey = os.Getenv("FINNHUB_API_KEY")
	case SourceMassive:
		cfg.NewsAPIKey = os.Getenv("MASSIVE_API_KEY")
	default:
		return nil, fmt.Errorf("invalid NEWS_SOURCE %q", cfg.NewsSource)
	}

	if raw := os.Getenv("DIGEST_LIMIT"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return nil, fmt.Errorf("invalid DIGEST_LIMIT %q", raw)
		}
		cfg.DigestLimit = limit
	}

	return cfg, nil
}

func (c *Config) LLM() llm.Config {
	return llm.Config{
		Provider: c.LLMProvider,
		APIKey:   c.LLMAPIKey,
		Model:    c.GeminiModel,
	}
}

// NewsClient builds the client for the configured source. A missing key is
// not checked here: the upstream API rejects the request and the page shows
// that error.
func (c *Config) NewsClient() news.NewsClient {
	switch c.NewsSource {
	case SourceFinnHub:
		return news.NewFinnHubClient(c.NewsAPIKey)
	case SourceMassive:
		return news.NewMassiveClient(c.NewsAPIKey)
	default:
		return news.NewTheNewsAPIClient(c.NewsAPIKey, c.NewsLanguage, c.NewsCountry)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
