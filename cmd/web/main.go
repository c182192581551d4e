package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"newsbrief/internal/config"
	"newsbrief/internal/digest"
	"newsbrief/internal/handler"
	"newsbrief/pkg/llm"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	newsClient := cfg.NewsClient()
	providerLabel := llm.Label(cfg.LLMProvider)

	var runner handler.DigestRunner
	summarizer, initErr := llm.New(context.Background(), cfg.LLM())
	if initErr != nil {
		slog.Error("model could not be initialized, summarization disabled", "provider", cfg.LLMProvider, "error", initErr)
	} else {
		slog.Info("model initialized", "provider", cfg.LLMProvider, "model", summarizer.ModelName())
		runner = digest.NewPipeline(newsClient, summarizer, cfg.DigestLimit)
	}

	digestHandler := handler.NewDigestHandler(runner, providerLabel, newsClient.Name(), initErr)

	r := gin.Default()
	r.SetHTMLTemplate(handler.Templates())

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	api := r.Group("/api")
	api.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))
	api.GET("/digest", digestHandler.GetDigest)

	r.GET("/", digestHandler.GetIndex)
	r.POST("/digest", digestHandler.PostDigest)
	r.GET("/digest/stream", digestHandler.StreamDigest)
	r.GET("/health", digestHandler.GetHealth)

	slog.Info("starting web server", "port", cfg.Port, "provider", cfg.LLMProvider, "source", newsClient.Name())

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
