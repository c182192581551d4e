package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"newsbrief/internal/model"

	"github.com/gin-gonic/gin"
)

type DigestRunner interface {
	Run(ctx context.Context, onUpdate func(model.DigestItem)) ([]model.DigestItem, error)
}

type DigestHandler struct {
	runner   DigestRunner
	provider string
	source   string
	initErr  error
}

// NewDigestHandler wires the page to runner. A non-nil initErr means the model
// could not be initialized: every digest route then refuses to run.
func NewDigestHandler(runner DigestRunner, provider, source string, initErr error) *DigestHandler {
	return &DigestHandler{
		runner:   runner,
		provider: provider,
		source:   source,
		initErr:  initErr,
	}
}

func (h *DigestHandler) page() pageData {
	data := pageData{
		Provider: h.provider,
		Source:   h.source,
	}
	if h.initErr != nil {
		data.ModelError = h.modelErrorMessage()
	}
	return data
}

func (h *DigestHandler) modelErrorMessage() string {
	return fmt.Sprintf("%s model could not be initialized: %v", h.provider, h.initErr)
}

func (h *DigestHandler) GetIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", h.page())
}

func (h *DigestHandler) PostDigest(c *gin.Context) {
	data := h.page()

	if h.initErr != nil {
		c.HTML(http.StatusServiceUnavailable, "index.html", data)
		return
	}

	items, err := h.runner.Run(c.Request.Context(), nil)
	if err != nil {
		slog.Error("error running digest", "error", err)
		data.FetchError = err.Error()
		c.HTML(http.StatusBadGateway, "index.html", data)
		return
	}

	data.Ran = true
	data.Items = toItemResponses(items)
	c.HTML(http.StatusOK, "index.html", data)
}

func (h *DigestHandler) StreamDigest(c *gin.Context) {
	if h.initErr != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": h.modelErrorMessage()})
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	items, err := h.runner.Run(c.Request.Context(), func(item model.DigestItem) {
		c.SSEvent("item", toItemResponse(item))
		c.Writer.Flush()
	})
	if err != nil {
		slog.Error("error streaming digest", "error", err)
		c.SSEvent("error", gin.H{"error": err.Error()})
		c.Writer.Flush()
		return
	}

	c.SSEvent("done", gin.H{"count": len(items)})
	c.Writer.Flush()
}

func (h *DigestHandler) GetDigest(c *gin.Context) {
	if h.initErr != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": h.modelErrorMessage()})
		return
	}

	items, err := h.runner.Run(c.Request.Context(), nil)
	if err != nil {
		slog.Error("error running digest", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, DigestResponse{
		Source: h.source,
		Model:  h.provider,
		Items:  toItemResponses(items),
		Count:  len(items),
	})
}

func (h *DigestHandler) GetHealth(c *gin.Context) {
	if h.initErr != nil {
		c.JSON(http.StatusOK, gin.H{
			"status": "degraded",
			"model":  "unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"model":  "ready",
	})
}
