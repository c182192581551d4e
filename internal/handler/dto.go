package handler

import (
	"net/url"
	"strings"

	"newsbrief/internal/model"
)

type ItemResponse struct {
	Index   int    `json:"index"`
	Title   string `json:"title"`
	Source  string `json:"source"`
	URL     string `json:"url"`
	Text    string `json:"text"`
	Outcome string `json:"outcome"`
	Summary string `json:"summary,omitempty"`
	Error   string `json:"error,omitempty"`
}

type DigestResponse struct {
	Source string         `json:"source"`
	Model  string         `json:"model"`
	Items  []ItemResponse `json:"items"`
	Count  int            `json:"count"`
}

type pageData struct {
	Provider   string
	Source     string
	ModelError string
	FetchError string
	Ran        bool
	Items      []ItemResponse
}

func toItemResponse(i model.DigestItem) ItemResponse {
	return ItemResponse{
		Index:   i.Index,
		Title:   i.Title,
		Source:  i.Source,
		URL:     safeURL(i.URL),
		Text:    i.Text,
		Outcome: i.Outcome,
		Summary: i.Summary,
		Error:   i.ErrorMsg,
	}
}

func toItemResponses(items []model.DigestItem) []ItemResponse {
	res := make([]ItemResponse, 0, len(items))
	for _, i := range items {
		res = append(res, toItemResponse(i))
	}
	return res
}

// safeURL keeps only absolute http(s) links; anything else becomes "#".
func safeURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return "#"
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return u.String()
	default:
		return "#"
	}
}
