package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestFinnHubFetch(t *testing.T) {
	var gotToken, gotCategory string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Finnhub-Token")
		gotCategory = r.URL.Query().Get("category")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 7, "headline": "Fed Holds Rates Steady", "summary": "The Federal Reserve kept interest rates unchanged.",
			 "url": "https://example.com/fed", "source": "Reuters", "datetime": 1772107200, "category": "top news"},
			{"id": 8, "headline": "Oil Slips", "summary": "", "url": "https://example.com/oil", "source": "Bloomberg", "datetime": 1772107300},
			{"id": 9, "headline": "Gold Edges Up", "url": "https://example.com/gold", "source": "CNBC", "datetime": 1772107400}
		]`))
	}))
	defer srv.Close()

	httpClient := srv.Client()
	httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}
	client := newFinnHubClient("test-key", httpClient)

	articles, err := client.Fetch(context.Background(), 2)

	assert.Equal(t, nil, err)
	assert.Equal(t, "test-key", gotToken)
	assert.Equal(t, "general", gotCategory)
	assert.Equal(t, 2, len(articles))

	a := articles[0]
	assert.Equal(t, "7", a.ID)
	assert.Equal(t, "Fed Holds Rates Steady", a.Title)
	assert.Equal(t, "The Federal Reserve kept interest rates unchanged.", a.Description)
	assert.Equal(t, "https://example.com/fed", a.URL)
	assert.Equal(t, "Reuters", a.Source)
	assert.Equal(t, int64(1772107200), a.PublishedAt.Unix())

	assert.Equal(t, "Oil Slips", articles[1].BodyText())
}
