package googlebooks

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(upstream *httptest.Server) *Client {
	return NewClient(upstream.URL, "", 5*time.Second, 100)
}

func TestClient_Search_MapsVolume(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/books/v1/volumes", r.URL.Path)
		assert.Equal(t, "dune", r.URL.Query().Get("q"))
		assert.Equal(t, "0", r.URL.Query().Get("startIndex"))
		assert.Equal(t, "20", r.URL.Query().Get("maxResults"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"totalItems": 1,
			"items": [{
				"id": "x1",
				"volumeInfo": {
					"title": "Dune",
					"authors": ["Frank Herbert"],
					"description": "Desert planet",
					"publishedDate": "1965",
					"pageCount": 412,
					"categories": ["Fiction"],
					"averageRating": 4.5,
					"ratingsCount": 1991,
					"previewLink": "https://books.google.com/preview",
					"infoLink": "https://books.google.com/info",
					"imageLinks": {"thumbnail": "http://books.google.com/cover.jpg"}
				}
			}]
		}`))
	}))
	defer upstream.Close()

	result, err := newTestClient(upstream).Search(context.Background(), "dune", 0, 20)
	require.NoError(t, err)

	assert.Equal(t, 1, result.TotalItems)
	require.Len(t, result.Items, 1)

	book := result.Items[0]
	assert.Equal(t, "x1", book.ID)
	assert.Equal(t, "x1", book.GoogleID)
	assert.Equal(t, "Dune", book.Title)
	assert.Equal(t, []string{"Frank Herbert"}, book.Authors)
	assert.Equal(t, "Frank Herbert", book.Author)
	assert.Equal(t, 412, book.PageCount)
	assert.Equal(t, 4.5, book.AverageRating)
	require.NotNil(t, book.ImageURL)
	assert.Equal(t, "https://books.google.com/cover.jpg", *book.ImageURL)
}

func TestClient_Search_DefaultsMissingFields(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"totalItems": 1, "items": [{"id": "x1", "volumeInfo": {}}]}`))
	}))
	defer upstream.Close()

	result, err := newTestClient(upstream).Search(context.Background(), "dune", 0, 20)
	require.NoError(t, err)
	require.Len(t, result.Items, 1)

	book := result.Items[0]
	assert.Equal(t, "Unknown Title", book.Title)
	assert.Equal(t, []string{"Unknown Author"}, book.Authors)
	assert.Equal(t, "Unknown Author", book.Author)
	assert.Nil(t, book.ImageURL)
	assert.Equal(t, 0, book.PageCount)
	assert.Equal(t, float64(0), book.AverageRating)
	assert.Equal(t, 0, book.RatingsCount)
	assert.Equal(t, "", book.Description)
	assert.Equal(t, "", book.PublishedDate)
	assert.Equal(t, []string{}, book.Categories)
}

func TestClient_Search_EmptyResult(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"totalItems": 0}`))
	}))
	defer upstream.Close()

	result, err := newTestClient(upstream).Search(context.Background(), "zxqy", 0, 20)
	require.NoError(t, err)
	assert.Equal(t, 0, result.TotalItems)
	assert.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
}

func TestClient_Search_UpstreamErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-success status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
		},
		{
			name: "malformed payload",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"totalItems": "not-a-number"`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upstream := httptest.NewServer(tt.handler)
			defer upstream.Close()

			_, err := newTestClient(upstream).Search(context.Background(), "dune", 0, 20)
			assert.Error(t, err)
		})
	}
}

func TestClient_Search_SendsAPIKey(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret-key", r.URL.Query().Get("key"))
		_, _ = w.Write([]byte(`{"totalItems": 0}`))
	}))
	defer upstream.Close()

	client := NewClient(upstream.URL, "secret-key", 5*time.Second, 100)
	_, err := client.Search(context.Background(), "dune", 0, 20)
	require.NoError(t, err)
}

func TestSecureImageURL(t *testing.T) {
	assert.Equal(t, "https://x/y.jpg", secureImageURL("http://x/y.jpg"))
	assert.Equal(t, "https://x/y.jpg", secureImageURL("https://x/y.jpg"))
}
