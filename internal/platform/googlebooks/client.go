package googlebooks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/kobiowuquadri/book-traker/internal/entity"

	"golang.org/x/time/rate"
)

const (
	defaultTitle  = "Unknown Title"
	defaultAuthor = "Unknown Author"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
}

// NewClient builds a Google Books volumes client. apiKey may be empty;
// the volumes endpoint works unauthenticated at lower quotas.
func NewClient(baseURL, apiKey string, timeout time.Duration, rps int) *Client {
	if rps <= 0 {
		rps = 1
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		limiter:    rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
	}
}

// volumesResponse matches books/v1/volumes. Everything inside volumeInfo
// is optional upstream, hence the defaulting in mapVolume.
type volumesResponse struct {
	TotalItems int      `json:"totalItems"`
	Items      []volume `json:"items"`
}

type volume struct {
	ID         string     `json:"id"`
	VolumeInfo volumeInfo `json:"volumeInfo"`
}

type volumeInfo struct {
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	Description   string   `json:"description"`
	PublishedDate string   `json:"publishedDate"`
	PageCount     int      `json:"pageCount"`
	Categories    []string `json:"categories"`
	AverageRating float64  `json:"averageRating"`
	RatingsCount  int      `json:"ratingsCount"`
	PreviewLink   string   `json:"previewLink"`
	InfoLink      string   `json:"infoLink"`
	ImageLinks    struct {
		Thumbnail string `json:"thumbnail"`
	} `json:"imageLinks"`
}

// Search runs one upstream request and maps the payload into the fixed
// book shape. startIndex and maxResults are passed through untouched.
// A single attempt only: a failed upstream call fails the whole search.
func (c *Client) Search(ctx context.Context, query string, startIndex, maxResults int) (entity.SearchResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("startIndex", strconv.Itoa(startIndex))
	params.Set("maxResults", strconv.Itoa(maxResults))
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}
	u := fmt.Sprintf("%s/books/v1/volumes?%s", c.baseURL, params.Encode())

	if err := c.limiter.Wait(ctx); err != nil {
		return entity.SearchResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return entity.SearchResult{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return entity.SearchResult{}, fmt.Errorf("google books request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return entity.SearchResult{}, fmt.Errorf("google books: unexpected status code: %d", resp.StatusCode)
	}

	var payload volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return entity.SearchResult{}, fmt.Errorf("google books: decoding response: %w", err)
	}

	result := entity.SearchResult{
		TotalItems: payload.TotalItems,
		Items:      make([]entity.Book, 0, len(payload.Items)),
	}
	for _, item := range payload.Items {
		result.Items = append(result.Items, mapVolume(item))
	}
	return result, nil
}

// mapVolume normalizes one upstream volume. Missing title and authors
// get placeholders so every returned record has complete required
// fields; a missing cover stays an explicit nil, not an empty string.
func mapVolume(item volume) entity.Book {
	v := item.VolumeInfo

	title := v.Title
	if title == "" {
		title = defaultTitle
	}

	authors := v.Authors
	if len(authors) == 0 {
		authors = []string{defaultAuthor}
	}

	categories := v.Categories
	if categories == nil {
		categories = []string{}
	}

	var imageURL *string
	if v.ImageLinks.Thumbnail != "" {
		secure := secureImageURL(v.ImageLinks.Thumbnail)
		imageURL = &secure
	}

	return entity.Book{
		ID:            item.ID,
		GoogleID:      item.ID,
		Title:         title,
		Authors:       authors,
		Author:        authors[0],
		Description:   v.Description,
		ImageURL:      imageURL,
		PublishedDate: v.PublishedDate,
		PageCount:     v.PageCount,
		Categories:    categories,
		AverageRating: v.AverageRating,
		RatingsCount:  v.RatingsCount,
		PreviewLink:   v.PreviewLink,
		InfoLink:      v.InfoLink,
	}
}

// secureImageURL rewrites plain-http cover links to https.
func secureImageURL(u string) string {
	if strings.HasPrefix(u, "http://") {
		return "https://" + strings.TrimPrefix(u, "http://")
	}
	return u
}
