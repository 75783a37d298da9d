package http

import (
	"context"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/kobiowuquadri/book-traker/internal/entity"
	"github.com/kobiowuquadri/book-traker/internal/httpx"
)

const (
	defaultStartIndex = 0
	defaultMaxResults = 20
	minQueryLength    = 2
)

// CatalogSearcher is the slice of the Google Books client the search
// proxy needs.
type CatalogSearcher interface {
	Search(ctx context.Context, query string, startIndex, maxResults int) (entity.SearchResult, error)
}

type BookHandler struct {
	catalog CatalogSearcher
}

func NewBookHandler(catalog CatalogSearcher) *BookHandler {
	return &BookHandler{catalog: catalog}
}

// Search handles GET /books?q=&startIndex=&maxResults=. The query is
// required and at least two characters; pagination offsets default and
// are passed through to the upstream catalog untouched.
func (h *BookHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if utf8.RuneCountInString(query) < minQueryLength {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Query must be at least 2 characters", nil)
		return
	}

	startIndex := defaultStartIndex
	if raw := r.URL.Query().Get("startIndex"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			startIndex = v
		}
	}
	maxResults := defaultMaxResults
	if raw := r.URL.Query().Get("maxResults"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			maxResults = v
		}
	}

	result, err := h.catalog.Search(r.Context(), query, startIndex, maxResults)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "UPSTREAM_ERROR", "Failed to fetch books", nil)
		return
	}

	httpx.JSON(w, http.StatusOK, result)
}
