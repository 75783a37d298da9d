package http

import (
	"net/http"

	"github.com/kobiowuquadri/book-traker/internal/httpx"
)

// NewRouter wires the documented HTTP surface onto a ServeMux.
func NewRouter(books *BookHandler, shelf *ShelfHandler, authHandler *AuthHandler, jwtSecret string) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/books", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", "GET")
			httpx.JSONError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
			return
		}
		books.Search(w, r)
	})

	mux.Handle("/shelf", shelf)

	mux.HandleFunc("/auth", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", "POST")
			httpx.JSONError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
			return
		}
		authHandler.SignIn(w, r)
	})

	protectedMe := httpx.AuthMiddleware(jwtSecret)(http.HandlerFunc(authHandler.Me))
	mux.Handle("/me", protectedMe)

	return mux
}
