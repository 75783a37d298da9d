package entity

// Book is the normalized catalog record returned by the search proxy.
// It is fetched fresh per request and never persisted; every required
// field is filled by best-effort defaulting in the catalog client.
type Book struct {
	ID            string   `json:"id"`
	GoogleID      string   `json:"googleId"`
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	Author        string   `json:"author"`
	Description   string   `json:"description"`
	ImageURL      *string  `json:"imageUrl"`
	PublishedDate string   `json:"publishedDate"`
	PageCount     int      `json:"pageCount"`
	Categories    []string `json:"categories"`
	AverageRating float64  `json:"averageRating"`
	RatingsCount  int      `json:"ratingsCount"`
	PreviewLink   string   `json:"previewLink"`
	InfoLink      string   `json:"infoLink"`
}

// SearchResult is one page of catalog search results. Items is always
// non-nil, possibly empty.
type SearchResult struct {
	TotalItems int    `json:"totalItems"`
	Items      []Book `json:"items"`
}
