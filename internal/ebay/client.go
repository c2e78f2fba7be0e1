// Package ebay scrapes marketplace search result pages for comparable
// prices. Sold (completed) and active listings are both supported; the
// Searcher interface keeps callers independent of the HTML source.
package ebay

import (
	"context"
	"time"
)

// Kind selects which listings a search returns.
type Kind string

// Search kinds.
const (
	KindSold   Kind = "sold"
	KindActive Kind = "active"
)

// SearchRequest defines the parameters for a comparable search.
type SearchRequest struct {
	Query string
	Kind  Kind
	Limit int
}

// Listing is one priced result parsed from a search page.
type Listing struct {
	Title  string
	Price  float64
	Sold   bool
	SoldAt *time.Time
	URL    string
}

// Searcher fetches comparable listings.
type Searcher interface {
	Search(ctx context.Context, req SearchRequest) ([]Listing, error)
}
