package ebay

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/go-resty/resty/v2"

	"github.com/donaldgifford/haggle/internal/metrics"
)

const (
	defaultBaseURL   = "https://www.ebay.co.uk"
	defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0 Safari/537.36"
	defaultTimeout   = 8 * time.Second
	defaultLimit     = 50
	searchPath       = "/sch/i.html"
	pageSize         = 60
)

// ErrUnexpectedStatus is returned for non-2xx search responses.
var ErrUnexpectedStatus = errors.New("unexpected search response status")

// Scraper implements Searcher against the public search result pages.
type Scraper struct {
	client      *resty.Client
	rateLimiter *RateLimiter
	log         *slog.Logger
	now         func() time.Time
}

var _ Searcher = (*Scraper)(nil)

// ScraperOption configures the Scraper.
type ScraperOption func(*Scraper)

// WithBaseURL overrides the marketplace origin.
func WithBaseURL(u string) ScraperOption {
	return func(s *Scraper) {
		s.client.SetBaseURL(strings.TrimRight(u, "/"))
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) ScraperOption {
	return func(s *Scraper) {
		s.client.SetHeader("User-Agent", ua)
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) ScraperOption {
	return func(s *Scraper) {
		s.client.SetTimeout(d)
	}
}

// WithRateLimiter gates every search through r.
func WithRateLimiter(r *RateLimiter) ScraperOption {
	return func(s *Scraper) {
		s.rateLimiter = r
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) ScraperOption {
	return func(s *Scraper) {
		s.log = l
	}
}

// WithNowFunc overrides the clock used to validate sold dates.
func WithNowFunc(f func() time.Time) ScraperOption {
	return func(s *Scraper) {
		s.now = f
	}
}

// NewScraper creates a Scraper with browser-like default headers.
func NewScraper(opts ...ScraperOption) *Scraper {
	client := resty.New().
		SetBaseURL(defaultBaseURL).
		SetTimeout(defaultTimeout).
		SetHeader("User-Agent", defaultUserAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml").
		SetHeader("Accept-Language", "en-GB,en;q=0.9").
		SetHeader("Accept-Encoding", "br, gzip")

	s := &Scraper{
		client: client,
		log:    slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search fetches one result page and returns up to req.Limit priced listings.
// A blank query returns no listings and makes no request.
func (s *Scraper) Search(ctx context.Context, req SearchRequest) ([]Listing, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, nil
	}

	if s.rateLimiter != nil {
		if err := s.rateLimiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrDailyLimitReached) {
				metrics.ScraperDailyLimitHits.Inc()
			}
			return nil, fmt.Errorf("rate limit: %w", err)
		}
		metrics.ScraperDailyUsage.Set(float64(s.rateLimiter.DailyCount()))
	}
	metrics.ScraperCallsTotal.Inc()

	params := map[string]string{
		"_nkw": query,
		"_ipg": strconv.Itoa(pageSize),
		"rt":   "nc",
	}
	sold := req.Kind == KindSold
	if sold {
		params["LH_Sold"] = "1"
		params["LH_Complete"] = "1"
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(searchPath)
	if err != nil {
		return nil, fmt.Errorf("requesting search page: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode())
	}

	body, err := decodeBody(resp.Header().Get("Content-Encoding"), resp.Body())
	if err != nil {
		return nil, fmt.Errorf("decoding search page: %w", err)
	}

	listings, err := ParseSearchPage(bytes.NewReader(body), sold, s.now())
	if err != nil {
		return nil, err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if len(listings) > limit {
		listings = listings[:limit]
	}

	s.log.Debug("search page scraped",
		"query", query,
		"kind", req.Kind,
		"listings", len(listings),
	)
	return listings, nil
}

// decodeBody undoes brotli encoding and any gzip layer the HTTP client left
// in place.
func decodeBody(encoding string, body []byte) ([]byte, error) {
	var r io.Reader
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "br":
		r = brotli.NewReader(bytes.NewReader(body))
	case "gzip":
		if len(body) < 2 || body[0] != 0x1f || body[1] != 0x8b {
			return body, nil
		}
		gz, err := gzip.NewReader(bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		r = gz
	default:
		return body, nil
	}
	return io.ReadAll(r)
}
