package market

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/donaldgifford/haggle/internal/ebay"
	"github.com/donaldgifford/haggle/internal/metrics"
	"github.com/donaldgifford/haggle/internal/store"
	domain "github.com/donaldgifford/haggle/pkg/types"
)

const (
	defaultMaxResults    = 50
	defaultHistoryWindow = 90
)

// Provider fetches sold and active comparable prices through a cache and
// records sold observations as price history. Either dependency may be
// nil: without a searcher every fetch is empty, without a store history
// comes from the sold listings currently cached.
type Provider struct {
	searcher      ebay.Searcher
	store         store.Store
	cache         *Cache[[]ebay.Listing]
	log           *slog.Logger
	maxResults    int
	historyWindow int
	now           func() time.Time
}

// ProviderOption configures a Provider.
type ProviderOption func(*Provider)

// WithSearcher sets the marketplace searcher.
func WithSearcher(s ebay.Searcher) ProviderOption {
	return func(p *Provider) {
		p.searcher = s
	}
}

// WithStore sets the comparable history store.
func WithStore(s store.Store) ProviderOption {
	return func(p *Provider) {
		p.store = s
	}
}

// WithCache replaces the default one-hour cache.
func WithCache(c *Cache[[]ebay.Listing]) ProviderOption {
	return func(p *Provider) {
		p.cache = c
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) ProviderOption {
	return func(p *Provider) {
		p.log = l
	}
}

// WithMaxResults caps the listings requested per search.
func WithMaxResults(n int) ProviderOption {
	return func(p *Provider) {
		if n > 0 {
			p.maxResults = n
		}
	}
}

// WithHistoryWindow sets the default history window in days.
func WithHistoryWindow(days int) ProviderOption {
	return func(p *Provider) {
		if days > 0 {
			p.historyWindow = days
		}
	}
}

// WithNowFunc overrides the clock.
func WithNowFunc(f func() time.Time) ProviderOption {
	return func(p *Provider) {
		p.now = f
	}
}

// NewProvider creates a Provider.
func NewProvider(opts ...ProviderOption) *Provider {
	p := &Provider{
		log:           slog.Default(),
		maxResults:    defaultMaxResults,
		historyWindow: defaultHistoryWindow,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.cache == nil {
		p.cache = NewCache[[]ebay.Listing](DefaultTTL)
	}
	return p
}

// Cache exposes the listing cache for maintenance jobs.
func (p *Provider) Cache() *Cache[[]ebay.Listing] {
	return p.cache
}

// FetchComparables returns recent sold prices for query.
func (p *Provider) FetchComparables(ctx context.Context, query string) ([]float64, error) {
	listings, err := p.listings(ctx, query, ebay.KindSold)
	if err != nil {
		return nil, err
	}
	return prices(listings), nil
}

// FetchListings returns currently active asking prices for query.
func (p *Provider) FetchListings(ctx context.Context, query string) ([]float64, error) {
	listings, err := p.listings(ctx, query, ebay.KindActive)
	if err != nil {
		return nil, err
	}
	return prices(listings), nil
}

// FetchHistorical returns sold price points for query within windowDays,
// newest first. A non-positive window uses the configured default.
func (p *Provider) FetchHistorical(ctx context.Context, query string, windowDays int) ([]domain.PricePoint, error) {
	if windowDays <= 0 {
		windowDays = p.historyWindow
	}
	now := p.now()
	since := now.AddDate(0, 0, -windowDays)

	if p.store == nil {
		listings, ok := p.cache.Get(cacheKey(ebay.KindSold, query))
		if !ok {
			return nil, nil
		}
		var points []domain.PricePoint
		for _, l := range listings {
			if l.SoldAt == nil || l.SoldAt.Before(since) {
				continue
			}
			points = append(points, domain.PricePoint{Price: l.Price, DaysAgo: daysAgo(now, *l.SoldAt)})
		}
		return points, nil
	}

	comps, err := p.store.ListComparables(ctx, Key(query), since)
	if err != nil {
		return nil, fmt.Errorf("listing comparable history: %w", err)
	}

	points := make([]domain.PricePoint, 0, len(comps))
	for _, c := range comps {
		if !c.Sold {
			continue
		}
		points = append(points, domain.PricePoint{Price: c.Price, DaysAgo: daysAgo(now, c.ObservedAt)})
	}
	return points, nil
}

func (p *Provider) listings(ctx context.Context, query string, kind ebay.Kind) ([]ebay.Listing, error) {
	if p.searcher == nil || Key(query) == "" {
		return nil, nil
	}

	listings, err := p.cache.GetOrLoad(ctx, cacheKey(kind, query), func(ctx context.Context) ([]ebay.Listing, error) {
		found, err := p.searcher.Search(ctx, ebay.SearchRequest{
			Query: query,
			Kind:  kind,
			Limit: p.maxResults,
		})
		if err != nil {
			return nil, err
		}
		if kind == ebay.KindSold {
			p.record(ctx, query, found)
		}
		return found, nil
	})
	if err != nil {
		return nil, fmt.Errorf("searching %s listings: %w", kind, err)
	}
	return listings, nil
}

// record persists sold listings as history. Failures are logged only.
func (p *Provider) record(ctx context.Context, query string, listings []ebay.Listing) {
	if p.store == nil || len(listings) == 0 {
		return
	}

	now := p.now().UTC()
	comps := make([]domain.Comparable, 0, len(listings))
	for _, l := range listings {
		observed := now
		if l.SoldAt != nil {
			observed = *l.SoldAt
		}
		comps = append(comps, domain.Comparable{
			Query:      Key(query),
			Price:      l.Price,
			Sold:       true,
			ObservedAt: observed,
		})
	}

	n, err := p.store.InsertComparables(ctx, comps)
	if err != nil {
		metrics.PersistenceFailuresTotal.WithLabelValues("insert_comparables").Inc()
		p.log.Warn("recording comparables failed", "query", query, "error", err)
		return
	}
	p.log.Debug("comparables recorded", "query", query, "inserted", n)
}

func cacheKey(kind ebay.Kind, query string) string {
	return string(kind) + ":" + Key(query)
}

func prices(listings []ebay.Listing) []float64 {
	if len(listings) == 0 {
		return nil
	}
	out := make([]float64, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.Price)
	}
	return out
}

func daysAgo(now, at time.Time) int {
	return max(int(now.Sub(at).Hours()/24), 0)
}
