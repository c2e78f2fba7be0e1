// Package engine wires the pure negotiation pipeline to its collaborators:
// marketplace data, seller profiles, outcome history, notifications and
// telemetry. GenerateStrategy always returns a strategy; collaborator
// failures degrade to estimator-only results.
package engine

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/haggle/internal/notify"
	"github.com/donaldgifford/haggle/internal/store"
	domain "github.com/donaldgifford/haggle/pkg/types"
)

const (
	tracerName = "github.com/donaldgifford/haggle/internal/engine"

	defaultFetchTimeout  = 10 * time.Second
	defaultHistoryWindow = 90
	defaultMinOutcomes   = 10
	notifyTimeout        = 10 * time.Second
)

// MarketDataProvider supplies sold and active comparable prices.
type MarketDataProvider interface {
	FetchComparables(ctx context.Context, query string) ([]float64, error)
	FetchListings(ctx context.Context, query string) ([]float64, error)
}

// TrendDataProvider supplies historical price points.
type TrendDataProvider interface {
	FetchHistorical(ctx context.Context, query string, windowDays int) ([]domain.PricePoint, error)
}

// Engine generates negotiation strategies and records their outcomes.
type Engine struct {
	market   MarketDataProvider
	trend    TrendDataProvider
	store    store.Store
	notifier notify.Notifier
	log      *slog.Logger
	tracer   trace.Tracer

	fetchTimeout  time.Duration
	historyWindow int
	useTiming     bool
	tuning        bool
	minOutcomes   int
	loc           *time.Location
	now           func() time.Time
	newID         func() string

	ratesMu sync.RWMutex
	rates   map[domain.Method]float64

	pending sync.WaitGroup
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithTracer sets the tracer used for per-request spans.
func WithTracer(t trace.Tracer) EngineOption {
	return func(e *Engine) {
		e.tracer = t
	}
}

// WithFetchTimeout bounds all marketplace fetches for one request.
func WithFetchTimeout(d time.Duration) EngineOption {
	return func(e *Engine) {
		if d > 0 {
			e.fetchTimeout = d
		}
	}
}

// WithHistoryWindow sets the price history window in days.
func WithHistoryWindow(days int) EngineOption {
	return func(e *Engine) {
		if days > 0 {
			e.historyWindow = days
		}
	}
}

// WithTimingAnalysis enables contact-timing analysis.
func WithTimingAnalysis(enabled bool) EngineOption {
	return func(e *Engine) {
		e.useTiming = enabled
	}
}

// WithSuccessRateTuning feeds observed strategy success rates into
// confidence once a strategy has at least minOutcomes recorded outcomes.
func WithSuccessRateTuning(enabled bool, minOutcomes int) EngineOption {
	return func(e *Engine) {
		e.tuning = enabled
		if minOutcomes > 0 {
			e.minOutcomes = minOutcomes
		}
	}
}

// WithLocation sets the time zone used for seasonal and timing analysis.
func WithLocation(loc *time.Location) EngineOption {
	return func(e *Engine) {
		if loc != nil {
			e.loc = loc
		}
	}
}

// WithNowFunc overrides the clock.
func WithNowFunc(f func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = f
	}
}

// WithIDFunc overrides outcome ID generation.
func WithIDFunc(f func() string) EngineOption {
	return func(e *Engine) {
		e.newID = f
	}
}

// NewEngine creates an Engine. Nil providers yield empty data, a nil store
// is replaced by an in-memory store and a nil notifier disables alerts.
func NewEngine(
	m MarketDataProvider,
	t TrendDataProvider,
	s store.Store,
	n notify.Notifier,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		market:        m,
		trend:         t,
		store:         s,
		notifier:      n,
		log:           slog.Default(),
		tracer:        otel.Tracer(tracerName),
		fetchTimeout:  defaultFetchTimeout,
		historyWindow: defaultHistoryWindow,
		minOutcomes:   defaultMinOutcomes,
		loc:           time.UTC,
		now:           time.Now,
		newID:         func() string { return ulid.Make().String() },
	}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.store == nil {
		eng.store = store.NewMemoryStore()
	}
	return eng
}

// Store returns the engine's store.
func (e *Engine) Store() store.Store {
	return e.store
}

// Wait blocks until in-flight background notifications finish or ctx ends.
func (e *Engine) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		e.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (e *Engine) clock() time.Time {
	return e.now().In(e.loc)
}
