package engine

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/donaldgifford/haggle/internal/metrics"
	"github.com/donaldgifford/haggle/internal/notify"
	"github.com/donaldgifford/haggle/pkg/negotiate"
	domain "github.com/donaldgifford/haggle/pkg/types"
)

// fetched holds the comparable data gathered for one request.
type fetched struct {
	sold     []float64
	listings []float64
	history  []domain.PricePoint
}

// GenerateStrategy produces a negotiation strategy for in. It never fails:
// fetch and persistence errors degrade to estimator-only analysis and a
// panic anywhere in the pipeline yields a conservative fallback strategy.
func (e *Engine) GenerateStrategy(ctx context.Context, in domain.ListingInput) (out domain.NegotiationStrategy) {
	start := time.Now()
	now := e.clock()

	ctx, span := e.tracer.Start(ctx, "engine.GenerateStrategy",
		trace.WithAttributes(
			attribute.String("item_name", in.ItemName),
			attribute.Float64("listed_price", in.Price),
		),
	)
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("strategy pipeline panicked: %v", r)
			e.log.Error("strategy generation failed, using fallback",
				"item_name", in.ItemName,
				"error", err,
			)
			span.RecordError(err)
			span.SetStatus(codes.Error, "fallback strategy")
			out = fallbackStrategy(in, now)
		}
		e.observe(&out, time.Since(start))
		span.SetAttributes(
			attribute.String("method", string(out.Method)),
			attribute.Float64("offer_price", out.OfferPrice),
			attribute.Int("confidence", out.Confidence),
		)
	}()

	sellerID := in.SellerID()
	profile := e.loadProfile(ctx, sellerID)
	data := e.fetch(ctx, in.ItemName)

	span.AddEvent("data fetched", trace.WithAttributes(
		attribute.Int("sold_count", len(data.sold)),
		attribute.Int("listing_count", len(data.listings)),
		attribute.Int("history_points", len(data.history)),
		attribute.Bool("profile_found", profile != nil),
	))

	var rates map[domain.Method]float64
	if e.tuning {
		rates = e.SuccessRates()
	}

	out = negotiate.Decide(negotiate.Signals{
		Listing:      in,
		Sold:         data.sold,
		Listings:     data.listings,
		History:      data.history,
		Profile:      profile,
		SuccessRates: rates,
		UseTiming:    e.useTiming,
		Now:          now,
	})

	e.log.Debug("strategy generated",
		"item_name", in.ItemName,
		"method", out.Method,
		"offer_price", out.OfferPrice,
		"confidence", out.Confidence,
		"estimated_market", out.Market.Estimated,
	)

	if sellerID != "" && len(in.SellerData) > 0 {
		e.recordSeller(ctx, sellerID, in.SellerData)
	}

	if out.Method == domain.MethodUrgentOffer {
		e.notifyAsync(ctx, notify.AlertFromStrategy(&in, &out))
	}

	return out
}

// fetch gathers sold, active and historical comparables under the configured
// timeout. History is read after the sold fetch, which is what records it, so
// the first request for a query already sees its own sold listings. Each
// failure is logged and treated as empty data.
func (e *Engine) fetch(ctx context.Context, query string) fetched {
	var data fetched

	ctx, cancel := context.WithTimeout(ctx, e.fetchTimeout)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if e.market != nil {
			data.sold = e.fetchSold(gctx, query)
		}
		if e.trend != nil {
			data.history = e.fetchHistory(gctx, query)
		}
		return nil
	})
	if e.market != nil {
		g.Go(func() error {
			data.listings = e.fetchActive(gctx, query)
			return nil
		})
	}

	// Workers never return errors.
	_ = g.Wait()

	return data
}

func (e *Engine) fetchSold(ctx context.Context, query string) (prices []float64) {
	defer e.recoverFetch("sold", query)
	prices, err := e.market.FetchComparables(ctx, query)
	return e.fetchResult("sold", query, prices, err)
}

func (e *Engine) fetchActive(ctx context.Context, query string) (prices []float64) {
	defer e.recoverFetch("active", query)
	prices, err := e.market.FetchListings(ctx, query)
	return e.fetchResult("active", query, prices, err)
}

func (e *Engine) fetchHistory(ctx context.Context, query string) (points []domain.PricePoint) {
	defer e.recoverFetch("history", query)
	points, err := e.trend.FetchHistorical(ctx, query, e.historyWindow)
	if err != nil {
		e.log.Debug("history unavailable", "query", query, "error", err)
		metrics.FetchResultsTotal.WithLabelValues("history", "error").Inc()
		return nil
	}
	metrics.FetchResultsTotal.WithLabelValues("history", resultLabel(len(points))).Inc()
	return points
}

func (e *Engine) fetchResult(kind, query string, prices []float64, err error) []float64 {
	if err != nil {
		e.log.Debug("comparables unavailable", "kind", kind, "query", query, "error", err)
		metrics.FetchResultsTotal.WithLabelValues(kind, "error").Inc()
		return nil
	}
	metrics.FetchResultsTotal.WithLabelValues(kind, resultLabel(len(prices))).Inc()
	return prices
}

// recoverFetch turns a provider panic into an empty result.
func (e *Engine) recoverFetch(kind, query string) {
	if r := recover(); r != nil {
		e.log.Error("comparable fetch panicked", "kind", kind, "query", query, "panic", r)
		metrics.FetchResultsTotal.WithLabelValues(kind, "error").Inc()
	}
}

func resultLabel(n int) string {
	if n == 0 {
		return "empty"
	}
	return "ok"
}

// loadProfile returns the stored profile for sellerID, or nil when the
// seller is unknown or the store fails.
func (e *Engine) loadProfile(ctx context.Context, sellerID string) *domain.SellerProfile {
	if sellerID == "" {
		return nil
	}

	p, err := e.store.GetSellerProfile(ctx, sellerID)
	switch {
	case err == nil:
		return p
	case errors.Is(err, domain.ErrNotFound):
		return nil
	default:
		e.log.Warn("loading seller profile", "seller_id", sellerID, "error", err)
		metrics.PersistenceFailuresTotal.WithLabelValues("get_seller_profile").Inc()
		return nil
	}
}

func (e *Engine) recordSeller(ctx context.Context, sellerID string, data map[string]any) {
	now := e.now()
	_, err := e.store.UpdateSellerProfile(ctx, sellerID, func(p *domain.SellerProfile) error {
		ObserveSeller(p, data, now)
		return nil
	})
	if err != nil {
		e.log.Warn("updating seller profile", "seller_id", sellerID, "error", err)
		metrics.PersistenceFailuresTotal.WithLabelValues("update_seller_profile").Inc()
	}
}

func (e *Engine) notifyAsync(ctx context.Context, alert *notify.OfferAlert) {
	if e.notifier == nil {
		return
	}

	e.pending.Add(1)
	go func() {
		defer e.pending.Done()

		nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
		defer cancel()

		if err := e.notifier.SendOfferAlert(nctx, alert); err != nil {
			e.log.Warn("sending offer alert", "item_name", alert.ItemName, "error", err)
		}
	}()
}

func (*Engine) observe(s *domain.NegotiationStrategy, elapsed time.Duration) {
	metrics.StrategiesTotal.WithLabelValues(string(s.Method)).Inc()
	metrics.StrategyDuration.Observe(elapsed.Seconds())
	metrics.DiscountPercent.Observe(s.DiscountPercent)
	metrics.Confidence.Observe(float64(s.Confidence))
	if s.Market.Estimated {
		metrics.EstimatedMarketTotal.Inc()
	}
}

// fallbackStrategy is the estimator-only result used when the pipeline
// cannot complete. It is computed without any collaborator data.
func fallbackStrategy(in domain.ListingInput, now time.Time) (out domain.NegotiationStrategy) {
	defer func() {
		if recover() != nil {
			offer := in.Price * negotiate.MaxOfferRatio
			if !math.IsNaN(offer) && !math.IsInf(offer, 0) {
				offer = negotiate.PsychologicalPrice(offer)
			}
			out = domain.NegotiationStrategy{
				Method:          domain.MethodStandardOffer,
				OfferPrice:      offer,
				Confidence:      3,
				DiscountPercent: negotiate.DiscountPercent(in.Price, offer),
				Message:         negotiate.ComposeMessage(domain.MethodStandardOffer, in.ItemName, offer),
				Rationale:       "No strong signal either way. A polite offer near market value is the best opening.",
				GeneratedAt:     now,
			}
		}
	}()

	return negotiate.Decide(negotiate.Signals{Listing: in, Now: now})
}
