package engine

import (
	"context"
	"fmt"
	"maps"

	"github.com/donaldgifford/haggle/internal/metrics"
	"github.com/donaldgifford/haggle/pkg/negotiate"
	domain "github.com/donaldgifford/haggle/pkg/types"
)

// RecordOutcome validates and stores an offer outcome, assigning its ID and
// timestamp when unset.
func (e *Engine) RecordOutcome(ctx context.Context, o *domain.Outcome) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.ID == "" {
		o.ID = e.newID()
	}
	if o.RecordedAt.IsZero() {
		o.RecordedAt = e.now()
	}

	if err := e.store.InsertOutcome(ctx, o); err != nil {
		metrics.PersistenceFailuresTotal.WithLabelValues("insert_outcome").Inc()
		return fmt.Errorf("recording outcome: %w", err)
	}

	metrics.OutcomesTotal.WithLabelValues(string(o.Strategy), string(o.Result)).Inc()
	e.log.Info("outcome recorded",
		"id", o.ID,
		"strategy", o.Strategy,
		"outcome", o.Result,
	)

	return nil
}

// AggregateSuccessRates returns per-strategy outcome statistics from the store.
func (e *Engine) AggregateSuccessRates(ctx context.Context) ([]domain.StrategyStats, error) {
	stats, err := e.store.StrategyStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("aggregating success rates: %w", err)
	}
	return stats, nil
}

// RefreshSuccessRates reloads the success rates used for confidence tuning.
// Strategies with fewer than the configured minimum outcomes are left out.
// It returns the number of strategies with a usable rate.
func (e *Engine) RefreshSuccessRates(ctx context.Context) (int, error) {
	stats, err := e.AggregateSuccessRates(ctx)
	if err != nil {
		return 0, err
	}

	rates := make(map[domain.Method]float64, len(stats))
	for i := range stats {
		s := &stats[i]
		metrics.SuccessRate.WithLabelValues(string(s.Strategy)).Set(s.SuccessRate)
		if s.Total >= e.minOutcomes {
			rates[s.Strategy] = s.SuccessRate
		}
	}

	e.ratesMu.Lock()
	e.rates = rates
	e.ratesMu.Unlock()

	e.log.Debug("success rates refreshed", "strategies", len(stats), "tuned", len(rates))

	return len(rates), nil
}

// SuccessRates returns a copy of the rates from the last refresh.
func (e *Engine) SuccessRates() map[domain.Method]float64 {
	e.ratesMu.RLock()
	defer e.ratesMu.RUnlock()

	if len(e.rates) == 0 {
		return nil
	}
	return maps.Clone(e.rates)
}

// Estimate returns the keyword-based market estimate for itemName.
func (e *Engine) Estimate(itemName string) (float64, domain.BrandProfile) {
	return negotiate.EstimateMarketPrice(itemName, e.clock()), negotiate.LookupBrand(itemName)
}
