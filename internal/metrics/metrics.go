// Package metrics defines Prometheus metrics for haggle.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "haggle"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 when the last liveness probe succeeded.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 when the last readiness probe succeeded.",
	})
)

// Strategy metrics.
var (
	StrategiesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "strategies_total",
		Help:      "Total number of strategies generated, by method.",
	}, []string{"method"})

	StrategyDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "strategy_duration_seconds",
		Help:      "End-to-end strategy generation time including data fetches.",
		Buckets:   prometheus.DefBuckets,
	})

	DiscountPercent = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "offer_discount_percent",
		Help:      "Distribution of recommended discounts from the listed price.",
		Buckets:   prometheus.LinearBuckets(0, 5, 13), // 0, 5, ..., 60
	})

	Confidence = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "strategy_confidence",
		Help:      "Distribution of strategy confidence scores.",
		Buckets:   []float64{1, 2, 3, 4, 5},
	})

	EstimatedMarketTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "estimated_market_total",
		Help:      "Strategies whose market price fell back to the keyword estimator.",
	})
)

// Comparable data metrics.
var (
	FetchResultsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fetch_results_total",
		Help:      "Comparable fetches by kind (sold, active, history) and result (ok, empty, error).",
	}, []string{"kind", "result"})

	CacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_hits_total",
		Help:      "Comparable cache hits.",
	})

	CacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_misses_total",
		Help:      "Comparable cache misses.",
	})

	CacheEntries = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "cache_entries",
		Help:      "Entries currently held in the comparable cache.",
	})
)

// Marketplace scraper metrics.
var (
	ScraperCallsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scraper_calls_total",
		Help:      "Total marketplace search page requests.",
	})

	ScraperDailyUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "scraper_daily_usage",
		Help:      "Marketplace requests within the rolling 24-hour window.",
	})

	ScraperDailyLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scraper_daily_limit_hits_total",
		Help:      "Times the daily marketplace request limit was reached.",
	})
)

// Persistence and outcome metrics.
var (
	PersistenceFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "persistence_failures_total",
		Help:      "Store operations that failed, by operation.",
	}, []string{"operation"})

	OutcomesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "outcomes_total",
		Help:      "Recorded negotiation outcomes by strategy and result.",
	}, []string{"method", "outcome"})

	SuccessRate = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "strategy_success_rate",
		Help:      "Observed acceptance rate per strategy from the last refresh.",
	}, []string{"method"})
)

// Notification metrics.
var (
	NotificationsSentTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_sent_total",
		Help:      "Total urgent-offer notifications sent.",
	})

	NotificationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_failures_total",
		Help:      "Total number of notification send failures.",
	})
)

// Scheduler metrics.
var (
	SchedulerJobRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scheduler_job_runs_total",
		Help:      "Scheduled job executions by job and status (succeeded, failed, skipped).",
	}, []string{"job", "status"})

	SchedulerJobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "scheduler_job_duration_seconds",
		Help:      "Duration of scheduled job executions.",
		Buckets:   prometheus.ExponentialBuckets(0.005, 4, 8),
	}, []string{"job"})

	SchedulerNextRunTimestamp = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "scheduler_next_run_timestamp",
		Help:      "Unix timestamp of the next scheduled run per job.",
	}, []string{"job"})
)
