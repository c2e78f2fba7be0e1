// Package store defines the persistence abstraction for haggle: seller
// profiles, negotiation outcomes, comparable price history and scheduler
// bookkeeping. Business logic depends on the Store interface only.
package store

import (
	"context"
	"time"

	domain "github.com/donaldgifford/haggle/pkg/types"
)

// OutcomeQuery defines optional filters for listing recorded outcomes.
type OutcomeQuery struct {
	Strategy *string
	Outcome  *string
	ItemName *string // case-insensitive substring match
	Since    *time.Time
	Limit    int // default 50
	Offset   int
	OrderBy  string // "recorded_at", "discount", "original_price"
}

// Store defines all data access operations for haggle.
type Store interface {
	// Seller profiles
	GetSellerProfile(ctx context.Context, sellerID string) (*domain.SellerProfile, error)
	UpsertSellerProfile(ctx context.Context, p *domain.SellerProfile) error
	// UpdateSellerProfile loads the profile under a row lock (or a fresh
	// default profile), applies fn and writes the result back atomically.
	UpdateSellerProfile(
		ctx context.Context,
		sellerID string,
		fn func(p *domain.SellerProfile) error,
	) (*domain.SellerProfile, error)

	// Outcomes
	InsertOutcome(ctx context.Context, o *domain.Outcome) error
	ListOutcomes(ctx context.Context, opts *OutcomeQuery) ([]domain.Outcome, int, error)
	StrategyStats(ctx context.Context) ([]domain.StrategyStats, error)

	// Comparables
	InsertComparables(ctx context.Context, comps []domain.Comparable) (int, error)
	ListComparables(ctx context.Context, query string, since time.Time) ([]domain.Comparable, error)
	PruneComparables(ctx context.Context, olderThan time.Time) (int, error)

	// Scheduler
	InsertJobRun(ctx context.Context, jobName string) (id string, err error)
	CompleteJobRun(ctx context.Context, id string, status string, errText string, rowsAffected int) error
	ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error)
	RecoverStaleJobRuns(ctx context.Context, olderThan time.Duration) (int, error)
	AcquireSchedulerLock(ctx context.Context, jobName string, holder string, ttl time.Duration) (bool, error)
	ReleaseSchedulerLock(ctx context.Context, jobName string, holder string) error

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
