package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/donaldgifford/haggle/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

var _ Store = (*PostgresStore)(nil)

// NewPostgresStore creates a new PostgresStore with connection pooling.
// A non-positive poolSize uses the default.
func NewPostgresStore(ctx context.Context, connString string, poolSize int) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize
	if poolSize > 0 {
		cfg.MaxConns = int32(min(poolSize, 1000)) //nolint:gosec // bounded above
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// GetSellerProfile returns the stored profile or domain.ErrNotFound.
func (s *PostgresStore) GetSellerProfile(
	ctx context.Context,
	sellerID string,
) (*domain.SellerProfile, error) {
	var p domain.SellerProfile
	err := scanSellerProfile(s.pool.QueryRow(ctx, queryGetSellerProfile, sellerID), &p)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("seller %q: %w", sellerID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting seller profile: %w", err)
	}
	return &p, nil
}

// UpsertSellerProfile inserts or replaces a seller profile.
func (s *PostgresStore) UpsertSellerProfile(ctx context.Context, p *domain.SellerProfile) error {
	if err := s.pool.QueryRow(ctx, queryUpsertSellerProfile, sellerProfileArgs(p)).
		Scan(&p.UpdatedAt); err != nil {
		return fmt.Errorf("upserting seller profile: %w", err)
	}
	return nil
}

// UpdateSellerProfile applies fn to the locked profile inside a transaction.
// Concurrent updates for the same seller serialize on the row lock; two
// first-time writers race on insert and the later one wins.
func (s *PostgresStore) UpdateSellerProfile(
	ctx context.Context,
	sellerID string,
	fn func(p *domain.SellerProfile) error,
) (*domain.SellerProfile, error) {
	var out *domain.SellerProfile

	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		p := domain.NewSellerProfile(sellerID)
		err := scanSellerProfile(tx.QueryRow(ctx, queryLockSellerProfile, sellerID), p)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("locking seller profile: %w", err)
		}

		if err := fn(p); err != nil {
			return err
		}

		if err := tx.QueryRow(ctx, queryUpsertSellerProfile, sellerProfileArgs(p)).
			Scan(&p.UpdatedAt); err != nil {
			return fmt.Errorf("writing seller profile: %w", err)
		}

		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// InsertOutcome stores a recorded negotiation outcome.
func (s *PostgresStore) InsertOutcome(ctx context.Context, o *domain.Outcome) error {
	recordedAt := o.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now().UTC()
	}

	args := pgx.NamedArgs{
		"id":                  o.ID,
		"item_name":           o.ItemName,
		"original_price":      o.OriginalPrice,
		"offered_price":       o.OfferedPrice,
		"strategy":            string(o.Strategy),
		"outcome":             string(o.Result),
		"response_time_hours": o.ResponseTimeHours,
		"recorded_at":         recordedAt,
	}

	if _, err := s.pool.Exec(ctx, queryInsertOutcome, args); err != nil {
		return fmt.Errorf("inserting outcome: %w", err)
	}
	o.RecordedAt = recordedAt
	return nil
}

// ListOutcomes returns a filtered page of outcomes and the total match count.
func (s *PostgresStore) ListOutcomes(
	ctx context.Context,
	opts *OutcomeQuery,
) ([]domain.Outcome, int, error) {
	if opts == nil {
		opts = &OutcomeQuery{}
	}
	dataSQL, countSQL, args := opts.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting outcomes: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying outcomes: %w", err)
	}
	defer rows.Close()

	var outcomes []domain.Outcome
	for rows.Next() {
		var (
			o                domain.Outcome
			strategy, result string
		)
		if err := rows.Scan(
			&o.ID, &o.ItemName, &o.OriginalPrice, &o.OfferedPrice,
			&strategy, &result, &o.ResponseTimeHours, &o.RecordedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scanning outcome: %w", err)
		}
		o.Strategy = domain.Method(strategy)
		o.Result = domain.OutcomeResult(result)
		outcomes = append(outcomes, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating outcomes: %w", err)
	}

	return outcomes, total, nil
}

// StrategyStats aggregates outcome counts per strategy.
func (s *PostgresStore) StrategyStats(ctx context.Context) ([]domain.StrategyStats, error) {
	rows, err := s.pool.Query(ctx, queryStrategyStats)
	if err != nil {
		return nil, fmt.Errorf("querying strategy stats: %w", err)
	}
	defer rows.Close()

	var stats []domain.StrategyStats
	for rows.Next() {
		var (
			st       domain.StrategyStats
			strategy string
		)
		if err := rows.Scan(
			&strategy, &st.Total, &st.Accepted, &st.Countered, &st.Rejected, &st.Ignored,
		); err != nil {
			return nil, fmt.Errorf("scanning strategy stats: %w", err)
		}
		st.Strategy = domain.Method(strategy)
		st.SuccessRate = domain.SuccessRate(st.Accepted, st.Countered, st.Total)
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

// InsertComparables stores observed comparable prices in one batch and
// returns how many were new. Entries with an empty query or non-positive
// price are skipped; repeats of an existing observation are ignored.
func (s *PostgresStore) InsertComparables(ctx context.Context, comps []domain.Comparable) (int, error) {
	batch := &pgx.Batch{}
	now := time.Now().UTC()
	for _, c := range comps {
		q := strings.ToLower(strings.TrimSpace(c.Query))
		if q == "" || c.Price <= 0 {
			continue
		}
		observed := c.ObservedAt
		if observed.IsZero() {
			observed = now
		}
		batch.Queue(queryInsertComparable, q, c.Price, c.Sold, observed)
	}
	if batch.Len() == 0 {
		return 0, nil
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	inserted := 0
	for range batch.Len() {
		tag, err := br.Exec()
		if err != nil {
			return inserted, fmt.Errorf("inserting comparable: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}

// ListComparables returns comparables for query observed at or after since,
// newest first.
func (s *PostgresStore) ListComparables(
	ctx context.Context,
	query string,
	since time.Time,
) ([]domain.Comparable, error) {
	rows, err := s.pool.Query(ctx, queryListComparables, strings.ToLower(strings.TrimSpace(query)), since)
	if err != nil {
		return nil, fmt.Errorf("querying comparables: %w", err)
	}

	comps, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Comparable])
	if err != nil {
		return nil, fmt.Errorf("collecting comparables: %w", err)
	}
	return comps, nil
}

// PruneComparables deletes comparables observed before olderThan.
func (s *PostgresStore) PruneComparables(ctx context.Context, olderThan time.Time) (int, error) {
	tag, err := s.pool.Exec(ctx, queryPruneComparables, olderThan)
	if err != nil {
		return 0, fmt.Errorf("pruning comparables: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// InsertJobRun records the start of a scheduled job and returns its UUID.
func (s *PostgresStore) InsertJobRun(ctx context.Context, jobName string) (string, error) {
	var id string
	if err := s.pool.QueryRow(ctx, queryInsertJobRun, jobName).Scan(&id); err != nil {
		return "", fmt.Errorf("inserting job run: %w", err)
	}
	return id, nil
}

// CompleteJobRun marks a job run as finished.
func (s *PostgresStore) CompleteJobRun(
	ctx context.Context,
	id string,
	status string,
	errText string,
	rowsAffected int,
) error {
	if _, err := s.pool.Exec(ctx, queryCompleteJobRun, id, status, errText, rowsAffected); err != nil {
		return fmt.Errorf("completing job run: %w", err)
	}
	return nil
}

// ListLatestJobRuns returns the most recent run for each job name.
func (s *PostgresStore) ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListLatestJobRuns)
	if err != nil {
		return nil, fmt.Errorf("querying latest job runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.JobRun
	for rows.Next() {
		var r domain.JobRun
		if err := rows.Scan(
			&r.ID, &r.JobName, &r.StartedAt, &r.CompletedAt,
			&r.Status, &r.ErrorText, &r.RowsAffected,
		); err != nil {
			return nil, fmt.Errorf("scanning job run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// RecoverStaleJobRuns marks running jobs older than olderThan as crashed and
// drops run history older than 30 days. It returns the crashed count.
func (s *PostgresStore) RecoverStaleJobRuns(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().Add(-olderThan)

	tag, err := s.pool.Exec(ctx, queryMarkStaleJobRunsCrashed, cutoff)
	if err != nil {
		return 0, fmt.Errorf("marking stale job runs crashed: %w", err)
	}
	affected := int(tag.RowsAffected())

	if _, err := s.pool.Exec(ctx, queryDeleteOldJobRuns); err != nil {
		return affected, fmt.Errorf("deleting old job runs: %w", err)
	}

	return affected, nil
}

// AcquireSchedulerLock attempts to take the named job lock. It returns false
// when another holder owns an unexpired lock.
func (s *PostgresStore) AcquireSchedulerLock(
	ctx context.Context,
	jobName string,
	holder string,
	ttl time.Duration,
) (bool, error) {
	var gotName string
	err := s.pool.QueryRow(ctx, queryAcquireSchedulerLock, jobName, holder, time.Now().Add(ttl)).
		Scan(&gotName)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("acquiring scheduler lock: %w", err)
	}
	return true, nil
}

// ReleaseSchedulerLock deletes the lock row for the given job and holder.
func (s *PostgresStore) ReleaseSchedulerLock(ctx context.Context, jobName string, holder string) error {
	if _, err := s.pool.Exec(ctx, queryReleaseSchedulerLock, jobName, holder); err != nil {
		return fmt.Errorf("releasing scheduler lock: %w", err)
	}
	return nil
}

func sellerProfileArgs(p *domain.SellerProfile) pgx.NamedArgs {
	return pgx.NamedArgs{
		"seller_id":               p.SellerID,
		"avg_response_time":       p.AvgResponseTime,
		"negotiation_flexibility": p.NegotiationFlexibility,
		"listing_count":           p.ListingCount,
		"account_age_days":        p.AccountAgeDays,
		"feedback_score":          p.FeedbackScore,
		"observation_count":       p.ObservationCount,
	}
}

// scannable is satisfied by pgx.Row and pgx.Rows.
type scannable interface {
	Scan(dest ...any) error
}

func scanSellerProfile(row scannable, p *domain.SellerProfile) error {
	return row.Scan(
		&p.SellerID, &p.AvgResponseTime, &p.NegotiationFlexibility,
		&p.ListingCount, &p.AccountAgeDays, &p.FeedbackScore,
		&p.ObservationCount, &p.UpdatedAt,
	)
}
