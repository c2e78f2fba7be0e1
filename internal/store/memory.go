package store

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/donaldgifford/haggle/pkg/types"
)

// MemoryStore is a process-local Store used when no database is
// configured. Data does not survive a restart.
type MemoryStore struct {
	mu          sync.Mutex
	profiles    map[string]domain.SellerProfile
	outcomes    []domain.Outcome
	comparables []domain.Comparable
	jobRuns     []domain.JobRun
	locks       map[string]memLock
	now         func() time.Time
}

type memLock struct {
	holder    string
	expiresAt time.Time
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		profiles: make(map[string]domain.SellerProfile),
		locks:    make(map[string]memLock),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Ping always succeeds.
func (*MemoryStore) Ping(context.Context) error { return nil }

// Migrate is a no-op.
func (*MemoryStore) Migrate(context.Context) error { return nil }

// GetSellerProfile returns a copy of the stored profile or domain.ErrNotFound.
func (m *MemoryStore) GetSellerProfile(_ context.Context, sellerID string) (*domain.SellerProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.profiles[sellerID]
	if !ok {
		return nil, fmt.Errorf("seller %q: %w", sellerID, domain.ErrNotFound)
	}
	return &p, nil
}

// UpsertSellerProfile stores a copy of p.
func (m *MemoryStore) UpsertSellerProfile(_ context.Context, p *domain.SellerProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p.UpdatedAt = m.now()
	m.profiles[p.SellerID] = *p
	return nil
}

// UpdateSellerProfile applies fn while holding the store lock.
func (m *MemoryStore) UpdateSellerProfile(
	_ context.Context,
	sellerID string,
	fn func(p *domain.SellerProfile) error,
) (*domain.SellerProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := domain.NewSellerProfile(sellerID)
	if existing, ok := m.profiles[sellerID]; ok {
		*p = existing
	}
	if err := fn(p); err != nil {
		return nil, err
	}
	p.UpdatedAt = m.now()
	m.profiles[sellerID] = *p

	out := *p
	return &out, nil
}

// InsertOutcome appends an outcome.
func (m *MemoryStore) InsertOutcome(_ context.Context, o *domain.Outcome) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if o.RecordedAt.IsZero() {
		o.RecordedAt = m.now()
	}
	m.outcomes = append(m.outcomes, *o)
	return nil
}

// ListOutcomes filters outcomes with the same semantics as the SQL builder.
func (m *MemoryStore) ListOutcomes(_ context.Context, opts *OutcomeQuery) ([]domain.Outcome, int, error) {
	if opts == nil {
		opts = &OutcomeQuery{}
	}

	m.mu.Lock()
	matched := make([]domain.Outcome, 0, len(m.outcomes))
	for _, o := range m.outcomes {
		if opts.matches(&o) {
			matched = append(matched, o)
		}
	}
	m.mu.Unlock()

	slices.SortStableFunc(matched, opts.compare)

	total := len(matched)
	limit, offset := opts.Page()
	offset = min(offset, total)
	end := min(offset+limit, total)

	return matched[offset:end], total, nil
}

func (q *OutcomeQuery) matches(o *domain.Outcome) bool {
	if q.Strategy != nil && string(o.Strategy) != *q.Strategy {
		return false
	}
	if q.Outcome != nil && string(o.Result) != *q.Outcome {
		return false
	}
	if q.ItemName != nil {
		needle := strings.ToLower(strings.TrimSpace(*q.ItemName))
		if needle != "" && !strings.Contains(strings.ToLower(o.ItemName), needle) {
			return false
		}
	}
	if q.Since != nil && o.RecordedAt.Before(*q.Since) {
		return false
	}
	return true
}

func (q *OutcomeQuery) compare(a, b domain.Outcome) int {
	switch q.OrderBy {
	case orderByDiscount:
		return cmp.Compare(a.OfferedPrice/a.OriginalPrice, b.OfferedPrice/b.OriginalPrice)
	case orderByOriginalPrice:
		return cmp.Compare(b.OriginalPrice, a.OriginalPrice)
	default:
		return b.RecordedAt.Compare(a.RecordedAt)
	}
}

// StrategyStats aggregates outcomes per strategy, ordered by strategy name.
func (m *MemoryStore) StrategyStats(context.Context) ([]domain.StrategyStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	byMethod := make(map[domain.Method]*domain.StrategyStats)
	for _, o := range m.outcomes {
		st, ok := byMethod[o.Strategy]
		if !ok {
			st = &domain.StrategyStats{Strategy: o.Strategy}
			byMethod[o.Strategy] = st
		}
		st.Total++
		switch o.Result {
		case domain.OutcomeAccepted:
			st.Accepted++
		case domain.OutcomeCountered:
			st.Countered++
		case domain.OutcomeRejected:
			st.Rejected++
		case domain.OutcomeIgnored:
			st.Ignored++
		}
	}

	stats := make([]domain.StrategyStats, 0, len(byMethod))
	for _, st := range byMethod {
		st.SuccessRate = domain.SuccessRate(st.Accepted, st.Countered, st.Total)
		stats = append(stats, *st)
	}
	slices.SortFunc(stats, func(a, b domain.StrategyStats) int {
		return strings.Compare(string(a.Strategy), string(b.Strategy))
	})
	return stats, nil
}

// InsertComparables stores valid comparables under a normalised query key,
// ignoring exact repeats.
func (m *MemoryStore) InsertComparables(_ context.Context, comps []domain.Comparable) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, c := range comps {
		c.Query = strings.ToLower(strings.TrimSpace(c.Query))
		if c.Query == "" || c.Price <= 0 {
			continue
		}
		if c.ObservedAt.IsZero() {
			c.ObservedAt = m.now()
		}
		if slices.ContainsFunc(m.comparables, func(e domain.Comparable) bool {
			return e.Query == c.Query && e.Price == c.Price && e.Sold == c.Sold && e.ObservedAt.Equal(c.ObservedAt)
		}) {
			continue
		}
		m.comparables = append(m.comparables, c)
		n++
	}
	return n, nil
}

// ListComparables returns matching comparables newest first.
func (m *MemoryStore) ListComparables(_ context.Context, query string, since time.Time) ([]domain.Comparable, error) {
	key := strings.ToLower(strings.TrimSpace(query))

	m.mu.Lock()
	var out []domain.Comparable
	for _, c := range m.comparables {
		if c.Query == key && !c.ObservedAt.Before(since) {
			out = append(out, c)
		}
	}
	m.mu.Unlock()

	slices.SortStableFunc(out, func(a, b domain.Comparable) int {
		return b.ObservedAt.Compare(a.ObservedAt)
	})
	return out, nil
}

// PruneComparables removes comparables observed before olderThan.
func (m *MemoryStore) PruneComparables(_ context.Context, olderThan time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	before := len(m.comparables)
	m.comparables = slices.DeleteFunc(m.comparables, func(c domain.Comparable) bool {
		return c.ObservedAt.Before(olderThan)
	})
	return before - len(m.comparables), nil
}

// InsertJobRun records a running job.
func (m *MemoryStore) InsertJobRun(_ context.Context, jobName string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	m.jobRuns = append(m.jobRuns, domain.JobRun{
		ID:        id,
		JobName:   jobName,
		StartedAt: m.now(),
		Status:    domain.JobStatusRunning,
	})
	return id, nil
}

// CompleteJobRun finishes a job run.
func (m *MemoryStore) CompleteJobRun(_ context.Context, id, status, errText string, rowsAffected int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.jobRuns {
		if m.jobRuns[i].ID != id {
			continue
		}
		now := m.now()
		m.jobRuns[i].CompletedAt = &now
		m.jobRuns[i].Status = status
		m.jobRuns[i].ErrorText = errText
		m.jobRuns[i].RowsAffected = &rowsAffected
		return nil
	}
	return fmt.Errorf("job run %q: %w", id, domain.ErrNotFound)
}

// ListLatestJobRuns returns the latest run per job name, ordered by name.
func (m *MemoryStore) ListLatestJobRuns(context.Context) ([]domain.JobRun, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	latest := make(map[string]domain.JobRun)
	for _, r := range m.jobRuns {
		if cur, ok := latest[r.JobName]; !ok || !r.StartedAt.Before(cur.StartedAt) {
			latest[r.JobName] = r
		}
	}

	runs := make([]domain.JobRun, 0, len(latest))
	for _, r := range latest {
		runs = append(runs, r)
	}
	slices.SortFunc(runs, func(a, b domain.JobRun) int {
		return strings.Compare(a.JobName, b.JobName)
	})
	return runs, nil
}

// RecoverStaleJobRuns marks old running jobs as crashed.
func (m *MemoryStore) RecoverStaleJobRuns(_ context.Context, olderThan time.Duration) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	cutoff := now.Add(-olderThan)
	n := 0
	for i := range m.jobRuns {
		r := &m.jobRuns[i]
		if r.Status == domain.JobStatusRunning && r.StartedAt.Before(cutoff) {
			r.Status = domain.JobStatusCrashed
			r.CompletedAt = &now
			n++
		}
	}
	return n, nil
}

// AcquireSchedulerLock takes the named lock if it is free or expired.
func (m *MemoryStore) AcquireSchedulerLock(_ context.Context, jobName, holder string, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if l, ok := m.locks[jobName]; ok && l.expiresAt.After(now) {
		return false, nil
	}
	m.locks[jobName] = memLock{holder: holder, expiresAt: now.Add(ttl)}
	return true, nil
}

// ReleaseSchedulerLock drops the lock if holder owns it.
func (m *MemoryStore) ReleaseSchedulerLock(_ context.Context, jobName, holder string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if l, ok := m.locks[jobName]; ok && l.holder == holder {
		delete(m.locks, jobName)
	}
	return nil
}
