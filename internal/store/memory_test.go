package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/haggle/pkg/types"
)

func newClockedMemoryStore(start time.Time) (*MemoryStore, *time.Time) {
	m := NewMemoryStore()
	now := start
	m.now = func() time.Time { return now }
	return m, &now
}

func TestMemoryStore_SellerProfile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := NewMemoryStore()

	_, err := m.GetSellerProfile(ctx, "nobody")
	require.ErrorIs(t, err, domain.ErrNotFound)

	got, err := m.UpdateSellerProfile(ctx, "s1", func(p *domain.SellerProfile) error {
		assert.InDelta(t, domain.DefaultFlexibility, p.NegotiationFlexibility, 1e-9)
		p.ObservationCount++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, got.ObservationCount)

	got.ObservationCount = 99 // caller copy must not alias stored state
	stored, err := m.GetSellerProfile(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, stored.ObservationCount)
}

func TestMemoryStore_UpdateSellerProfile_ErrorLeavesProfile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := NewMemoryStore()
	require.NoError(t, m.UpsertSellerProfile(ctx, domain.NewSellerProfile("s1")))

	boom := errors.New("boom")
	_, err := m.UpdateSellerProfile(ctx, "s1", func(p *domain.SellerProfile) error {
		p.NegotiationFlexibility = 0.9
		return boom
	})
	require.ErrorIs(t, err, boom)

	stored, err := m.GetSellerProfile(ctx, "s1")
	require.NoError(t, err)
	assert.InDelta(t, domain.DefaultFlexibility, stored.NegotiationFlexibility, 1e-9)
}

func TestMemoryStore_UpdateSellerProfile_Concurrent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := NewMemoryStore()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.UpdateSellerProfile(ctx, "hot", func(p *domain.SellerProfile) error {
				p.ObservationCount++
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stored, err := m.GetSellerProfile(ctx, "hot")
	require.NoError(t, err)
	assert.Equal(t, 50, stored.ObservationCount)
}

func TestMemoryStore_ListOutcomes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	base := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemoryStore()

	for i, o := range []domain.Outcome{
		{ID: "a", ItemName: "Nike Air Max", OriginalPrice: 100, OfferedPrice: 80,
			Strategy: domain.MethodQuickOffer, Result: domain.OutcomeAccepted},
		{ID: "b", ItemName: "North Face Jacket", OriginalPrice: 200, OfferedPrice: 120,
			Strategy: domain.MethodQuickOffer, Result: domain.OutcomeRejected},
		{ID: "c", ItemName: "Barbour jacket", OriginalPrice: 150, OfferedPrice: 140,
			Strategy: domain.MethodStandardOffer, Result: domain.OutcomeCountered},
	} {
		o.RecordedAt = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, m.InsertOutcome(ctx, &o))
	}

	tests := []struct {
		name      string
		query     *OutcomeQuery
		wantIDs   []string
		wantTotal int
	}{
		{name: "nil query newest first", query: nil, wantIDs: []string{"c", "b", "a"}, wantTotal: 3},
		{name: "strategy", query: &OutcomeQuery{Strategy: ptr("Quick Offer")}, wantIDs: []string{"b", "a"}, wantTotal: 2},
		{name: "outcome", query: &OutcomeQuery{Outcome: ptr("countered")}, wantIDs: []string{"c"}, wantTotal: 1},
		{name: "item name case-insensitive", query: &OutcomeQuery{ItemName: ptr("JACKET")}, wantIDs: []string{"c", "b"}, wantTotal: 2},
		{name: "since", query: &OutcomeQuery{Since: ptr(base.Add(90 * time.Minute))}, wantIDs: []string{"c"}, wantTotal: 1},
		{name: "discount order", query: &OutcomeQuery{OrderBy: "discount"}, wantIDs: []string{"b", "a", "c"}, wantTotal: 3},
		{name: "price order", query: &OutcomeQuery{OrderBy: "original_price"}, wantIDs: []string{"b", "c", "a"}, wantTotal: 3},
		{name: "page", query: &OutcomeQuery{Limit: 1, Offset: 1}, wantIDs: []string{"b"}, wantTotal: 3},
		{name: "offset past end", query: &OutcomeQuery{Offset: 10}, wantIDs: []string{}, wantTotal: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, total, err := m.ListOutcomes(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, total)

			ids := make([]string, 0, len(got))
			for _, o := range got {
				ids = append(ids, o.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestMemoryStore_StrategyStats(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := NewMemoryStore()

	for _, r := range []domain.OutcomeResult{
		domain.OutcomeAccepted, domain.OutcomeCountered, domain.OutcomeRejected, domain.OutcomeIgnored,
	} {
		require.NoError(t, m.InsertOutcome(ctx, &domain.Outcome{
			ID: string(r), OriginalPrice: 10, OfferedPrice: 8,
			Strategy: domain.MethodPatientApproach, Result: r,
		}))
	}

	stats, err := m.StrategyStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, domain.StrategyStats{
		Strategy: domain.MethodPatientApproach, Total: 4,
		Accepted: 1, Countered: 1, Rejected: 1, Ignored: 1,
		SuccessRate: 0.5,
	}, stats[0])
}

func TestMemoryStore_Comparables(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	start := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	m, _ := newClockedMemoryStore(start)

	n, err := m.InsertComparables(ctx, []domain.Comparable{
		{Query: " Nike Trainers ", Price: 40, ObservedAt: start.Add(-72 * time.Hour)},
		{Query: "nike trainers", Price: 45},
		{Query: "nike trainers", Price: -1},
		{Query: "  ", Price: 5},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = m.InsertComparables(ctx, []domain.Comparable{
		{Query: "nike trainers", Price: 40, ObservedAt: start.Add(-72 * time.Hour)},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, n, "repeat observation ignored")

	got, err := m.ListComparables(ctx, "NIKE trainers", start.Add(-96*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.InDelta(t, 45.0, got[0].Price, 1e-9)

	pruned, err := m.PruneComparables(ctx, start.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, pruned)
}

func TestMemoryStore_JobRunsAndLocks(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	start := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	m, now := newClockedMemoryStore(start)

	id, err := m.InsertJobRun(ctx, "cache_purge")
	require.NoError(t, err)
	require.NoError(t, m.CompleteJobRun(ctx, id, domain.JobStatusSucceeded, "", 3))
	require.ErrorIs(t, m.CompleteJobRun(ctx, "missing", domain.JobStatusFailed, "x", 0), domain.ErrNotFound)

	_, err = m.InsertJobRun(ctx, "prune")
	require.NoError(t, err)

	*now = start.Add(2 * time.Hour)
	crashed, err := m.RecoverStaleJobRuns(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, crashed)

	runs, err := m.ListLatestJobRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "cache_purge", runs[0].JobName)
	assert.Equal(t, domain.JobStatusCrashed, runs[1].Status)

	ok, err := m.AcquireSchedulerLock(ctx, "job", "a", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = m.AcquireSchedulerLock(ctx, "job", "b", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.ReleaseSchedulerLock(ctx, "job", "b"))
	ok, err = m.AcquireSchedulerLock(ctx, "job", "b", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "release by non-holder must not free the lock")

	*now = now.Add(2 * time.Minute)
	ok, err = m.AcquireSchedulerLock(ctx, "job", "b", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "expired lock can be taken")
}

func TestMigrationFiles(t *testing.T) {
	t.Parallel()

	names, err := MigrationFiles()
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "001_initial.sql", names[0])
}
