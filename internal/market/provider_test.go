package market_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/haggle/internal/ebay"
	ebayMocks "github.com/donaldgifford/haggle/internal/ebay/mocks"
	"github.com/donaldgifford/haggle/internal/market"
	"github.com/donaldgifford/haggle/internal/store"
	storeMocks "github.com/donaldgifford/haggle/internal/store/mocks"
	"github.com/donaldgifford/haggle/pkg/logger"
	domain "github.com/donaldgifford/haggle/pkg/types"
)

var providerNow = time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)

func soldListings() []ebay.Listing {
	d1 := providerNow.AddDate(0, 0, -2)
	d2 := providerNow.AddDate(0, 0, -10)
	return []ebay.Listing{
		{Title: "a", Price: 40, Sold: true, SoldAt: &d1},
		{Title: "b", Price: 50, Sold: true, SoldAt: &d2},
		{Title: "c", Price: 45, Sold: true},
	}
}

func newProvider(opts ...market.ProviderOption) *market.Provider {
	base := []market.ProviderOption{
		market.WithLogger(logger.Discard()),
		market.WithNowFunc(func() time.Time { return providerNow }),
		market.WithCache(market.NewCache[[]ebay.Listing](time.Hour)),
	}
	return market.NewProvider(append(base, opts...)...)
}

func TestProvider_NoSearcher(t *testing.T) {
	t.Parallel()

	p := newProvider()
	sold, err := p.FetchComparables(context.Background(), "nike")
	require.NoError(t, err)
	assert.Empty(t, sold)

	active, err := p.FetchListings(context.Background(), "nike")
	require.NoError(t, err)
	assert.Empty(t, active)

	history, err := p.FetchHistorical(context.Background(), "nike", 30)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestProvider_FetchComparables_CachesAndRecords(t *testing.T) {
	t.Parallel()

	ms := ebayMocks.NewMockSearcher(t)
	ms.EXPECT().
		Search(mock.Anything, ebay.SearchRequest{Query: "Nike Trainers", Kind: ebay.KindSold, Limit: 25}).
		Return(soldListings(), nil).
		Once()

	mem := store.NewMemoryStore()
	p := newProvider(
		market.WithSearcher(ms),
		market.WithStore(mem),
		market.WithMaxResults(25),
	)

	for range 2 {
		got, err := p.FetchComparables(context.Background(), "Nike Trainers")
		require.NoError(t, err)
		assert.Equal(t, []float64{40, 50, 45}, got)
	}

	history, err := p.FetchHistorical(context.Background(), "nike trainers", 30)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, 0, history[0].DaysAgo, "undated listing observed now")

	days := map[int]bool{}
	for _, pt := range history {
		days[pt.DaysAgo] = true
	}
	assert.True(t, days[2])
	assert.True(t, days[10])
}

func TestProvider_FetchComparables_SearchError(t *testing.T) {
	t.Parallel()

	ms := ebayMocks.NewMockSearcher(t)
	ms.EXPECT().Search(mock.Anything, mock.Anything).Return(nil, ebay.ErrDailyLimitReached)

	p := newProvider(market.WithSearcher(ms))
	_, err := p.FetchComparables(context.Background(), "nike")
	require.ErrorIs(t, err, ebay.ErrDailyLimitReached)
}

func TestProvider_FetchListings_UsesActiveKind(t *testing.T) {
	t.Parallel()

	ms := ebayMocks.NewMockSearcher(t)
	ms.EXPECT().
		Search(mock.Anything, mock.MatchedBy(func(r ebay.SearchRequest) bool { return r.Kind == ebay.KindActive })).
		Return([]ebay.Listing{{Price: 60}, {Price: 70}}, nil)

	p := newProvider(market.WithSearcher(ms))
	got, err := p.FetchListings(context.Background(), "nike")
	require.NoError(t, err)
	assert.Equal(t, []float64{60, 70}, got)
}

func TestProvider_RecordFailureDoesNotFailFetch(t *testing.T) {
	t.Parallel()

	ms := ebayMocks.NewMockSearcher(t)
	ms.EXPECT().Search(mock.Anything, mock.Anything).Return(soldListings(), nil)

	st := storeMocks.NewMockStore(t)
	st.EXPECT().InsertComparables(mock.Anything, mock.Anything).Return(0, errors.New("db down"))

	p := newProvider(market.WithSearcher(ms), market.WithStore(st))
	got, err := p.FetchComparables(context.Background(), "nike")
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestProvider_FetchHistorical_WithoutStoreUsesCachedSold(t *testing.T) {
	t.Parallel()

	ms := ebayMocks.NewMockSearcher(t)
	ms.EXPECT().Search(mock.Anything, mock.Anything).Return(soldListings(), nil)

	p := newProvider(market.WithSearcher(ms))
	_, err := p.FetchComparables(context.Background(), "nike")
	require.NoError(t, err)

	history, err := p.FetchHistorical(context.Background(), "NIKE", 5)
	require.NoError(t, err)
	assert.Equal(t, []domain.PricePoint{{Price: 40, DaysAgo: 2}}, history)
}

func TestProvider_FetchHistorical_StoreError(t *testing.T) {
	t.Parallel()

	st := storeMocks.NewMockStore(t)
	st.EXPECT().
		ListComparables(mock.Anything, "nike", providerNow.AddDate(0, 0, -90)).
		Return(nil, errors.New("db down"))

	p := newProvider(market.WithStore(st))
	_, err := p.FetchHistorical(context.Background(), " Nike ", 0)
	require.Error(t, err)
}
