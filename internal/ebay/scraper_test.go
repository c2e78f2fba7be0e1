package ebay_test

import (
	"bytes"
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/haggle/internal/ebay"
	"github.com/donaldgifford/haggle/pkg/logger"
)

func fixture(t *testing.T) []byte {
	t.Helper()
	b, err := os.ReadFile("testdata/sold_search.html")
	require.NoError(t, err)
	return b
}

func newScraper(url string, opts ...ebay.ScraperOption) *ebay.Scraper {
	base := []ebay.ScraperOption{
		ebay.WithBaseURL(url),
		ebay.WithTimeout(2 * time.Second),
		ebay.WithLogger(logger.Discard()),
		ebay.WithNowFunc(func() time.Time { return scrapeNow }),
	}
	return ebay.NewScraper(append(base, opts...)...)
}

func TestScraper_Search_Sold(t *testing.T) {
	t.Parallel()

	page := fixture(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sch/i.html", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "nike air max", q.Get("_nkw"))
		assert.Equal(t, "1", q.Get("LH_Sold"))
		assert.Equal(t, "1", q.Get("LH_Complete"))
		assert.Equal(t, "ua-test", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write(page)
	}))
	t.Cleanup(srv.Close)

	s := newScraper(srv.URL, ebay.WithUserAgent("ua-test"))
	got, err := s.Search(context.Background(), ebay.SearchRequest{
		Query: "  nike air max ",
		Kind:  ebay.KindSold,
		Limit: 2,
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.InDelta(t, 45.0, got[0].Price, 1e-9)
	assert.True(t, got[0].Sold)
}

func TestScraper_Search_ActiveOmitsSoldFilters(t *testing.T) {
	t.Parallel()

	page := fixture(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.Query().Get("LH_Sold"))
		_, _ = w.Write(page)
	}))
	t.Cleanup(srv.Close)

	got, err := newScraper(srv.URL).Search(context.Background(), ebay.SearchRequest{
		Query: "nike",
		Kind:  ebay.KindActive,
	})
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.False(t, got[0].Sold)
}

func TestScraper_Search_Encodings(t *testing.T) {
	t.Parallel()

	page := fixture(t)

	var brBody bytes.Buffer
	bw := brotli.NewWriter(&brBody)
	_, err := bw.Write(page)
	require.NoError(t, err)
	require.NoError(t, bw.Close())

	var gzBody bytes.Buffer
	gw := gzip.NewWriter(&gzBody)
	_, err = gw.Write(page)
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	tests := []struct {
		name     string
		encoding string
		body     []byte
	}{
		{name: "brotli", encoding: "br", body: brBody.Bytes()},
		{name: "gzip", encoding: "gzip", body: gzBody.Bytes()},
		{name: "identity", encoding: "", body: page},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				if tt.encoding != "" {
					w.Header().Set("Content-Encoding", tt.encoding)
				}
				_, _ = w.Write(tt.body)
			}))
			t.Cleanup(srv.Close)

			got, err := newScraper(srv.URL).Search(context.Background(), ebay.SearchRequest{
				Query: "nike",
				Kind:  ebay.KindSold,
			})
			require.NoError(t, err)
			assert.Len(t, got, 4)
		})
	}
}

func TestScraper_Search_BlankQuery(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		calls.Add(1)
	}))
	t.Cleanup(srv.Close)

	got, err := newScraper(srv.URL).Search(context.Background(), ebay.SearchRequest{Query: "   "})
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, int32(0), calls.Load())
}

func TestScraper_Search_ErrorStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	_, err := newScraper(srv.URL).Search(context.Background(), ebay.SearchRequest{Query: "nike"})
	require.ErrorIs(t, err, ebay.ErrUnexpectedStatus)
}

func TestScraper_Search_DailyLimit(t *testing.T) {
	t.Parallel()

	page := fixture(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(page)
	}))
	t.Cleanup(srv.Close)

	s := newScraper(srv.URL, ebay.WithRateLimiter(ebay.NewRateLimiter(100, 10, 1)))

	_, err := s.Search(context.Background(), ebay.SearchRequest{Query: "nike"})
	require.NoError(t, err)

	_, err = s.Search(context.Background(), ebay.SearchRequest{Query: "nike"})
	require.ErrorIs(t, err, ebay.ErrDailyLimitReached)
}
