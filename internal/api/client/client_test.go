package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/haggle/pkg/types"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.ListJobs(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": "invalid input"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Analyze(context.Background(), &AnalyzeRequest{ItemName: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (HTTP 422)")
	assert.Contains(t, err.Error(), "invalid input")
}

func TestClient_Analyze(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/analyze", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req AnalyzeRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Nike trainers", req.ItemName)
		assert.Equal(t, "s1", req.SellerData["seller_id"])

		writeJSON(w, http.StatusOK, map[string]any{
			"success":      true,
			"market_price": 60,
			"strategy":     map[string]any{"method": "Standard Offer", "offer_price": 47.5, "confidence": 2},
			"analysis":     map[string]any{"market_position": "good_deal", "seller_motivation": "motivated_seller"},
			"insights":     map[string]any{"market_comparison": "around typical market value"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.Analyze(context.Background(), &AnalyzeRequest{
		ItemName:   "Nike trainers",
		Price:      50,
		Days:       45,
		Interested: 1,
		SellerData: map[string]any{"seller_id": "s1"},
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.InDelta(t, 60.0, resp.MarketPrice, 1e-9)
	assert.Equal(t, domain.MethodStandardOffer, resp.Strategy.Method)
	assert.InDelta(t, 47.5, resp.Strategy.OfferPrice, 1e-9)
	assert.Equal(t, domain.PositionGoodDeal, resp.Analysis.MarketPosition)
	assert.Equal(t, domain.SellerMotivated, resp.Analysis.SellerMotivation)
}

func TestClient_Estimate(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/estimate", r.URL.Path)
		assert.Equal(t, "Levi's 501", r.URL.Query().Get("item_name"))
		writeJSON(w, http.StatusOK, EstimateResponse{ItemName: "Levi's 501", EstimatedPrice: 35.2})
	}))
	defer srv.Close()

	resp, err := New(srv.URL).Estimate(context.Background(), "Levi's 501")
	require.NoError(t, err)
	assert.InDelta(t, 35.2, resp.EstimatedPrice, 1e-9)
}

func TestClient_RecordOutcome(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/outcomes", r.URL.Path)

		var req OutcomeRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		writeJSON(w, http.StatusCreated, domain.Outcome{
			ID:            "01JOUTCOME",
			ItemName:      req.ItemName,
			OriginalPrice: req.OriginalPrice,
			OfferedPrice:  req.OfferedPrice,
			Strategy:      req.Strategy,
			Result:        req.Outcome,
		})
	}))
	defer srv.Close()

	o, err := New(srv.URL).RecordOutcome(context.Background(), &OutcomeRequest{
		ItemName:      "Nike trainers",
		OriginalPrice: 50,
		OfferedPrice:  42,
		Strategy:      domain.MethodQuickOffer,
		Outcome:       domain.OutcomeCountered,
	})
	require.NoError(t, err)
	assert.Equal(t, "01JOUTCOME", o.ID)
	assert.Equal(t, domain.OutcomeCountered, o.Result)
}

func TestClient_ListOutcomes(t *testing.T) {
	t.Parallel()

	since := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/api/v1/outcomes", r.URL.Path)
		assert.Equal(t, "Quick Offer", q.Get("strategy"))
		assert.Equal(t, "accepted", q.Get("outcome"))
		assert.Equal(t, "2026-03-01T00:00:00Z", q.Get("since"))
		assert.Equal(t, "10", q.Get("limit"))
		assert.False(t, q.Has("offset"))

		writeJSON(w, http.StatusOK, OutcomesResponse{
			Outcomes: []domain.Outcome{{ID: "o1"}},
			Total:    1,
			Limit:    10,
		})
	}))
	defer srv.Close()

	resp, err := New(srv.URL).ListOutcomes(context.Background(), &ListOutcomesParams{
		Strategy: "Quick Offer",
		Outcome:  "accepted",
		Since:    since,
		Limit:    10,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Outcomes, 1)
	assert.Equal(t, "o1", resp.Outcomes[0].ID)
}

func TestClient_SuccessRates(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/outcomes/success-rates", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]any{
			"strategies": []domain.StrategyStats{{Strategy: domain.MethodQuickOffer, Total: 4, SuccessRate: 0.75}},
		})
	}))
	defer srv.Close()

	stats, err := New(srv.URL).SuccessRates(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.InDelta(t, 0.75, stats[0].SuccessRate, 1e-9)
}

func TestClient_GetSeller(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/sellers/seller 1", r.URL.Path)
		writeJSON(w, http.StatusOK, domain.SellerProfile{SellerID: "seller 1", ListingCount: 12})
	}))
	defer srv.Close()

	p, err := New(srv.URL).GetSeller(context.Background(), "seller 1")
	require.NoError(t, err)
	assert.Equal(t, 12, p.ListingCount)
}

func TestClient_Jobs(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/jobs":
			writeJSON(w, http.StatusOK, []domain.JobRun{{ID: "r1", JobName: "success_rates", Status: "succeeded"}})
		case r.Method == http.MethodPost && r.URL.Path == "/api/v1/jobs/cache_purge/run":
			writeJSON(w, http.StatusOK, map[string]string{"status": "cache_purge completed"})
		case r.URL.Path == "/api/v1/quota":
			writeJSON(w, http.StatusOK, QuotaResponse{Enabled: true, DailyLimit: 500, Remaining: 498})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)

	runs, err := c.ListJobs(context.Background())
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "success_rates", runs[0].JobName)

	require.NoError(t, c.RunJob(context.Background(), "cache_purge"))

	q, err := c.Quota(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(498), q.Remaining)

	err = c.RunJob(context.Background(), "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	custom := &http.Client{Timeout: 3 * time.Second}
	c := New("http://example.com/", WithHTTPClient(custom))
	assert.Same(t, custom, c.http.GetClient())
	assert.Equal(t, "http://example.com", c.baseURL)
}
