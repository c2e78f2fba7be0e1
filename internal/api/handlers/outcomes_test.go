package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/haggle/internal/api/handlers"
	"github.com/donaldgifford/haggle/internal/store"
	storeMocks "github.com/donaldgifford/haggle/internal/store/mocks"
	domain "github.com/donaldgifford/haggle/pkg/types"
)

// fakeRecorder validates like the engine and keeps outcomes in memory.
type fakeRecorder struct {
	recorded []domain.Outcome
	stats    []domain.StrategyStats
	err      error
}

func (f *fakeRecorder) RecordOutcome(_ context.Context, o *domain.Outcome) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if f.err != nil {
		return f.err
	}
	o.ID = "01JTESTOUTCOME"
	f.recorded = append(f.recorded, *o)
	return nil
}

func (f *fakeRecorder) AggregateSuccessRates(context.Context) ([]domain.StrategyStats, error) {
	return f.stats, f.err
}

func TestRecordOutcome(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		recorder   *fakeRecorder
		body       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "created",
			recorder:   &fakeRecorder{},
			body:       `{"item_name":"Nike trainers","original_price":45,"offered_price":38.99,"strategy":"Quick Offer","outcome":"accepted","response_time":2.5}`,
			wantStatus: http.StatusCreated,
			wantBody:   `"id":"01JTESTOUTCOME"`,
		},
		{
			name:       "unknown outcome rejected by schema",
			recorder:   &fakeRecorder{},
			body:       `{"item_name":"Nike trainers","original_price":45,"offered_price":38.99,"strategy":"Quick Offer","outcome":"maybe"}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "non-positive prices rejected",
			recorder:   &fakeRecorder{},
			body:       `{"item_name":"Nike trainers","original_price":0,"offered_price":-1,"strategy":"Quick Offer","outcome":"rejected"}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "original_price must be greater than 0",
		},
		{
			name:       "store failure",
			recorder:   &fakeRecorder{err: errors.New("insert failed")},
			body:       `{"item_name":"Nike trainers","original_price":45,"offered_price":40,"strategy":"Quick Offer","outcome":"ignored"}`,
			wantStatus: http.StatusInternalServerError,
			wantBody:   "recording outcome failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := handlers.NewOutcomesHandler(tt.recorder, storeMocks.NewMockStore(t))

			_, api := humatest.New(t)
			handlers.RegisterOutcomeRoutes(api, h)

			resp := api.Post("/api/v1/outcomes", strings.NewReader(tt.body))
			require.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestListOutcomes(t *testing.T) {
	t.Parallel()

	since := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		query      string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name:  "no filters",
			query: "",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListOutcomes(mock.Anything, mock.Anything).
					Return([]domain.Outcome{{ID: "o1", ItemName: "Nike trainers"}}, 1, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total":1`,
		},
		{
			name:  "filters are passed through",
			query: "?strategy=Quick%20Offer&outcome=accepted&item_name=nike&since=2026-03-01T00:00:00Z",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListOutcomes(mock.Anything, mock.MatchedBy(func(q *store.OutcomeQuery) bool {
						return q.Strategy != nil && *q.Strategy == "Quick Offer" &&
							q.Outcome != nil && *q.Outcome == "accepted" &&
							q.ItemName != nil && *q.ItemName == "nike" &&
							q.Since != nil && q.Since.Equal(since)
					})).
					Return(nil, 0, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"outcomes":[]`,
		},
		{
			name:  "pagination and ordering",
			query: "?limit=10&offset=20&order_by=discount",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListOutcomes(mock.Anything, mock.MatchedBy(func(q *store.OutcomeQuery) bool {
						return q.Limit == 10 && q.Offset == 20 && q.OrderBy == "discount"
					})).
					Return(nil, 0, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"limit":10`,
		},
		{
			name:  "default limit reported",
			query: "",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().ListOutcomes(mock.Anything, mock.Anything).Return(nil, 0, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"limit":50`,
		},
		{
			name:       "invalid order_by",
			query:      "?order_by=score",
			setupMock:  func(*storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "invalid limit",
			query:      "?limit=abc",
			setupMock:  func(*storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:  "store error",
			query: "",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().ListOutcomes(mock.Anything, mock.Anything).Return(nil, 0, assert.AnError).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "outcome query failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)
			h := handlers.NewOutcomesHandler(&fakeRecorder{}, ms)

			_, api := humatest.New(t)
			handlers.RegisterOutcomeRoutes(api, h)

			resp := api.Get("/api/v1/outcomes" + tt.query)
			require.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestSuccessRates(t *testing.T) {
	t.Parallel()

	rec := &fakeRecorder{stats: []domain.StrategyStats{
		{Strategy: domain.MethodQuickOffer, Total: 4, Accepted: 2, Countered: 1, Ignored: 1, SuccessRate: 0.75},
	}}
	h := handlers.NewOutcomesHandler(rec, storeMocks.NewMockStore(t))

	_, api := humatest.New(t)
	handlers.RegisterOutcomeRoutes(api, h)

	resp := api.Get("/api/v1/outcomes/success-rates")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"strategy":"Quick Offer"`)
	assert.Contains(t, resp.Body.String(), `"success_rate":0.75`)
}

func TestSuccessRates_Empty(t *testing.T) {
	t.Parallel()

	h := handlers.NewOutcomesHandler(&fakeRecorder{}, storeMocks.NewMockStore(t))

	_, api := humatest.New(t)
	handlers.RegisterOutcomeRoutes(api, h)

	resp := api.Get("/api/v1/outcomes/success-rates")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"strategies":[]`)
}
