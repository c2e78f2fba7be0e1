package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	io_prometheus_client "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mw "github.com/donaldgifford/haggle/internal/api/middleware"
	"github.com/donaldgifford/haggle/internal/metrics"
)

// Subtests share global collectors and run in order.
func TestMetricsMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		route      string
		target     string
		handler    echo.HandlerFunc
		wantStatus int
	}{
		{
			name:       "records route template, not the raw path",
			method:     http.MethodGet,
			route:      "/api/v1/sellers/:seller_id",
			target:     "/api/v1/sellers/s-991",
			handler:    func(c echo.Context) error { return c.JSON(http.StatusOK, map[string]string{"id": c.Param("seller_id")}) },
			wantStatus: http.StatusOK,
		},
		{
			name:       "records status of a returned error",
			method:     http.MethodPost,
			route:      "/api/v1/jobs/:job_name/run",
			target:     "/api/v1/jobs/cache_purge/run",
			handler:    func(echo.Context) error { return echo.NewHTTPError(http.StatusServiceUnavailable) },
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "records POST analyze",
			method:     http.MethodPost,
			route:      "/api/v1/analyze",
			target:     "/api/v1/analyze",
			handler:    func(c echo.Context) error { return c.NoContent(http.StatusUnprocessableEntity) },
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(mw.Metrics())
			e.Add(tt.method, tt.route, tt.handler)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, http.NoBody))
			assert.Equal(t, tt.wantStatus, rec.Code)

			status := strconv.Itoa(tt.wantStatus)
			assert.Positive(t, ptestutil.ToFloat64(
				metrics.HTTPRequestsTotal.WithLabelValues(tt.method, tt.route, status)))

			observer, err := metrics.HTTPRequestDuration.GetMetricWithLabelValues(tt.method, tt.route, status)
			require.NoError(t, err)
			hm := &io_prometheus_client.Metric{}
			require.NoError(t, observer.(prometheus.Metric).Write(hm))
			assert.Positive(t, hm.GetHistogram().GetSampleCount())
		})
	}
}

// Health check subtests share the up gauges and run in order.
func TestMetricsMiddleware_HealthChecks(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		status    int
		gauge     prometheus.Gauge
		wantGauge float64
	}{
		{name: "healthy liveness", path: "/healthz", status: http.StatusOK, gauge: metrics.HealthzUp, wantGauge: 1},
		{name: "unready", path: "/readyz", status: http.StatusServiceUnavailable, gauge: metrics.ReadyzUp, wantGauge: 0},
		{name: "ready again", path: "/readyz", status: http.StatusOK, gauge: metrics.ReadyzUp, wantGauge: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(mw.Metrics())
			e.GET(tt.path, func(c echo.Context) error { return c.NoContent(tt.status) })

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, http.NoBody))

			assert.Equal(t, tt.status, rec.Code)
			assert.InDelta(t, tt.wantGauge, ptestutil.ToFloat64(tt.gauge), 1e-9)
			assert.Zero(t, ptestutil.ToFloat64(
				metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, tt.path, strconv.Itoa(tt.status))),
				"health checks are excluded from request metrics")
		})
	}
}
