package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/haggle/internal/config"
	"github.com/donaldgifford/haggle/internal/store"
	"github.com/donaldgifford/haggle/pkg/logger"
	domain "github.com/donaldgifford/haggle/pkg/types"
)

func newTestApp(t *testing.T) *app {
	t.Helper()
	a, err := newApp(context.Background(), config.Default(), logger.Discard())
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a
}

func TestNewApp_DefaultsToMemoryStore(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	assert.IsType(t, &store.MemoryStore{}, a.store)
	assert.Nil(t, a.limiter)
	assert.NotNil(t, a.engine)
	assert.NotNil(t, a.provider.Cache())
}

func TestNewServer_Routes(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	e := newServer(config.Default(), a, nil, logger.Discard())

	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		wantCode int
		contains string
	}{
		{name: "healthz", method: http.MethodGet, path: "/healthz", wantCode: http.StatusOK, contains: `"ok"`},
		{name: "readyz", method: http.MethodGet, path: "/readyz", wantCode: http.StatusOK, contains: `"ready"`},
		{name: "metrics", method: http.MethodGet, path: "/metrics", wantCode: http.StatusOK, contains: "haggle_"},
		{name: "web form", method: http.MethodGet, path: "/", wantCode: http.StatusOK, contains: "analyzeForm"},
		{name: "estimate", method: http.MethodGet, path: "/api/v1/estimate?item_name=Nike+trainers", wantCode: http.StatusOK, contains: `"brand":"Nike"`},
		{name: "quota disabled", method: http.MethodGet, path: "/api/v1/quota", wantCode: http.StatusOK, contains: `"enabled":false`},
		{name: "unknown seller", method: http.MethodGet, path: "/api/v1/sellers/nobody", wantCode: http.StatusNotFound},
		{name: "run job without scheduler", method: http.MethodPost, path: "/api/v1/jobs/success_rates/run", wantCode: http.StatusServiceUnavailable},
		{
			name:     "analyze",
			method:   http.MethodPost,
			path:     "/api/v1/analyze",
			body:     `{"item_name":"Nike trainers","price":50,"days":45,"interested":1}`,
			wantCode: http.StatusOK,
			contains: `"success":true`,
		},
		{
			name:     "analyze invalid",
			method:   http.MethodPost,
			path:     "/api/v1/analyze",
			body:     `{"item_name":"Nike trainers","price":0,"days":45,"interested":1}`,
			wantCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			if tt.contains != "" {
				assert.Contains(t, rec.Body.String(), tt.contains)
			}
		})
	}
}

func TestAnalyzeCmd_JSON(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	cmd := analyzeCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"Nike", "trainers", "--price", "50", "--days", "45", "--interested", "1", "--json"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))

	var s domain.NegotiationStrategy
	require.NoError(t, json.Unmarshal(out.Bytes(), &s))
	assert.True(t, s.Market.Estimated)
	assert.Positive(t, s.Market.SoldMedian)
	assert.Equal(t, "Nike", s.Market.BrandInfo.Brand)
	assert.GreaterOrEqual(t, s.Confidence, 1)
	assert.LessOrEqual(t, s.Confidence, 5)
	assert.Positive(t, s.OfferPrice)
}

func TestAnalyzeCmd_Table(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cmd := analyzeCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"Nike trainers", "--price", "50", "--days", "45", "--interested", "1"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "Strategy:")
	assert.Contains(t, out.String(), "(estimated)")
	assert.Contains(t, out.String(), "Message:")
}

func TestAnalyzeCmd_InvalidPrice(t *testing.T) {
	t.Parallel()

	for _, price := range []string{"-3", "0", "NaN", "Inf", "-Inf"} {
		t.Run(price, func(t *testing.T) {
			t.Parallel()

			cmd := analyzeCmd()
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs([]string{"Nike trainers", "--price", price})

			err := cmd.ExecuteContext(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestEstimateCmd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		contains string
	}{
		{name: "known brand", args: []string{"Nike", "trainers"}, contains: "brand Nike"},
		{name: "unknown brand", args: []string{"plain mug"}, contains: "plain mug: £"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			cmd := estimateCmd()
			cmd.SetOut(&out)
			cmd.SetArgs(tt.args)

			require.NoError(t, cmd.Execute())
			assert.Contains(t, out.String(), tt.contains)
		})
	}
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cmd := versionCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "haggle dev\n", out.String())
}
