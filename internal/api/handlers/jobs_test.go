package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/haggle/internal/api/handlers"
	domain "github.com/donaldgifford/haggle/pkg/types"
)

// mockJobsProvider is a test double for JobsProvider.
type mockJobsProvider struct {
	latestRuns []domain.JobRun
	err        error
}

func (m *mockJobsProvider) ListLatestJobRuns(_ context.Context) ([]domain.JobRun, error) {
	return m.latestRuns, m.err
}

// mockJobRunner is a test double for JobRunner.
type mockJobRunner struct {
	ran []string
	err error
}

func (m *mockJobRunner) RunNow(_ context.Context, name string) error {
	m.ran = append(m.ran, name)
	return m.err
}

func sampleJobRun(jobName, status string) domain.JobRun {
	now := time.Now().Truncate(time.Second)
	return domain.JobRun{
		ID:        "job-run-id-1",
		JobName:   jobName,
		StartedAt: now,
		Status:    status,
	}
}

func TestListJobs_Success(t *testing.T) {
	t.Parallel()

	runs := []domain.JobRun{
		sampleJobRun("success_rates", "succeeded"),
		sampleJobRun("cache_purge", "failed"),
	}
	h := handlers.NewJobsHandler(&mockJobsProvider{latestRuns: runs}, nil)

	_, api := humatest.New(t)
	handlers.RegisterJobRoutes(api, h)

	resp := api.Get("/api/v1/jobs")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "success_rates")
	assert.Contains(t, resp.Body.String(), "cache_purge")
}

func TestListJobs_Empty(t *testing.T) {
	t.Parallel()

	h := handlers.NewJobsHandler(&mockJobsProvider{latestRuns: nil}, nil)

	_, api := humatest.New(t)
	handlers.RegisterJobRoutes(api, h)

	resp := api.Get("/api/v1/jobs")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "[]")
}

func TestListJobs_Error(t *testing.T) {
	t.Parallel()

	h := handlers.NewJobsHandler(&mockJobsProvider{err: errors.New("db error")}, nil)

	_, api := humatest.New(t)
	handlers.RegisterJobRoutes(api, h)

	resp := api.Get("/api/v1/jobs")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "listing jobs failed")
}

func TestRunJob(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		runner     *mockJobRunner
		path       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "runs job",
			runner:     &mockJobRunner{},
			path:       "/api/v1/jobs/success_rates/run",
			wantStatus: http.StatusOK,
			wantBody:   `"status":"success_rates completed"`,
		},
		{
			name:       "job failure returns 500",
			runner:     &mockJobRunner{err: errors.New("store down")},
			path:       "/api/v1/jobs/comparable_prune/run",
			wantStatus: http.StatusInternalServerError,
			wantBody:   "comparable_prune failed: store down",
		},
		{
			name:       "unknown job rejected",
			runner:     &mockJobRunner{},
			path:       "/api/v1/jobs/ingestion/run",
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "no scheduler returns 503",
			runner:     nil,
			path:       "/api/v1/jobs/cache_purge/run",
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   "scheduler is not running",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var runner handlers.JobRunner
			if tt.runner != nil {
				runner = tt.runner
			}
			h := handlers.NewJobsHandler(&mockJobsProvider{}, runner)

			_, api := humatest.New(t)
			handlers.RegisterJobRoutes(api, h)

			resp := api.Post(tt.path)
			require.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}
