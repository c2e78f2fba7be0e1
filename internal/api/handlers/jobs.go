package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/donaldgifford/haggle/pkg/types"
)

// JobsProvider defines the store methods required by the jobs handler.
type JobsProvider interface {
	ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error)
}

// JobRunner runs a scheduled job on demand.
type JobRunner interface {
	RunNow(ctx context.Context, name string) error
}

// JobsHandler handles scheduler job requests.
type JobsHandler struct {
	store  JobsProvider
	runner JobRunner
}

// NewJobsHandler creates a new JobsHandler. runner may be nil, in which
// case manual runs are unavailable.
func NewJobsHandler(s JobsProvider, runner JobRunner) *JobsHandler {
	return &JobsHandler{store: s, runner: runner}
}

// ListJobsOutput is the response body for listing the latest job runs.
type ListJobsOutput struct {
	Body []domain.JobRun
}

// RunJobInput names the job to run.
type RunJobInput struct {
	JobName string `path:"job_name" doc:"Scheduled job name" enum:"success_rates,cache_purge,comparable_prune"`
}

// RunJobOutput is the response body for a manual job run.
type RunJobOutput struct {
	Body struct {
		Status string `json:"status" example:"success_rates completed" doc:"Run status"`
	}
}

// ListJobs returns the most recent run for each distinct scheduler job.
func (h *JobsHandler) ListJobs(
	ctx context.Context,
	_ *struct{},
) (*ListJobsOutput, error) {
	runs, err := h.store.ListLatestJobRuns(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing jobs failed: " + err.Error())
	}

	if runs == nil {
		runs = []domain.JobRun{}
	}

	return &ListJobsOutput{Body: runs}, nil
}

// RunJob runs a scheduled job immediately.
func (h *JobsHandler) RunJob(ctx context.Context, input *RunJobInput) (*RunJobOutput, error) {
	if h.runner == nil {
		return nil, huma.Error503ServiceUnavailable("scheduler is not running")
	}

	if err := h.runner.RunNow(ctx, input.JobName); err != nil {
		return nil, huma.Error500InternalServerError(input.JobName + " failed: " + err.Error())
	}

	resp := &RunJobOutput{}
	resp.Body.Status = input.JobName + " completed"
	return resp, nil
}

// RegisterJobRoutes registers scheduler job endpoints with the Huma API.
func RegisterJobRoutes(api huma.API, h *JobsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-jobs",
		Method:      http.MethodGet,
		Path:        "/api/v1/jobs",
		Summary:     "List latest scheduler job runs",
		Description: "Returns the most recent run record for each distinct scheduled job.",
		Tags:        []string{"scheduler"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListJobs)

	huma.Register(api, huma.Operation{
		OperationID: "run-job",
		Method:      http.MethodPost,
		Path:        "/api/v1/jobs/{job_name}/run",
		Summary:     "Run a scheduler job now",
		Description: "Runs a maintenance job immediately under the same lock as scheduled runs.",
		Tags:        []string{"scheduler"},
		Errors:      []int{http.StatusInternalServerError, http.StatusServiceUnavailable},
	}, h.RunJob)
}
