package client

import (
	"context"
	"net/url"

	domain "github.com/donaldgifford/haggle/pkg/types"
)

// QuotaResponse is the scraper quota status.
type QuotaResponse struct {
	Enabled    bool   `json:"enabled"`
	DailyLimit int64  `json:"daily_limit"`
	DailyUsed  int64  `json:"daily_used"`
	Remaining  int64  `json:"remaining"`
	ResetAt    string `json:"reset_at"`
}

// ListJobs returns the most recent run for each distinct scheduled job.
func (c *Client) ListJobs(ctx context.Context) ([]domain.JobRun, error) {
	var runs []domain.JobRun
	if err := c.get(ctx, "/api/v1/jobs", nil, &runs); err != nil {
		return nil, err
	}
	return runs, nil
}

// RunJob runs a scheduled maintenance job immediately.
func (c *Client) RunJob(ctx context.Context, jobName string) error {
	return c.post(ctx, "/api/v1/jobs/"+url.PathEscape(jobName)+"/run", nil, nil)
}

// Quota returns the marketplace scraper quota.
func (c *Client) Quota(ctx context.Context) (*QuotaResponse, error) {
	var q QuotaResponse
	if err := c.get(ctx, "/api/v1/quota", nil, &q); err != nil {
		return nil, err
	}
	return &q, nil
}
