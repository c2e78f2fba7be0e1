package client

import (
	"context"
	"strconv"
	"time"

	domain "github.com/donaldgifford/haggle/pkg/types"
)

// OutcomeRequest reports how a seller responded to an offer.
type OutcomeRequest struct {
	ItemName      string               `json:"item_name"`
	OriginalPrice float64              `json:"original_price"`
	OfferedPrice  float64              `json:"offered_price"`
	Strategy      domain.Method        `json:"strategy"`
	Outcome       domain.OutcomeResult `json:"outcome"`
	ResponseTime  float64              `json:"response_time,omitempty"`
}

// ListOutcomesParams defines query parameters for outcome queries.
type ListOutcomesParams struct {
	Strategy string
	Outcome  string
	ItemName string
	Since    time.Time
	Limit    int
	Offset   int
	OrderBy  string
}

// OutcomesResponse wraps a paginated outcomes response.
type OutcomesResponse struct {
	Outcomes []domain.Outcome `json:"outcomes"`
	Total    int              `json:"total"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
}

// RecordOutcome stores an outcome and returns it with its assigned ID.
func (c *Client) RecordOutcome(ctx context.Context, req *OutcomeRequest) (*domain.Outcome, error) {
	var o domain.Outcome
	if err := c.post(ctx, "/api/v1/outcomes", req, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// ListOutcomes returns outcomes matching the given parameters.
func (c *Client) ListOutcomes(ctx context.Context, params *ListOutcomesParams) (*OutcomesResponse, error) {
	q := map[string]string{}
	if params.Strategy != "" {
		q["strategy"] = params.Strategy
	}
	if params.Outcome != "" {
		q["outcome"] = params.Outcome
	}
	if params.ItemName != "" {
		q["item_name"] = params.ItemName
	}
	if !params.Since.IsZero() {
		q["since"] = params.Since.UTC().Format(time.RFC3339)
	}
	if params.Limit > 0 {
		q["limit"] = strconv.Itoa(params.Limit)
	}
	if params.Offset > 0 {
		q["offset"] = strconv.Itoa(params.Offset)
	}
	if params.OrderBy != "" {
		q["order_by"] = params.OrderBy
	}

	var resp OutcomesResponse
	if err := c.get(ctx, "/api/v1/outcomes", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SuccessRates returns per-strategy outcome statistics.
func (c *Client) SuccessRates(ctx context.Context) ([]domain.StrategyStats, error) {
	var resp struct {
		Strategies []domain.StrategyStats `json:"strategies"`
	}
	if err := c.get(ctx, "/api/v1/outcomes/success-rates", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Strategies, nil
}
