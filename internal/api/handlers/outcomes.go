package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/haggle/internal/store"
	domain "github.com/donaldgifford/haggle/pkg/types"
)

// OutcomeRecorder records offer outcomes and aggregates success rates.
type OutcomeRecorder interface {
	RecordOutcome(ctx context.Context, o *domain.Outcome) error
	AggregateSuccessRates(ctx context.Context) ([]domain.StrategyStats, error)
}

// OutcomesHandler handles outcome recording and reporting.
type OutcomesHandler struct {
	recorder OutcomeRecorder
	store    store.Store
}

// NewOutcomesHandler creates a new OutcomesHandler.
func NewOutcomesHandler(r OutcomeRecorder, s store.Store) *OutcomesHandler {
	return &OutcomesHandler{recorder: r, store: s}
}

// --- Input/Output types ---

// RecordOutcomeInput is an outcome reported by a buyer.
type RecordOutcomeInput struct {
	Body struct {
		ItemName      string               `json:"item_name"               doc:"Listing title"                example:"Nike Air Max 90 trainers"`
		OriginalPrice float64              `json:"original_price"          doc:"Listed price when the offer was sent" example:"45"`
		OfferedPrice  float64              `json:"offered_price"           doc:"Offer that was sent"          example:"38.99"`
		Strategy      domain.Method        `json:"strategy"                doc:"Strategy method that was followed" example:"Quick Offer"`
		Outcome       domain.OutcomeResult `json:"outcome"                 doc:"Seller response"              enum:"accepted,countered,rejected,ignored"`
		ResponseTime  float64              `json:"response_time,omitempty" doc:"Hours until the seller replied" example:"2.5"`
	}
}

// RecordOutcomeOutput is the stored outcome.
type RecordOutcomeOutput struct {
	Body domain.Outcome
}

// ListOutcomesInput filters recorded outcomes.
type ListOutcomesInput struct {
	Strategy string    `query:"strategy"  doc:"Filter by strategy method"`
	Outcome  string    `query:"outcome"   doc:"Filter by result"                 enum:"accepted,countered,rejected,ignored,"`
	ItemName string    `query:"item_name" doc:"Case-insensitive item name substring"`
	Since    time.Time `query:"since"     doc:"Only outcomes recorded at or after this time (RFC 3339)"`
	Limit    int       `query:"limit"     doc:"Number of results (default 50)"   minimum:"0" maximum:"500"`
	Offset   int       `query:"offset"    doc:"Pagination offset"                minimum:"0"`
	OrderBy  string    `query:"order_by"  doc:"Sort field"                       enum:"recorded_at,discount,original_price,"`
}

// ListOutcomesOutput is a page of outcomes.
type ListOutcomesOutput struct {
	Body struct {
		Outcomes []domain.Outcome `json:"outcomes"`
		Total    int              `json:"total"`
		Limit    int              `json:"limit"`
		Offset   int              `json:"offset"`
	}
}

// SuccessRatesOutput is the per-strategy outcome summary.
type SuccessRatesOutput struct {
	Body struct {
		Strategies []domain.StrategyStats `json:"strategies"`
	}
}

// --- Handlers ---

// Record stores a new outcome.
func (h *OutcomesHandler) Record(ctx context.Context, input *RecordOutcomeInput) (*RecordOutcomeOutput, error) {
	o := &domain.Outcome{
		ItemName:          input.Body.ItemName,
		OriginalPrice:     input.Body.OriginalPrice,
		OfferedPrice:      input.Body.OfferedPrice,
		Strategy:          input.Body.Strategy,
		Result:            input.Body.Outcome,
		ResponseTimeHours: input.Body.ResponseTime,
	}

	if err := h.recorder.RecordOutcome(ctx, o); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return nil, validationError(err)
		}
		return nil, huma.Error500InternalServerError("recording outcome failed: " + err.Error())
	}

	return &RecordOutcomeOutput{Body: *o}, nil
}

// List returns recorded outcomes with optional filters and pagination.
func (h *OutcomesHandler) List(ctx context.Context, input *ListOutcomesInput) (*ListOutcomesOutput, error) {
	q := &store.OutcomeQuery{
		Limit:   input.Limit,
		Offset:  input.Offset,
		OrderBy: input.OrderBy,
	}
	if input.Strategy != "" {
		q.Strategy = &input.Strategy
	}
	if input.Outcome != "" {
		q.Outcome = &input.Outcome
	}
	if input.ItemName != "" {
		q.ItemName = &input.ItemName
	}
	if !input.Since.IsZero() {
		q.Since = &input.Since
	}

	outcomes, total, err := h.store.ListOutcomes(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("outcome query failed: " + err.Error())
	}
	if outcomes == nil {
		outcomes = []domain.Outcome{}
	}

	resp := &ListOutcomesOutput{}
	resp.Body.Outcomes = outcomes
	resp.Body.Total = total
	resp.Body.Limit, resp.Body.Offset = q.Page()
	return resp, nil
}

// SuccessRates returns outcome counts and success rates per strategy.
func (h *OutcomesHandler) SuccessRates(ctx context.Context, _ *struct{}) (*SuccessRatesOutput, error) {
	stats, err := h.recorder.AggregateSuccessRates(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("aggregating success rates failed: " + err.Error())
	}
	if stats == nil {
		stats = []domain.StrategyStats{}
	}

	resp := &SuccessRatesOutput{}
	resp.Body.Strategies = stats
	return resp, nil
}

// RegisterOutcomeRoutes registers outcome endpoints with the Huma API.
func RegisterOutcomeRoutes(api huma.API, h *OutcomesHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "record-outcome",
		Method:        http.MethodPost,
		Path:          "/api/v1/outcomes",
		Summary:       "Record an offer outcome",
		Description:   "Stores how a seller responded to an offer. Outcomes feed strategy success rates.",
		Tags:          []string{"outcomes"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusUnprocessableEntity, http.StatusInternalServerError},
	}, h.Record)

	huma.Register(api, huma.Operation{
		OperationID: "list-outcomes",
		Method:      http.MethodGet,
		Path:        "/api/v1/outcomes",
		Summary:     "List outcomes",
		Description: "Returns recorded outcomes with optional filters and pagination.",
		Tags:        []string{"outcomes"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID: "get-success-rates",
		Method:      http.MethodGet,
		Path:        "/api/v1/outcomes/success-rates",
		Summary:     "Get strategy success rates",
		Description: "Returns outcome counts per strategy and the share that were accepted or countered.",
		Tags:        []string{"outcomes"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.SuccessRates)
}
