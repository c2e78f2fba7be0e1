package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/donaldgifford/haggle/pkg/types"
)

// Strategist generates negotiation strategies.
type Strategist interface {
	GenerateStrategy(ctx context.Context, in domain.ListingInput) domain.NegotiationStrategy
}

// Estimator returns keyword-based market estimates.
type Estimator interface {
	Estimate(itemName string) (float64, domain.BrandProfile)
}

// AnalyzeHandler serves listing analysis and market estimates.
type AnalyzeHandler struct {
	strategist Strategist
	estimator  Estimator
}

// NewAnalyzeHandler creates a new AnalyzeHandler.
func NewAnalyzeHandler(s Strategist, e Estimator) *AnalyzeHandler {
	return &AnalyzeHandler{strategist: s, estimator: e}
}

// --- Input/Output types ---

// AnalyzeInput is the listing submitted for analysis.
type AnalyzeInput struct {
	Body struct {
		ItemName   string         `json:"item_name"             doc:"Listing title"                               example:"Nike Air Max 90 trainers size 9" maxLength:"300"`
		Price      float64        `json:"price"                 doc:"Listed price in pounds"                      example:"45"`
		Days       int            `json:"days"                  doc:"Days since the item was listed"              example:"12"`
		Interested int            `json:"interested"            doc:"Users who favourited the item"               example:"3"`
		Views      int            `json:"views,omitempty"       doc:"Listing views; negative values count as zero" example:"140"`
		SellerData map[string]any `json:"seller_data,omitempty" doc:"Optional seller details (seller_id, listing_count, response_time, feedback_score, account_age_days)"`
	}
}

// StrategySummary is the recommended action.
type StrategySummary struct {
	Method          domain.Method `json:"method"           example:"Quick Offer"`
	OfferPrice      float64       `json:"offer_price"      example:"38.99"`
	Confidence      int           `json:"confidence"       example:"4"          minimum:"1" maximum:"5"`
	DiscountPercent float64       `json:"discount_percent" example:"13.4"`
	Message         string        `json:"message"`
}

// AnalysisSummary is the condensed reasoning behind a strategy.
type AnalysisSummary struct {
	MarketPosition      domain.MarketPosition  `json:"market_position"      example:"slightly_overpriced"`
	SellerMotivation    domain.SellerType      `json:"seller_motivation"    example:"testing_market"`
	NegotiationStrength float64                `json:"negotiation_strength" example:"0.62"`
	StrategyRationale   string                 `json:"strategy_rationale"`
	PriceTrend          domain.PriceTrend      `json:"price_trend"          example:"stable"`
	EstimatedMarket     bool                   `json:"estimated_market"     doc:"True when the market price came from the keyword estimator"`
	SoldCount           int                    `json:"sold_count"`
	BrandInfo           domain.BrandProfile    `json:"brand_info"`
	Timing              *domain.TimingAnalysis `json:"timing,omitempty"`
}

// AnalyzeOutput is the analysis response.
type AnalyzeOutput struct {
	Body struct {
		Success     bool                       `json:"success"      example:"true"`
		MarketPrice float64                    `json:"market_price" example:"42.5"`
		Strategy    StrategySummary            `json:"strategy"`
		Analysis    AnalysisSummary            `json:"analysis"`
		Insights    domain.Insights            `json:"insights"`
		Detail      domain.NegotiationStrategy `json:"detail"       doc:"Full strategy including every intermediate analysis"`
	}
}

// EstimateInput is the query for a keyword market estimate.
type EstimateInput struct {
	ItemName string `query:"item_name" doc:"Listing title" example:"Levi's 501 jeans" required:"true"`
}

// EstimateOutput is the market estimate response.
type EstimateOutput struct {
	Body struct {
		ItemName       string              `json:"item_name"`
		EstimatedPrice float64             `json:"estimated_price" example:"35.2"`
		BrandInfo      domain.BrandProfile `json:"brand_info"`
	}
}

// --- Handlers ---

// Analyze validates a listing and returns a negotiation strategy.
func (h *AnalyzeHandler) Analyze(ctx context.Context, input *AnalyzeInput) (*AnalyzeOutput, error) {
	in := domain.ListingInput{
		ItemName:        strings.TrimSpace(input.Body.ItemName),
		Price:           input.Body.Price,
		DaysListed:      input.Body.Days,
		InterestedCount: input.Body.Interested,
		Views:           input.Body.Views,
		SellerData:      input.Body.SellerData,
	}
	if err := in.Validate(); err != nil {
		return nil, validationError(err)
	}

	s := h.strategist.GenerateStrategy(ctx, in)

	resp := &AnalyzeOutput{}
	resp.Body.Success = true
	resp.Body.MarketPrice = s.Market.SoldMedian
	resp.Body.Strategy = StrategySummary{
		Method:          s.Method,
		OfferPrice:      s.OfferPrice,
		Confidence:      s.Confidence,
		DiscountPercent: s.DiscountPercent,
		Message:         s.Message,
	}
	resp.Body.Analysis = AnalysisSummary{
		MarketPosition:      s.Market.MarketPosition,
		SellerMotivation:    s.Seller.SellerType,
		NegotiationStrength: s.NegotiationStrength,
		StrategyRationale:   s.Rationale,
		PriceTrend:          s.Trend.PriceTrend,
		EstimatedMarket:     s.Market.Estimated,
		SoldCount:           s.Market.SoldCount,
		BrandInfo:           s.Market.BrandInfo,
		Timing:              s.Timing,
	}
	resp.Body.Insights = s.Insights
	resp.Body.Detail = s

	return resp, nil
}

// Estimate returns the keyword-based market estimate for an item name.
func (h *AnalyzeHandler) Estimate(_ context.Context, input *EstimateInput) (*EstimateOutput, error) {
	name := strings.TrimSpace(input.ItemName)
	if name == "" {
		return nil, huma.Error422UnprocessableEntity("item_name is required")
	}

	price, brand := h.estimator.Estimate(name)

	resp := &EstimateOutput{}
	resp.Body.ItemName = name
	resp.Body.EstimatedPrice = price
	resp.Body.BrandInfo = brand
	return resp, nil
}

// validationError maps domain validation failures to a 422 listing each
// problem.
func validationError(err error) error {
	var details []error
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			details = append(details, &huma.ErrorDetail{Message: e.Error()})
		}
	} else {
		details = append(details, &huma.ErrorDetail{Message: err.Error()})
	}
	return huma.Error422UnprocessableEntity("invalid input", details...)
}

// RegisterAnalyzeRoutes registers analysis endpoints with the Huma API.
func RegisterAnalyzeRoutes(api huma.API, h *AnalyzeHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "analyze-listing",
		Method:      http.MethodPost,
		Path:        "/api/v1/analyze",
		Summary:     "Analyze a listing",
		Description: "Compares the listing with recent sold prices, infers seller motivation and " +
			"returns a recommended offer, strategy and opening message.",
		Tags:   []string{"analysis"},
		Errors: []int{http.StatusUnprocessableEntity},
	}, h.Analyze)

	huma.Register(api, huma.Operation{
		OperationID: "estimate-market-price",
		Method:      http.MethodGet,
		Path:        "/api/v1/estimate",
		Summary:     "Estimate a market price",
		Description: "Returns the keyword-based market estimate used when no comparable sales are available.",
		Tags:        []string{"analysis"},
		Errors:      []int{http.StatusUnprocessableEntity},
	}, h.Estimate)
}
