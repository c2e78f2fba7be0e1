// Package domain defines the core business types for haggle.
package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidInput is returned when a listing or outcome fails ingress validation.
var ErrInvalidInput = errors.New("invalid input")

// ErrNotFound is returned by stores when a keyed record does not exist.
var ErrNotFound = errors.New("not found")

// MarketPosition classifies a listing price relative to its comparables.
type MarketPosition string

// Market position constants, ordered from cheapest to most expensive.
const (
	PositionUnderpriced        MarketPosition = "underpriced"
	PositionGoodDeal           MarketPosition = "good_deal"
	PositionMarketPrice        MarketPosition = "market_price"
	PositionSlightlyOverpriced MarketPosition = "slightly_overpriced"
	PositionOverpriced         MarketPosition = "overpriced"
)

// Rank returns the ordinal of the position, 0 for underpriced up to 4 for
// overpriced. Unknown values rank as market price.
func (p MarketPosition) Rank() int {
	switch p {
	case PositionUnderpriced:
		return 0
	case PositionGoodDeal:
		return 1
	case PositionSlightlyOverpriced:
		return 3
	case PositionOverpriced:
		return 4
	default:
		return 2
	}
}

// DemandLevel describes how sought-after a brand is.
type DemandLevel string

// Demand level constants.
const (
	DemandLuxury DemandLevel = "luxury"
	DemandHigh   DemandLevel = "high"
	DemandMedium DemandLevel = "medium"
	DemandLow    DemandLevel = "low"
	DemandTrend  DemandLevel = "trend"
)

// SellerType is the inferred seller archetype.
type SellerType string

// Seller type constants.
const (
	SellerTestingMarket SellerType = "testing_market"
	SellerMotivated     SellerType = "motivated_seller"
	SellerFirmOnPrice   SellerType = "firm_on_price"
	SellerTypicalSeller SellerType = "typical_seller"
)

// PriceTrend is the direction of recent comparable prices.
type PriceTrend string

// Price trend constants.
const (
	TrendRising    PriceTrend = "rising"
	TrendDeclining PriceTrend = "declining"
	TrendStable    PriceTrend = "stable"
)

// Method is a named negotiation strategy.
type Method string

// Strategy labels. Paired labels (Market Reality Check / Quick Offer, etc.)
// are the timing-aware and timing-free variants of the same rule.
const (
	MethodWaitAndMessageLater Method = "Wait and Message Later"
	MethodUrgentOffer         Method = "Urgent Offer"
	MethodTrendDirectMessage  Method = "Trend-Based Direct Message"
	MethodMarketRealityCheck  Method = "Market Reality Check"
	MethodQuickOffer          Method = "Quick Offer"
	MethodSeasonalPatience    Method = "Seasonal Patience"
	MethodPatientApproach     Method = "Patient Approach"
	MethodEndOfMonthPush      Method = "End-of-Month Push"
	MethodConfidentOffer      Method = "Confident Offer"
	MethodStandardOffer       Method = "Standard Offer"
)

// Methods lists every strategy label in decision-table order.
func Methods() []Method {
	return []Method{
		MethodWaitAndMessageLater,
		MethodUrgentOffer,
		MethodTrendDirectMessage,
		MethodMarketRealityCheck,
		MethodQuickOffer,
		MethodSeasonalPatience,
		MethodPatientApproach,
		MethodEndOfMonthPush,
		MethodConfidentOffer,
		MethodStandardOffer,
	}
}

// OutcomeResult records how a seller responded to an offer.
type OutcomeResult string

// Outcome result constants.
const (
	OutcomeAccepted  OutcomeResult = "accepted"
	OutcomeCountered OutcomeResult = "countered"
	OutcomeRejected  OutcomeResult = "rejected"
	OutcomeIgnored   OutcomeResult = "ignored"
)

// Valid reports whether r is a known outcome result.
func (r OutcomeResult) Valid() bool {
	switch r {
	case OutcomeAccepted, OutcomeCountered, OutcomeRejected, OutcomeIgnored:
		return true
	default:
		return false
	}
}

// ListingInput is a single marketplace listing submitted for analysis.
type ListingInput struct {
	ItemName        string         `json:"item_name"`
	Price           float64        `json:"price"`
	DaysListed      int            `json:"days"`
	InterestedCount int            `json:"interested"`
	Views           int            `json:"views,omitempty"`
	SellerData      map[string]any `json:"seller_data,omitempty"`
}

// Validate checks ingress constraints. Negative views are coerced to zero
// rather than rejected.
func (in *ListingInput) Validate() error {
	var errs []error

	if !(in.Price > 0) || math.IsInf(in.Price, 1) {
		errs = append(errs, fmt.Errorf("%w: price must be a finite number greater than 0", ErrInvalidInput))
	}
	if in.DaysListed < 0 {
		errs = append(errs, fmt.Errorf("%w: days cannot be negative", ErrInvalidInput))
	}
	if in.InterestedCount < 0 {
		errs = append(errs, fmt.Errorf("%w: interested count cannot be negative", ErrInvalidInput))
	}
	if in.Views < 0 {
		in.Views = 0
	}

	return errors.Join(errs...)
}

// SellerID returns the seller identifier from SellerData, or "" if absent.
func (in *ListingInput) SellerID() string {
	if in.SellerData == nil {
		return ""
	}
	return SellerString(in.SellerData, "seller_id")
}

// SellerString reads a string field from free-form seller data.
func SellerString(data map[string]any, key string) string {
	switch v := data[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}

// SellerFloat reads a numeric field from free-form seller data. JSON numbers
// arrive as float64; numeric strings are accepted too.
func SellerFloat(data map[string]any, key string) (float64, bool) {
	switch v := data[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// BrandProfile is the static knowledge about a brand matched from an item name.
type BrandProfile struct {
	Brand            string      `json:"brand"`
	BaseValue        float64     `json:"base_value"`
	DepreciationRate float64     `json:"depreciation_rate"`
	DemandLevel      DemandLevel `json:"demand_level"`
	BrandPremium     float64     `json:"brand_premium"`
	SeasonalFactor   float64     `json:"seasonal_factor"`
}

// MarketSnapshot summarizes comparable prices for a listing.
type MarketSnapshot struct {
	SoldMedian           float64        `json:"sold_median"`
	SoldMean             float64        `json:"sold_mean"`
	ListingMedian        float64        `json:"listing_median"`
	SoldCount            int            `json:"sold_count"`
	PriceVariance        float64        `json:"price_variance"`
	PriceStdDev          float64        `json:"price_stddev"`
	PriceVsSoldRatio     float64        `json:"price_vs_sold_ratio"`
	BrandInfo            BrandProfile   `json:"brand_info"`
	MarketPosition       MarketPosition `json:"market_position"`
	NegotiationPotential float64        `json:"negotiation_potential"`
	Estimated            bool           `json:"estimated"`
}

// SellerMotivation captures how urgently the seller likely wants to sell.
type SellerMotivation struct {
	UrgencyScore     float64    `json:"urgency_score"`
	SellerType       SellerType `json:"seller_type"`
	TimePressure     float64    `json:"time_pressure"`
	InterestPressure float64    `json:"interest_pressure"`
}

// PricePoint is a historical comparable price observed DaysAgo days ago.
type PricePoint struct {
	Price   float64 `json:"price"`
	DaysAgo int     `json:"days_ago"`
}

// MarketTrend describes the trajectory of comparable prices.
type MarketTrend struct {
	PriceTrend           PriceTrend `json:"price_trend"`
	TrendStrength        float64    `json:"trend_strength"`
	DemandSurge          bool       `json:"demand_surge"`
	SeasonalFactor       float64    `json:"seasonal_factor"`
	HypeScore            float64    `json:"hype_score"`
	EstimatedMarketPrice float64    `json:"estimated_market_price"`
	DataPoints           int        `json:"data_points"`
}

// TimingAnalysis scores how good the current moment is to contact a seller.
type TimingAnalysis struct {
	TimingScore       float64 `json:"timing_score"`
	EndOfMonth        bool    `json:"end_of_month"`
	BestContactWindow string  `json:"best_contact_window"`
}

// Insights are human-readable summaries of the analysis.
type Insights struct {
	MarketComparison  string `json:"market_comparison"`
	SellerInsights    string `json:"seller_insights"`
	StrategyRationale string `json:"strategy_rationale"`
}

// NegotiationStrategy is the final recommendation for a listing.
type NegotiationStrategy struct {
	Method              Method           `json:"method"`
	OfferPrice          float64          `json:"offer_price"`
	Confidence          int              `json:"confidence"`
	DiscountPercent     float64          `json:"discount_percent"`
	Message             string           `json:"message"`
	Rationale           string           `json:"rationale"`
	NegotiationStrength float64          `json:"negotiation_strength"`
	Market              MarketSnapshot   `json:"market_analysis"`
	Seller              SellerMotivation `json:"seller_motivation"`
	Trend               MarketTrend      `json:"market_trend"`
	Timing              *TimingAnalysis  `json:"timing,omitempty"`
	Insights            Insights         `json:"insights"`
	GeneratedAt         time.Time        `json:"generated_at"`
}

// SellerProfile is the persisted behavioural profile of a seller.
type SellerProfile struct {
	SellerID               string    `json:"seller_id"               db:"seller_id"`
	AvgResponseTime        float64   `json:"avg_response_time"       db:"avg_response_time"`
	NegotiationFlexibility float64   `json:"negotiation_flexibility" db:"negotiation_flexibility"`
	ListingCount           int       `json:"listing_count"           db:"listing_count"`
	AccountAgeDays         int       `json:"account_age_days"        db:"account_age_days"`
	FeedbackScore          float64   `json:"feedback_score"          db:"feedback_score"`
	ObservationCount       int       `json:"observation_count"       db:"observation_count"`
	UpdatedAt              time.Time `json:"updated_at"              db:"updated_at"`
}

// Default profile values for sellers seen for the first time.
const (
	DefaultFlexibility     = 0.5
	DefaultAvgResponseTime = 24.0
)

// NewSellerProfile returns a profile with default behavioural values.
func NewSellerProfile(sellerID string) *SellerProfile {
	return &SellerProfile{
		SellerID:               sellerID,
		AvgResponseTime:        DefaultAvgResponseTime,
		NegotiationFlexibility: DefaultFlexibility,
	}
}

// Outcome records what happened after an offer was sent.
type Outcome struct {
	ID                string        `json:"id"                  db:"id"`
	ItemName          string        `json:"item_name"           db:"item_name"`
	OriginalPrice     float64       `json:"original_price"      db:"original_price"`
	OfferedPrice      float64       `json:"offered_price"       db:"offered_price"`
	Strategy          Method        `json:"strategy"            db:"strategy"`
	Result            OutcomeResult `json:"outcome"             db:"outcome"`
	ResponseTimeHours float64       `json:"response_time"       db:"response_time_hours"`
	RecordedAt        time.Time     `json:"recorded_at"         db:"recorded_at"`
}

// Validate checks that an outcome can be stored.
func (o *Outcome) Validate() error {
	var errs []error

	if o.OriginalPrice <= 0 {
		errs = append(errs, fmt.Errorf("%w: original_price must be greater than 0", ErrInvalidInput))
	}
	if o.OfferedPrice <= 0 {
		errs = append(errs, fmt.Errorf("%w: offered_price must be greater than 0", ErrInvalidInput))
	}
	if o.Strategy == "" {
		errs = append(errs, fmt.Errorf("%w: strategy is required", ErrInvalidInput))
	}
	if !o.Result.Valid() {
		errs = append(errs, fmt.Errorf("%w: unknown outcome %q", ErrInvalidInput, o.Result))
	}
	if o.ResponseTimeHours < 0 {
		errs = append(errs, fmt.Errorf("%w: response_time cannot be negative", ErrInvalidInput))
	}

	return errors.Join(errs...)
}

// Comparable is a single observed comparable price persisted for trend history.
type Comparable struct {
	Query      string    `json:"query"       db:"query"`
	Price      float64   `json:"price"       db:"price"`
	Sold       bool      `json:"sold"        db:"sold"`
	ObservedAt time.Time `json:"observed_at" db:"observed_at"`
}

// StrategyStats aggregates recorded outcomes for one strategy method.
type StrategyStats struct {
	Strategy    Method  `json:"strategy"     db:"strategy"`
	Total       int     `json:"total"        db:"total"`
	Accepted    int     `json:"accepted"     db:"accepted"`
	Countered   int     `json:"countered"    db:"countered"`
	Rejected    int     `json:"rejected"     db:"rejected"`
	Ignored     int     `json:"ignored"      db:"ignored"`
	SuccessRate float64 `json:"success_rate" db:"success_rate"`
}

// SuccessRate is the share of outcomes that were accepted or countered.
func SuccessRate(accepted, countered, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(accepted+countered) / float64(total)
}

// JobRun records a single execution of a scheduled maintenance job.
type JobRun struct {
	ID           string     `json:"id"                      db:"id"`
	JobName      string     `json:"job_name"                db:"job_name"`
	StartedAt    time.Time  `json:"started_at"              db:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"  db:"completed_at"`
	Status       string     `json:"status"                  db:"status"`
	ErrorText    string     `json:"error_text,omitempty"    db:"error_text"`
	RowsAffected *int       `json:"rows_affected,omitempty" db:"rows_affected"`
}

// Job run status values.
const (
	JobStatusRunning   = "running"
	JobStatusSucceeded = "succeeded"
	JobStatusFailed    = "failed"
	JobStatusCrashed   = "crashed"
)
