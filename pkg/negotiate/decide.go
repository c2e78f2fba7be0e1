// Package negotiate turns listing signals into a negotiation offer. Every
// function here is pure: data fetching, persistence and clocks are supplied
// by the caller.
package negotiate

import (
	"time"

	domain "github.com/donaldgifford/haggle/pkg/types"
)

// Signals is the already-fetched input to Decide.
type Signals struct {
	Listing  domain.ListingInput
	Sold     []float64
	Listings []float64
	History  []domain.PricePoint
	Profile  *domain.SellerProfile
	// SuccessRates are observed acceptance rates per strategy, may be nil.
	SuccessRates map[domain.Method]float64
	// UseTiming enables contact-timing analysis.
	UseTiming bool
	Now       time.Time
}

// Decide runs the full negotiation pipeline over s.
func Decide(s Signals) domain.NegotiationStrategy {
	in := s.Listing

	market := AnalyzeMarket(in.ItemName, in.Price, s.Sold, s.Listings, s.Now)
	seller := AnalyzeSeller(in.DaysListed, in.InterestedCount, in.Views)
	trend := AnalyzeTrend(in.ItemName, s.History, s.Now)
	strength := NegotiationStrength(market, seller, trend, s.Profile)

	var timing *domain.TimingAnalysis
	if s.UseTiming {
		t := AnalyzeTiming(s.Now)
		timing = &t
	}

	method, rationale := SelectStrategy(RuleInput{
		Market:   market,
		Seller:   seller,
		Trend:    trend,
		Strength: strength,
		Timing:   timing,
	})

	offer := CalculateOffer(in.Price, market, seller, trend, strength)

	var trendSignal *domain.MarketTrend
	if trend.DataPoints >= minTrendPoints {
		trendSignal = &trend
	}

	return domain.NegotiationStrategy{
		Method:              method,
		OfferPrice:          offer.Price,
		Confidence:          Confidence(market, method, trendSignal, s.SuccessRates),
		DiscountPercent:     offer.DiscountPercent,
		Message:             ComposeMessage(method, in.ItemName, offer.Price),
		Rationale:           rationale,
		NegotiationStrength: roundTo(strength, 3),
		Market:              market,
		Seller:              seller,
		Trend:               trend,
		Timing:              timing,
		Insights: domain.Insights{
			MarketComparison:  MarketComparison(in.Price, market),
			SellerInsights:    SellerInsights(seller),
			StrategyRationale: rationale,
		},
		GeneratedAt: s.Now,
	}
}
