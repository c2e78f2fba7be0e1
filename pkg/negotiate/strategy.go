package negotiate

import (
	"slices"

	domain "github.com/donaldgifford/haggle/pkg/types"
)

// RuleInput is everything the strategy rules look at. Timing is nil when no
// timing analysis was performed.
type RuleInput struct {
	Market   domain.MarketSnapshot
	Seller   domain.SellerMotivation
	Trend    domain.MarketTrend
	Strength float64
	Timing   *domain.TimingAnalysis
}

// Rule is one row of the strategy decision table.
type Rule struct {
	Name      string
	Match     func(RuleInput) bool
	Strategy  func(RuleInput) domain.Method
	Rationale string
}

var rules = []Rule{
	{
		Name: "poor-timing",
		Match: func(in RuleInput) bool {
			return in.Timing != nil && in.Timing.TimingScore < 0.5
		},
		Strategy:  fixed(domain.MethodWaitAndMessageLater),
		Rationale: "Sellers respond poorly at this time of day. Prepare the offer now and send it during the evening window.",
	},
	{
		Name: "demand-surge",
		Match: func(in RuleInput) bool {
			return in.Trend.DemandSurge && positionIn(in.Market.MarketPosition,
				domain.PositionGoodDeal, domain.PositionUnderpriced)
		},
		Strategy:  fixed(domain.MethodUrgentOffer),
		Rationale: "Demand for this item is surging and it is already priced below market. Offer quickly before another buyer does.",
	},
	{
		Name: "motivated-declining",
		Match: func(in RuleInput) bool {
			return in.Seller.SellerType == domain.SellerMotivated &&
				in.Trend.PriceTrend == domain.TrendDeclining
		},
		Strategy:  fixed(domain.MethodTrendDirectMessage),
		Rationale: "The seller has been waiting a long time and comparable prices are falling. Point to recent sales to justify a lower price.",
	},
	{
		Name: "testing-overpriced",
		Match: func(in RuleInput) bool {
			return in.Seller.SellerType == domain.SellerTestingMarket && positionIn(in.Market.MarketPosition,
				domain.PositionOverpriced, domain.PositionSlightlyOverpriced)
		},
		Strategy: withTiming(domain.MethodMarketRealityCheck, domain.MethodQuickOffer),
		Rationale: "The listing is new and priced above recent sales, so the seller is probing the market. " +
			"A prompt offer anchored on sold prices resets expectations.",
	},
	{
		Name: "firm-off-season",
		Match: func(in RuleInput) bool {
			return in.Seller.SellerType == domain.SellerFirmOnPrice && in.Trend.SeasonalFactor < 0.9
		},
		Strategy: withTiming(domain.MethodSeasonalPatience, domain.MethodPatientApproach),
		Rationale: "The seller has plenty of interest and will hold firm, but the item is out of season. " +
			"Waiting a few weeks should soften the price.",
	},
	{
		Name: "strong-position",
		Match: func(in RuleInput) bool {
			return in.Strength > 0.7 && (in.Timing == nil || in.Timing.EndOfMonth)
		},
		Strategy: func(in RuleInput) domain.Method {
			if in.Timing != nil {
				return domain.MethodEndOfMonthPush
			}
			return domain.MethodConfidentOffer
		},
		Rationale: "Market data and seller signals give strong leverage. A firm, well-supported offer is likely to land.",
	},
	{
		Name:      "default",
		Match:     func(RuleInput) bool { return true },
		Strategy:  fixed(domain.MethodStandardOffer),
		Rationale: "No strong signal either way. A polite offer near market value is the best opening.",
	},
}

// Rules returns a copy of the ordered strategy decision table.
func Rules() []Rule {
	return slices.Clone(rules)
}

// SelectStrategy returns the strategy of the first matching rule.
func SelectStrategy(in RuleInput) (domain.Method, string) {
	for _, r := range rules {
		if r.Match(in) {
			return r.Strategy(in), r.Rationale
		}
	}
	// The last rule always matches.
	return domain.MethodStandardOffer, ""
}

func fixed(m domain.Method) func(RuleInput) domain.Method {
	return func(RuleInput) domain.Method { return m }
}

// withTiming picks the timing-aware label when timing analysis ran.
func withTiming(timed, untimed domain.Method) func(RuleInput) domain.Method {
	return func(in RuleInput) domain.Method {
		if in.Timing != nil {
			return timed
		}
		return untimed
	}
}

func positionIn(p domain.MarketPosition, set ...domain.MarketPosition) bool {
	return slices.Contains(set, p)
}
