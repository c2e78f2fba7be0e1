package negotiate

import (
	"math"

	domain "github.com/donaldgifford/haggle/pkg/types"
)

var strategyConfidence = map[domain.Method]float64{
	domain.MethodTrendDirectMessage:  0.9,
	domain.MethodUrgentOffer:         0.85,
	domain.MethodMarketRealityCheck:  0.8,
	domain.MethodQuickOffer:          0.75,
	domain.MethodEndOfMonthPush:      0.7,
	domain.MethodConfidentOffer:      0.7,
	domain.MethodStandardOffer:       0.6,
	domain.MethodSeasonalPatience:    0.4,
	domain.MethodPatientApproach:     0.4,
	domain.MethodWaitAndMessageLater: 0.3,
}

var positionConfidence = map[domain.MarketPosition]float64{
	domain.PositionOverpriced:         0.9,
	domain.PositionSlightlyOverpriced: 0.75,
	domain.PositionMarketPrice:        0.6,
	domain.PositionGoodDeal:           0.4,
	domain.PositionUnderpriced:        0.2,
}

// Weight of the observed success rate when blending it into the strategy
// confidence.
const successRateWeight = 0.3

// Confidence scores a recommendation from 1 to 5. trend may be nil. rates
// holds observed success rates per strategy and may be nil.
func Confidence(
	market domain.MarketSnapshot,
	method domain.Method,
	trend *domain.MarketTrend,
	rates map[domain.Method]float64,
) int {
	data := math.Min(float64(market.SoldCount)/5, 1.0)

	strat, ok := strategyConfidence[method]
	if !ok {
		strat = 0.5
	}
	if rate, ok := rates[method]; ok {
		strat = (1-successRateWeight)*strat + successRateWeight*clamp(rate, 0, 1)
	}

	pos, ok := positionConfidence[market.MarketPosition]
	if !ok {
		pos = 0.6
	}

	var score float64
	if trend != nil {
		tc := 0.5
		switch {
		case trend.PriceTrend == domain.TrendDeclining:
			tc = 0.8
		case trend.DemandSurge:
			tc = 0.3
		}
		score = data*0.25 + strat*0.35 + pos*0.25 + tc*0.15
	} else {
		score = data*0.3 + strat*0.4 + pos*0.3
	}

	c := int(math.Round(score * 5))
	return min(max(c, 1), 5)
}
