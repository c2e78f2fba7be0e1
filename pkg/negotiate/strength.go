package negotiate

import (
	"math"

	domain "github.com/donaldgifford/haggle/pkg/types"
)

// Strength bounds.
const (
	MinStrength = 0.1
	MaxStrength = 0.9
)

// NegotiationStrength combines market, seller, trend and an optional seller
// profile into the buyer's leverage, scaled down when few comparables exist.
func NegotiationStrength(
	market domain.MarketSnapshot,
	seller domain.SellerMotivation,
	trend domain.MarketTrend,
	profile *domain.SellerProfile,
) float64 {
	var trendAdj float64
	switch trend.PriceTrend {
	case domain.TrendDeclining:
		trendAdj = 0.15
	case domain.TrendRising:
		trendAdj = -0.1
	}

	seasonalAdj := (trend.SeasonalFactor - 1.0) * -0.1

	var profileAdj float64
	if profile != nil {
		profileAdj = clamp(profile.NegotiationFlexibility, 0, 1) * 0.3
	}

	dataQuality := math.Min(float64(market.SoldCount)/10, 1.0)

	raw := (market.NegotiationPotential + seller.UrgencyScore*0.4 + trendAdj + seasonalAdj + profileAdj) * dataQuality
	return clamp(raw, MinStrength, MaxStrength)
}
