package negotiate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/donaldgifford/haggle/pkg/types"
)

func TestNegotiationStrength(t *testing.T) {
	t.Parallel()

	market := domain.MarketSnapshot{NegotiationPotential: 0.3, SoldCount: 10}
	seller := domain.SellerMotivation{UrgencyScore: 0.5}

	tests := []struct {
		name    string
		market  domain.MarketSnapshot
		trend   domain.MarketTrend
		profile *domain.SellerProfile
		want    float64
	}{
		{
			name:   "baseline",
			market: market,
			trend:  domain.MarketTrend{PriceTrend: domain.TrendStable, SeasonalFactor: 1},
			want:   0.5,
		},
		{
			name:   "no comparables floors strength",
			market: domain.MarketSnapshot{NegotiationPotential: 0.6},
			trend:  domain.MarketTrend{PriceTrend: domain.TrendDeclining, SeasonalFactor: 1},
			want:   MinStrength,
		},
		{
			name:   "sparse comparables scale down",
			market: domain.MarketSnapshot{NegotiationPotential: 0.3, SoldCount: 5},
			trend:  domain.MarketTrend{PriceTrend: domain.TrendStable, SeasonalFactor: 1},
			want:   0.25,
		},
		{
			name:    "declining with flexible seller caps",
			market:  market,
			trend:   domain.MarketTrend{PriceTrend: domain.TrendDeclining, SeasonalFactor: 1},
			profile: &domain.SellerProfile{NegotiationFlexibility: 1},
			want:    MaxStrength,
		},
		{
			name:   "rising in season",
			market: market,
			trend:  domain.MarketTrend{PriceTrend: domain.TrendRising, SeasonalFactor: 1.25},
			want:   0.375,
		},
		{
			name:    "default profile",
			market:  market,
			trend:   domain.MarketTrend{PriceTrend: domain.TrendStable, SeasonalFactor: 1},
			profile: domain.NewSellerProfile("s1"),
			want:    0.65,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := NegotiationStrength(tt.market, seller, tt.trend, tt.profile)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestNegotiationStrength_Bounds(t *testing.T) {
	t.Parallel()

	trends := []domain.PriceTrend{domain.TrendRising, domain.TrendStable, domain.TrendDeclining}
	for _, potential := range []float64{0.05, 0.3, 0.6} {
		for _, urgency := range []float64{0, 0.5, 1} {
			for _, sold := range []int{0, 1, 10, 100} {
				for _, tr := range trends {
					for _, seasonal := range []float64{0.75, 1, 1.25} {
						got := NegotiationStrength(
							domain.MarketSnapshot{NegotiationPotential: potential, SoldCount: sold},
							domain.SellerMotivation{UrgencyScore: urgency},
							domain.MarketTrend{PriceTrend: tr, SeasonalFactor: seasonal},
							&domain.SellerProfile{NegotiationFlexibility: urgency},
						)
						assert.GreaterOrEqual(t, got, MinStrength)
						assert.LessOrEqual(t, got, MaxStrength)
					}
				}
			}
		}
	}
}
