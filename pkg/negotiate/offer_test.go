package negotiate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/donaldgifford/haggle/pkg/types"
)

func TestPsychologicalPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want float64
	}{
		{3.456, 3.46},
		{7.2, 7.0},
		{7.3, 7.5},
		{9.8, 10.0},
		{23.4, 22.99},
		{23.6, 23.99},
		{67, 64.95},
		{73, 74.95},
		{104, 99.95},
		{156, 159.95},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, PsychologicalPrice(tt.in), 1e-9, "in %v", tt.in)
	}
}

func TestCalculateOffer(t *testing.T) {
	t.Parallel()

	stable := domain.MarketTrend{PriceTrend: domain.TrendStable, SeasonalFactor: 1}

	tests := []struct {
		name     string
		listed   float64
		median   float64
		urgency  float64
		trend    domain.MarketTrend
		strength float64
		want     float64
	}{
		{
			name:     "anchor above listing hits minimum discount",
			listed:   50,
			median:   60,
			urgency:  0.74,
			trend:    stable,
			strength: 0.1,
			want:     47.5,
		},
		{
			name:     "market anchor wins over leverage",
			listed:   100,
			median:   60,
			urgency:  0.5,
			trend:    stable,
			strength: 0.9,
			want:     54.95,
		},
		{
			name:     "declining trend then seasonal refinement",
			listed:   200,
			median:   150,
			urgency:  0,
			trend:    domain.MarketTrend{PriceTrend: domain.TrendDeclining, SeasonalFactor: 1.25},
			strength: 0.5,
			want:     149.95,
		},
		{
			name:     "stable trend ignores high season",
			listed:   200,
			median:   150,
			urgency:  0,
			trend:    domain.MarketTrend{PriceTrend: domain.TrendStable, SeasonalFactor: 1.25},
			strength: 0.5,
			want:     149.95,
		},
		{
			name:     "rising trend then seasonal refinement",
			listed:   200,
			median:   100,
			urgency:  0,
			trend:    domain.MarketTrend{PriceTrend: domain.TrendRising, SeasonalFactor: 1.25},
			strength: 0.9,
			want:     119.95,
		},
		{
			name:     "no median anchors on listing",
			listed:   20,
			median:   0,
			urgency:  0,
			trend:    stable,
			strength: 0.9,
			want:     15.99,
		},
		{
			name:     "leverage caps the discount",
			listed:   1000,
			median:   5,
			urgency:  1,
			trend:    domain.MarketTrend{PriceTrend: domain.TrendDeclining, SeasonalFactor: 1},
			strength: 0.9,
			want:     469.95,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CalculateOffer(
				tt.listed,
				domain.MarketSnapshot{SoldMedian: tt.median},
				domain.SellerMotivation{UrgencyScore: tt.urgency},
				tt.trend,
				tt.strength,
			)
			assert.InDelta(t, tt.want, got.Price, 1e-9)
			assert.Equal(t, DiscountPercent(tt.listed, got.Price), got.DiscountPercent)
		})
	}
}

func TestCalculateOffer_Bounds(t *testing.T) {
	t.Parallel()

	prices := []float64{0.01, 0.5, 1, 4.99, 5, 9.99, 10, 12.5, 33.33, 49.99, 50, 99.99, 100, 999, 2500, 1e6}
	medians := []float64{0, 5, 30, 300, 2000}
	trends := []domain.MarketTrend{
		{PriceTrend: domain.TrendStable, SeasonalFactor: 1},
		{PriceTrend: domain.TrendRising, SeasonalFactor: 1.25},
		{PriceTrend: domain.TrendDeclining, SeasonalFactor: 0.75},
	}

	for _, p := range prices {
		for _, m := range medians {
			for _, tr := range trends {
				for _, urgency := range []float64{0, 0.5, 1} {
					for _, s := range []float64{MinStrength, 0.5, MaxStrength} {
						got := CalculateOffer(p,
							domain.MarketSnapshot{SoldMedian: m},
							domain.SellerMotivation{UrgencyScore: urgency},
							tr, s)

						assert.GreaterOrEqual(t, got.Price, MinOfferRatio*p, "price %v median %v", p, m)
						assert.LessOrEqual(t, got.Price, MaxOfferRatio*p, "price %v median %v", p, m)
						assert.Equal(t, DiscountPercent(p, got.Price), got.DiscountPercent)
					}
				}
			}
		}
	}
}

func TestDiscountPercent(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 5.0, DiscountPercent(50, 47.5), 1e-9)
	assert.InDelta(t, 33.3, DiscountPercent(30, 20), 1e-9)
	assert.Zero(t, DiscountPercent(0, 10))
}
