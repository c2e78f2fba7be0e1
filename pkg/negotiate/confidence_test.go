package negotiate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/donaldgifford/haggle/pkg/types"
)

func TestConfidence(t *testing.T) {
	t.Parallel()

	declining := &domain.MarketTrend{PriceTrend: domain.TrendDeclining}

	tests := []struct {
		name     string
		sold     int
		position domain.MarketPosition
		method   domain.Method
		trend    *domain.MarketTrend
		rates    map[domain.Method]float64
		want     int
	}{
		{name: "typical", sold: 5, position: domain.PositionMarketPrice, method: domain.MethodStandardOffer, want: 4},
		{name: "no data patience", sold: 0, position: domain.PositionUnderpriced, method: domain.MethodWaitAndMessageLater, want: 1},
		{name: "strongest", sold: 10, position: domain.PositionOverpriced, method: domain.MethodTrendDirectMessage, want: 5},
		{name: "with trend", sold: 5, position: domain.PositionMarketPrice, method: domain.MethodStandardOffer, trend: declining, want: 4},
		{
			name:     "poor success rate lowers confidence",
			sold:     5,
			position: domain.PositionMarketPrice,
			method:   domain.MethodStandardOffer,
			rates:    map[domain.Method]float64{domain.MethodStandardOffer: 0},
			want:     3,
		},
		{
			name:     "rates for other methods are ignored",
			sold:     5,
			position: domain.PositionMarketPrice,
			method:   domain.MethodStandardOffer,
			rates:    map[domain.Method]float64{domain.MethodUrgentOffer: 0},
			want:     4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			market := domain.MarketSnapshot{SoldCount: tt.sold, MarketPosition: tt.position}
			assert.Equal(t, tt.want, Confidence(market, tt.method, tt.trend, tt.rates))
		})
	}
}

func TestConfidence_Range(t *testing.T) {
	t.Parallel()

	positions := []domain.MarketPosition{
		domain.PositionUnderpriced,
		domain.PositionGoodDeal,
		domain.PositionMarketPrice,
		domain.PositionSlightlyOverpriced,
		domain.PositionOverpriced,
		"bogus",
	}
	trends := []*domain.MarketTrend{
		nil,
		{PriceTrend: domain.TrendDeclining},
		{PriceTrend: domain.TrendRising, DemandSurge: true},
	}

	for _, m := range append(domain.Methods(), "Unlisted") {
		for _, p := range positions {
			for _, tr := range trends {
				for _, sold := range []int{0, 2, 5, 100} {
					for _, rate := range []float64{-1, 0, 1, 2} {
						c := Confidence(
							domain.MarketSnapshot{SoldCount: sold, MarketPosition: p},
							m, tr, map[domain.Method]float64{m: rate},
						)
						assert.GreaterOrEqual(t, c, 1)
						assert.LessOrEqual(t, c, 5)
					}
				}
			}
		}
	}
}
