package negotiate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/donaldgifford/haggle/pkg/types"
)

func TestMarketComparison(t *testing.T) {
	t.Parallel()

	tests := []struct {
		listed float64
		median float64
		want   string
	}{
		{40, 100, "This item is priced 60% below typical sold prices - great deal!"},
		{100, 100, "This item is priced around typical market value."},
		{120, 100, "This item is priced 20% above typical sold prices."},
		{200, 100, "This item is priced 100% above market - significant negotiation room!"},
		{50, 0, "Limited market data available for comparison."},
	}

	for _, tt := range tests {
		got := MarketComparison(tt.listed, domain.MarketSnapshot{SoldMedian: tt.median})
		assert.Equal(t, tt.want, got)
	}
}

func TestSellerInsights(t *testing.T) {
	t.Parallel()

	tests := []struct {
		urgency float64
		kind    domain.SellerType
		want    string
	}{
		{0.8, domain.SellerMotivated, "Seller appears motivated to sell quickly. Seller likely wants to clear this item."},
		{0.5, domain.SellerTypicalSeller, "Standard selling situation."},
		{0.2, domain.SellerFirmOnPrice, "Seller doesn't seem rushed to sell. Seller seems firm on their pricing."},
		{0.5, domain.SellerTestingMarket, "Seller is testing what price they can get."},
		{0.5, "", "Standard situation."},
	}

	for _, tt := range tests {
		got := SellerInsights(domain.SellerMotivation{UrgencyScore: tt.urgency, SellerType: tt.kind})
		assert.Equal(t, tt.want, got)
	}
}
