package negotiate

import (
	"fmt"
	"strings"

	domain "github.com/donaldgifford/haggle/pkg/types"
)

var sellerTypeDescriptions = map[domain.SellerType]string{
	domain.SellerMotivated:     "Seller likely wants to clear this item",
	domain.SellerTestingMarket: "Seller is testing what price they can get",
	domain.SellerFirmOnPrice:   "Seller seems firm on their pricing",
	domain.SellerTypicalSeller: "Standard selling situation",
}

// MarketComparison describes the listed price relative to the sold median.
func MarketComparison(listed float64, market domain.MarketSnapshot) string {
	if market.SoldMedian <= 0 {
		return "Limited market data available for comparison."
	}

	ratio := listed / market.SoldMedian
	switch {
	case ratio <= 0.8:
		return fmt.Sprintf("This item is priced %.0f%% below typical sold prices - great deal!", (1-ratio)*100)
	case ratio <= 1.1:
		return "This item is priced around typical market value."
	case ratio <= 1.3:
		return fmt.Sprintf("This item is priced %.0f%% above typical sold prices.", (ratio-1)*100)
	default:
		return fmt.Sprintf("This item is priced %.0f%% above market - significant negotiation room!", (ratio-1)*100)
	}
}

// SellerInsights summarizes the seller's motivation in a sentence or two.
func SellerInsights(m domain.SellerMotivation) string {
	var parts []string

	switch {
	case m.UrgencyScore > 0.7:
		parts = append(parts, "Seller appears motivated to sell quickly")
	case m.UrgencyScore < 0.3:
		parts = append(parts, "Seller doesn't seem rushed to sell")
	}

	desc, ok := sellerTypeDescriptions[m.SellerType]
	if !ok {
		desc = "Standard situation"
	}
	parts = append(parts, desc)

	return strings.Join(parts, ". ") + "."
}
