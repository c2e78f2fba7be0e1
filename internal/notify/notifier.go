// Package notify delivers offer alerts to external channels.
package notify

import (
	"context"

	domain "github.com/donaldgifford/haggle/pkg/types"
)

// OfferAlert describes a strategy worth acting on immediately.
type OfferAlert struct {
	ItemName        string
	SellerID        string
	ListedPrice     float64
	OfferPrice      float64
	DiscountPercent float64
	Method          domain.Method
	Confidence      int
	Position        domain.MarketPosition
	Rationale       string
	Message         string
}

// AlertFromStrategy builds an alert for a generated strategy.
func AlertFromStrategy(in *domain.ListingInput, s *domain.NegotiationStrategy) *OfferAlert {
	return &OfferAlert{
		ItemName:        in.ItemName,
		SellerID:        in.SellerID(),
		ListedPrice:     in.Price,
		OfferPrice:      s.OfferPrice,
		DiscountPercent: s.DiscountPercent,
		Method:          s.Method,
		Confidence:      s.Confidence,
		Position:        s.Market.MarketPosition,
		Rationale:       s.Rationale,
		Message:         s.Message,
	}
}

// Notifier sends offer alerts.
type Notifier interface {
	SendOfferAlert(ctx context.Context, alert *OfferAlert) error
}
