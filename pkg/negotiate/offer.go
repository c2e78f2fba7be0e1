package negotiate

import (
	"github.com/shopspring/decimal"

	domain "github.com/donaldgifford/haggle/pkg/types"
)

// Offer bounds as fractions of the listed price.
const (
	MinOfferRatio = 0.40
	MaxOfferRatio = 0.95
)

var (
	pence     = decimal.RequireFromString("0.01")
	fivePence = decimal.RequireFromString("0.05")
	two       = decimal.NewFromInt(2)
	five      = decimal.NewFromInt(5)
	ten       = decimal.NewFromInt(10)
)

// Offer is a priced offer and its discount from the listed price.
type Offer struct {
	Price           float64
	DiscountPercent float64
}

// CalculateOffer turns leverage and a market anchor into a concrete offer.
// The result always lies within [0.4, 0.95] of listed.
func CalculateOffer(
	listed float64,
	market domain.MarketSnapshot,
	seller domain.SellerMotivation,
	trend domain.MarketTrend,
	strength float64,
) Offer {
	anchor := listed * 0.8
	if market.SoldMedian > 0 {
		anchor = market.SoldMedian
	}

	// High season refines a moving trend only; a stable anchor is left as-is.
	switch trend.PriceTrend {
	case domain.TrendDeclining:
		anchor *= 0.9
		anchor *= highSeasonAdjustment(trend.SeasonalFactor)
	case domain.TrendRising:
		anchor *= 1.1
		anchor *= highSeasonAdjustment(trend.SeasonalFactor)
	}

	maxDiscount := listed * (1 - strength*0.5)
	conservative := max(anchor, maxDiscount)
	motivated := conservative * (1 - seller.UrgencyScore*0.15)

	offer := PsychologicalPrice(motivated)
	if offer > listed*MaxOfferRatio {
		offer = PsychologicalPrice(listed * MaxOfferRatio)
	}
	offer = boundOffer(offer, listed)

	return Offer{
		Price:           offer,
		DiscountPercent: DiscountPercent(listed, offer),
	}
}

func highSeasonAdjustment(seasonal float64) float64 {
	if seasonal > 1 {
		return 1.05
	}
	return 1
}

// DiscountPercent is the offer's discount from listed, rounded to one place.
func DiscountPercent(listed, offer float64) float64 {
	if listed <= 0 {
		return 0
	}
	return roundTo((listed-offer)/listed*100, 1)
}

// PsychologicalPrice rounds x to a conventionally attractive price:
//
//	under £5     nearest penny
//	£5 to £10    nearest 50p
//	£10 to £50   whole pound less 1p
//	£50 to £100  nearest £5 less 5p
//	£100 and up  nearest £10 less 5p
func PsychologicalPrice(x float64) float64 {
	d := decimal.NewFromFloat(x)

	switch {
	case x < 5:
		d = d.Round(2)
	case x < 10:
		d = d.Mul(two).Round(0).Div(two)
	case x < 50:
		d = d.Round(0).Sub(pence)
	case x < 100:
		d = d.Div(five).Round(0).Mul(five).Sub(fivePence)
	default:
		d = d.Div(ten).Round(0).Mul(ten).Sub(fivePence)
	}

	f, _ := d.Round(2).Float64()
	return f
}

// boundOffer rounds to pence and clamps into the allowed offer range. The
// range is tightened to whole pence when it contains any, and the float
// clamp runs last so the bounds hold exactly.
func boundOffer(offer, listed float64) float64 {
	lo := decimal.NewFromFloat(listed).Mul(decimal.NewFromFloat(MinOfferRatio)).RoundCeil(2)
	hi := decimal.NewFromFloat(listed).Mul(decimal.NewFromFloat(MaxOfferRatio)).RoundFloor(2)

	d := decimal.NewFromFloat(offer).Round(2)
	if lo.LessThanOrEqual(hi) {
		if d.LessThan(lo) {
			d = lo
		}
		if d.GreaterThan(hi) {
			d = hi
		}
	}

	f, _ := d.Float64()
	return clamp(f, listed*MinOfferRatio, listed*MaxOfferRatio)
}
