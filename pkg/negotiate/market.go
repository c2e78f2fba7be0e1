package negotiate

import (
	"math"
	"slices"
	"time"

	domain "github.com/donaldgifford/haggle/pkg/types"
)

// Comparable prices outside this range are treated as scraping noise.
const (
	MinComparablePrice = 5.0
	MaxComparablePrice = 2000.0
)

// positionThresholds maps the upper bound of listed/sold ratio to a position.
// Ratios above the last bound are overpriced.
var positionThresholds = []struct {
	upper    float64
	position domain.MarketPosition
}{
	{0.7, domain.PositionUnderpriced},
	{0.9, domain.PositionGoodDeal},
	{1.1, domain.PositionMarketPrice},
	{1.3, domain.PositionSlightlyOverpriced},
}

var potentialAdjustment = map[domain.MarketPosition]float64{
	domain.PositionUnderpriced:        -0.2,
	domain.PositionGoodDeal:           -0.1,
	domain.PositionMarketPrice:        0,
	domain.PositionSlightlyOverpriced: 0.1,
	domain.PositionOverpriced:         0.25,
}

// AnalyzeMarket summarizes comparable sold prices for a listing and places the
// listed price relative to them. With no plausible comparables the sold
// median comes from EstimateMarketPrice and the snapshot is marked Estimated.
func AnalyzeMarket(
	itemName string,
	listedPrice float64,
	sold, listings []float64,
	now time.Time,
) domain.MarketSnapshot {
	comps := plausible(sold)

	snap := domain.MarketSnapshot{
		BrandInfo:     LookupBrand(itemName),
		SoldCount:     len(comps),
		ListingMedian: median(plausible(listings)),
	}
	snap.BrandInfo.SeasonalFactor = SeasonalFactor(itemName, now)

	if len(comps) > 0 {
		snap.SoldMedian = median(comps)
		snap.SoldMean = mean(comps)
		snap.PriceVariance = variance(comps)
		snap.PriceStdDev = math.Sqrt(snap.PriceVariance)
	} else {
		snap.SoldMedian = EstimateMarketPrice(itemName, now)
		snap.SoldMean = snap.SoldMedian
		snap.Estimated = true
	}

	snap.PriceVsSoldRatio = listedPrice / snap.SoldMedian
	snap.MarketPosition = ClassifyPosition(snap.PriceVsSoldRatio)

	potential := 0.3 + potentialAdjustment[snap.MarketPosition]
	if snap.SoldCount > 3 {
		potential += math.Min(snap.PriceStdDev/snap.SoldMedian, 0.3) * 0.5
	}
	snap.NegotiationPotential = clamp(potential, 0.05, 0.6)

	return snap
}

// ClassifyPosition maps a listed/sold price ratio to a market position.
func ClassifyPosition(ratio float64) domain.MarketPosition {
	for _, t := range positionThresholds {
		if ratio <= t.upper {
			return t.position
		}
	}
	return domain.PositionOverpriced
}

// plausible returns the prices within the comparable range as a new slice.
func plausible(prices []float64) []float64 {
	out := make([]float64, 0, len(prices))
	for _, p := range prices {
		if p >= MinComparablePrice && p <= MaxComparablePrice {
			out = append(out, p)
		}
	}
	return out
}

func median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	s := slices.Clone(xs)
	slices.Sort(s)
	mid := len(s) / 2
	if len(s)%2 == 0 {
		return (s[mid-1] + s[mid]) / 2
	}
	return s[mid]
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// variance is the population variance; zero for fewer than two points.
func variance(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	m := mean(xs)
	var ss float64
	for _, x := range xs {
		ss += (x - m) * (x - m)
	}
	return ss / float64(len(xs))
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
