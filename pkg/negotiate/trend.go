package negotiate

import (
	"math"
	"slices"
	"strings"
	"time"

	domain "github.com/donaldgifford/haggle/pkg/types"
)

// Trend analysis tuning.
const (
	minTrendPoints   = 3
	trendWindow      = 10
	trendThreshold   = 0.10
	surgeWindowDays  = 7
	surgeShare       = 0.30
	highSeasonFactor = 1.25
	offSeasonFactor  = 0.75
)

var (
	coldWeatherKeywords = []string{"coat", "jacket", "boots", "puffer", "parka"}
	warmWeatherKeywords = []string{"shorts", "sandals", "swim"}
)

// SeasonalFactor returns the demand multiplier for itemName in the month of
// now. Winter boosts cold-weather items and penalizes warm-weather ones;
// summer does the reverse.
func SeasonalFactor(itemName string, now time.Time) float64 {
	name := strings.ToLower(itemName)
	cold := containsAny(name, coldWeatherKeywords)
	warm := containsAny(name, warmWeatherKeywords)

	switch now.Month() {
	case time.December, time.January, time.February:
		if cold {
			return highSeasonFactor
		}
		if warm {
			return offSeasonFactor
		}
	case time.June, time.July, time.August:
		if warm {
			return highSeasonFactor
		}
		if cold {
			return offSeasonFactor
		}
	}
	return 1.0
}

// AnalyzeTrend classifies the trajectory of historical comparable prices.
// With fewer than three usable points the trend is stable and the estimated
// price comes from EstimateMarketPrice.
func AnalyzeTrend(itemName string, history []domain.PricePoint, now time.Time) domain.MarketTrend {
	points := make([]domain.PricePoint, 0, len(history))
	for _, p := range history {
		if p.Price > 0 && p.DaysAgo >= 0 {
			points = append(points, p)
		}
	}

	trend := domain.MarketTrend{
		PriceTrend:     domain.TrendStable,
		SeasonalFactor: SeasonalFactor(itemName, now),
		DataPoints:     len(points),
	}

	if len(points) < minTrendPoints {
		trend.EstimatedMarketPrice = EstimateMarketPrice(itemName, now)
		return trend
	}

	slices.SortStableFunc(points, func(a, b domain.PricePoint) int {
		return a.DaysAgo - b.DaysAgo
	})

	n := min(trendWindow, len(points))
	recentMean := meanPrice(points[:n])
	oldMean := meanPrice(points[len(points)-n:])

	rel := (recentMean - oldMean) / oldMean
	switch {
	case rel > trendThreshold:
		trend.PriceTrend = domain.TrendRising
	case rel < -trendThreshold:
		trend.PriceTrend = domain.TrendDeclining
	}
	trend.TrendStrength = math.Abs(rel)

	recent := 0
	for _, p := range points {
		if p.DaysAgo <= surgeWindowDays {
			recent++
		}
	}
	trend.DemandSurge = float64(recent) > surgeShare*float64(len(points))

	hype := 2 * math.Abs(rel)
	if trend.DemandSurge {
		hype += 0.5
	}
	trend.HypeScore = clamp(hype, 0, 1)

	prices := make([]float64, len(points))
	for i, p := range points {
		prices[i] = p.Price
	}
	trend.EstimatedMarketPrice = median(prices)

	return trend
}

func meanPrice(points []domain.PricePoint) float64 {
	var sum float64
	for _, p := range points {
		sum += p.Price
	}
	return sum / float64(len(points))
}

func containsAny(s string, keys []string) bool {
	for _, k := range keys {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
