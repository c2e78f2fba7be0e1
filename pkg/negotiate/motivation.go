package negotiate

import (
	"math"

	domain "github.com/donaldgifford/haggle/pkg/types"
)

// AnalyzeSeller scores how urgently a seller likely wants to sell from the
// listing age and engagement. Negative inputs are treated as zero.
func AnalyzeSeller(days, interested, views int) domain.SellerMotivation {
	days = max(days, 0)
	interested = max(interested, 0)
	views = max(views, 0)

	timeUrgency := timeUrgency(days)
	engagement := engagementUrgency(days, interested, views)

	return domain.SellerMotivation{
		UrgencyScore:     clamp(0.7*timeUrgency+0.3*engagement, 0, 1),
		SellerType:       classifySeller(days, interested),
		TimePressure:     clamp(timeUrgency, 0, 1),
		InterestPressure: clamp(engagement, 0, 1),
	}
}

func timeUrgency(days int) float64 {
	switch {
	case days <= 2:
		return 0.1
	case days <= 7:
		return 0.3
	case days <= 21:
		return 0.6
	case days <= 60:
		return 0.8
	default:
		return 0.95
	}
}

// engagementUrgency is high when few viewers become interested buyers.
func engagementUrgency(days, interested, views int) float64 {
	if views > 0 {
		ratio := float64(interested) / float64(views)
		return 1 - math.Min(ratio*3, 1)
	}
	switch {
	case interested == 0 && days > 7:
		return 0.8
	case interested <= 2:
		return 0.6
	default:
		return 0.3
	}
}

// classifySeller applies the archetype rules in priority order. Heavy
// interest marks a firm seller even on a fresh listing.
func classifySeller(days, interested int) domain.SellerType {
	switch {
	case interested >= 10:
		return domain.SellerFirmOnPrice
	case days <= 3 && interested >= 5:
		return domain.SellerTestingMarket
	case days > 30 && interested <= 1:
		return domain.SellerMotivated
	default:
		return domain.SellerTypicalSeller
	}
}
