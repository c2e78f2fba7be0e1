package negotiate

import (
	"math"
	"time"

	domain "github.com/donaldgifford/haggle/pkg/types"
)

// AnalyzeTiming scores the moment now for contacting a seller, using the
// hour and weekday of now's location.
func AnalyzeTiming(now time.Time) domain.TimingAnalysis {
	score := hourScore(now.Hour())
	if now.Weekday() == time.Sunday {
		score = math.Min(score+0.1, 1.0)
	}

	return domain.TimingAnalysis{
		TimingScore:       roundTo(score, 2),
		EndOfMonth:        now.Day() >= 25,
		BestContactWindow: contactWindow(now.Hour()),
	}
}

func hourScore(hour int) float64 {
	switch {
	case hour >= 18 && hour <= 21:
		return 0.9
	case hour >= 12 && hour <= 13:
		return 0.75
	case hour >= 8 && hour <= 17:
		return 0.6
	case hour == 22:
		return 0.5
	default:
		return 0.2
	}
}

func contactWindow(hour int) string {
	switch {
	case hour >= 18 && hour <= 21:
		return "now (evening 18:00-22:00)"
	case hour >= 12 && hour <= 13:
		return "now (lunchtime 12:00-14:00)"
	default:
		return "this evening 18:00-22:00"
	}
}
