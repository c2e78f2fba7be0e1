package engine

import (
	"time"

	domain "github.com/donaldgifford/haggle/pkg/types"
)

// Seller observation weights. Each observation moves the stored value a
// fifth of the way toward the observed one.
const (
	observationWeight = 0.2

	highVolumeListings  = 50
	fastResponseHours   = 2.0
	topFeedbackScore    = 4.8
	newAccountAgeDays   = 30
	flexibilityVolume   = 0.15
	flexibilityResponse = 0.1
	flexibilityFeedback = -0.05
	flexibilityNewAcct  = 0.1
)

// ObserveSeller folds free-form seller data from a listing into p. Known
// keys are listing_count, response_time (hours), feedback_score and
// account_age_days. Missing keys leave the stored values unchanged.
func ObserveSeller(p *domain.SellerProfile, data map[string]any, now time.Time) {
	if n, ok := domain.SellerFloat(data, "listing_count"); ok && n >= 0 {
		p.ListingCount = int(n)
	}
	if days, ok := domain.SellerFloat(data, "account_age_days"); ok && days >= 0 {
		p.AccountAgeDays = int(days)
	}
	if score, ok := domain.SellerFloat(data, "feedback_score"); ok && score >= 0 {
		p.FeedbackScore = score
	}
	if hours, ok := domain.SellerFloat(data, "response_time"); ok && hours >= 0 {
		p.AvgResponseTime = blend(p.AvgResponseTime, hours, p.ObservationCount)
	}

	p.NegotiationFlexibility = blend(p.NegotiationFlexibility, observedFlexibility(p), p.ObservationCount)
	p.ObservationCount++
	p.UpdatedAt = now
}

// observedFlexibility scores how far a seller with p's traits is likely to
// move on price, in [0, 1].
func observedFlexibility(p *domain.SellerProfile) float64 {
	f := domain.DefaultFlexibility

	if p.ListingCount > highVolumeListings {
		f += flexibilityVolume
	}
	if p.AvgResponseTime < fastResponseHours {
		f += flexibilityResponse
	}
	if p.FeedbackScore >= topFeedbackScore {
		f += flexibilityFeedback
	}
	if p.AccountAgeDays > 0 && p.AccountAgeDays < newAccountAgeDays {
		f += flexibilityNewAcct
	}

	return min(max(f, 0), 1)
}

// blend is an exponential moving average; the first observation replaces
// the default outright.
func blend(old, observed float64, observations int) float64 {
	if observations == 0 {
		return observed
	}
	return (1-observationWeight)*old + observationWeight*observed
}
