package negotiate

import (
	"math"
	"strings"
	"time"

	domain "github.com/donaldgifford/haggle/pkg/types"
)

// UnknownBrand is the brand name reported when no brand keyword matches.
const UnknownBrand = "Unknown"

// Estimator bounds.
const (
	MinEstimate = 10.0
	MaxEstimate = 300.0
)

type brandEntry struct {
	key          string
	name         string
	base         float64
	depreciation float64
	demand       domain.DemandLevel
	premium      float64
}

// brands is matched in order; the first key found in the item name wins.
// Multi-word and more specific keys sit ahead of shorter ones that could
// also match.
var brands = []brandEntry{
	{"canada goose", "Canada Goose", 300, 0.15, domain.DemandLuxury, 1.6},
	{"moncler", "Moncler", 280, 0.15, domain.DemandLuxury, 1.6},
	{"burberry", "Burberry", 200, 0.18, domain.DemandLuxury, 1.5},
	{"stone island", "Stone Island", 180, 0.15, domain.DemandLuxury, 1.4},
	{"arc'teryx", "Arc'teryx", 150, 0.15, domain.DemandHigh, 1.35},
	{"arcteryx", "Arc'teryx", 150, 0.15, domain.DemandHigh, 1.35},
	{"barbour", "Barbour", 120, 0.18, domain.DemandHigh, 1.3},
	{"supreme", "Supreme", 120, 0.10, domain.DemandTrend, 1.5},
	{"palace", "Palace", 90, 0.12, domain.DemandTrend, 1.4},
	{"north face", "The North Face", 90, 0.18, domain.DemandHigh, 1.2},
	{"patagonia", "Patagonia", 85, 0.18, domain.DemandHigh, 1.2},
	{"dr martens", "Dr. Martens", 70, 0.22, domain.DemandHigh, 1.15},
	{"new balance", "New Balance", 55, 0.25, domain.DemandHigh, 1.1},
	{"stussy", "Stussy", 60, 0.15, domain.DemandTrend, 1.25},
	{"nike", "Nike", 60, 0.25, domain.DemandHigh, 1.15},
	{"adidas", "Adidas", 50, 0.25, domain.DemandHigh, 1.1},
	{"carhartt", "Carhartt", 55, 0.20, domain.DemandMedium, 1.1},
	{"ralph lauren", "Ralph Lauren", 45, 0.22, domain.DemandMedium, 1.1},
	{"levi", "Levi's", 40, 0.22, domain.DemandMedium, 1.05},
	{"uniqlo", "Uniqlo", 20, 0.35, domain.DemandMedium, 1.0},
	{"zara", "Zara", 20, 0.40, domain.DemandLow, 0.9},
	{"h&m", "H&M", 12, 0.45, domain.DemandLow, 0.8},
	{"primark", "Primark", 8, 0.50, domain.DemandLow, 0.7},
}

var unknownBrand = brandEntry{
	name:         UnknownBrand,
	base:         30,
	depreciation: 0.20,
	demand:       domain.DemandLow,
	premium:      1.0,
}

type categoryEntry struct {
	key  string
	base float64
}

// categories is matched in order, so "t-shirt" precedes "shirt" and
// "handbag" precedes "bag".
var categories = []categoryEntry{
	{"jacket", 45},
	{"coat", 55},
	{"puffer", 60},
	{"parka", 60},
	{"trainers", 40},
	{"sneakers", 40},
	{"boots", 50},
	{"jeans", 30},
	{"hoodie", 28},
	{"jumper", 25},
	{"sweater", 25},
	{"t-shirt", 12},
	{"shirt", 18},
	{"dress", 25},
	{"skirt", 18},
	{"handbag", 60},
	{"bag", 35},
	{"watch", 80},
	{"shorts", 15},
	{"sandals", 18},
}

type keywordFactor struct {
	word   string
	factor float64
}

var qualityKeywords = []keywordFactor{
	{"vintage", 1.30},
	{"rare", 1.40},
	{"limited", 1.35},
	{"new", 1.20},
	{"deadstock", 1.45},
	{"mint", 1.25},
	{"excellent", 1.15},
	{"authentic", 1.10},
}

var conditionDetractors = []keywordFactor{
	{"worn", 0.80},
	{"used", 0.85},
	{"damaged", 0.50},
	{"stained", 0.60},
	{"faded", 0.75},
	{"small", 0.90},
	{"marks", 0.80},
}

// LookupBrand returns the first brand whose keyword appears in itemName, or
// the Unknown profile.
func LookupBrand(itemName string) domain.BrandProfile {
	e, _ := matchBrand(strings.ToLower(itemName))
	return e.profile()
}

// EstimateMarketPrice estimates a typical sold price from the item name alone.
// The result is deterministic for a given name and month and always lies in
// [MinEstimate, MaxEstimate].
func EstimateMarketPrice(itemName string, now time.Time) float64 {
	name := strings.ToLower(strings.TrimSpace(itemName))

	brand, brandMatched := matchBrand(name)
	catBase, catMatched := matchCategory(name)

	var base float64
	switch {
	case brandMatched || catMatched:
		base = math.Max(brand.base, catBase)
	default:
		base = 25 + 3*float64(len(strings.Fields(name)))
	}

	// Brand keywords are removed so "new balance" does not count as "new".
	rest := name
	if brandMatched {
		rest = strings.ReplaceAll(rest, brand.key, " ")
	}
	words := wordSet(rest)
	for _, k := range qualityKeywords {
		if words[k.word] {
			base *= k.factor
		}
	}
	for _, k := range conditionDetractors {
		if words[k.word] {
			base *= k.factor
		}
	}

	base *= SeasonalFactor(name, now)

	return roundTo(clamp(base, MinEstimate, MaxEstimate), 2)
}

func matchBrand(lowerName string) (brandEntry, bool) {
	if lowerName != "" {
		for _, b := range brands {
			if strings.Contains(lowerName, b.key) {
				return b, true
			}
		}
	}
	return unknownBrand, false
}

func matchCategory(lowerName string) (float64, bool) {
	if lowerName != "" {
		for _, c := range categories {
			if strings.Contains(lowerName, c.key) {
				return c.base, true
			}
		}
	}
	return 0, false
}

// wordSet splits on anything that is not a letter, digit or apostrophe.
func wordSet(s string) map[string]bool {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '\'')
	})
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}

func (b brandEntry) profile() domain.BrandProfile {
	return domain.BrandProfile{
		Brand:            b.name,
		BaseValue:        b.base,
		DepreciationRate: b.depreciation,
		DemandLevel:      b.demand,
		BrandPremium:     b.premium,
		SeasonalFactor:   1.0,
	}
}
