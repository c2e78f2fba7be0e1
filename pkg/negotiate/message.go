package negotiate

import (
	"fmt"
	"hash/fnv"
	"strings"

	domain "github.com/donaldgifford/haggle/pkg/types"
)

var templates = map[domain.Method][]string{
	domain.MethodWaitAndMessageLater: {
		"Hi! Is the {item} still available? I'd be interested at {offer} if that works for you.",
		"Hello, I've been looking at your {item}. Would you consider {offer}? Happy to collect at a time that suits.",
	},
	domain.MethodUrgentOffer: {
		"Hi! I can pay {offer} for the {item} right now and collect today if that works?",
		"Hello, really keen on the {item}. I can send {offer} immediately if you're happy to mark it sold.",
		"Hi there, would you take {offer} for the {item}? Ready to pay straight away.",
	},
	domain.MethodTrendDirectMessage: {
		"Hi, I've been watching the {item}. Similar ones have been selling for less recently. Would you accept {offer}?",
		"Hello! Prices for items like the {item} have dropped lately. Could you do {offer}? I can pay today.",
	},
	domain.MethodMarketRealityCheck: {
		"Hi! Similar {item} listings have sold for around {offer}. Would you consider that?",
		"Hello, I've checked recent sales of the {item} and {offer} seems fair. Would that work?",
	},
	domain.MethodQuickOffer: {
		"Hi! Would you take {offer} for the {item}? Can pay now.",
		"Hello, quick offer of {offer} for the {item} if you're open to it.",
	},
	domain.MethodSeasonalPatience: {
		"Hi, love the {item}. It's a bit out of season right now, but would you consider {offer}?",
		"Hello! If the {item} is still around in a few weeks, would {offer} tempt you?",
	},
	domain.MethodPatientApproach: {
		"Hi, I'm interested in the {item}. No rush, but would you consider {offer} at some point?",
		"Hello! Keep me in mind for the {item}. I'd be happy at {offer} if it doesn't sell.",
	},
	domain.MethodEndOfMonthPush: {
		"Hi! I know it's the end of the month. Could I take the {item} off your hands for {offer}?",
		"Hello, would {offer} for the {item} help before the month is out? Can pay today.",
	},
	domain.MethodConfidentOffer: {
		"Hi, I'd like to offer {offer} for the {item}. Based on recent sales I think that's fair.",
		"Hello! I can do {offer} for the {item}, cash ready whenever suits you.",
	},
	domain.MethodStandardOffer: {
		"Hi! Is the {item} still available? Would you consider {offer}?",
		"Hello, I'm interested in the {item}. Would you accept {offer}?",
		"Hi there, would {offer} work for the {item}? Thanks!",
	},
}

// ComposeMessage renders the outreach message for a strategy. The template is
// chosen by a stable hash of the normalized item name, so the same item always
// gets the same wording.
func ComposeMessage(method domain.Method, itemName string, offer float64) string {
	list, ok := templates[method]
	if !ok {
		list = templates[domain.MethodStandardOffer]
	}

	norm := strings.ToLower(strings.TrimSpace(itemName))
	item := strings.TrimSpace(itemName)
	if item == "" {
		item = "this item"
	}

	r := strings.NewReplacer(
		"the {item}", theItem(item),
		"{item}", item,
		"{offer}", fmt.Sprintf("£%.2f", offer),
	)
	return r.Replace(list[TemplateIndex(norm, len(list))])
}

// TemplateIndex returns fnv32a(name) mod n.
func TemplateIndex(name string, n int) int {
	if n <= 0 {
		return 0
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	return int(h.Sum32() % uint32(n))
}

func theItem(item string) string {
	if item == "this item" || strings.HasPrefix(strings.ToLower(item), "the ") {
		return item
	}
	return "the " + item
}
