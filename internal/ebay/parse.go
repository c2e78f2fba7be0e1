package ebay

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Result card selectors for the legacy and current search layouts.
const (
	itemSelector    = "li.s-item, li.s-card"
	titleSelector   = ".s-item__title, .s-card__title"
	priceSelector   = ".s-item__price, .s-card__price"
	captionSelector = ".s-item__caption--signal, .s-item__title--tagblock .POSITIVE, .s-card__caption"
	linkSelector    = "a.s-item__link, a.su-link"
)

// placeholderTitle marks the template card eBay renders ahead of results.
const placeholderTitle = "shop on ebay"

var (
	priceRe    = regexp.MustCompile(`\d[\d,]*(?:\.\d{1,2})?`)
	soldDateRe = regexp.MustCompile(`(?i)sold\s+(.+)$`)
)

var soldDateLayouts = []string{
	"2 Jan 2006",
	"Jan 2, 2006",
	"02 Jan 2006",
	"2 January 2006",
}

// ParseSearchPage extracts priced listings from a search result page.
// Cards without a parsable price are skipped. Price ranges use the lower
// bound. Sold dates in the future relative to now are dropped.
func ParseSearchPage(r io.Reader, sold bool, now time.Time) ([]Listing, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing search page: %w", err)
	}

	var listings []Listing
	doc.Find(itemSelector).Each(func(_ int, card *goquery.Selection) {
		title := cleanText(card.Find(titleSelector).First().Text())
		if title == "" || strings.EqualFold(title, placeholderTitle) {
			return
		}

		price, ok := ParsePrice(card.Find(priceSelector).First().Text())
		if !ok {
			return
		}

		l := Listing{
			Title: title,
			Price: price,
			Sold:  sold,
		}
		if href, ok := card.Find(linkSelector).First().Attr("href"); ok {
			l.URL = href
		}
		if sold {
			if at, ok := ParseSoldDate(card.Find(captionSelector).First().Text()); ok && !at.After(now) {
				l.SoldAt = &at
			}
		}
		listings = append(listings, l)
	})

	return listings, nil
}

// ParsePrice reads the first amount in a price label such as "£45.00" or
// "£10.00 to £20.00".
func ParsePrice(s string) (float64, bool) {
	m := priceRe.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// ParseSoldDate reads captions like "Sold  12 Apr 2026" or "Sold Apr 12, 2026".
func ParseSoldDate(s string) (time.Time, bool) {
	m := soldDateRe.FindStringSubmatch(cleanText(s))
	if m == nil {
		return time.Time{}, false
	}
	for _, layout := range soldDateLayouts {
		if t, err := time.Parse(layout, m[1]); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
