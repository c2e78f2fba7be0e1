// Package main implements a mock marketplace server for local development.
// It renders search result pages from a JSON fixture in the same markup the
// scraper parses, so haggle can run end to end without hitting the real site.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

type fixtureItem struct {
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Sold        bool    `json:"sold"`
	SoldDaysAgo int     `json:"sold_days_ago"`
}

type card struct {
	ID       int
	Title    string
	Price    string
	SoldDate string
}

var pageTmpl = template.Must(template.New("search").Parse(`<!DOCTYPE html>
<html lang="en">
<head><title>{{.Query}} | eBay</title></head>
<body>
<ul class="srp-results srp-list clearfix">
  <li class="s-item"><div class="s-item__info"><div class="s-item__title"><span>Shop on eBay</span></div><span class="s-item__price">£20.00</span></div></li>
{{- range .Cards}}
  <li class="s-item">
    <div class="s-item__info clearfix">
      {{- if .SoldDate}}
      <div class="s-item__caption--row"><span class="s-item__caption--signal POSITIVE"><span>Sold  {{.SoldDate}}</span></span></div>
      {{- end}}
      <a class="s-item__link" href="https://www.ebay.co.uk/itm/{{.ID}}"><div class="s-item__title"><span>{{.Title}}</span></div></a>
      <div class="s-item__details"><span class="s-item__price">{{.Price}}</span></div>
    </div>
  </li>
{{- end}}
</ul>
</body>
</html>
`))

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/items.json", "path to item fixture")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	items, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "items", len(items))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /sch/i.html", searchHandler(logger, items, time.Now))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock marketplace server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) ([]fixtureItem, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var items []fixtureItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return items, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

// searchHandler matches items whose title contains every query word. Sold
// searches (LH_Sold=1) return sold items, otherwise active ones.
func searchHandler(logger *slog.Logger, items []fixtureItem, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("_nkw")
		words := strings.Fields(strings.ToLower(query))
		sold := r.URL.Query().Get("LH_Sold") == "1"

		limit := 60
		if v, err := strconv.Atoi(r.URL.Query().Get("_ipg")); err == nil && v > 0 {
			limit = v
		}

		today := now()
		var cards []card
		for i, item := range items {
			if item.Sold != sold || !matchesAll(strings.ToLower(item.Title), words) {
				continue
			}
			c := card{
				ID:    1000 + i,
				Title: item.Title,
				Price: "£" + strconv.FormatFloat(item.Price, 'f', 2, 64),
			}
			if sold {
				c.SoldDate = today.AddDate(0, 0, -item.SoldDaysAgo).Format("2 Jan 2006")
			}
			cards = append(cards, c)
			if len(cards) == limit {
				break
			}
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		pageTmpl.Execute(w, map[string]any{"Query": query, "Cards": cards})
		logger.Info("search", "query", query, "sold", sold, "returned", len(cards))
	}
}

func matchesAll(title string, words []string) bool {
	for _, w := range words {
		if !strings.Contains(title, w) {
			return false
		}
	}
	return true
}
