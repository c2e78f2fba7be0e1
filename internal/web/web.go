// Package web serves the browser form for analyzing a single listing.
package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/haggle/pkg/logger"
	"github.com/donaldgifford/haggle/pkg/negotiate"
	domain "github.com/donaldgifford/haggle/pkg/types"
)

const formErrorMessage = "Please fill in all required fields correctly."

// Form bounds. Values outside them are almost always typos.
const (
	minNameLength = 3
	maxPrice      = 10000
	maxDays       = 365
	maxInterested = 1000
)

// Strategist produces a negotiation strategy for a listing.
type Strategist interface {
	GenerateStrategy(ctx context.Context, in domain.ListingInput) domain.NegotiationStrategy
}

// Handler renders the analysis form and its results.
type Handler struct {
	strategist Strategist
	log        *slog.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the handler logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		h.log = l
	}
}

// NewHandler creates a new web Handler.
func NewHandler(s Strategist, opts ...Option) *Handler {
	h := &Handler{strategist: s, log: logger.Discard()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register mounts the form routes on e.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/", h.Index)
	e.POST("/", h.Submit)
}

// FormValues holds the raw form fields so they can be echoed back.
type FormValues struct {
	ItemName   string
	Price      string
	Days       string
	Interested string
	Views      string
}

// ResultView is the rendered form of a strategy.
type ResultView struct {
	Method           string
	OfferPrice       string
	MarketPrice      string
	Savings          string
	Confidence       int
	Message          string
	Rationale        string
	MarketComparison string
	SellerInsights   string
	MarketPosition   string
	SellerType       string
	Trend            string
	Brand            string
	Estimated        bool
}

// Index renders the empty form.
func (*Handler) Index(c echo.Context) error {
	return render(c, http.StatusOK, IndexPage(FormValues{Days: "0", Interested: "0"}, nil, ""))
}

// Submit analyzes the posted listing and renders the result below the form.
func (h *Handler) Submit(c echo.Context) error {
	form := FormValues{
		ItemName:   strings.TrimSpace(c.FormValue("item_name")),
		Price:      strings.TrimSpace(c.FormValue("price")),
		Days:       strings.TrimSpace(c.FormValue("days")),
		Interested: strings.TrimSpace(c.FormValue("interested")),
		Views:      strings.TrimSpace(c.FormValue("views")),
	}

	in, err := parseForm(form)
	if err == nil {
		err = errors.Join(in.Validate(), checkBounds(in))
	}
	if err != nil {
		h.log.Debug("rejected form submission", "err", err)
		return render(c, http.StatusUnprocessableEntity, IndexPage(form, nil, formErrorMessage))
	}

	s := h.strategist.GenerateStrategy(c.Request().Context(), in)
	view := NewResultView(in.Price, &s)
	return render(c, http.StatusOK, IndexPage(form, &view, ""))
}

func parseForm(f FormValues) (domain.ListingInput, error) {
	var errs []error

	in := domain.ListingInput{ItemName: f.ItemName}
	if in.ItemName == "" {
		errs = append(errs, fmt.Errorf("%w: item name is required", domain.ErrInvalidInput))
	}

	price, err := strconv.ParseFloat(f.Price, 64)
	if err != nil {
		errs = append(errs, fmt.Errorf("%w: price: %w", domain.ErrInvalidInput, err))
	}
	in.Price = price

	in.DaysListed, err = atoiOrZero(f.Days)
	if err != nil {
		errs = append(errs, fmt.Errorf("%w: days: %w", domain.ErrInvalidInput, err))
	}
	in.InterestedCount, err = atoiOrZero(f.Interested)
	if err != nil {
		errs = append(errs, fmt.Errorf("%w: interested: %w", domain.ErrInvalidInput, err))
	}
	in.Views, err = atoiOrZero(f.Views)
	if err != nil {
		errs = append(errs, fmt.Errorf("%w: views: %w", domain.ErrInvalidInput, err))
	}

	return in, errors.Join(errs...)
}

func checkBounds(in domain.ListingInput) error {
	var errs []error
	if len([]rune(in.ItemName)) < minNameLength {
		errs = append(errs, fmt.Errorf("%w: item name must be at least %d characters", domain.ErrInvalidInput, minNameLength))
	}
	if in.Price > maxPrice {
		errs = append(errs, fmt.Errorf("%w: price must not exceed %d", domain.ErrInvalidInput, maxPrice))
	}
	if in.DaysListed > maxDays {
		errs = append(errs, fmt.Errorf("%w: days must not exceed %d", domain.ErrInvalidInput, maxDays))
	}
	if in.InterestedCount > maxInterested {
		errs = append(errs, fmt.Errorf("%w: interested must not exceed %d", domain.ErrInvalidInput, maxInterested))
	}
	return errors.Join(errs...)
}

func atoiOrZero(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

// NewResultView formats a strategy for display.
func NewResultView(listed float64, s *domain.NegotiationStrategy) ResultView {
	v := ResultView{
		Method:           string(s.Method),
		OfferPrice:       money(s.OfferPrice),
		MarketPrice:      money(s.Market.SoldMedian),
		Confidence:       s.Confidence,
		Message:          s.Message,
		Rationale:        s.Rationale,
		MarketComparison: s.Insights.MarketComparison,
		SellerInsights:   s.Insights.SellerInsights,
		MarketPosition:   label(string(s.Market.MarketPosition)),
		SellerType:       label(string(s.Seller.SellerType)),
		Trend:            label(string(s.Trend.PriceTrend)),
		Estimated:        s.Market.Estimated,
	}

	if b := s.Market.BrandInfo.Brand; b != negotiate.UnknownBrand {
		v.Brand = b
	}

	if saving := listed - s.OfferPrice; saving > 0 {
		v.Savings = fmt.Sprintf("%s (%.1f%%)", money(saving), s.DiscountPercent)
	} else {
		v.Savings = "Item is well-priced"
	}

	return v
}

func money(f float64) string {
	return "£" + strconv.FormatFloat(f, 'f', 2, 64)
}

func label(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}

func stars(n int) string {
	n = max(0, min(n, 5))
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}

func render(c echo.Context, status int, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return component.Render(c.Request().Context(), c.Response())
}
