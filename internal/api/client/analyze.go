package client

import (
	"context"
	"net/url"

	domain "github.com/donaldgifford/haggle/pkg/types"
)

// AnalyzeRequest is a listing to analyze.
type AnalyzeRequest struct {
	ItemName   string         `json:"item_name"`
	Price      float64        `json:"price"`
	Days       int            `json:"days"`
	Interested int            `json:"interested"`
	Views      int            `json:"views,omitempty"`
	SellerData map[string]any `json:"seller_data,omitempty"`
}

// AnalyzeResponse is the server's analysis of a listing.
type AnalyzeResponse struct {
	Success     bool    `json:"success"`
	MarketPrice float64 `json:"market_price"`
	Strategy    struct {
		Method          domain.Method `json:"method"`
		OfferPrice      float64       `json:"offer_price"`
		Confidence      int           `json:"confidence"`
		DiscountPercent float64       `json:"discount_percent"`
		Message         string        `json:"message"`
	} `json:"strategy"`
	Analysis struct {
		MarketPosition      domain.MarketPosition `json:"market_position"`
		SellerMotivation    domain.SellerType     `json:"seller_motivation"`
		NegotiationStrength float64               `json:"negotiation_strength"`
		StrategyRationale   string                `json:"strategy_rationale"`
		PriceTrend          domain.PriceTrend     `json:"price_trend"`
		EstimatedMarket     bool                  `json:"estimated_market"`
		SoldCount           int                   `json:"sold_count"`
		BrandInfo           domain.BrandProfile   `json:"brand_info"`
	} `json:"analysis"`
	Insights domain.Insights `json:"insights"`
}

// EstimateResponse is a keyword-based market estimate.
type EstimateResponse struct {
	ItemName       string              `json:"item_name"`
	EstimatedPrice float64             `json:"estimated_price"`
	BrandInfo      domain.BrandProfile `json:"brand_info"`
}

// Analyze submits a listing for analysis.
func (c *Client) Analyze(ctx context.Context, req *AnalyzeRequest) (*AnalyzeResponse, error) {
	var resp AnalyzeResponse
	if err := c.post(ctx, "/api/v1/analyze", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Estimate returns the keyword-based market estimate for an item name.
func (c *Client) Estimate(ctx context.Context, itemName string) (*EstimateResponse, error) {
	var resp EstimateResponse
	if err := c.get(ctx, "/api/v1/estimate", map[string]string{"item_name": itemName}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetSeller returns the learned profile for a seller.
func (c *Client) GetSeller(ctx context.Context, sellerID string) (*domain.SellerProfile, error) {
	var p domain.SellerProfile
	if err := c.get(ctx, "/api/v1/sellers/"+url.PathEscape(sellerID), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
