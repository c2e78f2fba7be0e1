package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/haggle/internal/store"
	domain "github.com/donaldgifford/haggle/pkg/types"
)

// SellersHandler serves learned seller profiles.
type SellersHandler struct {
	store store.Store
}

// NewSellersHandler creates a new SellersHandler.
func NewSellersHandler(s store.Store) *SellersHandler {
	return &SellersHandler{store: s}
}

// GetSellerInput is the path for a seller profile.
type GetSellerInput struct {
	SellerID string `path:"seller_id" doc:"Marketplace seller identifier"`
}

// GetSellerOutput is a seller profile.
type GetSellerOutput struct {
	Body domain.SellerProfile
}

// Get returns the stored profile for a seller.
func (h *SellersHandler) Get(ctx context.Context, input *GetSellerInput) (*GetSellerOutput, error) {
	p, err := h.store.GetSellerProfile(ctx, input.SellerID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, huma.Error404NotFound("seller not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("loading seller failed: " + err.Error())
	}

	return &GetSellerOutput{Body: *p}, nil
}

// RegisterSellerRoutes registers seller endpoints with the Huma API.
func RegisterSellerRoutes(api huma.API, h *SellersHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-seller",
		Method:      http.MethodGet,
		Path:        "/api/v1/sellers/{seller_id}",
		Summary:     "Get a seller profile",
		Description: "Returns the behavioural profile learned from listings by this seller.",
		Tags:        []string{"sellers"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.Get)
}
