package handler

import (
	"net/http"
	"strings"

	"gallery/internal/delivery/api/middleware"
	"gallery/internal/delivery/api/response"
	"gallery/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PurchaseHandler serves prompt unlock checkout and the caller's unlocked list.
type PurchaseHandler struct {
	purchaseUC usecase.PurchaseUsecase
}

// PurchaseHandlerParams holds dependencies for PurchaseHandler
type PurchaseHandlerParams struct {
	fx.In

	PurchaseUC usecase.PurchaseUsecase
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(params PurchaseHandlerParams) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseUC: params.PurchaseUC,
	}
}

// PurchasePromptRequest is the body of POST /api/v1/prompts/purchase.
type PurchasePromptRequest struct {
	ArtworkID string `json:"artwork_id" validate:"required,max=128"`
}

// PurchasePromptResponse carries exactly one of its fields.
type PurchasePromptResponse struct {
	AlreadyOwned bool   `json:"already_owned,omitempty"`
	CheckoutURL  string `json:"checkout_url,omitempty"`
}

// PurchasedPromptsResponse lists the artworks the caller has unlocked.
type PurchasedPromptsResponse struct {
	ArtworkIDs []string `json:"artwork_ids"`
}

// PurchasePrompt starts a checkout, or reports that the caller already owns the prompt.
func (h *PurchaseHandler) PurchasePrompt(c echo.Context) error {
	var req PurchasePromptRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request format")
	}
	req.ArtworkID = strings.TrimSpace(req.ArtworkID)

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.purchaseUC.InitiatePurchase(c.Request().Context(), middleware.GetUserID(c), req.ArtworkID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if result.AlreadyOwned {
		return response.Success(c, http.StatusOK, PurchasePromptResponse{AlreadyOwned: true})
	}

	return response.Success(c, http.StatusOK, PurchasePromptResponse{CheckoutURL: result.CheckoutURL})
}

// ListPurchased returns the caller's unlocked artwork ids; anonymous callers get an empty list.
func (h *PurchaseHandler) ListPurchased(c echo.Context) error {
	ids, err := h.purchaseUC.ListPurchased(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, PurchasedPromptsResponse{ArtworkIDs: ids})
}
