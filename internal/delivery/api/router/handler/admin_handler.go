package handler

import (
	"net/http"
	"strings"
	"time"

	"gallery/internal/delivery/api/response"
	"gallery/internal/domain/entity"
	"gallery/internal/domain/pricing"
	"gallery/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const dateOnlyLayout = "2006-01-02"

// AdminHandler serves the operator's purchase and pricing screens.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
}

// AdminHandlerParams holds dependencies for AdminHandler
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
	}
}

// PurchaseDTO is one row of the admin purchase list.
type PurchaseDTO struct {
	ID                string     `json:"id"`
	UserID            string     `json:"user_id"`
	UserName          string     `json:"user_name"`
	UserEmail         string     `json:"user_email"`
	ArtworkID         string     `json:"artwork_id"`
	ArtworkTitle      string     `json:"artwork_title"`
	ArtworkSrc        string     `json:"artwork_src"`
	CheckoutSessionID string     `json:"checkout_session_id"`
	PaymentIntentID   *string    `json:"payment_intent_id"`
	AmountPaid        int64      `json:"amount_paid"`
	AmountDisplay     string     `json:"amount_display"`
	Status            string     `json:"status"`
	PayerEmail        *string    `json:"payer_email"`
	CreatedAt         time.Time  `json:"created_at"`
	RefundedAt        *time.Time `json:"refunded_at"`
}

// PurchaseSummaryDTO totals completed purchases.
type PurchaseSummaryDTO struct {
	TotalRevenue        int64  `json:"total_revenue"`
	TotalRevenueDisplay string `json:"total_revenue_display"`
	TotalCount          int64  `json:"total_count"`
}

// PurchaseListResponse is returned by GET /admin/prompt-purchases.
type PurchaseListResponse struct {
	Purchases []PurchaseDTO      `json:"purchases"`
	Summary   PurchaseSummaryDTO `json:"summary"`
}

// SetPromptPriceRequest overrides an artwork's price; a null price restores the default.
type SetPromptPriceRequest struct {
	Price *int64 `json:"price"`
}

// ListPurchases lists the newest purchases, filtered by ?status, ?from and ?to.
// Dates are RFC 3339 timestamps or YYYY-MM-DD; a date-only ?to covers the whole day.
func (h *AdminHandler) ListPurchases(c echo.Context) error {
	filter := entity.PurchaseFilter{
		Status: entity.EntitlementStatus(strings.TrimSpace(c.QueryParam("status"))),
	}

	from, err := parseDateParam(c.QueryParam("from"), false)
	if err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid from date", err.Error())
	}
	filter.From = from

	to, err := parseDateParam(c.QueryParam("to"), true)
	if err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid to date", err.Error())
	}
	filter.To = to

	listing, err := h.adminUC.ListPurchases(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := PurchaseListResponse{Purchases: make([]PurchaseDTO, 0, len(listing.Purchases))}
	for _, rec := range listing.Purchases {
		out.Purchases = append(out.Purchases, toPurchaseDTO(rec))
	}
	var summary entity.PurchaseSummary
	if listing.Summary != nil {
		summary = *listing.Summary
	}
	out.Summary = PurchaseSummaryDTO{
		TotalRevenue:        summary.TotalRevenue,
		TotalRevenueDisplay: pricing.Format(summary.TotalRevenue),
		TotalCount:          summary.TotalCount,
	}

	return response.Success(c, http.StatusOK, out)
}

// RefundPurchase refunds a completed purchase through Stripe and revokes it.
func (h *AdminHandler) RefundPurchase(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid purchase ID")
	}

	if err := h.adminUC.RefundPurchase(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"refunded": true})
}

// SetPromptPrice sets or clears an artwork's price override.
func (h *AdminHandler) SetPromptPrice(c echo.Context) error {
	var req SetPromptPriceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request format")
	}

	artworkID := c.Param("id")
	if err := h.adminUC.SetPromptPrice(c.Request().Context(), artworkID, req.Price); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"artwork_id": artworkID,
		"price":      req.Price,
	})
}

func parseDateParam(raw string, endOfDay bool) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}

	t, err := time.Parse(dateOnlyLayout, raw)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}

	return &t, nil
}

func toPurchaseDTO(rec *entity.PurchaseRecord) PurchaseDTO {
	return PurchaseDTO{
		ID:                rec.ID.String(),
		UserID:            rec.UserID.String(),
		UserName:          rec.UserName,
		UserEmail:         rec.UserEmail,
		ArtworkID:         rec.ArtworkID,
		ArtworkTitle:      rec.ArtworkTitle,
		ArtworkSrc:        rec.ArtworkSrc,
		CheckoutSessionID: rec.CheckoutSessionID,
		PaymentIntentID:   rec.PaymentIntentID,
		AmountPaid:        rec.AmountPaid,
		AmountDisplay:     pricing.Format(rec.AmountPaid),
		Status:            string(rec.Status),
		PayerEmail:        rec.PayerEmail,
		CreatedAt:         rec.CreatedAt,
		RefundedAt:        rec.RefundedAt,
	}
}
