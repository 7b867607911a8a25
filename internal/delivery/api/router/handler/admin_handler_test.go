package handler

import (
	"net/http"
	"testing"
	"time"

	"gallery/internal/domain/entity"
	domainerrors "gallery/internal/domain/errors"
	mockusecase "gallery/internal/mocks/usecase"
	"gallery/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupAdminHandler(t *testing.T, roles ...string) (*echo.Echo, *mockusecase.MockAdminUsecase) {
	t.Helper()

	adminUC := mockusecase.NewMockAdminUsecase(t)
	h := NewAdminHandler(AdminHandlerParams{AdminUC: adminUC})
	auth := authFor(t, entity.AdminPrincipalID, roles...)

	e := newTestEcho()
	g := e.Group("/admin", auth.Authenticate, auth.RequireRole(entity.RoleAdmin))
	g.GET("/prompt-purchases", h.ListPurchases)
	g.POST("/prompt-purchases/:id/refund", h.RefundPurchase)
	g.PUT("/artworks/:id/prompt-price", h.SetPromptPrice)

	return e, adminUC
}

func TestAdminHandler_RequiresAdminRole(t *testing.T) {
	e, _ := setupAdminHandler(t, "collector")

	rec := serve(e, http.MethodGet, "/admin/prompt-purchases", "", bearer())

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Nil(t, decodeEnvelope(t, rec).Error.Details)
}

func TestAdminHandler_RequiresToken(t *testing.T) {
	e, _ := setupAdminHandler(t, "admin")

	rec := serve(e, http.MethodGet, "/admin/prompt-purchases", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminHandler_ListPurchases(t *testing.T) {
	e, adminUC := setupAdminHandler(t, "admin")

	id := uuid.New()
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	listing := &usecase.PurchaseListing{
		Purchases: []*entity.PurchaseRecord{{
			Entitlement: entity.Entitlement{
				ID:                id,
				ArtworkID:         "neon-koi",
				CheckoutSessionID: "cs_1",
				AmountPaid:        399,
				Status:            entity.EntitlementStatusCompleted,
				CreatedAt:         created,
			},
			UserName:     "Ada",
			ArtworkTitle: "Neon Koi",
		}},
		Summary: &entity.PurchaseSummary{TotalRevenue: 1198, TotalCount: 2},
	}

	adminUC.EXPECT().
		ListPurchases(mock.Anything, mock.MatchedBy(func(f entity.PurchaseFilter) bool {
			wantFrom := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
			wantTo := time.Date(2026, 3, 31, 23, 59, 59, 999999999, time.UTC)

			return f.Status == entity.EntitlementStatusCompleted &&
				f.From != nil && f.From.Equal(wantFrom) &&
				f.To != nil && f.To.Equal(wantTo)
		})).
		Return(listing, nil)

	rec := serve(e, http.MethodGet, "/admin/prompt-purchases?status=completed&from=2026-03-01&to=2026-03-31", "", bearer())

	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeData[PurchaseListResponse](t, rec)
	require.Len(t, out.Purchases, 1)
	assert.Equal(t, id.String(), out.Purchases[0].ID)
	assert.Equal(t, "Neon Koi", out.Purchases[0].ArtworkTitle)
	assert.Equal(t, "$3.99", out.Purchases[0].AmountDisplay)
	assert.Equal(t, int64(2), out.Summary.TotalCount)
	assert.Equal(t, "$11.98", out.Summary.TotalRevenueDisplay)
}

func TestAdminHandler_ListPurchases_RFC3339AndNoFilter(t *testing.T) {
	e, adminUC := setupAdminHandler(t, "admin")

	adminUC.EXPECT().
		ListPurchases(mock.Anything, mock.MatchedBy(func(f entity.PurchaseFilter) bool {
			return f.Status == "" && f.From != nil && f.From.Hour() == 8 && f.To == nil
		})).
		Return(&usecase.PurchaseListing{}, nil)

	rec := serve(e, http.MethodGet, "/admin/prompt-purchases?from=2026-03-01T08:00:00Z", "", bearer())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"purchases":[],"summary":{"total_revenue":0,"total_revenue_display":"$0.00","total_count":0}}`,
		string(decodeEnvelope(t, rec).Data))
}

func TestAdminHandler_ListPurchases_BadDate(t *testing.T) {
	e, _ := setupAdminHandler(t, "admin")

	rec := serve(e, http.MethodGet, "/admin/prompt-purchases?from=yesterday", "", bearer())

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.NotNil(t, env.Error.Details)
}

func TestAdminHandler_RefundPurchase(t *testing.T) {
	e, adminUC := setupAdminHandler(t, "admin")
	id := uuid.New()

	adminUC.EXPECT().RefundPurchase(mock.Anything, id).Return(nil)

	rec := serve(e, http.MethodPost, "/admin/prompt-purchases/"+id.String()+"/refund", "", bearer())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"refunded":true}`, string(decodeEnvelope(t, rec).Data))
}

func TestAdminHandler_RefundPurchase_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "not found", err: domainerrors.ErrPurchaseNotFound, wantStatus: http.StatusNotFound, wantCode: "PURCHASE_NOT_FOUND"},
		{name: "already refunded", err: domainerrors.ErrPurchaseNotRefundable, wantStatus: http.StatusBadRequest, wantCode: "PURCHASE_NOT_REFUNDABLE"},
		{name: "stripe failed", err: domainerrors.ErrRefundFailed, wantStatus: http.StatusBadGateway, wantCode: "REFUND_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, adminUC := setupAdminHandler(t, "admin")
			id := uuid.New()
			adminUC.EXPECT().RefundPurchase(mock.Anything, id).Return(tt.err)

			rec := serve(e, http.MethodPost, "/admin/prompt-purchases/"+id.String()+"/refund", "", bearer())

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeEnvelope(t, rec).Error.Code)
		})
	}
}

func TestAdminHandler_RefundPurchase_BadID(t *testing.T) {
	e, _ := setupAdminHandler(t, "admin")

	rec := serve(e, http.MethodPost, "/admin/prompt-purchases/not-a-uuid/refund", "", bearer())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminHandler_SetPromptPrice(t *testing.T) {
	e, adminUC := setupAdminHandler(t, "admin")

	adminUC.EXPECT().
		SetPromptPrice(mock.Anything, "neon-koi", mock.MatchedBy(func(p *int64) bool { return p != nil && *p == 499 })).
		Return(nil)

	rec := serve(e, http.MethodPut, "/admin/artworks/neon-koi/prompt-price", `{"price":499}`, bearer())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"artwork_id":"neon-koi","price":499}`, string(decodeEnvelope(t, rec).Data))
}

func TestAdminHandler_SetPromptPrice_NullClears(t *testing.T) {
	e, adminUC := setupAdminHandler(t, "admin")

	adminUC.EXPECT().SetPromptPrice(mock.Anything, "neon-koi", (*int64)(nil)).Return(nil)

	rec := serve(e, http.MethodPut, "/admin/artworks/neon-koi/prompt-price", `{"price":null}`, bearer())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"artwork_id":"neon-koi","price":null}`, string(decodeEnvelope(t, rec).Data))
}

func TestAdminHandler_SetPromptPrice_OutOfRange(t *testing.T) {
	e, adminUC := setupAdminHandler(t, "admin")

	adminUC.EXPECT().
		SetPromptPrice(mock.Anything, "neon-koi", mock.Anything).
		Return(domainerrors.ErrValidationFailed.WithDetails("price outside the allowed range"))

	rec := serve(e, http.MethodPut, "/admin/artworks/neon-koi/prompt-price", `{"price":5}`, bearer())

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, "price outside the allowed range", env.Error.Details)
}
