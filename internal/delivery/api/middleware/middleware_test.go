package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gallery/internal/delivery/api/response"
	"gallery/internal/domain/constants"
	"gallery/internal/domain/entity"
	domainerrors "gallery/internal/domain/errors"
	"gallery/internal/domain/service"
	mockservice "gallery/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(discardLogger()).HandleHTTPError

	return e
}

func do(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error.Code
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()
	tokens := mockservice.NewMockTokenService(t)
	tokens.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID, Roles: []string{"collector", "bogus"}}, nil).Maybe()
	tokens.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired")).Maybe()

	auth := NewAuthMiddleware(tokens)
	e := newEcho()
	e.GET("/me", func(c echo.Context) error {
		assert.Equal(t, userID, GetUserID(c))
		assert.Equal(t, entity.Roles{entity.RoleCollector}, GetRoles(c))

		return c.NoContent(http.StatusNoContent)
	}, auth.Authenticate)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "valid", header: "Bearer good", wantStatus: http.StatusNoContent},
		{name: "missing", header: "", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", header: "Token good", wantStatus: http.StatusUnauthorized},
		{name: "expired", header: "Bearer expired", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}

			rec := do(e, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "UNAUTHENTICATED", errorCode(t, rec))
			}
		})
	}
}

func TestAuthMiddleware_OptionalAuth(t *testing.T) {
	tokens := mockservice.NewMockTokenService(t)
	tokens.EXPECT().ValidateToken("forged").Return(nil, errors.New("signature is invalid"))

	auth := NewAuthMiddleware(tokens)
	e := newEcho()
	e.GET("/art", func(c echo.Context) error {
		assert.Equal(t, uuid.Nil, GetUserID(c))
		assert.Empty(t, GetRoles(c))

		return c.NoContent(http.StatusNoContent)
	}, auth.OptionalAuth)

	req := httptest.NewRequest(http.MethodGet, "/art", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer forged")

	assert.Equal(t, http.StatusNoContent, do(e, req).Code)
	assert.Equal(t, http.StatusNoContent, do(e, httptest.NewRequest(http.MethodGet, "/art", nil)).Code)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tokens := mockservice.NewMockTokenService(t)
	tokens.EXPECT().ValidateToken("collector").Return(&service.Claims{UserID: uuid.New(), Roles: []string{"collector"}}, nil).Maybe()
	tokens.EXPECT().ValidateToken("admin").Return(&service.Claims{UserID: entity.AdminPrincipalID, Roles: []string{"admin"}}, nil).Maybe()

	auth := NewAuthMiddleware(tokens)
	e := newEcho()
	e.GET("/admin", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}, auth.Authenticate, auth.RequireRole(entity.RoleAdmin))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer collector")
	rec := do(e, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", errorCode(t, rec))

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer admin")
	assert.Equal(t, http.StatusNoContent, do(e, req).Code)
}

func TestRateLimitMiddleware(t *testing.T) {
	limiter := mockservice.NewMockRateLimiter(t)
	limiter.EXPECT().Allow(mock.Anything, "purchase:203.0.113.7", int64(2), time.Minute).Return(true, time.Duration(0), nil).Once()
	limiter.EXPECT().Allow(mock.Anything, "purchase:203.0.113.7", int64(2), time.Minute).Return(false, 1500*time.Millisecond, nil).Once()

	rl := NewRateLimitMiddleware(limiter, time.Minute, discardLogger())
	e := newEcho()
	e.POST("/buy", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}, rl.Limit("purchase", 2))

	newReq := func() *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/buy", nil)
		req.Header.Set(echo.HeaderXRealIP, "203.0.113.7")

		return req
	}

	assert.Equal(t, http.StatusNoContent, do(e, newReq()).Code)

	rec := do(e, newReq())
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "2", rec.Header().Get(constants.HeaderRetryAfter))
	assert.Equal(t, "RATE_LIMITED", errorCode(t, rec))
}

func TestRateLimitMiddleware_FailsOpen(t *testing.T) {
	limiter := mockservice.NewMockRateLimiter(t)
	limiter.EXPECT().Allow(mock.Anything, mock.Anything, int64(5), time.Minute).Return(false, time.Duration(0), errors.New("redis down"))

	rl := NewRateLimitMiddleware(limiter, time.Minute, discardLogger())
	e := newEcho()
	e.POST("/login", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}, rl.Limit("admin-login", 5))

	assert.Equal(t, http.StatusNoContent, do(e, httptest.NewRequest(http.MethodPost, "/login", nil)).Code)
}

func TestRateLimitMiddleware_ZeroLimitDisables(t *testing.T) {
	limiter := mockservice.NewMockRateLimiter(t)

	rl := NewRateLimitMiddleware(limiter, time.Minute, discardLogger())
	e := newEcho()
	e.POST("/buy", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}, rl.Limit("purchase", 0))

	assert.Equal(t, http.StatusNoContent, do(e, httptest.NewRequest(http.MethodPost, "/buy", nil)).Code)
}

func TestErrorMiddleware(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails any
	}{
		{
			name:        "app error keeps client details",
			err:         errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("from after to"), "list purchases"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: "from after to",
		},
		{
			name:       "server errors hide details",
			err:        domainerrors.ErrInternalError.WithDetails("pq: relation missing"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   domainerrors.ErrInternalError.ErrorCode(),
		},
		{
			name:       "echo http error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEcho()
			e.GET("/x", func(echo.Context) error { return tt.err })

			rec := do(e, httptest.NewRequest(http.MethodGet, "/x", nil))

			require.Equal(t, tt.wantStatus, rec.Code)
			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.NotContains(t, rec.Body.String(), "boom")
		})
	}
}

func TestErrorMiddleware_SignInRequiredCarriesResume(t *testing.T) {
	e := newEcho()
	e.POST("/buy", func(echo.Context) error {
		return errors.WithStack(domainerrors.NewSignInRequiredError("neon-koi"))
	})

	rec := do(e, httptest.NewRequest(http.MethodPost, "/buy", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "UNAUTHENTICATED", body.Error.Code)
	require.NotNil(t, body.Error.Resume)
	assert.Equal(t, "neon-koi", body.Error.Resume.ArtworkID)
}
