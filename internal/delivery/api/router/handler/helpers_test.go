package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"gallery/internal/delivery/api/middleware"
	"gallery/internal/delivery/api/validator"
	"gallery/internal/domain/service"
	mockservice "gallery/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testToken = "session-token"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(discardLogger()).HandleHTTPError

	return e
}

// authFor returns an auth middleware that accepts testToken as the given principal.
func authFor(t *testing.T, userID uuid.UUID, roles ...string) *middleware.AuthMiddleware {
	t.Helper()

	tokens := mockservice.NewMockTokenService(t)
	tokens.EXPECT().ValidateToken(testToken).Return(&service.Claims{UserID: userID, Roles: roles}, nil).Maybe()

	return middleware.NewAuthMiddleware(tokens)
}

func serve(e *echo.Echo, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func bearer() map[string]string {
	return map[string]string{echo.HeaderAuthorization: "Bearer " + testToken}
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
		Resume  *struct {
			ArtworkID string `json:"artwork_id"`
		} `json:"resume"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &out))

	return out
}
