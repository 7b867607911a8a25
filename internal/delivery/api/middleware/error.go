package middleware

import (
	"log/slog"

	"gallery/internal/delivery/api/response"
	deliverycontext "gallery/internal/delivery/context"
	domainerrors "gallery/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware renders errors that escape handlers as the JSON envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var signIn *domainerrors.SignInRequiredError
	if errors.As(err, &signIn) {
		_ = response.SignInRequired(c, signIn)

		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= 500 {
			m.log(c).Error("Request failed",
				slog.String("code", appErr.ErrorCode()),
				slog.Any("error", err),
			)
		}
		// response.Error strips details for 5xx and auth failures.
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), detailsOrNil(appErr.Details()))

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := "An error occurred"
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	m.log(c).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
}

func (m *ErrorMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}

func detailsOrNil(details string) any {
	if details == "" {
		return nil
	}

	return details
}
