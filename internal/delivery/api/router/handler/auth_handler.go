package handler

import (
	"net/http"

	"gallery/internal/delivery/api/response"
	"gallery/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandler exchanges credentials for session tokens.
type AuthHandler struct {
	sessionUC usecase.SessionUsecase
}

// AuthHandlerParams holds dependencies for AuthHandler
type AuthHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		sessionUC: params.SessionUC,
	}
}

// OAuthCallbackRequest carries the provider's ID token.
type OAuthCallbackRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// AdminLoginRequest carries the operator password.
type AdminLoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// SessionUserDTO is the signed-in collector.
type SessionUserDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SessionResponse is returned by every sign-in route.
type SessionResponse struct {
	Token string          `json:"token"`
	Roles []string        `json:"roles"`
	User  *SessionUserDTO `json:"user,omitempty"`
}

// OAuthCallback signs a collector in with a verified ID token.
func (h *AuthHandler) OAuthCallback(c echo.Context) error {
	var req OAuthCallbackRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	out, err := h.sessionUC.SignInWithOAuth(c.Request().Context(), req.IDToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSessionResponse(out))
}

// AdminLogin signs the operator in.
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	out, err := h.sessionUC.AdminLogin(c.Request().Context(), req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSessionResponse(out))
}

func toSessionResponse(out *usecase.SessionOutput) SessionResponse {
	resp := SessionResponse{
		Token: out.Token,
		Roles: out.Roles.ToStrings(),
	}
	if out.User != nil {
		resp.User = &SessionUserDTO{
			ID:    out.User.ID.String(),
			Name:  out.User.Name,
			Email: out.User.Email,
		}
	}

	return resp
}
