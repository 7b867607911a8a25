package middleware

import (
	"strings"

	"gallery/internal/delivery/api/response"
	"gallery/internal/domain/entity"
	"gallery/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID = "userID"
	contextKeyRoles  = "roles"
)

// AuthMiddleware authenticates bearer session tokens and checks roles.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid session token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Authorization header is missing")
		}

		tokenString, ok := bearerToken(authHeader)
		if !ok {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid or expired token")
		}

		setPrincipal(c, claims)

		return next(c)
	}
}

// OptionalAuth attaches the principal when a valid token is present and
// otherwise lets the request through as anonymous.
func (m *AuthMiddleware) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return next(c)
		}

		if claims, err := m.tokenSvc.ValidateToken(tokenString); err == nil {
			setPrincipal(c, claims)
		}

		return next(c)
	}
}

// RequireRole checks the authenticated principal's roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !GetRoles(c).Contains(requiredRole) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}

// GetUserID returns the authenticated user, or uuid.Nil for anonymous requests.
func GetUserID(c echo.Context) uuid.UUID {
	userID, _ := c.Get(contextKeyUserID).(uuid.UUID)

	return userID
}

// GetRoles returns the authenticated principal's roles.
func GetRoles(c echo.Context) entity.Roles {
	roles, _ := c.Get(contextKeyRoles).(entity.Roles)

	return roles
}

func setPrincipal(c echo.Context, claims *service.Claims) {
	c.Set(contextKeyUserID, claims.UserID)
	c.Set(contextKeyRoles, entity.RolesFromStrings(claims.Roles))
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))

	return token, token != ""
}
