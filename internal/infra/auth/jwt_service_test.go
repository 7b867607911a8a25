package auth

import (
	"testing"
	"time"

	"gallery/config"
	"gallery/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	cfg.SecretKey.SessionTTL = time.Hour

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, entity.Roles{entity.RoleCollector}.ToStrings())
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, []string{"collector"}, claims.Roles)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWTService_RejectsExpired(t *testing.T) {
	svc := newTestJWTService(t)
	token, err := svc.GenerateToken(uuid.New(), nil)
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	svc := newTestJWTService(t)
	other := newTestJWTService(t)
	other.secret = []byte("another-secret")

	token, err := other.GenerateToken(uuid.New(), nil)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWTService_RejectsNoneAlgorithm(t *testing.T) {
	svc := newTestJWTService(t)
	claims := jwt.MapClaims{"iss": tokenIssuer, "exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
