// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"gallery/config"
	"gallery/internal/domain/service"
	"gallery/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenIssuer = "gallery"

// jwtService signs session tokens with HMAC-SHA256.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("secretKey.access must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		ttl:    cfg.SecretKey.SessionTTL,
		now:    time.Now,
	}, nil
}

func (s *jwtService) GenerateToken(userID uuid.UUID, roles []string) (string, error) {
	issuedAt := s.now()
	claims := &service.Claims{
		UserID: userID,
		Roles:  roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign session token")
	}

	return signed, nil
}

func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "parse session token")
	}

	return claims, nil
}
