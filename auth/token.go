// Package auth validates the bearer tokens of hub and API callers.
package auth

import (
	"fmt"
	"time"

	"hearing-hub/domain"
	"hearing-hub/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/samber/lo"
)

const issuer = "hearing-hub"

// Roles that may message participants directly and join the officers group.
var adminRoles = []string{string(domain.RoleVideoHearingsOfficer), "Administrator"}

// CustomClaims defines the structure of the data stored inside the JWT.
type CustomClaims struct {
	Username string   `json:"preferred_username"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}

func (c *CustomClaims) IsAdmin() bool {
	return lo.Some(c.Roles, adminRoles)
}

type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// GenerateToken creates a signed JWT for a user. Used by tests and local tooling.
func (s *TokenService) GenerateToken(username string, roles []string, duration time.Duration) (string, error) {
	now := time.Now()
	claims := &CustomClaims{
		Username: domain.NewUsername(username).String(),
		Roles:    roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   domain.NewUsername(username).String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ValidateToken parses and validates the signature and expiration of a JWT string.
// Any failure is reported as ErrUnauthenticated.
func (s *TokenService) ValidateToken(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrUnauthenticated, err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: %w", errors.ErrUnauthenticated, jwt.ErrSignatureInvalid)
	}
	if claims.Username == "" {
		claims.Username = claims.Subject
	}
	if claims.Username == "" {
		return nil, fmt.Errorf("%w: token without username", errors.ErrUnauthenticated)
	}
	return claims, nil
}
