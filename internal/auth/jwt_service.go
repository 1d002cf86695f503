package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// PrincipalType distinguishes the two principal spaces. The type travels
// inside the token so a single verification tells the middleware which
// repository to resolve against, and a user token can never be replayed on
// admin routes even when the numeric ids coincide.
type PrincipalType string

const (
	PrincipalUser  PrincipalType = "user"
	PrincipalAdmin PrincipalType = "admin"
)

var (
	// ErrInvalidToken is returned when a token fails verification for any reason.
	ErrInvalidToken = errors.New("invalid token")
)

// Claims represents the signed bearer token payload.
type Claims struct {
	PrincipalID   uint          `json:"id"`
	PrincipalType PrincipalType `json:"type"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies signed, expiring bearer tokens. Stateless.
type JWTService struct {
	secret   []byte
	lifetime time.Duration
}

// NewJWTService creates a new JWT service with the given secret and token lifetime.
func NewJWTService(secret string, lifetime time.Duration) *JWTService {
	return &JWTService{
		secret:   []byte(secret),
		lifetime: lifetime,
	}
}

// Issue produces a signed token embedding the principal id and type.
func (s *JWTService) Issue(principalID uint, principalType PrincipalType) (string, error) {
	now := time.Now()
	claims := &Claims{
		PrincipalID:   principalID,
		PrincipalType: principalType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates a token and returns its claims. It fails closed: any
// malformed structure, signature mismatch or exp <= now yields ErrInvalidToken.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.PrincipalType != PrincipalUser && claims.PrincipalType != PrincipalAdmin {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
