package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tokens carry only the principal ID; the middleware resolves the row on
// each request, so role changes and fraud flags take effect immediately.
const tokenTTL = 30 * 24 * time.Hour

type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed JWT for the given principal ID.
func GenerateToken(userID, secret string) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is not configured")
	}

	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates the token and returns its claims.
func ParseToken(tokenStr, secret string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.UserID == "" {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
