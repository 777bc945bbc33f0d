// Package auth mints and verifies the HS256 device tokens that guard the
// HTTP API.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is how long a minted device token stays valid.
const DefaultTTL = 30 * 24 * time.Hour

var ErrNoSecret = errors.New("auth: JWT secret key not set")

// Issuer describes who signs device tokens and for whom.
type Issuer struct {
	Secret   string
	Issuer   string
	Audience string
}

// CreateToken signs a token for subject that expires after ttl.
func (i Issuer) CreateToken(subject string, ttl time.Duration) (string, error) {
	if i.Secret == "" {
		return "", ErrNoSecret
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    i.Issuer,
		Audience:  jwt.ClaimStrings{i.Audience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})

	tokenString, err := token.SignedString([]byte(i.Secret))
	if err != nil {
		return "", fmt.Errorf("auth: sign token: %w", err)
	}
	return tokenString, nil
}

// VerifyToken checks the signature, issuer, audience and expiry of
// tokenString and returns its subject.
func (i Issuer) VerifyToken(tokenString string) (string, error) {
	if i.Secret == "" {
		return "", ErrNoSecret
	}

	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(i.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.Issuer),
		jwt.WithAudience(i.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}
	return claims.Subject, nil
}
