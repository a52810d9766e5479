package auth

import (
	"github.com/golang-jwt/jwt/v4"
)

// JWTClaims represents JWT token claims. The json keys must line up
// with what the auth middleware reads out of the parsed token.
type JWTClaims struct {
	CustomerID string `json:"customer_id"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Type       string `json:"type"` // "access" or "refresh"
	jwt.RegisteredClaims
}

// TokenPair represents access and refresh tokens
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}
