package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims defines the custom claims carried by a session token.
type SessionClaims struct {
	UserID string
	Role   string
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating the bearer
// tokens that guard authenticated routes. This abstracts the details of token
// creation from the use cases.
type TokenService interface {
	// GenerateToken creates a session token for the given user.
	GenerateToken(userID string, role string) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*SessionClaims, error)
}
