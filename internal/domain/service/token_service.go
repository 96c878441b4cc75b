package service

import (
	"bazar/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by issued tokens.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for signing and validating login tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Generate signs a token carrying the user's email, name and role,
	// expiring after the configured duration.
	Generate(user *entity.User) (string, error)

	// Validate parses a token string and returns its claims if the
	// signature and expiry check out.
	Validate(tokenString string) (*Claims, error)
}
