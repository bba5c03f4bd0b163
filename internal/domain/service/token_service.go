package service

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"

	"blog/internal/domain/entity"
)

// Claims defines the identity attributes embedded in an access token.
// The registered subject claim carries the user id; email, name and username
// ride alongside so ownership checks never trust client-supplied fields.
type Claims struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim into the numeric user id.
func (c *Claims) UserID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}

// TokenService defines the interface for issuing and validating access tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken signs a short-lived token carrying the user's claims.
	GenerateAccessToken(user *entity.User) (string, error)

	// ValidateToken checks signature, expiration, issuer and audience of a
	// token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
