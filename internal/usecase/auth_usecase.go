package usecase

import (
	"context"
)

// SignUpInput carries the registration payload. The password is kept as
// plaintext only for the duration of the call; it is hashed before any
// entity leaves this layer.
type SignUpInput struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=10"`
}

// SignInInput carries the login payload.
type SignInInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignInOutput is the successful login response body.
type SignInOutput struct {
	AccessToken string `json:"accessToken"`
}

// AuthUsecase defines registration and credential verification.
type AuthUsecase interface {
	// SignUp registers a new account. The created identity is not echoed
	// back; success carries no payload.
	SignUp(ctx context.Context, input *SignUpInput) error
	// SignIn verifies credentials and issues a bearer access token.
	SignIn(ctx context.Context, input *SignInInput) (*SignInOutput, error)
}
