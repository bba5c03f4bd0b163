// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"blog/config"
	"blog/internal/domain/entity"
	"blog/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret   string
	expiry   time.Duration
	issuer   string
	audience string
}

// NewJWTService is the constructor for jwtService. Secret, expiry, issuer and
// audience are all required; a missing value is a startup error, not a
// runtime surprise.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg == nil || cfg.JWT == nil {
		return nil, errors.New("jwt configuration must be provided")
	}
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if cfg.JWT.Expiry <= 0 {
		return nil, errors.New("jwt expiry must be provided")
	}
	if cfg.JWT.Issuer == "" || cfg.JWT.Audience == "" {
		return nil, errors.New("jwt issuer and audience must be provided")
	}

	return &jwtService{
		secret:   cfg.JWT.Secret,
		expiry:   cfg.JWT.Expiry,
		issuer:   cfg.JWT.Issuer,
		audience: cfg.JWT.Audience,
	}, nil
}

// GenerateAccessToken signs a short-lived HS256 token carrying the user's
// identity claims.
func (s *jwtService) GenerateAccessToken(user *entity.User) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		Email:    user.Email,
		Name:     user.Name,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// ValidateToken checks signature method, signature, expiration, issuer and
// audience. Any mismatch yields an error; the guard maps them all to 401.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}

			return []byte(s.secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse access token")
	}
	if !token.Valid {
		return nil, errors.New("access token is not valid")
	}

	return claims, nil
}
