package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const (
	AccessTokenTTL  = 24 * time.Hour
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// JWTSecret returns the HS256 signing key from the environment.
func JWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "solid_secret_key" // Replace with secure key in production
	}
	return []byte(secret)
}

// IssueTokens creates a signed access/refresh token pair for an account.
// actor distinguishes customer tokens from provider tokens. Every access
// token carries a unique jti so logout can revoke it individually.
func IssueTokens(id uint, email, actor string) (access, refresh string, err error) {
	claims := jwt.MapClaims{
		"id":    id,
		"email": email,
		"actor": actor,
		"jti":   uuid.NewString(),
		"exp":   time.Now().Add(AccessTokenTTL).Unix(),
	}
	access, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(JWTSecret())
	if err != nil {
		return "", "", err
	}

	refreshClaims := jwt.MapClaims{
		"id":    id,
		"email": email,
		"actor": actor,
		"exp":   time.Now().Add(RefreshTokenTTL).Unix(),
	}
	refresh, err = jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString(JWTSecret())
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
