// Package security provides JWT token utilities
package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Token type claims. The unlock token is opaque to the store and to the
// gating policy; its presence alone is the unlock signal.
const (
	TokenTypeAdmin  = "admin_auth"
	TokenTypeUnlock = "visitor_unlock"
)

// ValidateJWT validates a JWT token and returns the claims
func ValidateJWT(tokenString, jwtSecret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// GenerateAdminToken creates a JWT for an authenticated operator session.
func GenerateAdminToken(jwtSecret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"role": "admin",
		"type": TokenTypeAdmin,
		"iat":  time.Now().UTC().Unix(),
		"exp":  time.Now().UTC().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// GenerateUnlockToken creates the visitor unlock token minted by a
// successful lead capture. It carries the lead id that earned the unlock.
func GenerateUnlockToken(leadID, jwtSecret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"leadId": leadID,
		"type":   TokenTypeUnlock,
		"iat":    time.Now().UTC().Unix(),
		"exp":    time.Now().UTC().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// IsAdminToken checks that a token is a valid operator session token.
func IsAdminToken(tokenString, jwtSecret string) bool {
	if tokenString == "" {
		return false
	}

	claims, err := ValidateJWT(tokenString, jwtSecret)
	if err != nil {
		return false
	}

	tokenType, ok := claims["type"].(string)
	return ok && tokenType == TokenTypeAdmin
}
