package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CustomClaims are the claims carried by signed tokens.
type CustomClaims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// JWTManager signs and verifies HMAC tokens.
type JWTManager struct {
	secret        []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

// NewJWTManager creates a manager signing with the given secret.
func NewJWTManager(secret string, accessExpiry, refreshExpiry time.Duration) *JWTManager {
	return &JWTManager{
		secret:        []byte(secret),
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

// GenerateAccessToken issues a short-lived access token.
func (m *JWTManager) GenerateAccessToken(userID, role string) (string, error) {
	return m.sign(userID, role, "access", m.accessExpiry)
}

// GenerateRefreshToken issues a long-lived refresh token.
func (m *JWTManager) GenerateRefreshToken(tokenID, userID string) (string, error) {
	claims := CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   userID,
			Audience:  jwt.ClaimStrings{"refresh"},
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.refreshExpiry)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// VerifyToken validates an access token and returns its claims.
func (m *JWTManager) VerifyToken(tokenStr string) (*CustomClaims, error) {
	return m.verify(tokenStr, "access")
}

// VerifyRefreshToken validates a refresh token and returns its claims.
func (m *JWTManager) VerifyRefreshToken(tokenStr string) (*CustomClaims, error) {
	return m.verify(tokenStr, "refresh")
}

func (m *JWTManager) sign(userID, role, audience string, expiry time.Duration) (string, error) {
	claims := CustomClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Audience:  jwt.ClaimStrings{audience},
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *JWTManager) verify(tokenStr, audience string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithAudience(audience))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
