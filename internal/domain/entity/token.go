package entity

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenType distinguishes the stored token records.
type TokenType string

const (
	TokenTypeRefresh TokenType = "refresh"
)

// Token is a persisted refresh token record. Only the SHA-256 hash of the
// token string is stored.
type Token struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	TokenType TokenType `bson:"token_type"`
	TokenHash string    `bson:"token_hash"`
	CreatedAt time.Time `bson:"created_at"`
	ExpiresAt time.Time `bson:"expires_at"`
	Revoked   bool      `bson:"revoked"`
}

// Claims are the verified claims carried by an access or refresh token.
type Claims struct {
	UserID string
	Role   UserRole
	jwt.RegisteredClaims
}
