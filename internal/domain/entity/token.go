package entity

import (
	"time"
)

// TokenType distinguishes the purposes a stored token can serve.
type TokenType string

const (
	TokenTypePasswordReset TokenType = "password_reset"
)

// Token is a stored one-time credential. Only the hash of the plain token is
// persisted; the plain value travels to the user out of band (email).
type Token struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	TokenType TokenType `bson:"token_type" json:"token_type"`
	TokenHash string    `bson:"token_hash" json:"-"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	Revoked   bool      `bson:"revoked" json:"revoked"`
}
