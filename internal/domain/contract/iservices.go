package contract

import (
	"context"
)

// IHasher hashes and verifies passwords and one-time tokens.
type IHasher interface {
	HashPassword(password string) (string, error)
	ComparePasswordHash(password, hashedPassword string) error
	// HashToken hashes a one-time token for storage.
	HashToken(token string) (string, error)
	// CompareTokenHash verifies a plain token against its stored hash.
	CompareTokenHash(token, hashedToken string) error
}

// IIDGenerator generates record identifiers.
type IIDGenerator interface {
	NewID() string
}

// IRandomGenerator generates random token material.
type IRandomGenerator interface {
	GenerateRandomToken(byteLen int) (string, error)
}

// IEmailService sends transactional email.
type IEmailService interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}
