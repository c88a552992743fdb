package passwordservice

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"coursehub/internal/domain/contract"
)

type Hasher struct{}

// check if IHasher was implemented at compile time
var _ contract.IHasher = (*Hasher)(nil)

func NewHasher() *Hasher {
	return &Hasher{}
}

func (h *Hasher) HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func (h *Hasher) ComparePasswordHash(password, hashedPassword string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		if err == bcrypt.ErrMismatchedHashAndPassword {
			return fmt.Errorf("password verification failed")
		}
		return fmt.Errorf("failed to check password hash: %w", err)
	}
	return nil
}

// HashToken hashes a one-time reset token for storage. A lower cost than the
// password cost is fine: the input is high-entropy random material.
func (h *Hasher) HashToken(token string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(token), 7)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h *Hasher) CompareTokenHash(token, hashedToken string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashedToken), []byte(token)); err != nil {
		return fmt.Errorf("token verification failed")
	}
	return nil
}
