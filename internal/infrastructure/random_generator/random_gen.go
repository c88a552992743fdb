package randomgenerator

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"coursehub/internal/domain/contract"
)

// RandomGenerator produces random token material for one-time credentials.
type RandomGenerator struct{}

func NewRandomGenerator() contract.IRandomGenerator {
	return &RandomGenerator{}
}

// GenerateRandomToken returns byteLen random bytes hex-encoded.
func (g *RandomGenerator) GenerateRandomToken(byteLen int) (string, error) {
	buf := make([]byte, byteLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

var _ contract.IRandomGenerator = (*RandomGenerator)(nil)
