package uuidgen

import (
	"github.com/google/uuid"

	"coursehub/internal/domain/contract"
)

// Generator implements the contract.IIDGenerator interface.
type Generator struct{}

// NewGenerator creates a new UUID generator.
func NewGenerator() contract.IIDGenerator {
	return &Generator{}
}

// NewID generates a new UUID.
func (g *Generator) NewID() string {
	return uuid.New().String()
}

// IsValidID reports whether id is a well-formed record identifier.
func IsValidID(id string) bool {
	return uuid.Validate(id) == nil
}

// Ensure Generator implements the contract.IIDGenerator interface
var _ contract.IIDGenerator = (*Generator)(nil)
