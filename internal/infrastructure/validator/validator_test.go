package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"coursehub/internal/infrastructure/validator"
)

func TestValidateEmail(t *testing.T) {
	v := validator.NewValidator()

	assert.NoError(t, v.ValidateEmail("user@example.com"))
	assert.Error(t, v.ValidateEmail(""))
	assert.Error(t, v.ValidateEmail("not-an-email"))
	assert.Error(t, v.ValidateEmail("@no-local-part.com"))
}

func TestValidatePassword(t *testing.T) {
	v := validator.NewValidator()

	assert.NoError(t, v.ValidatePassword("secret1"))
	assert.NoError(t, v.ValidatePassword("123456"))
	assert.Error(t, v.ValidatePassword("12345"))
	assert.Error(t, v.ValidatePassword(""))
}
