package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	usecasecontract "coursehub/internal/usecase/contract"
)

const minPasswordLength = 6

// AppValidator implements the usecase validator contract.
type AppValidator struct {
	validate *validator.Validate
}

func NewValidator() usecasecontract.IValidator {
	return &AppValidator{validate: validator.New()}
}

// ValidateEmail checks if the email format is valid.
func (av *AppValidator) ValidateEmail(email string) error {
	return av.validate.Var(email, "required,email")
}

// ValidatePassword checks the minimum length requirement.
func (av *AppValidator) ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}
