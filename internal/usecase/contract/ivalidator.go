package contract

// IValidator validates user-supplied values that gin binding tags cannot
// cover on their own.
type IValidator interface {
	ValidateEmail(email string) error
	ValidatePassword(password string) error
}
