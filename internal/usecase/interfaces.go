package usecase

// TokenService defines the interface for session credential operations.
type TokenService interface {
	// GenerateSessionToken issues a signed, time-limited token carrying the
	// user identifier.
	GenerateSessionToken(userID string) (string, error)
	// VerifySessionToken validates the token and returns the user
	// identifier, or apperr.ErrInvalidToken.
	VerifySessionToken(token string) (string, error)
}
