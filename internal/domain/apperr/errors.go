// Package apperr defines the sentinel errors the usecases speak in. Handlers
// translate them to HTTP statuses in exactly one place, so a given failure
// always answers with the same status no matter which operation raised it.
package apperr

import "errors"

var (
	// ErrValidation marks missing or malformed request input.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidID marks a path or body identifier that is not well formed.
	ErrInvalidID = errors.New("invalid id")
	// ErrUnauthorized marks a request with no session credential.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidToken marks a session credential that failed verification.
	ErrInvalidToken = errors.New("invalid token")
	// ErrResetToken marks a password-reset token that is absent, expired or
	// does not match. Unlike ErrInvalidToken it is a bad-request failure, not
	// a missing session.
	ErrResetToken = errors.New("invalid or expired reset token")
	// ErrInvalidCredentials is the uniform login failure. Callers must not be
	// able to tell an unknown email from a wrong password or role.
	ErrInvalidCredentials = errors.New("incorrect email or password")
	// ErrNotFound marks a missing single resource.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks duplicate registration or an already active purchase.
	ErrConflict = errors.New("conflict")
	// ErrGateway marks a payment gateway failure.
	ErrGateway = errors.New("payment gateway error")
	// ErrUpload marks a media store failure.
	ErrUpload = errors.New("upload failed")
	// ErrSignature marks a webhook whose signature did not verify.
	ErrSignature = errors.New("invalid webhook signature")
)
