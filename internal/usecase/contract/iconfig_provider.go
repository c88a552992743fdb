package contract

import "time"

// IConfigProvider exposes the configuration values usecases and handlers
// need. The concrete implementation is built once at startup from the
// environment and is read-only afterwards.
type IConfigProvider interface {
	// IsProduction selects production cookie attributes (Secure +
	// SameSite=None) over the local defaults (non-secure + Lax).
	IsProduction() bool
	// GetAppBaseURL is the backend's own base URL, used in reset links.
	GetAppBaseURL() string
	// GetFrontendBaseURL is where the payment gateway redirects after
	// checkout.
	GetFrontendBaseURL() string
	GetCORSOrigins() []string
	GetPasswordResetTokenExpiry() time.Duration
}
