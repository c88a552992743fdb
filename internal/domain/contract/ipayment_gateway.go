package contract

import (
	"context"
)

// CheckoutInput carries everything the gateway needs to open a checkout
// session for a course purchase.
type CheckoutInput struct {
	UserID       string
	CourseID     string
	CourseTitle  string
	ThumbnailURL *string
	// Price is the course price in whole currency units; the gateway adapter
	// converts to the lowest denomination.
	Price float64
}

// CheckoutSession is the gateway's handle for a started payment.
type CheckoutSession struct {
	ID  string
	URL string
}

// PaymentEvent is a verified webhook notification from the gateway.
type PaymentEvent struct {
	Type      string
	SessionID string
	// AmountTotal is the gateway-reported total in the lowest denomination.
	AmountTotal int64
}

// EventCheckoutCompleted is the gateway event type that finalizes a purchase.
const EventCheckoutCompleted = "checkout.session.completed"

// IPaymentGateway delegates payment collection to the external gateway.
type IPaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, in *CheckoutInput) (*CheckoutSession, error)
	// ParseWebhookEvent verifies the signature header over the raw payload
	// and decodes the event. A failed verification returns
	// apperr.ErrSignature.
	ParseWebhookEvent(payload []byte, signature string) (*PaymentEvent, error)
}
