package external_services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/webhook"

	"coursehub/internal/domain/apperr"
	"coursehub/internal/domain/contract"
)

// StripeGateway collects payments through Stripe Checkout. Sessions carry
// the user and course ids as metadata and redirect back to the frontend
// course pages.
type StripeGateway struct {
	webhookSecret   string
	frontendBaseURL string
}

func NewStripeGateway(secretKey, webhookSecret, frontendBaseURL string) *StripeGateway {
	stripe.Key = secretKey
	return &StripeGateway{
		webhookSecret:   webhookSecret,
		frontendBaseURL: frontendBaseURL,
	}
}

var _ contract.IPaymentGateway = (*StripeGateway)(nil)

func (sg *StripeGateway) CreateCheckoutSession(ctx context.Context, in *contract.CheckoutInput) (*contract.CheckoutSession, error) {
	productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
		Name: stripe.String(in.CourseTitle),
	}
	if in.ThumbnailURL != nil && *in.ThumbnailURL != "" {
		productData.Images = stripe.StringSlice([]string{*in.ThumbnailURL})
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String("inr"),
					// Stripe expects the lowest denomination.
					UnitAmount:  stripe.Int64(int64(in.Price * 100)),
					ProductData: productData,
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(fmt.Sprintf("%s/course-progress/%s", sg.frontendBaseURL, in.CourseID)),
		CancelURL:  stripe.String(fmt.Sprintf("%s/course-details/%s", sg.frontendBaseURL, in.CourseID)),
	}
	params.Context = ctx
	params.AddMetadata("userId", in.UserID)
	params.AddMetadata("courseId", in.CourseID)

	sess, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrGateway, err)
	}
	if sess.URL == "" {
		return nil, fmt.Errorf("%w: checkout session has no redirect url", apperr.ErrGateway)
	}
	return &contract.CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}

func (sg *StripeGateway) ParseWebhookEvent(payload []byte, signature string) (*contract.PaymentEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, sg.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrSignature, err)
	}

	paymentEvent := &contract.PaymentEvent{Type: string(event.Type)}
	if paymentEvent.Type == contract.EventCheckoutCompleted {
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return nil, fmt.Errorf("failed to decode checkout session payload: %w", err)
		}
		paymentEvent.SessionID = sess.ID
		paymentEvent.AmountTotal = sess.AmountTotal
	}
	return paymentEvent, nil
}
