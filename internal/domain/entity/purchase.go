package entity

import (
	"time"
)

// PurchaseStatus is the lifecycle state of a purchase. A purchase starts
// pending and moves to completed exactly once, driven by the payment
// gateway's completion webhook.
type PurchaseStatus string

const (
	PurchaseStatusPending   PurchaseStatus = "pending"
	PurchaseStatusCompleted PurchaseStatus = "completed"
)

// Purchase records a user's purchase intent for a course. PaymentID holds
// the gateway checkout-session identifier used to correlate the webhook.
type Purchase struct {
	ID        string         `bson:"_id,omitempty" json:"id"`
	CourseID  string         `bson:"course_id" json:"course_id"`
	UserID    string         `bson:"user_id" json:"user_id"`
	Amount    float64        `bson:"amount" json:"amount"`
	Status    PurchaseStatus `bson:"status" json:"status"`
	PaymentID string         `bson:"payment_id,omitempty" json:"payment_id,omitempty"`
	CreatedAt time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time      `bson:"updated_at" json:"updated_at"`
}
