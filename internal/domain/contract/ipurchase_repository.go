package contract

import (
	"context"

	"coursehub/internal/domain/entity"
)

type IPurchaseRepository interface {
	// EnsureIndexes creates the partial unique index on (user_id, course_id)
	// scoped to active statuses. The index is the backstop that makes the
	// one-active-purchase invariant hold under concurrent checkouts.
	EnsureIndexes(ctx context.Context) error
	// CreatePurchase inserts a new pending purchase carrying its gateway
	// session identifier. A concurrent duplicate for the same (user, course)
	// pair surfaces as apperr.ErrConflict.
	CreatePurchase(ctx context.Context, purchase *entity.Purchase) error
	// GetActivePurchase returns the pending or completed purchase for the
	// pair, or apperr.ErrNotFound.
	GetActivePurchase(ctx context.Context, userID, courseID string) (*entity.Purchase, error)
	// GetCompletedPurchase returns the completed purchase for the pair, or
	// apperr.ErrNotFound.
	GetCompletedPurchase(ctx context.Context, userID, courseID string) (*entity.Purchase, error)
	// CompleteByPaymentID atomically transitions the purchase with the given
	// session identifier from pending to completed, reconciling the amount.
	// It returns apperr.ErrNotFound when no pending purchase matches, which
	// callers treat as an idempotent no-op.
	CompleteByPaymentID(ctx context.Context, paymentID string, amount float64) (*entity.Purchase, error)
	// GetCompletedPurchases lists every completed purchase.
	GetCompletedPurchases(ctx context.Context) ([]*entity.Purchase, error)
}
