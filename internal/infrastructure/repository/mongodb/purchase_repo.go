package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"coursehub/internal/domain/apperr"
	"coursehub/internal/domain/contract"
	"coursehub/internal/domain/entity"
)

// PurchaseRepository is the MongoDB implementation of the purchase store.
type PurchaseRepository struct {
	collection *mongo.Collection
}

func NewPurchaseRepository(db *mongo.Database) *PurchaseRepository {
	return &PurchaseRepository{collection: db.Collection("purchases")}
}

var _ contract.IPurchaseRepository = (*PurchaseRepository)(nil)

// EnsureIndexes creates the partial unique index enforcing at most one
// active purchase per (user, course) pair. The pre-check in the usecase is
// only a friendly fast path; this index is what holds under races.
func (r *PurchaseRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "course_id", Value: 1},
		},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{
				"status": bson.M{"$in": []string{
					string(entity.PurchaseStatusPending),
					string(entity.PurchaseStatusCompleted),
				}},
			}),
	})
	if err != nil {
		return fmt.Errorf("failed to create purchase indexes: %w", err)
	}
	return nil
}

func (r *PurchaseRepository) CreatePurchase(ctx context.Context, purchase *entity.Purchase) error {
	purchase.CreatedAt = time.Now()
	purchase.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, purchase)
	if mongo.IsDuplicateKeyError(err) {
		return apperr.ErrConflict
	}
	if err != nil {
		return fmt.Errorf("failed to create purchase: %w", err)
	}
	return nil
}

func (r *PurchaseRepository) GetActivePurchase(ctx context.Context, userID, courseID string) (*entity.Purchase, error) {
	filter := bson.M{
		"user_id":   userID,
		"course_id": courseID,
		"status": bson.M{"$in": []string{
			string(entity.PurchaseStatusPending),
			string(entity.PurchaseStatusCompleted),
		}},
	}
	return r.findOne(ctx, filter)
}

func (r *PurchaseRepository) GetCompletedPurchase(ctx context.Context, userID, courseID string) (*entity.Purchase, error) {
	filter := bson.M{
		"user_id":   userID,
		"course_id": courseID,
		"status":    string(entity.PurchaseStatusCompleted),
	}
	return r.findOne(ctx, filter)
}

// CompleteByPaymentID is a compare-and-set on status=pending, so a replayed
// webhook finds nothing to match and reports ErrNotFound.
func (r *PurchaseRepository) CompleteByPaymentID(ctx context.Context, paymentID string, amount float64) (*entity.Purchase, error) {
	filter := bson.M{
		"payment_id": paymentID,
		"status":     string(entity.PurchaseStatusPending),
	}
	update := bson.M{"$set": bson.M{
		"status":     string(entity.PurchaseStatusCompleted),
		"amount":     amount,
		"updated_at": time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var purchase entity.Purchase
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&purchase)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to complete purchase: %w", err)
	}
	return &purchase, nil
}

func (r *PurchaseRepository) GetCompletedPurchases(ctx context.Context) ([]*entity.Purchase, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"status": string(entity.PurchaseStatusCompleted)})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve completed purchases: %w", err)
	}
	defer cursor.Close(ctx)

	purchases := []*entity.Purchase{}
	if err := cursor.All(ctx, &purchases); err != nil {
		return nil, fmt.Errorf("failed to decode purchases: %w", err)
	}
	return purchases, nil
}

func (r *PurchaseRepository) findOne(ctx context.Context, filter bson.M) (*entity.Purchase, error) {
	var purchase entity.Purchase
	err := r.collection.FindOne(ctx, filter).Decode(&purchase)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve purchase: %w", err)
	}
	return &purchase, nil
}
