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

type TokenRepository struct {
	collection *mongo.Collection
}

func NewTokenRepository(db *mongo.Database) *TokenRepository {
	return &TokenRepository{collection: db.Collection("tokens")}
}

var _ contract.ITokenRepository = (*TokenRepository)(nil)

func (r *TokenRepository) CreateToken(ctx context.Context, token *entity.Token) error {
	token.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to create token: %w", err)
	}
	return nil
}

func (r *TokenRepository) GetActiveTokenByUserID(ctx context.Context, userID string, tokenType entity.TokenType) (*entity.Token, error) {
	filter := bson.M{
		"user_id":    userID,
		"token_type": string(tokenType),
		"revoked":    false,
		"expires_at": bson.M{"$gt": time.Now()},
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var token entity.Token
	err := r.collection.FindOne(ctx, filter, opts).Decode(&token)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve token: %w", err)
	}
	return &token, nil
}

func (r *TokenRepository) RevokeToken(ctx context.Context, id string) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"revoked": true}},
	)
	if err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	if res.MatchedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
