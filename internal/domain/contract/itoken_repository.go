package contract

import (
	"context"

	"coursehub/internal/domain/entity"
)

type ITokenRepository interface {
	CreateToken(ctx context.Context, token *entity.Token) error
	// GetActiveTokenByUserID returns the most recent unrevoked token of the
	// given type for the user, or apperr.ErrNotFound.
	GetActiveTokenByUserID(ctx context.Context, userID string, tokenType entity.TokenType) (*entity.Token, error)
	RevokeToken(ctx context.Context, id string) error
}
