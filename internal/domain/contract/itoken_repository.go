package contract

import (
	"context"
	"time"

	"github.com/henok-tadesse/socialnet/internal/domain/entity"
)

// ITokenRepository defines the interface for refresh token persistence.
type ITokenRepository interface {
	CreateToken(ctx context.Context, token *entity.Token) error
	GetTokenByHash(ctx context.Context, tokenHash string) (*entity.Token, error)
	UpdateToken(ctx context.Context, tokenID string, tokenHash string, expiry time.Time) error
	RevokeToken(ctx context.Context, id string) error
	RevokeAllTokensForUser(ctx context.Context, userID string, tokenType entity.TokenType) error
}
