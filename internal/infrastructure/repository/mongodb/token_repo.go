package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/henok-tadesse/socialnet/internal/domain/contract"
	"github.com/henok-tadesse/socialnet/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type TokenRepository struct {
	collection *mongo.Collection
}

// check in compile time if TokenRepository implements ITokenRepository
var _ contract.ITokenRepository = (*TokenRepository)(nil)

func NewTokenRepository(collection *mongo.Collection) *TokenRepository {
	return &TokenRepository{
		collection: collection,
	}
}

func (r *TokenRepository) CreateToken(ctx context.Context, token *entity.Token) error {
	if _, err := r.collection.InsertOne(ctx, token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	return nil
}

func (r *TokenRepository) GetTokenByHash(ctx context.Context, tokenHash string) (*entity.Token, error) {
	var token entity.Token
	err := r.collection.FindOne(ctx, bson.M{"token_hash": tokenHash}).Decode(&token)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrTokenNotFound
		}
		return nil, err
	}
	return &token, nil
}

// UpdateToken updates the token hash and expiry
func (r *TokenRepository) UpdateToken(ctx context.Context, tokenID string, tokenHash string, expiry time.Time) error {
	filter := bson.M{"_id": tokenID}
	update := bson.M{"$set": bson.M{"token_hash": tokenHash, "expires_at": expiry}}
	_, err := r.collection.UpdateOne(ctx, filter, update)
	return err
}

// RevokeToken marks a token as revoked by its ID
func (r *TokenRepository) RevokeToken(ctx context.Context, id string) error {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"revoked": true}}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return contract.ErrTokenNotFound
	}
	return nil
}

// RevokeAllTokensForUser revokes every live token of the given type for a user.
func (r *TokenRepository) RevokeAllTokensForUser(ctx context.Context, userID string, tokenType entity.TokenType) error {
	filter := bson.M{"user_id": userID, "token_type": string(tokenType), "revoked": false}
	update := bson.M{"$set": bson.M{"revoked": true}}
	if _, err := r.collection.UpdateMany(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to revoke tokens for user %s: %w", userID, err)
	}
	return nil
}
