package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/henok-tadesse/socialnet/internal/domain/contract"
	"github.com/henok-tadesse/socialnet/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReactionRepository represents the MongoDB implementation of the
// IReactionRepository interface. All methods run against whatever context the
// caller supplies; inside a transaction that is the runner's session context,
// so the repository never commits on its own.
type ReactionRepository struct {
	collection *mongo.Collection
}

var _ contract.IReactionRepository = (*ReactionRepository)(nil)

// NewReactionRepository creates and returns a new ReactionRepository instance.
func NewReactionRepository(db *mongo.Database) *ReactionRepository {
	return &ReactionRepository{
		collection: db.Collection("reactions"),
	}
}

// EnsureIndexes creates the unique compound index that enforces at most one
// reaction per (user, post) pair.
func (r *ReactionRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "post_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "post_id", Value: 1}, {Key: "kind", Value: 1}},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create reaction indexes: %w", err)
	}
	return nil
}

// GetKind retrieves the caller's current reaction state for a post. A missing
// row is the ReactionNone state, not an error.
func (r *ReactionRepository) GetKind(ctx context.Context, userID, postID string) (entity.ReactionKind, error) {
	filter := bson.M{"user_id": userID, "post_id": postID}

	var reaction entity.Reaction
	err := r.collection.FindOne(ctx, filter).Decode(&reaction)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return entity.ReactionNone, nil
		}
		return entity.ReactionNone, fmt.Errorf("failed to retrieve reaction: %w", err)
	}
	return reaction.Kind, nil
}

// Upsert inserts or overwrites the single reaction for the (user, post) pair.
func (r *ReactionRepository) Upsert(ctx context.Context, userID, postID string, kind entity.ReactionKind) error {
	filter := bson.M{"user_id": userID, "post_id": postID}

	updateDoc := bson.M{
		"$set": bson.M{
			"kind":       kind,
			"updated_at": time.Now(),
		},
		// Set only when the upsert inserts a new document.
		"$setOnInsert": bson.M{
			"_id":        uuid.New().String(),
			"created_at": time.Now(),
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, filter, updateDoc, opts); err != nil {
		return fmt.Errorf("failed to upsert reaction: %w", err)
	}
	return nil
}

// Remove deletes the reaction row for the (user, post) pair. Removing an
// absent row is a no-op.
func (r *ReactionRepository) Remove(ctx context.Context, userID, postID string) error {
	filter := bson.M{"user_id": userID, "post_id": postID}
	if _, err := r.collection.DeleteOne(ctx, filter); err != nil {
		return fmt.Errorf("failed to remove reaction: %w", err)
	}
	return nil
}

// RemoveAllForPost deletes every reaction attached to a post.
func (r *ReactionRepository) RemoveAllForPost(ctx context.Context, postID string) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{"post_id": postID}); err != nil {
		return fmt.Errorf("failed to remove reactions for post %s: %w", postID, err)
	}
	return nil
}

// CountByKind counts the reaction rows of the given kind for a post.
func (r *ReactionRepository) CountByKind(ctx context.Context, postID string, kind entity.ReactionKind) (int64, error) {
	filter := bson.M{"post_id": postID, "kind": kind}
	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count reactions: %w", err)
	}
	return count, nil
}
