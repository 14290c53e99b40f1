package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/henok-tadesse/socialnet/internal/domain/contract"
	"github.com/henok-tadesse/socialnet/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CounterRepository represents the MongoDB implementation of the
// ICounterRepository interface. The counters live on the post document, so a
// single update statement adjusts and clamps both of them atomically.
type CounterRepository struct {
	collection *mongo.Collection
}

var _ contract.ICounterRepository = (*CounterRepository)(nil)

// NewCounterRepository creates and returns a new CounterRepository instance.
// It shares the posts collection with PostRepository.
func NewCounterRepository(db *mongo.Database) *CounterRepository {
	return &CounterRepository{
		collection: db.Collection("posts"),
	}
}

// clampedAdd builds a pipeline expression computing max(0, field + delta).
func clampedAdd(field string, delta int64) bson.D {
	return bson.D{{Key: "$max", Value: bson.A{
		int64(0),
		bson.D{{Key: "$add", Value: bson.A{"$" + field, delta}}},
	}}}
}

// Adjust applies both deltas to the post's counters in one statement, clamped
// at zero, and returns the post-image counters. Correct transitions never
// produce a negative value; the clamp only matters if the counters already
// drifted.
func (r *CounterRepository) Adjust(ctx context.Context, postID string, likeDelta, dislikeDelta int64) (entity.PostCounters, error) {
	filter := bson.M{"_id": postID}
	update := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "like_count", Value: clampedAdd("like_count", likeDelta)},
			{Key: "dislike_count", Value: clampedAdd("dislike_count", dislikeDelta)},
		}}},
	}

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"like_count": 1, "dislike_count": 1})

	var counters entity.PostCounters
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&counters)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return entity.PostCounters{}, contract.ErrPostNotFound
		}
		return entity.PostCounters{}, fmt.Errorf("failed to adjust counters: %w", err)
	}
	return counters, nil
}

// Get reads the current counters from the post document.
func (r *CounterRepository) Get(ctx context.Context, postID string) (entity.PostCounters, error) {
	opts := options.FindOne().SetProjection(bson.M{"like_count": 1, "dislike_count": 1})

	var counters entity.PostCounters
	err := r.collection.FindOne(ctx, bson.M{"_id": postID}, opts).Decode(&counters)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return entity.PostCounters{}, contract.ErrPostNotFound
		}
		return entity.PostCounters{}, fmt.Errorf("failed to read counters: %w", err)
	}
	return counters, nil
}
