package contract

import (
	"context"

	"github.com/henok-tadesse/socialnet/internal/domain/entity"
)

// ICounterRepository defines the interface for the aggregate like/dislike
// counters attached to a post. Adjust participates in the caller's transaction
// together with the reaction row write.
type ICounterRepository interface {
	// Adjust applies both deltas to the post's counters in a single statement,
	// clamped at zero, and returns the resulting counters.
	Adjust(ctx context.Context, postID string, likeDelta, dislikeDelta int64) (entity.PostCounters, error)

	// Get reads the current counters from the authoritative store.
	Get(ctx context.Context, postID string) (entity.PostCounters, error)
}
