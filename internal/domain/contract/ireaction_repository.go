package contract

import (
	"context"

	"github.com/henok-tadesse/socialnet/internal/domain/entity"
)

// IReactionRepository defines the interface for reaction data persistence.
// Every method participates in whatever transaction is bound to ctx by the
// ITxRunner; the repository never commits on its own.
type IReactionRepository interface {
	// GetKind returns the caller's current reaction state for a post.
	// Absence of a row is reported as entity.ReactionNone, not as an error.
	GetKind(ctx context.Context, userID, postID string) (entity.ReactionKind, error)

	// Upsert inserts or overwrites the single reaction for the (user, post)
	// pair. The unique index on (user_id, post_id) enforces at-most-one.
	Upsert(ctx context.Context, userID, postID string, kind entity.ReactionKind) error

	// Remove deletes the reaction row for the (user, post) pair. Removing an
	// absent reaction is not an error.
	Remove(ctx context.Context, userID, postID string) error

	// RemoveAllForPost deletes every reaction on a post. Used by the post
	// cascade delete.
	RemoveAllForPost(ctx context.Context, postID string) error

	// CountByKind returns the true number of reaction rows of the given kind
	// for a post. Used for drift checks, not for serving reads.
	CountByKind(ctx context.Context, postID string, kind entity.ReactionKind) (int64, error)
}
