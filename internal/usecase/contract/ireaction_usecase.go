package usecasecontract

import (
	"context"

	"github.com/henok-tadesse/socialnet/internal/domain/entity"
)

// IReactionUseCase is the single entry point for reaction toggling.
type IReactionUseCase interface {
	// Toggle applies one like/dislike click for the given principal and
	// returns the committed counters.
	Toggle(ctx context.Context, userID, postID string, kind entity.ReactionKind) (entity.PostCounters, error)

	// GetReaction returns the caller's current reaction kind together with
	// the post's authoritative counters.
	GetReaction(ctx context.Context, userID, postID string) (entity.ReactionKind, entity.PostCounters, error)
}
