package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/henok-tadesse/socialnet/internal/domain/contract"
	"github.com/henok-tadesse/socialnet/internal/domain/entity"
	"github.com/henok-tadesse/socialnet/internal/infrastructure/metrics"
	usecasecontract "github.com/henok-tadesse/socialnet/internal/usecase/contract"
)

// ErrInvalidReactionKind is returned when the requested kind is neither like
// nor dislike. It is rejected before any storage access.
var ErrInvalidReactionKind = errors.New("invalid reaction kind")

// ReactionUsecase orchestrates a single toggle request: it reads the caller's
// current reaction, computes the transition, and applies the reaction write
// and the counter delta as one atomic unit.
type ReactionUsecase struct {
	reactionRepo contract.IReactionRepository
	counterRepo  contract.ICounterRepository
	postRepo     contract.IPostRepository
	txRunner     contract.ITxRunner
	logger       usecasecontract.IAppLogger
}

// Ensure ReactionUsecase implements the usecase contract at compile time.
var _ usecasecontract.IReactionUseCase = (*ReactionUsecase)(nil)

// NewReactionUsecase creates and returns a new ReactionUsecase instance.
func NewReactionUsecase(
	reactionRepo contract.IReactionRepository,
	counterRepo contract.ICounterRepository,
	postRepo contract.IPostRepository,
	txRunner contract.ITxRunner,
	logger usecasecontract.IAppLogger,
) *ReactionUsecase {
	return &ReactionUsecase{
		reactionRepo: reactionRepo,
		counterRepo:  counterRepo,
		postRepo:     postRepo,
		txRunner:     txRunner,
		logger:       logger,
	}
}

// Toggle applies one like/dislike click for the given principal on the given
// post and returns the counters committed by that click.
//
// The read-decide-write unit runs inside one storage transaction. On a
// serialization conflict the whole unit is retried exactly once; a second
// conflict is surfaced to the caller as contract.ErrTxConflict.
func (u *ReactionUsecase) Toggle(ctx context.Context, userID, postID string, kind entity.ReactionKind) (entity.PostCounters, error) {
	if !kind.IsValid() {
		return entity.PostCounters{}, ErrInvalidReactionKind
	}

	exists, err := u.postRepo.ExistsPost(ctx, postID)
	if err != nil {
		return entity.PostCounters{}, fmt.Errorf("failed to check post existence: %w", err)
	}
	if !exists {
		return entity.PostCounters{}, contract.ErrPostNotFound
	}

	counters, err := u.toggleOnce(ctx, userID, postID, kind)
	if errors.Is(err, contract.ErrTxConflict) {
		metrics.ReactionConflictRetries.Inc()
		u.logger.Warnf("toggle conflict for user %s on post %s, retrying once", userID, postID)
		counters, err = u.toggleOnce(ctx, userID, postID, kind)
	}
	if err != nil {
		metrics.ReactionToggles.WithLabelValues(string(kind), "error").Inc()
		return entity.PostCounters{}, err
	}

	metrics.ReactionToggles.WithLabelValues(string(kind), "ok").Inc()
	return counters, nil
}

// toggleOnce runs one attempt of the atomic read-decide-write unit. Either
// both the reaction row and the counters are committed, or neither is.
func (u *ReactionUsecase) toggleOnce(ctx context.Context, userID, postID string, kind entity.ReactionKind) (entity.PostCounters, error) {
	var counters entity.PostCounters
	err := u.txRunner.WithinTx(ctx, func(txCtx context.Context) error {
		current, err := u.reactionRepo.GetKind(txCtx, userID, postID)
		if err != nil {
			return fmt.Errorf("failed to read current reaction: %w", err)
		}

		next, likeDelta, dislikeDelta := entity.Transition(current, kind)
		if next == entity.ReactionNone {
			if err := u.reactionRepo.Remove(txCtx, userID, postID); err != nil {
				return fmt.Errorf("failed to remove reaction: %w", err)
			}
		} else {
			if err := u.reactionRepo.Upsert(txCtx, userID, postID, next); err != nil {
				return fmt.Errorf("failed to upsert reaction: %w", err)
			}
		}

		counters, err = u.counterRepo.Adjust(txCtx, postID, likeDelta, dislikeDelta)
		if err != nil {
			return fmt.Errorf("failed to adjust counters: %w", err)
		}
		return nil
	})
	if err != nil {
		return entity.PostCounters{}, err
	}
	return counters, nil
}

// GetReaction returns the caller's current reaction kind together with the
// post's counters. Counters are always read from the authoritative store,
// never from a cache.
func (u *ReactionUsecase) GetReaction(ctx context.Context, userID, postID string) (entity.ReactionKind, entity.PostCounters, error) {
	exists, err := u.postRepo.ExistsPost(ctx, postID)
	if err != nil {
		return entity.ReactionNone, entity.PostCounters{}, fmt.Errorf("failed to check post existence: %w", err)
	}
	if !exists {
		return entity.ReactionNone, entity.PostCounters{}, contract.ErrPostNotFound
	}

	kind, err := u.reactionRepo.GetKind(ctx, userID, postID)
	if err != nil {
		return entity.ReactionNone, entity.PostCounters{}, fmt.Errorf("failed to read reaction: %w", err)
	}
	counters, err := u.counterRepo.Get(ctx, postID)
	if err != nil {
		return entity.ReactionNone, entity.PostCounters{}, fmt.Errorf("failed to read counters: %w", err)
	}
	return kind, counters, nil
}
