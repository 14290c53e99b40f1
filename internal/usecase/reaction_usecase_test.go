package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/henok-tadesse/socialnet/internal/domain/contract"
	"github.com/henok-tadesse/socialnet/internal/domain/entity"
	"github.com/henok-tadesse/socialnet/internal/infrastructure/logger"
	"github.com/henok-tadesse/socialnet/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeState is one consistent snapshot of the reaction and counter tables.
type fakeState struct {
	reactions map[string]entity.ReactionKind // key: userID|postID
	counters  map[string]entity.PostCounters // key: postID
}

func (s *fakeState) clone() *fakeState {
	c := &fakeState{
		reactions: make(map[string]entity.ReactionKind, len(s.reactions)),
		counters:  make(map[string]entity.PostCounters, len(s.counters)),
	}
	for k, v := range s.reactions {
		c.reactions[k] = v
	}
	for k, v := range s.counters {
		c.counters[k] = v
	}
	return c
}

func reactionKey(userID, postID string) string { return userID + "|" + postID }

type txKey struct{}

// fakeStore implements IReactionRepository, ICounterRepository,
// IPostRepository and ITxRunner over an in-memory snapshot store. A
// transaction works on a clone of the committed state and swaps it in only on
// success, so rollback semantics match the real store: an aborted transaction
// leaves nothing behind. Transactions are serialized by a mutex, which is the
// strongest isolation the real runner promises per (user, post) pair.
type fakeStore struct {
	mu        sync.Mutex
	committed *fakeState
	posts     map[string]bool

	conflictsRemaining int   // next N transactions fail with ErrTxConflict
	adjustErr          error // injected counter-write fault inside the tx

	storageReads  atomic.Int64
	storageWrites atomic.Int64
}

func newFakeStore(postIDs ...string) *fakeStore {
	s := &fakeStore{
		committed: &fakeState{
			reactions: map[string]entity.ReactionKind{},
			counters:  map[string]entity.PostCounters{},
		},
		posts: map[string]bool{},
	}
	for _, id := range postIDs {
		s.posts[id] = true
		s.committed.counters[id] = entity.PostCounters{}
	}
	return s
}

func (s *fakeStore) WithinTx(ctx context.Context, fn func(context.Context) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conflictsRemaining > 0 {
		s.conflictsRemaining--
		return contract.ErrTxConflict
	}
	staging := s.committed.clone()
	if err := fn(context.WithValue(ctx, txKey{}, staging)); err != nil {
		return err
	}
	s.committed = staging
	return nil
}

// state returns the transaction's staging snapshot when inside WithinTx and
// the committed state otherwise.
func (s *fakeStore) state(ctx context.Context) *fakeState {
	if st, ok := ctx.Value(txKey{}).(*fakeState); ok {
		return st
	}
	return s.committed
}

func (s *fakeStore) GetKind(ctx context.Context, userID, postID string) (entity.ReactionKind, error) {
	s.storageReads.Add(1)
	return s.state(ctx).reactions[reactionKey(userID, postID)], nil
}

func (s *fakeStore) Upsert(ctx context.Context, userID, postID string, kind entity.ReactionKind) error {
	s.storageWrites.Add(1)
	s.state(ctx).reactions[reactionKey(userID, postID)] = kind
	return nil
}

func (s *fakeStore) Remove(ctx context.Context, userID, postID string) error {
	s.storageWrites.Add(1)
	delete(s.state(ctx).reactions, reactionKey(userID, postID))
	return nil
}

func (s *fakeStore) RemoveAllForPost(ctx context.Context, postID string) error {
	st := s.state(ctx)
	for k := range st.reactions {
		if strings.HasSuffix(k, "|"+postID) {
			delete(st.reactions, k)
		}
	}
	return nil
}

func (s *fakeStore) CountByKind(ctx context.Context, postID string, kind entity.ReactionKind) (int64, error) {
	var n int64
	for k, v := range s.state(ctx).reactions {
		if v == kind && strings.HasSuffix(k, "|"+postID) {
			n++
		}
	}
	return n, nil
}

func clamp(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}

func (s *fakeStore) Adjust(ctx context.Context, postID string, likeDelta, dislikeDelta int64) (entity.PostCounters, error) {
	s.storageWrites.Add(1)
	if s.adjustErr != nil {
		return entity.PostCounters{}, s.adjustErr
	}
	st := s.state(ctx)
	c := st.counters[postID]
	c.Likes = clamp(c.Likes + likeDelta)
	c.Dislikes = clamp(c.Dislikes + dislikeDelta)
	st.counters[postID] = c
	return c, nil
}

func (s *fakeStore) Get(ctx context.Context, postID string) (entity.PostCounters, error) {
	return s.state(ctx).counters[postID], nil
}

func (s *fakeStore) CreatePost(ctx context.Context, post *entity.Post) error {
	s.posts[post.ID] = true
	s.state(ctx).counters[post.ID] = entity.PostCounters{}
	return nil
}

func (s *fakeStore) GetPostByID(ctx context.Context, id string) (*entity.Post, error) {
	if !s.posts[id] {
		return nil, contract.ErrPostNotFound
	}
	return &entity.Post{ID: id}, nil
}

func (s *fakeStore) ExistsPost(ctx context.Context, id string) (bool, error) {
	s.storageReads.Add(1)
	return s.posts[id], nil
}

func (s *fakeStore) DeletePost(ctx context.Context, id string) error {
	delete(s.posts, id)
	delete(s.state(ctx).counters, id)
	return nil
}

func (s *fakeStore) ListPosts(ctx context.Context, opts *contract.PostFilterOptions) ([]entity.Post, int64, error) {
	return nil, 0, nil
}

func newToggleUsecase(store *fakeStore) *usecase.ReactionUsecase {
	return usecase.NewReactionUsecase(store, store, store, store, logger.NewStdLogger())
}

// assertNoDrift checks the central invariant: counters equal the true count
// of reaction rows.
func assertNoDrift(t *testing.T, store *fakeStore, postID string) {
	t.Helper()
	ctx := context.Background()
	likes, err := store.CountByKind(ctx, postID, entity.ReactionLike)
	require.NoError(t, err)
	dislikes, err := store.CountByKind(ctx, postID, entity.ReactionDislike)
	require.NoError(t, err)
	counters, err := store.Get(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, likes, counters.Likes, "like counter drifted from reaction rows")
	assert.Equal(t, dislikes, counters.Dislikes, "dislike counter drifted from reaction rows")
}

func TestToggleScenario(t *testing.T) {
	store := newFakeStore("post-1")
	uc := newToggleUsecase(store)
	ctx := context.Background()

	steps := []struct {
		user string
		kind entity.ReactionKind
		want entity.PostCounters
	}{
		{"alice", entity.ReactionLike, entity.PostCounters{Likes: 1, Dislikes: 0}},
		{"alice", entity.ReactionLike, entity.PostCounters{Likes: 0, Dislikes: 0}},
		{"alice", entity.ReactionDislike, entity.PostCounters{Likes: 0, Dislikes: 1}},
		{"bob", entity.ReactionLike, entity.PostCounters{Likes: 1, Dislikes: 1}},
		{"alice", entity.ReactionDislike, entity.PostCounters{Likes: 1, Dislikes: 0}},
	}
	for i, step := range steps {
		counters, err := uc.Toggle(ctx, step.user, "post-1", step.kind)
		require.NoError(t, err, "step %d", i)
		assert.Equal(t, step.want, counters, "step %d", i)
		assertNoDrift(t, store, "post-1")
	}
}

func TestToggleInvolution(t *testing.T) {
	store := newFakeStore("post-1")
	uc := newToggleUsecase(store)
	ctx := context.Background()

	before, err := store.Get(ctx, "post-1")
	require.NoError(t, err)

	_, err = uc.Toggle(ctx, "alice", "post-1", entity.ReactionDislike)
	require.NoError(t, err)
	after, err := uc.Toggle(ctx, "alice", "post-1", entity.ReactionDislike)
	require.NoError(t, err)

	assert.Equal(t, before, after)
	kind, _, err := uc.GetReaction(ctx, "alice", "post-1")
	require.NoError(t, err)
	assert.Equal(t, entity.ReactionNone, kind)
}

func TestToggleSwitchKindChangesBothCounters(t *testing.T) {
	store := newFakeStore("post-1")
	uc := newToggleUsecase(store)
	ctx := context.Background()

	_, err := uc.Toggle(ctx, "alice", "post-1", entity.ReactionLike)
	require.NoError(t, err)
	counters, err := uc.Toggle(ctx, "alice", "post-1", entity.ReactionDislike)
	require.NoError(t, err)

	assert.Equal(t, entity.PostCounters{Likes: 0, Dislikes: 1}, counters)
	assertNoDrift(t, store, "post-1")
}

func TestToggleInvalidKindTouchesNoStorage(t *testing.T) {
	store := newFakeStore("post-1")
	uc := newToggleUsecase(store)

	_, err := uc.Toggle(context.Background(), "alice", "post-1", entity.ReactionKind("love"))
	assert.ErrorIs(t, err, usecase.ErrInvalidReactionKind)
	assert.Zero(t, store.storageReads.Load())
	assert.Zero(t, store.storageWrites.Load())

	_, err = uc.Toggle(context.Background(), "alice", "post-1", entity.ReactionNone)
	assert.ErrorIs(t, err, usecase.ErrInvalidReactionKind)
}

func TestTogglePostNotFound(t *testing.T) {
	store := newFakeStore("post-1")
	uc := newToggleUsecase(store)

	_, err := uc.Toggle(context.Background(), "alice", "missing", entity.ReactionLike)
	assert.ErrorIs(t, err, contract.ErrPostNotFound)
	assert.Zero(t, store.storageWrites.Load())
}

func TestToggleRetriesConflictOnce(t *testing.T) {
	store := newFakeStore("post-1")
	store.conflictsRemaining = 1
	uc := newToggleUsecase(store)

	counters, err := uc.Toggle(context.Background(), "alice", "post-1", entity.ReactionLike)
	require.NoError(t, err)
	assert.Equal(t, entity.PostCounters{Likes: 1}, counters)
}

func TestToggleSecondConflictSurfaces(t *testing.T) {
	store := newFakeStore("post-1")
	store.conflictsRemaining = 2
	uc := newToggleUsecase(store)

	_, err := uc.Toggle(context.Background(), "alice", "post-1", entity.ReactionLike)
	assert.ErrorIs(t, err, contract.ErrTxConflict)

	// The failed request must have had no effect.
	counters, getErr := store.Get(context.Background(), "post-1")
	require.NoError(t, getErr)
	assert.Equal(t, entity.PostCounters{}, counters)
	assertNoDrift(t, store, "post-1")
}

func TestToggleRollsBackOnCounterFault(t *testing.T) {
	store := newFakeStore("post-1")
	uc := newToggleUsecase(store)
	ctx := context.Background()

	_, err := uc.Toggle(ctx, "alice", "post-1", entity.ReactionLike)
	require.NoError(t, err)

	// Fault injected after the reaction write, before the counter write.
	store.adjustErr = errors.New("write failed")
	_, err = uc.Toggle(ctx, "alice", "post-1", entity.ReactionDislike)
	require.Error(t, err)

	// Both the reaction row and the counters must be exactly as before.
	store.adjustErr = nil
	kind, counters, err := uc.GetReaction(ctx, "alice", "post-1")
	require.NoError(t, err)
	assert.Equal(t, entity.ReactionLike, kind)
	assert.Equal(t, entity.PostCounters{Likes: 1, Dislikes: 0}, counters)
	assertNoDrift(t, store, "post-1")
}

func TestToggleClampsCountersAtZero(t *testing.T) {
	store := newFakeStore("post-1")
	uc := newToggleUsecase(store)
	ctx := context.Background()

	// Simulate pre-existing drift: a stored reaction whose counter was lost.
	store.committed.reactions[reactionKey("alice", "post-1")] = entity.ReactionLike
	store.committed.counters["post-1"] = entity.PostCounters{}

	counters, err := uc.Toggle(ctx, "alice", "post-1", entity.ReactionLike)
	require.NoError(t, err)
	assert.Equal(t, entity.PostCounters{Likes: 0, Dislikes: 0}, counters)
}

func TestConcurrentLikesConverge(t *testing.T) {
	const users = 32
	store := newFakeStore("post-1")
	uc := newToggleUsecase(store)

	var wg sync.WaitGroup
	errs := make(chan error, users)
	for i := 0; i < users; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := uc.Toggle(context.Background(), fmt.Sprintf("user-%d", i), "post-1", entity.ReactionLike)
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	counters, err := store.Get(context.Background(), "post-1")
	require.NoError(t, err)
	assert.Equal(t, entity.PostCounters{Likes: users, Dislikes: 0}, counters)
	assertNoDrift(t, store, "post-1")
}

func TestConcurrentMixedTogglesKeepInvariant(t *testing.T) {
	const users = 24
	store := newFakeStore("post-1")
	uc := newToggleUsecase(store)

	var wg sync.WaitGroup
	for i := 0; i < users; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user := fmt.Sprintf("user-%d", i)
			kind := entity.ReactionLike
			if i%2 == 1 {
				kind = entity.ReactionDislike
			}
			_, _ = uc.Toggle(context.Background(), user, "post-1", kind)
			if i%3 == 0 {
				// Some users click twice (undo).
				_, _ = uc.Toggle(context.Background(), user, "post-1", kind)
			}
		}(i)
	}
	wg.Wait()

	assertNoDrift(t, store, "post-1")
}
