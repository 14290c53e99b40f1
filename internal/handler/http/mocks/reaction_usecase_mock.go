package mocks

import (
	"context"

	"github.com/henok-tadesse/socialnet/internal/domain/contract"
	"github.com/henok-tadesse/socialnet/internal/domain/entity"
	usecasecontract "github.com/henok-tadesse/socialnet/internal/usecase/contract"
)

// MockReactionUsecase is a mock implementation of the reaction usecase interface
type MockReactionUsecase struct {
	// Control mock behavior
	ToggleErr      error
	GetReactionErr error

	// Return values
	MockKind     entity.ReactionKind
	MockCounters entity.PostCounters

	// Recorded calls
	LastUserID string
	LastPostID string
	LastKind   entity.ReactionKind
}

var _ usecasecontract.IReactionUseCase = (*MockReactionUsecase)(nil)

func NewMockReactionUsecase() *MockReactionUsecase {
	return &MockReactionUsecase{
		MockKind:     entity.ReactionLike,
		MockCounters: entity.PostCounters{Likes: 1, Dislikes: 0},
	}
}

func (m *MockReactionUsecase) Toggle(ctx context.Context, userID, postID string, kind entity.ReactionKind) (entity.PostCounters, error) {
	m.LastUserID, m.LastPostID, m.LastKind = userID, postID, kind
	if m.ToggleErr != nil {
		return entity.PostCounters{}, m.ToggleErr
	}
	return m.MockCounters, nil
}

func (m *MockReactionUsecase) GetReaction(ctx context.Context, userID, postID string) (entity.ReactionKind, entity.PostCounters, error) {
	m.LastUserID, m.LastPostID = userID, postID
	if m.GetReactionErr != nil {
		return entity.ReactionNone, entity.PostCounters{}, m.GetReactionErr
	}
	return m.MockKind, m.MockCounters, nil
}

// FailNotFound configures Toggle to report a missing post.
func (m *MockReactionUsecase) FailNotFound() *MockReactionUsecase {
	m.ToggleErr = contract.ErrPostNotFound
	return m
}
