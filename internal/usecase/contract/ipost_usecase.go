package usecasecontract

import (
	"context"

	"github.com/henok-tadesse/socialnet/internal/domain/contract"
	"github.com/henok-tadesse/socialnet/internal/domain/entity"
)

// IPostUseCase defines the interface for post management.
type IPostUseCase interface {
	CreatePost(ctx context.Context, authorID, content string, imageURL *string) (*entity.Post, error)
	GetPost(ctx context.Context, postID string) (*entity.Post, error)
	// DeletePost removes a post and cascade-deletes its reactions; only the
	// author (or an admin) may delete.
	DeletePost(ctx context.Context, requesterID, postID string) error
	ListFeed(ctx context.Context, opts *contract.PostFilterOptions) ([]entity.Post, int64, error)
}
