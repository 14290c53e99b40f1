package contract

import (
	"context"

	"github.com/henok-tadesse/socialnet/internal/domain/entity"
)

// PostFilterOptions narrows and pages feed listings.
type PostFilterOptions struct {
	AuthorID *string
	Page     int
	PageSize int
}

// IPostRepository defines the interface for post persistence.
type IPostRepository interface {
	CreatePost(ctx context.Context, post *entity.Post) error
	GetPostByID(ctx context.Context, id string) (*entity.Post, error)
	// ExistsPost is the cheap existence probe used before any reaction write.
	ExistsPost(ctx context.Context, id string) (bool, error)
	// DeletePost removes the post document only; reactions are cascaded by
	// the usecase inside the same transaction.
	DeletePost(ctx context.Context, id string) error
	// ListPosts returns a feed page (newest first) and the total post count.
	ListPosts(ctx context.Context, opts *PostFilterOptions) ([]entity.Post, int64, error)
}
