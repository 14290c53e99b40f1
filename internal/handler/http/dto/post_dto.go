package dto

import (
	"time"

	"github.com/henok-tadesse/socialnet/internal/domain/entity"
)

// CreatePostRequest is the payload for creating a post.
type CreatePostRequest struct {
	Content  string  `json:"content" binding:"required"`
	ImageURL *string `json:"image_url"`
}

// PostResponse is the DTO for a single post.
type PostResponse struct {
	ID        string  `json:"id"`
	AuthorID  string  `json:"author_id"`
	Content   string  `json:"content"`
	ImageURL  *string `json:"image_url,omitempty"`
	Likes     int64   `json:"likes"`
	Dislikes  int64   `json:"dislikes"`
	CreatedAt string  `json:"created_at"`
}

// FeedResponse is one page of the feed.
type FeedResponse struct {
	Posts    []PostResponse `json:"posts"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// ToPostResponse converts an entity.Post to a PostResponse DTO.
func ToPostResponse(post entity.Post) PostResponse {
	return PostResponse{
		ID:        post.ID,
		AuthorID:  post.AuthorID,
		Content:   post.Content,
		ImageURL:  post.ImageURL,
		Likes:     post.LikeCount,
		Dislikes:  post.DislikeCount,
		CreatedAt: post.CreatedAt.Format(time.RFC3339),
	}
}
