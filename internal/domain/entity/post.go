package entity

import (
	"time"
)

// Post represents a single feed post. The aggregate reaction counters live on
// the post document itself, zero-initialized at creation, and are only ever
// mutated through the reaction toggle transaction.
type Post struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	AuthorID     string    `bson:"author_id" json:"author_id"`
	Content      string    `bson:"content" json:"content"`
	ImageURL     *string   `bson:"image_url,omitempty" json:"image_url,omitempty"`
	LikeCount    int64     `bson:"like_count" json:"like_count"`
	DislikeCount int64     `bson:"dislike_count" json:"dislike_count"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// Counters returns the post's aggregate reaction state.
func (p *Post) Counters() PostCounters {
	return PostCounters{Likes: p.LikeCount, Dislikes: p.DislikeCount}
}
