package entity

import (
	"time"
)

// ReactionKind is the tagged state of a user's stance on a post. Absence of a
// stored reaction is represented explicitly as ReactionNone rather than a nil
// pointer, so call sites never have to guess what a missing row means.
type ReactionKind string

const (
	ReactionNone    ReactionKind = ""
	ReactionLike    ReactionKind = "like"
	ReactionDislike ReactionKind = "dislike"
)

// IsValid reports whether the kind is one a client may request. ReactionNone
// is a state, never a request.
func (k ReactionKind) IsValid() bool {
	return k == ReactionLike || k == ReactionDislike
}

// Reaction represents a single user's stance on a single post. At most one
// reaction exists per (user, post) pair.
type Reaction struct {
	ID        string       `bson:"_id,omitempty" json:"id"`
	UserID    string       `bson:"user_id" json:"user_id"`
	PostID    string       `bson:"post_id" json:"post_id"`
	Kind      ReactionKind `bson:"kind" json:"kind"`
	CreatedAt time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time    `bson:"updated_at" json:"updated_at"`
}

// PostCounters is the aggregate like/dislike state attached to a post. After
// every committed toggle it equals the true count of reaction rows.
type PostCounters struct {
	Likes    int64 `bson:"like_count" json:"likes"`
	Dislikes int64 `bson:"dislike_count" json:"dislikes"`
}

// Transition computes the next reaction state and the exact counter deltas for
// one toggle event. Clicking the active kind again clears it; switching kinds
// moves one unit from the old counter to the new one.
func Transition(current, requested ReactionKind) (next ReactionKind, likeDelta, dislikeDelta int64) {
	if current == requested {
		// Toggle-off: undo the active reaction.
		if requested == ReactionLike {
			return ReactionNone, -1, 0
		}
		return ReactionNone, 0, -1
	}
	switch {
	case current == ReactionNone && requested == ReactionLike:
		return ReactionLike, 1, 0
	case current == ReactionNone && requested == ReactionDislike:
		return ReactionDislike, 0, 1
	case current == ReactionLike && requested == ReactionDislike:
		return ReactionDislike, -1, 1
	default: // current == ReactionDislike && requested == ReactionLike
		return ReactionLike, 1, -1
	}
}
