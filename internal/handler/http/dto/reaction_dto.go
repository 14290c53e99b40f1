package dto

// ReactionRequest is the toggle payload. Kind must be "like" or "dislike";
// anything else is rejected before storage is touched.
type ReactionRequest struct {
	Kind string `json:"kind" binding:"required,reactionkind"`
}

// ReactionResponse carries the counters committed by a toggle.
type ReactionResponse struct {
	Success  bool  `json:"success"`
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
}

// ReactionStateResponse additionally carries the caller's own reaction kind,
// empty when the caller has no active reaction.
type ReactionStateResponse struct {
	Success  bool   `json:"success"`
	Kind     string `json:"kind"`
	Likes    int64  `json:"likes"`
	Dislikes int64  `json:"dislikes"`
}
