package contract

import (
	"context"

	"github.com/henok-tadesse/socialnet/internal/domain/entity"
)

// CachedFeedPage is the cached payload for feed list endpoints.
type CachedFeedPage struct {
	Posts []entity.Post `json:"posts"`
	Total int64         `json:"total"`
}

// IFeedCache defines caching operations for feed pages. Reaction counters are
// deliberately outside its scope: toggle responses and counter reads always go
// to the authoritative store, so a stale cached counter can never be served
// from a reaction endpoint.
type IFeedCache interface {
	// List pages (key built by usecase)
	GetFeedPage(ctx context.Context, key string) (*CachedFeedPage, bool, error)
	SetFeedPage(ctx context.Context, key string, page *CachedFeedPage) error
	InvalidateFeed(ctx context.Context) error
}
