package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/henok-tadesse/socialnet/internal/domain/contract"
)

// FeedCacheStore caches feed list pages in Redis. Reaction counters are never
// served from here: the reaction endpoints always read the authoritative
// store, so this cache only ever shortens feed listings.
type FeedCacheStore struct {
	rdb     *redis.Client
	listTTL time.Duration
}

var _ contract.IFeedCache = (*FeedCacheStore)(nil)

func NewFeedCacheStore(rdb *redis.Client, listTTL time.Duration) *FeedCacheStore {
	if listTTL <= 0 {
		listTTL = 30 * time.Second
	}
	return &FeedCacheStore{
		rdb:     rdb,
		listTTL: listTTL,
	}
}

func (c *FeedCacheStore) GetFeedPage(ctx context.Context, key string) (*contract.CachedFeedPage, bool, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var page contract.CachedFeedPage
	if err := json.Unmarshal(b, &page); err != nil {
		return nil, false, nil
	}
	return &page, true, nil
}

func (c *FeedCacheStore) SetFeedPage(ctx context.Context, key string, page *contract.CachedFeedPage) error {
	data, err := json.Marshal(page)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, data, c.listTTL).Err()
}

func (c *FeedCacheStore) InvalidateFeed(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, "feed:list:*", 1000).Iterator()
	pipe := c.rdb.Pipeline()
	n := 0
	for iter.Next(ctx) {
		pipe.Del(ctx, iter.Val())
		n++
		if n%200 == 0 {
			if _, err := pipe.Exec(ctx); err != nil {
				return err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	_, _ = pipe.Exec(ctx)
	return nil
}
