package redissvc

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const menuTreeKey = "menus:tree"

// MenuCache keeps the rendered menu LIST response in Redis so the public
// site does not rebuild the tree on every page view. The store stays the
// source of truth: every cache failure degrades to a rebuild.
//
// A nil *MenuCache is valid and does nothing, so handlers never need to
// know whether Redis is configured.
type MenuCache struct {
	rdb *redis.Client
	ctx context.Context
	ttl time.Duration
}

func NewMenuCache(rdb *redis.Client, ctx context.Context, ttl time.Duration) *MenuCache {
	return &MenuCache{rdb: rdb, ctx: ctx, ttl: ttl}
}

func (c *MenuCache) Get() ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	payload, err := c.rdb.Get(c.ctx, menuTreeKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("menu cache get failed: %v", err)
		}
		return nil, false
	}
	return payload, true
}

func (c *MenuCache) Set(payload []byte) {
	if c == nil {
		return
	}
	if err := c.rdb.Set(c.ctx, menuTreeKey, payload, c.ttl).Err(); err != nil {
		log.Printf("menu cache set failed: %v", err)
	}
}

// Invalidate drops the cached response; called after every menu write.
func (c *MenuCache) Invalidate() {
	if c == nil {
		return
	}
	if err := c.rdb.Del(c.ctx, menuTreeKey).Err(); err != nil {
		log.Printf("menu cache invalidate failed: %v", err)
	}
}
