// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis

import (
	stdctx "context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// PageCache stores rendered JSON bodies under a key prefix.
type PageCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewPageCache creates a cache whose keys start with prefix and expire after ttl.
func NewPageCache(client *redis.Client, prefix string, ttl time.Duration) *PageCache {
	return &PageCache{client: client, prefix: prefix, ttl: ttl}
}

// Key builds the cache key for a locale and route path.
func (cache *PageCache) Key(locale, path string) string {
	return cache.prefix + locale + ":" + path
}

// Get returns the cached body. found is false on a miss.
func (cache *PageCache) Get(context stdctx.Context, locale, path string) (body []byte, found bool, err error) {
	body, err = cache.client.Get(context, cache.Key(locale, path)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis: get page: %w", err)
	}
	return body, true, nil
}

// Set stores body for the configured TTL.
func (cache *PageCache) Set(context stdctx.Context, locale, path string, body []byte) error {
	if err := cache.client.Set(context, cache.Key(locale, path), body, cache.ttl).Err(); err != nil {
		return fmt.Errorf("redis: set page: %w", err)
	}
	return nil
}

// Delete removes the entry for a locale and path. Missing keys are not an error.
func (cache *PageCache) Delete(context stdctx.Context, locale, path string) error {
	if err := cache.client.Del(context, cache.Key(locale, path)).Err(); err != nil {
		return fmt.Errorf("redis: delete page: %w", err)
	}
	return nil
}
