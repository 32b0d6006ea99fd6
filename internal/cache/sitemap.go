// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// sitemap.go provides a Valkey-backed cache for the assembled sitemap XML.
// Assembly reads the whole post and category tables, so the result is kept
// for the same window the HTTP Cache-Control header advertises. The
// regenerate-sitemap hook invalidates it when content changes.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// sitemapKey is the Valkey key holding the rendered sitemap document.
	sitemapKey = "sitemap:xml"

	// DefaultSitemapTTL matches the 30-minute Cache-Control window sent
	// with the sitemap response.
	DefaultSitemapTTL = 30 * time.Minute
)

// SitemapCache stores the rendered sitemap XML in Valkey.
type SitemapCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSitemapCache creates a sitemap cache backed by the given Valkey client.
func NewSitemapCache(client *redis.Client, ttl time.Duration) *SitemapCache {
	if ttl == 0 {
		ttl = DefaultSitemapTTL
	}
	return &SitemapCache{client: client, ttl: ttl}
}

// Get retrieves the cached sitemap document. Returns false on miss.
// Cache errors degrade to a miss so the sitemap is rebuilt instead of failing.
func (sc *SitemapCache) Get(ctx context.Context) ([]byte, bool) {
	val, err := sc.client.Get(ctx, sitemapKey).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("sitemap cache get error", "error", err)
		return nil, false
	}
	slog.Debug("sitemap cache hit")
	return val, true
}

// Set stores the rendered sitemap document with the configured TTL.
func (sc *SitemapCache) Set(ctx context.Context, doc []byte) {
	if err := sc.client.Set(ctx, sitemapKey, doc, sc.ttl).Err(); err != nil {
		slog.Warn("sitemap cache set error", "error", err)
	}
}

// Invalidate drops the cached document so the next request rebuilds it.
// Called by the regenerate-sitemap hook and after content mutations.
func (sc *SitemapCache) Invalidate(ctx context.Context) {
	if err := sc.client.Del(ctx, sitemapKey).Err(); err != nil {
		slog.Warn("sitemap cache invalidate error", "error", err)
		return
	}
	slog.Debug("sitemap cache invalidated")
}
