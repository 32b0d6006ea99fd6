// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"teknoblogoji/internal/cache"
	"teknoblogoji/internal/sitemap"
)

// sitemapCacheControl matches the Valkey TTL so crawlers and the cache
// expire together.
const sitemapCacheControl = "public, max-age=1800, s-maxage=1800"

// Sitemap groups the sitemap endpoints: the assembled document, the
// static fallback document, and the regeneration hook.
type Sitemap struct {
	builder     *sitemap.Builder
	cache       *cache.SitemapCache
	hasDatabase bool
	timeout     time.Duration
}

// NewSitemap creates a new Sitemap handler group. cache may be nil when
// Valkey is unavailable; the document is then rebuilt per request.
func NewSitemap(builder *sitemap.Builder, sc *cache.SitemapCache, hasDatabase bool, timeout time.Duration) *Sitemap {
	return &Sitemap{
		builder:     builder,
		cache:       sc,
		hasDatabase: hasDatabase,
		timeout:     timeout,
	}
}

// Serve handles /sitemap.xml. Assembly is bounded by the configured
// timeout; an exceeded budget answers 408 since nothing has been written
// yet. A total assembly failure degrades to the static fallback document
// with a 200, because an incomplete sitemap beats signaling failure to
// crawlers.
func (s *Sitemap) Serve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed.")
		return
	}

	if !s.hasDatabase {
		slog.Error("sitemap requested without database configuration")
		respondError(w, http.StatusInternalServerError, "Server configuration error.")
		return
	}

	if s.cache != nil {
		if doc, ok := s.cache.Get(r.Context()); ok {
			writeSitemapXML(w, doc)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	started := time.Now()
	entries := s.builder.Build(ctx)

	if err := ctx.Err(); errors.Is(err, context.DeadlineExceeded) {
		slog.Error("sitemap assembly timed out", "elapsed", time.Since(started))
		respondError(w, http.StatusRequestTimeout, "Sitemap generation timed out.")
		return
	}

	doc, err := sitemap.XML(entries)
	if err != nil {
		slog.Error("sitemap serialization failed, serving fallback", "error", err)
		s.serveFallback(w)
		return
	}

	if s.cache != nil {
		s.cache.Set(r.Context(), doc)
	}

	slog.Info("sitemap assembled", "entries", len(entries), "elapsed", time.Since(started))
	writeSitemapXML(w, doc)
}

// ServeSimple handles /sitemap-simple.xml, the static fallback document.
// It never touches the database and always answers 200.
func (s *Sitemap) ServeSimple(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed.")
		return
	}
	s.serveFallback(w)
}

// Regenerate handles POST /api/regenerate-sitemap. It drops the cached
// document so the next sitemap request reassembles from current content.
func (s *Sitemap) Regenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed.")
		return
	}

	if s.cache != nil {
		s.cache.Invalidate(r.Context())
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Sitemap regeneration triggered.",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// serveFallback writes the static fallback sitemap with a 200.
func (s *Sitemap) serveFallback(w http.ResponseWriter) {
	doc, err := sitemap.XML(s.builder.Fallback())
	if err != nil {
		// The fallback is static, so this should never happen.
		slog.Error("fallback sitemap serialization failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Sitemap generation failed.")
		return
	}
	writeSitemapXML(w, doc)
}

// writeSitemapXML writes a sitemap document with the crawler headers.
// X-Robots-Tag keeps the sitemap itself out of search indexes.
func writeSitemapXML(w http.ResponseWriter, doc []byte) {
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Cache-Control", sitemapCacheControl)
	w.Header().Set("X-Robots-Tag", "noindex")
	w.WriteHeader(http.StatusOK)
	w.Write(doc)
}
