// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"teknoblogoji/internal/sitemap"
)

// stubSource implements both sitemap source interfaces for handler tests.
type stubSource struct {
	categories []sitemap.CategoryEntry
	posts      []sitemap.PostEntry
	tags       []string
	block      bool // wait for context cancellation before returning
}

func (s *stubSource) SitemapCategories(ctx context.Context) ([]sitemap.CategoryEntry, error) {
	if s.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return s.categories, nil
}

func (s *stubSource) SitemapPosts(ctx context.Context) ([]sitemap.PostEntry, error) {
	if s.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return s.posts, nil
}

func (s *stubSource) SitemapTags(ctx context.Context) ([]string, error) {
	if s.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return s.tags, nil
}

func newTestSitemap(src *stubSource, hasDatabase bool, timeout time.Duration) *Sitemap {
	builder := sitemap.NewBuilder("https://teknoblogoji.com.tr", src, src)
	return NewSitemap(builder, nil, hasDatabase, timeout)
}

func TestSitemapServe(t *testing.T) {
	src := &stubSource{
		categories: []sitemap.CategoryEntry{{Slug: "telefon", CreatedAt: time.Now()}},
		posts:      []sitemap.PostEntry{{Slug: "en-iyi-telefonlar", CategorySlug: "telefon", LastModified: time.Now()}},
		tags:       []string{"android"},
	}
	sm := newTestSitemap(src, true, 25*time.Second)

	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	rec := httptest.NewRecorder()
	sm.Serve(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/xml; charset=utf-8" {
		t.Errorf("Content-Type = %q", got)
	}
	if got := rec.Header().Get("Cache-Control"); got != "public, max-age=1800, s-maxage=1800" {
		t.Errorf("Cache-Control = %q", got)
	}
	if got := rec.Header().Get("X-Robots-Tag"); got != "noindex" {
		t.Errorf("X-Robots-Tag = %q", got)
	}

	body := rec.Body.String()
	for _, want := range []string{
		"https://teknoblogoji.com.tr/kategori/telefon",
		"https://teknoblogoji.com.tr/telefon/en-iyi-telefonlar",
		"https://teknoblogoji.com.tr/etiket/android",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestSitemapServeMethodNotAllowed(t *testing.T) {
	sm := newTestSitemap(&stubSource{}, true, time.Second)

	req := httptest.NewRequest(http.MethodPost, "/sitemap.xml", nil)
	rec := httptest.NewRecorder()
	sm.Serve(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Content-Type = %q, want JSON error body", ct)
	}
}

func TestSitemapServeNoDatabaseConfig(t *testing.T) {
	sm := newTestSitemap(&stubSource{}, false, time.Second)

	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	rec := httptest.NewRecorder()
	sm.Serve(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}

func TestSitemapServeTimeout(t *testing.T) {
	sm := newTestSitemap(&stubSource{block: true}, true, 50*time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	rec := httptest.NewRecorder()
	sm.Serve(rec, req)

	if rec.Code != http.StatusRequestTimeout {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusRequestTimeout)
	}
}

func TestSitemapServeSimple(t *testing.T) {
	sm := newTestSitemap(&stubSource{}, true, time.Second)

	req := httptest.NewRequest(http.MethodGet, "/sitemap-simple.xml", nil)
	rec := httptest.NewRecorder()
	sm.ServeSimple(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	for _, slug := range []string{"yazilim", "telefon", "bilgisayar", "yapay-zeka"} {
		if !strings.Contains(body, "/kategori/"+slug) {
			t.Errorf("fallback missing stock category %q", slug)
		}
	}
}

func TestSitemapRegenerate(t *testing.T) {
	sm := newTestSitemap(&stubSource{}, true, time.Second)

	req := httptest.NewRequest(http.MethodPost, "/api/regenerate-sitemap", nil)
	rec := httptest.NewRecorder()
	sm.Regenerate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		Success   bool   `json:"success"`
		Message   string `json:"message"`
		Timestamp string `json:"timestamp"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Message == "" || resp.Timestamp == "" {
		t.Errorf("unexpected ack body: %+v", resp)
	}

	// Non-POST is rejected.
	req = httptest.NewRequest(http.MethodGet, "/api/regenerate-sitemap", nil)
	rec = httptest.NewRecorder()
	sm.Regenerate(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
