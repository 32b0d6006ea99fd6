// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package sitemap assembles the sitemaps.org XML document for the site.
// It aggregates static routes, category routes, published post routes,
// and tag routes into a single ordered URL list. Data sources are
// injected as interfaces so the builder can be tested without a database.
package sitemap

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Change frequencies per the sitemaps.org protocol.
const (
	ChangeDaily   = "daily"
	ChangeWeekly  = "weekly"
	ChangeMonthly = "monthly"
)

// CategoryEntry is the slice of category data the builder needs.
type CategoryEntry struct {
	Slug      string
	CreatedAt time.Time
}

// PostEntry is the slice of post data the builder needs.
type PostEntry struct {
	Slug         string
	CategorySlug string
	LastModified time.Time
}

// CategorySource supplies category routes for the sitemap.
type CategorySource interface {
	SitemapCategories(ctx context.Context) ([]CategoryEntry, error)
}

// PostSource supplies published post routes and the distinct tag set.
type PostSource interface {
	SitemapPosts(ctx context.Context) ([]PostEntry, error)
	SitemapTags(ctx context.Context) ([]string, error)
}

// Entry is a single <url> element of the sitemap.
type Entry struct {
	Loc        string
	LastMod    time.Time
	ChangeFreq string
	Priority   float64
}

// staticPage is a fixed informational page included in every sitemap.
type staticPage struct {
	path       string
	changeFreq string
	priority   float64
}

// staticPages is the fixed list of informational pages, in output order.
// The guides index is re-crawled weekly; the rest change rarely.
var staticPages = []staticPage{
	{"/hakkimizda", ChangeMonthly, 0.8},
	{"/iletisim", ChangeMonthly, 0.8},
	{"/gizlilik-politikasi", ChangeMonthly, 0.5},
	{"/cerez-politikasi", ChangeMonthly, 0.5},
	{"/editorial-politika", ChangeMonthly, 0.5},
	{"/reklam-affiliate", ChangeMonthly, 0.5},
	{"/rehberler", ChangeWeekly, 0.9},
}

// Builder assembles sitemap entries from the injected data sources.
type Builder struct {
	baseURL    string
	categories CategorySource
	posts      PostSource
	now        func() time.Time
}

// NewBuilder creates a sitemap builder rooted at baseURL. A trailing
// slash on baseURL is stripped so path joining stays predictable.
func NewBuilder(baseURL string, categories CategorySource, posts PostSource) *Builder {
	return &Builder{
		baseURL:    strings.TrimRight(baseURL, "/"),
		categories: categories,
		posts:      posts,
		now:        time.Now,
	}
}

// Build assembles the complete ordered entry list. The category, post, and
// tag queries run concurrently since no section depends on another, but
// the output always preserves the fixed section order: root, static pages,
// categories, posts, tags. A failed section is logged and omitted — one
// failing source never aborts the whole assembly.
func (b *Builder) Build(ctx context.Context) []Entry {
	today := b.now()

	var (
		wg         sync.WaitGroup
		categories []CategoryEntry
		posts      []PostEntry
		tags       []string
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		var err error
		categories, err = b.categories.SitemapCategories(ctx)
		if err != nil {
			slog.Error("sitemap category query failed, section skipped", "error", err)
			categories = nil
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		posts, err = b.posts.SitemapPosts(ctx)
		if err != nil {
			slog.Error("sitemap post query failed, section skipped", "error", err)
			posts = nil
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		tags, err = b.posts.SitemapTags(ctx)
		if err != nil {
			// Tag pages are the least important section; skip quietly.
			tags = nil
		}
	}()
	wg.Wait()

	entries := make([]Entry, 0, 1+len(staticPages)+len(categories)+len(posts)+len(tags))

	// 1. Site root.
	entries = append(entries, Entry{
		Loc:        b.baseURL + "/",
		LastMod:    today,
		ChangeFreq: ChangeDaily,
		Priority:   1.0,
	})

	// 2. Static informational pages.
	for _, page := range staticPages {
		entries = append(entries, Entry{
			Loc:        b.baseURL + page.path,
			LastMod:    today,
			ChangeFreq: page.changeFreq,
			Priority:   page.priority,
		})
	}

	// 3. Category pages.
	for _, c := range categories {
		entries = append(entries, Entry{
			Loc:        b.baseURL + "/kategori/" + c.Slug,
			LastMod:    c.CreatedAt,
			ChangeFreq: ChangeWeekly,
			Priority:   0.8,
		})
	}

	// 4. Published posts.
	for _, p := range posts {
		categorySlug := p.CategorySlug
		if categorySlug == "" {
			categorySlug = "genel"
		}
		entries = append(entries, Entry{
			Loc:        b.baseURL + "/" + categorySlug + "/" + p.Slug,
			LastMod:    p.LastModified,
			ChangeFreq: ChangeWeekly,
			Priority:   0.9,
		})
	}

	// 5. Tag pages, deduplicated by the source query.
	for _, tag := range tags {
		entries = append(entries, Entry{
			Loc:        b.baseURL + "/etiket/" + url.PathEscape(tag),
			LastMod:    today,
			ChangeFreq: ChangeMonthly,
			Priority:   0.6,
		})
	}

	return entries
}

// Fallback returns the minimal static sitemap served when assembly fails
// entirely: the root, the static pages, and the stock category URLs.
// Availability of some sitemap is preferred over signaling failure.
func (b *Builder) Fallback() []Entry {
	today := b.now()

	entries := []Entry{{
		Loc:        b.baseURL + "/",
		LastMod:    today,
		ChangeFreq: ChangeDaily,
		Priority:   1.0,
	}}
	for _, page := range staticPages {
		entries = append(entries, Entry{
			Loc:        b.baseURL + page.path,
			LastMod:    today,
			ChangeFreq: page.changeFreq,
			Priority:   page.priority,
		})
	}
	for _, slug := range []string{"yazilim", "telefon", "bilgisayar", "yapay-zeka"} {
		entries = append(entries, Entry{
			Loc:        b.baseURL + "/kategori/" + slug,
			LastMod:    today,
			ChangeFreq: ChangeWeekly,
			Priority:   0.8,
		})
	}
	return entries
}
