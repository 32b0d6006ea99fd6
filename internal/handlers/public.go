// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"teknoblogoji/internal/markdown"
	"teknoblogoji/internal/models"
	"teknoblogoji/internal/slug"
	"teknoblogoji/internal/store"
)

// maxPopularGuides caps the automatic popular guides list.
const maxPopularGuides = 5

// Public groups the handlers for the public JSON API: post listing and
// detail, category and tag pages, search, curation reads, and comments.
type Public struct {
	posts      *store.PostStore
	categories *store.CategoryStore
	comments   *store.CommentStore
	curation   *store.CurationStore
}

// NewPublic creates a new Public handler group.
func NewPublic(posts *store.PostStore, categories *store.CategoryStore, comments *store.CommentStore, curation *store.CurationStore) *Public {
	return &Public{
		posts:      posts,
		categories: categories,
		comments:   comments,
		curation:   curation,
	}
}

// ListPosts returns all published posts, newest first. With ?featured=true
// only featured posts are returned.
func (p *Public) ListPosts(w http.ResponseWriter, r *http.Request) {
	var (
		posts []models.Post
		err   error
	)
	if r.URL.Query().Get("featured") == "true" {
		posts, err = p.posts.ListFeatured()
	} else {
		posts, err = p.posts.ListPublished()
	}
	if err != nil {
		slog.Error("list posts failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load posts.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"posts": posts})
}

// PostDetail returns a single published post addressed by category slug and
// post slug. Slug comparison tolerates percent-encoding and historical
// unnormalized values; the category segment falls back to "genel" when the
// post's category cannot be resolved. A successful lookup increments the
// view counter and includes the rendered HTML body plus approved comments.
func (p *Public) PostDetail(w http.ResponseWriter, r *http.Request) {
	categoryParam := chi.URLParam(r, "categorySlug")
	postParam := chi.URLParam(r, "postSlug")

	post, err := p.posts.FindPublishedBySlug(slug.CleanFromURL(postParam))
	if err != nil {
		slog.Error("post lookup failed", "error", err, "slug", postParam)
		respondError(w, http.StatusInternalServerError, "Failed to load post.")
		return
	}
	if post == nil {
		// Historical URLs may carry a slug that predates normalization.
		post, err = p.findBySlugEqual(postParam)
		if err != nil {
			slog.Error("post slug scan failed", "error", err, "slug", postParam)
			respondError(w, http.StatusInternalServerError, "Failed to load post.")
			return
		}
	}
	if post == nil {
		respondError(w, http.StatusNotFound, "Post not found.")
		return
	}

	// The category segment is informational. Accept the fallback segment
	// and any slug-equal variant; reject clearly wrong categories.
	categorySlug := post.CategorySlug
	if categorySlug == "" {
		categorySlug = models.FallbackCategorySlug
	}
	if !slug.Equal(categoryParam, categorySlug) && slug.CleanFromURL(categoryParam) != models.FallbackCategorySlug {
		respondError(w, http.StatusNotFound, "Post not found.")
		return
	}

	if err := p.posts.IncrementViews(post.ID); err != nil {
		slog.Warn("view increment failed", "error", err, "post_id", post.ID)
	}

	htmlBody, err := markdown.ToHTML(post.Content)
	if err != nil {
		slog.Warn("markdown render failed", "error", err, "post_id", post.ID)
		htmlBody = ""
	}

	comments, err := p.comments.ListApprovedByPost(post.ID)
	if err != nil {
		slog.Warn("comment load failed", "error", err, "post_id", post.ID)
		comments = nil
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"post":     post,
		"html":     htmlBody,
		"comments": comments,
	})
}

// findBySlugEqual scans published posts for one whose stored slug matches
// the raw URL value under full re-normalization.
func (p *Public) findBySlugEqual(raw string) (*models.Post, error) {
	posts, err := p.posts.ListPublished()
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if slug.Equal(raw, posts[i].Slug) {
			return &posts[i], nil
		}
	}
	return nil, nil
}

// ListCategories returns all categories with published post counts.
func (p *Public) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := p.categories.List()
	if err != nil {
		slog.Error("list categories failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load categories.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"categories": categories})
}

// CategoryPage returns a category and its published posts. Lookup is by
// slug only; an unknown slug is a 404.
func (p *Public) CategoryPage(w http.ResponseWriter, r *http.Request) {
	slugParam := slug.CleanFromURL(chi.URLParam(r, "slug"))

	category, err := p.categories.FindBySlug(slugParam)
	if err != nil {
		slog.Error("category lookup failed", "error", err, "slug", slugParam)
		respondError(w, http.StatusInternalServerError, "Failed to load category.")
		return
	}
	if category == nil {
		respondError(w, http.StatusNotFound, "Category not found.")
		return
	}

	posts, err := p.posts.ListByCategory(category.ID)
	if err != nil {
		slog.Error("category posts failed", "error", err, "slug", slugParam)
		respondError(w, http.StatusInternalServerError, "Failed to load posts.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"category": category,
		"posts":    posts,
	})
}

// TagPage returns published posts carrying the given tag. The tag arrives
// percent-encoded in the URL and may contain spaces.
func (p *Public) TagPage(w http.ResponseWriter, r *http.Request) {
	tagParam := chi.URLParam(r, "tag")
	tag, err := url.PathUnescape(tagParam)
	if err != nil {
		tag = tagParam
	}
	tag = strings.TrimSpace(tag)
	if tag == "" {
		respondError(w, http.StatusNotFound, "Tag not found.")
		return
	}

	posts, err := p.posts.ListByTag(tag)
	if err != nil {
		slog.Error("tag posts failed", "error", err, "tag", tag)
		respondError(w, http.StatusInternalServerError, "Failed to load posts.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"tag":   tag,
		"posts": posts,
	})
}

// GuidesPage returns guide-tagged published posts ordered by views.
func (p *Public) GuidesPage(w http.ResponseWriter, r *http.Request) {
	posts, err := p.posts.ListGuides()
	if err != nil {
		slog.Error("list guides failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load guides.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"posts": posts})
}

// Search returns published posts matching the q parameter in title or
// excerpt. An empty query returns an empty result rather than everything.
func (p *Public) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		respondJSON(w, http.StatusOK, map[string]any{"posts": []models.Post{}})
		return
	}

	posts, err := p.posts.Search(query)
	if err != nil {
		slog.Error("search failed", "error", err, "query", query)
		respondError(w, http.StatusInternalServerError, "Search failed.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"posts": posts})
}

// Headlines returns the curated homepage headline slots in position order.
func (p *Public) Headlines(w http.ResponseWriter, r *http.Request) {
	headlines, err := p.curation.Headlines()
	if err != nil {
		slog.Error("headlines load failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load headlines.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"headlines": headlines})
}

// TrendingTags returns the curated trending tag strip in position order.
func (p *Public) TrendingTags(w http.ResponseWriter, r *http.Request) {
	tags, err := p.curation.TrendingTags()
	if err != nil {
		slog.Error("trending tags load failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load trending tags.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"trending_tags": tags})
}

// FeaturedReview returns the pinned featured review, or null when unset.
func (p *Public) FeaturedReview(w http.ResponseWriter, r *http.Request) {
	review, err := p.curation.FeaturedReview()
	if err != nil {
		slog.Error("featured review load failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load featured review.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"featured_review": review})
}

// PopularGuides returns the popular guides list. In automatic mode the
// list is derived from guide-tagged posts by view count; in manual mode
// the admin-pinned posts are resolved in position order.
func (p *Public) PopularGuides(w http.ResponseWriter, r *http.Request) {
	mode, pinned, err := p.curation.PopularGuides()
	if err != nil {
		slog.Error("popular guides load failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load popular guides.")
		return
	}

	if mode == models.GuidesModeAutomatic {
		guides, err := p.posts.ListGuides()
		if err != nil {
			slog.Error("automatic guides load failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to load popular guides.")
			return
		}
		if len(guides) > maxPopularGuides {
			guides = guides[:maxPopularGuides]
		}
		respondJSON(w, http.StatusOK, map[string]any{
			"mode":  mode,
			"posts": guides,
		})
		return
	}

	posts := make([]models.Post, 0, len(pinned))
	for _, row := range pinned {
		if row.PostID == nil {
			continue
		}
		post, err := p.posts.FindByID(*row.PostID)
		if err != nil {
			slog.Warn("pinned guide lookup failed", "error", err, "post_id", *row.PostID)
			continue
		}
		if post != nil && post.Status == models.PostStatusPublished {
			posts = append(posts, *post)
		}
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"mode":  mode,
		"posts": posts,
	})
}

// ListComments returns the approved comments of a published post.
func (p *Public) ListComments(w http.ResponseWriter, r *http.Request) {
	post, ok := p.resolvePost(w, r)
	if !ok {
		return
	}

	comments, err := p.comments.ListApprovedByPost(post.ID)
	if err != nil {
		slog.Error("comment load failed", "error", err, "post_id", post.ID)
		respondError(w, http.StatusInternalServerError, "Failed to load comments.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"comments": comments})
}

// CreateComment submits a reader comment. Comments start unapproved and
// do not appear publicly until moderated.
func (p *Public) CreateComment(w http.ResponseWriter, r *http.Request) {
	post, ok := p.resolvePost(w, r)
	if !ok {
		return
	}

	var req struct {
		AuthorName string `json:"author_name"`
		Content    string `json:"content"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if msg := validateComment(req.AuthorName, req.Content); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	comment, err := p.comments.Create(&models.Comment{
		PostID:     post.ID,
		AuthorName: strings.TrimSpace(req.AuthorName),
		Content:    strings.TrimSpace(req.Content),
	})
	if err != nil {
		slog.Error("comment create failed", "error", err, "post_id", post.ID)
		respondError(w, http.StatusInternalServerError, "Failed to submit comment.")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{"comment": comment})
}

// resolvePost finds the published post addressed by the route's slug pair.
// Writes the error response and returns false when it cannot.
func (p *Public) resolvePost(w http.ResponseWriter, r *http.Request) (*models.Post, bool) {
	postParam := chi.URLParam(r, "postSlug")

	post, err := p.posts.FindPublishedBySlug(slug.CleanFromURL(postParam))
	if err != nil {
		slog.Error("post lookup failed", "error", err, "slug", postParam)
		respondError(w, http.StatusInternalServerError, "Failed to load post.")
		return nil, false
	}
	if post == nil {
		respondError(w, http.StatusNotFound, "Post not found.")
		return nil, false
	}
	return post, true
}
