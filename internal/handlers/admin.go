// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"teknoblogoji/internal/cache"
	"teknoblogoji/internal/models"
	"teknoblogoji/internal/slug"
	"teknoblogoji/internal/storage"
	"teknoblogoji/internal/store"
)

// Admin groups the back-office handlers: post and category CRUD, comment
// moderation, curation saves, user management, and media upload.
type Admin struct {
	posts         *store.PostStore
	categories    *store.CategoryStore
	comments      *store.CommentStore
	curation      *store.CurationStore
	users         *store.UserStore
	sitemapCache  *cache.SitemapCache
	storageClient *storage.Client
}

// NewAdmin creates a new Admin handler group. sitemapCache and
// storageClient may be nil when Valkey or S3 are not configured.
func NewAdmin(posts *store.PostStore, categories *store.CategoryStore, comments *store.CommentStore, curation *store.CurationStore, users *store.UserStore, sitemapCache *cache.SitemapCache, storageClient *storage.Client) *Admin {
	return &Admin{
		posts:         posts,
		categories:    categories,
		comments:      comments,
		curation:      curation,
		users:         users,
		sitemapCache:  sitemapCache,
		storageClient: storageClient,
	}
}

// invalidateSitemap drops the cached sitemap after a content mutation so
// crawlers see the change within one request.
func (a *Admin) invalidateSitemap(r *http.Request) {
	if a.sitemapCache != nil {
		a.sitemapCache.Invalidate(r.Context())
	}
}

// postRequest is the JSON body for post create and update.
type postRequest struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Excerpt    *string  `json:"excerpt"`
	CoverImage *string  `json:"cover_image"`
	CategoryID string   `json:"category_id"`
	Tags       []string `json:"tags"`
	Status     string   `json:"status"`
	Featured   bool     `json:"featured"`
}

// ListPosts returns all posts including drafts, newest first.
func (a *Admin) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := a.posts.ListAll()
	if err != nil {
		slog.Error("admin list posts failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load posts.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"posts": posts})
}

// GetPost returns a single post by ID, drafts included.
func (a *Admin) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid post ID.")
		return
	}

	post, err := a.posts.FindByID(id)
	if err != nil {
		slog.Error("admin post lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load post.")
		return
	}
	if post == nil {
		respondError(w, http.StatusNotFound, "Post not found.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"post": post})
}

// CreatePost creates a post. The slug is derived from the title here,
// once; later title edits do not change it.
func (a *Admin) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if msg := validatePost(req.Title, req.Content, req.Tags); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid category ID.")
		return
	}
	category, err := a.categories.FindByID(categoryID)
	if err != nil {
		slog.Error("category lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load category.")
		return
	}
	if category == nil {
		respondError(w, http.StatusBadRequest, "Category does not exist.")
		return
	}

	status := models.PostStatus(req.Status)
	if status != models.PostStatusDraft && status != models.PostStatusPublished {
		status = models.PostStatusDraft
	}

	post := &models.Post{
		Title:      strings.TrimSpace(req.Title),
		Slug:       slug.Generate(req.Title),
		Content:    req.Content,
		Excerpt:    req.Excerpt,
		CoverImage: req.CoverImage,
		CategoryID: categoryID,
		Tags:       models.TagList(req.Tags),
		Status:     status,
		Featured:   req.Featured,
	}

	created, err := a.posts.Create(post)
	if err != nil {
		slog.Error("post create failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to create post.")
		return
	}

	a.invalidateSitemap(r)
	respondJSON(w, http.StatusCreated, map[string]any{"post": created})
}

// UpdatePost updates a post's editable fields. The slug stays as minted
// at creation so published URLs never break.
func (a *Admin) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid post ID.")
		return
	}

	var req postRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if msg := validatePost(req.Title, req.Content, req.Tags); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	post, err := a.posts.FindByID(id)
	if err != nil {
		slog.Error("admin post lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load post.")
		return
	}
	if post == nil {
		respondError(w, http.StatusNotFound, "Post not found.")
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid category ID.")
		return
	}

	status := models.PostStatus(req.Status)
	if status != models.PostStatusDraft && status != models.PostStatusPublished {
		status = post.Status
	}

	post.Title = strings.TrimSpace(req.Title)
	post.Content = req.Content
	post.Excerpt = req.Excerpt
	post.CoverImage = req.CoverImage
	post.CategoryID = categoryID
	post.Tags = models.TagList(req.Tags)
	post.Status = status
	post.Featured = req.Featured

	if err := a.posts.Update(post); err != nil {
		slog.Error("post update failed", "error", err, "post_id", id)
		respondError(w, http.StatusInternalServerError, "Failed to update post.")
		return
	}

	a.invalidateSitemap(r)
	respondJSON(w, http.StatusOK, map[string]any{"post": post})
}

// DeletePost removes a post and its comments.
func (a *Admin) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid post ID.")
		return
	}

	if err := a.posts.Delete(id); err != nil {
		slog.Error("post delete failed", "error", err, "post_id", id)
		respondError(w, http.StatusInternalServerError, "Failed to delete post.")
		return
	}

	a.invalidateSitemap(r)
	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}

// categoryRequest is the JSON body for category create and update.
type categoryRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CreateCategory creates a category. When no slug is supplied it is
// derived from the name.
func (a *Admin) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		respondError(w, http.StatusBadRequest, "Name is required.")
		return
	}

	categorySlug := strings.TrimSpace(req.Slug)
	if categorySlug == "" {
		categorySlug = slug.Generate(name)
	}

	created, err := a.categories.Create(&models.Category{Name: name, Slug: categorySlug})
	if err != nil {
		slog.Error("category create failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to create category.")
		return
	}

	a.invalidateSitemap(r)
	respondJSON(w, http.StatusCreated, map[string]any{"category": created})
}

// UpdateCategory updates a category's name and slug.
func (a *Admin) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid category ID.")
		return
	}

	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	category, err := a.categories.FindByID(id)
	if err != nil {
		slog.Error("category lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load category.")
		return
	}
	if category == nil {
		respondError(w, http.StatusNotFound, "Category not found.")
		return
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		category.Name = name
	}
	if categorySlug := strings.TrimSpace(req.Slug); categorySlug != "" {
		category.Slug = categorySlug
	}

	if err := a.categories.Update(category); err != nil {
		slog.Error("category update failed", "error", err, "category_id", id)
		respondError(w, http.StatusInternalServerError, "Failed to update category.")
		return
	}

	a.invalidateSitemap(r)
	respondJSON(w, http.StatusOK, map[string]any{"category": category})
}

// DeleteCategory removes a category. Categories with posts are protected
// by a foreign key restriction and answer 409.
func (a *Admin) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid category ID.")
		return
	}

	if err := a.categories.Delete(id); err != nil {
		slog.Warn("category delete failed", "error", err, "category_id", id)
		respondError(w, http.StatusConflict, "Category still has posts.")
		return
	}

	a.invalidateSitemap(r)
	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}

// ListComments returns all comments, pending ones included, for moderation.
func (a *Admin) ListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := a.comments.ListAll()
	if err != nil {
		slog.Error("admin list comments failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load comments.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"comments": comments})
}

// ApproveComment makes a comment publicly visible.
func (a *Admin) ApproveComment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid comment ID.")
		return
	}

	if err := a.comments.Approve(id); err != nil {
		slog.Error("comment approve failed", "error", err, "comment_id", id)
		respondError(w, http.StatusInternalServerError, "Failed to approve comment.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}

// DeleteComment removes a comment.
func (a *Admin) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid comment ID.")
		return
	}

	if err := a.comments.Delete(id); err != nil {
		slog.Error("comment delete failed", "error", err, "comment_id", id)
		respondError(w, http.StatusInternalServerError, "Failed to delete comment.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}
