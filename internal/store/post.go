// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"teknoblogoji/internal/models"
	"teknoblogoji/internal/sitemap"
)

// PostStore handles all post-related database operations.
type PostStore struct {
	db *sql.DB
}

// NewPostStore creates a new PostStore with the given database connection.
func NewPostStore(db *sql.DB) *PostStore {
	return &PostStore{db: db}
}

// postColumns selects post fields plus the joined category slug. The join
// is a LEFT JOIN with a COALESCE to the "genel" placeholder so a post whose
// category cannot be resolved still renders with a usable URL segment.
const postColumns = `
	p.id, p.title, p.slug, p.content, p.excerpt, p.cover_image, p.category_id,
	p.tags, p.status, p.featured, p.views, p.created_at, p.published_at, p.updated_at,
	COALESCE(c.slug, 'genel') AS category_slug`

const postFrom = ` FROM posts p LEFT JOIN categories c ON c.id = p.category_id`

// scanPost scans a row into a Post struct.
func scanPost(scanner interface{ Scan(...any) error }) (*models.Post, error) {
	var p models.Post
	err := scanner.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Content, &p.Excerpt, &p.CoverImage,
		&p.CategoryID, &p.Tags, &p.Status, &p.Featured, &p.Views,
		&p.CreatedAt, &p.PublishedAt, &p.UpdatedAt, &p.CategorySlug,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// collectPosts drains a result set into a slice of posts.
func collectPosts(rows *sql.Rows) ([]models.Post, error) {
	defer rows.Close()
	var items []models.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// ListAll returns every post regardless of status, newest first. Admin use.
func (s *PostStore) ListAll() ([]models.Post, error) {
	rows, err := s.db.Query(`SELECT ` + postColumns + postFrom + ` ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return collectPosts(rows)
}

// ListPublished returns all published posts, newest first.
func (s *PostStore) ListPublished() ([]models.Post, error) {
	rows, err := s.db.Query(`
		SELECT ` + postColumns + postFrom + `
		WHERE p.status = 'published'
		ORDER BY p.published_at DESC NULLS LAST`)
	if err != nil {
		return nil, fmt.Errorf("list published posts: %w", err)
	}
	return collectPosts(rows)
}

// ListFeatured returns published posts flagged as featured, newest first.
func (s *PostStore) ListFeatured() ([]models.Post, error) {
	rows, err := s.db.Query(`
		SELECT ` + postColumns + postFrom + `
		WHERE p.status = 'published' AND p.featured
		ORDER BY p.published_at DESC NULLS LAST`)
	if err != nil {
		return nil, fmt.Errorf("list featured posts: %w", err)
	}
	return collectPosts(rows)
}

// ListByCategory returns published posts in a category, newest first.
func (s *PostStore) ListByCategory(categoryID uuid.UUID) ([]models.Post, error) {
	rows, err := s.db.Query(`
		SELECT `+postColumns+postFrom+`
		WHERE p.status = 'published' AND p.category_id = $1
		ORDER BY p.published_at DESC NULLS LAST`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list posts by category: %w", err)
	}
	return collectPosts(rows)
}

// ListByTag returns published posts whose tag set contains the given tag.
func (s *PostStore) ListByTag(tag string) ([]models.Post, error) {
	rows, err := s.db.Query(`
		SELECT `+postColumns+postFrom+`
		WHERE p.status = 'published' AND p.tags @> jsonb_build_array($1::text)
		ORDER BY p.published_at DESC NULLS LAST`, tag)
	if err != nil {
		return nil, fmt.Errorf("list posts by tag: %w", err)
	}
	return collectPosts(rows)
}

// ListGuides returns published guide posts (tagged "rehber" or "guide"),
// most viewed first. Used by the guides index and automatic popular guides.
func (s *PostStore) ListGuides() ([]models.Post, error) {
	rows, err := s.db.Query(`
		SELECT `+postColumns+postFrom+`
		WHERE p.status = 'published'
		  AND (p.tags @> jsonb_build_array($1::text) OR p.tags @> jsonb_build_array($2::text))
		ORDER BY p.views DESC, p.published_at DESC NULLS LAST`,
		models.GuideTagTR, models.GuideTagEN)
	if err != nil {
		return nil, fmt.Errorf("list guides: %w", err)
	}
	return collectPosts(rows)
}

// Search returns published posts whose title or excerpt matches the query.
func (s *PostStore) Search(query string) ([]models.Post, error) {
	rows, err := s.db.Query(`
		SELECT `+postColumns+postFrom+`
		WHERE p.status = 'published'
		  AND (p.title ILIKE '%' || $1 || '%' OR p.excerpt ILIKE '%' || $1 || '%')
		ORDER BY p.published_at DESC NULLS LAST`, query)
	if err != nil {
		return nil, fmt.Errorf("search posts: %w", err)
	}
	return collectPosts(rows)
}

// FindByID retrieves a post by its UUID. Returns nil if not found.
func (s *PostStore) FindByID(id uuid.UUID) (*models.Post, error) {
	row := s.db.QueryRow(`SELECT `+postColumns+postFrom+` WHERE p.id = $1`, id)
	p, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by id: %w", err)
	}
	return p, nil
}

// FindPublishedBySlug retrieves a published post by its slug.
// Returns nil if not found.
func (s *PostStore) FindPublishedBySlug(slug string) (*models.Post, error) {
	row := s.db.QueryRow(`
		SELECT `+postColumns+postFrom+`
		WHERE p.slug = $1 AND p.status = 'published'`, slug)
	p, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by slug: %w", err)
	}
	return p, nil
}

// Create inserts a new post and returns it with the generated ID. The
// caller is responsible for deriving the slug from the title; it is set
// once here and never re-derived on title edits.
func (s *PostStore) Create(p *models.Post) (*models.Post, error) {
	// If publishing, set the published_at timestamp.
	if p.Status == models.PostStatusPublished && p.PublishedAt == nil {
		now := time.Now()
		p.PublishedAt = &now
	}

	row := s.db.QueryRow(`
		INSERT INTO posts (title, slug, content, excerpt, cover_image, category_id,
		                   tags, status, featured, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, title, slug, content, excerpt, cover_image, category_id,
		          tags, status, featured, views, created_at, published_at, updated_at,
		          '' AS category_slug`,
		p.Title, p.Slug, p.Content, p.Excerpt, p.CoverImage, p.CategoryID,
		p.Tags, p.Status, p.Featured, p.PublishedAt,
	)
	result, err := scanPost(row)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return result, nil
}

// Update modifies an existing post. The slug is intentionally not touched:
// it was derived once at creation and stays stable across title edits.
func (s *PostStore) Update(p *models.Post) error {
	// If transitioning to published and no published_at set, set it now.
	if p.Status == models.PostStatusPublished && p.PublishedAt == nil {
		now := time.Now()
		p.PublishedAt = &now
	}

	_, err := s.db.Exec(`
		UPDATE posts SET
			title = $1, content = $2, excerpt = $3, cover_image = $4,
			category_id = $5, tags = $6, status = $7, featured = $8,
			published_at = $9, updated_at = NOW()
		WHERE id = $10
	`, p.Title, p.Content, p.Excerpt, p.CoverImage,
		p.CategoryID, p.Tags, p.Status, p.Featured,
		p.PublishedAt, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	return nil
}

// Delete removes a post by ID. This is a hard delete; comments and
// curation rows referencing the post cascade away with it.
func (s *PostStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

// IncrementViews bumps the view counter for a post.
func (s *PostStore) IncrementViews(id uuid.UUID) error {
	_, err := s.db.Exec(`UPDATE posts SET views = views + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	return nil
}

// SitemapPosts returns slug, category slug, and last-modified data for
// every published post. Implements sitemap.PostSource.
func (s *PostStore) SitemapPosts(ctx context.Context) ([]sitemap.PostEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.slug, COALESCE(c.slug, 'genel'),
		       COALESCE(p.updated_at, p.created_at)
		FROM posts p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.status = 'published'
		ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("sitemap posts: %w", err)
	}
	defer rows.Close()

	var entries []sitemap.PostEntry
	for rows.Next() {
		var e sitemap.PostEntry
		if err := rows.Scan(&e.Slug, &e.CategorySlug, &e.LastModified); err != nil {
			return nil, fmt.Errorf("scan sitemap post: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// SitemapTags returns the distinct tag values across all published posts.
// Implements sitemap.PostSource.
func (s *PostStore) SitemapTags(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT tag
		FROM posts p, jsonb_array_elements_text(p.tags) AS tag
		WHERE p.status = 'published'
		ORDER BY tag`)
	if err != nil {
		return nil, fmt.Errorf("sitemap tags: %w", err)
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scan sitemap tag: %w", err)
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}
