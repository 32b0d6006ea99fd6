// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the data structures that map to database tables
// and provides the core types used throughout the application.
package models

import (
	"time"

	"github.com/google/uuid"
)

// PostStatus represents the publication state of a post.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
)

// Guide tag markers. A post is a guide ("rehber") if its tag set contains
// either value — guides are a tag convention, not a dedicated content type.
const (
	GuideTagTR = "rehber"
	GuideTagEN = "guide"
)

// Post represents a blog article. The slug is derived from the title once
// at creation time and is not re-derived on later title edits.
type Post struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Content     string     `json:"content"`
	Excerpt     *string    `json:"excerpt,omitempty"`
	CoverImage  *string    `json:"cover_image,omitempty"`
	CategoryID  uuid.UUID  `json:"category_id"`
	Tags        TagList    `json:"tags"`
	Status      PostStatus `json:"status"`
	Featured    bool       `json:"featured"`
	Views       int        `json:"views"`
	CreatedAt   time.Time  `json:"created_at"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`

	// Virtual field populated by store joins. Empty when the category
	// row could not be resolved; callers fall back to "genel".
	CategorySlug string `json:"category_slug,omitempty"`
}

// IsGuide returns true if the post is tagged as a guide article.
func (p *Post) IsGuide() bool {
	return p.Tags.Contains(GuideTagTR) || p.Tags.Contains(GuideTagEN)
}

// LastModified returns the most recent modification time for sitemap
// purposes: updated_at when set, otherwise created_at.
func (p *Post) LastModified() time.Time {
	if p.UpdatedAt != nil {
		return *p.UpdatedAt
	}
	return p.CreatedAt
}
