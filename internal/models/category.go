// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// FallbackCategorySlug is used when a post's category cannot be resolved.
// Lookups fall back to this placeholder segment rather than erroring.
const FallbackCategorySlug = "genel"

// Category represents a curated content category. Slugs are maintained at
// data-entry time; category lookup is always by slug.
type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`

	// Virtual field populated by store methods.
	PostCount int `json:"post_count,omitempty"`
}
