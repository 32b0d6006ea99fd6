// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Headline pins a post into one of the homepage headline slots.
// Positions form a dense 1..N ordering.
type Headline struct {
	ID        uuid.UUID `json:"id"`
	PostID    uuid.UUID `json:"post_id"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

// TrendingTag is an admin-curated tag shown in the trending strip.
type TrendingTag struct {
	ID        uuid.UUID `json:"id"`
	Tag       string    `json:"tag"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

// FeaturedReview pins a single review post into the featured slot.
type FeaturedReview struct {
	ID        uuid.UUID `json:"id"`
	PostID    uuid.UUID `json:"post_id"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

// GuidesMode selects how the popular guides list is assembled.
type GuidesMode string

const (
	// GuidesModeAutomatic derives the list from guide-tagged posts by views.
	GuidesModeAutomatic GuidesMode = "automatic"
	// GuidesModeManual uses the admin-pinned post list.
	GuidesModeManual GuidesMode = "manual"
)

// PopularGuide is one row of the popular guides curation table. In
// automatic mode a single row carries only the mode; in manual mode each
// row pins a post at a position.
type PopularGuide struct {
	ID        uuid.UUID  `json:"id"`
	Mode      GuidesMode `json:"mode"`
	PostID    *uuid.UUID `json:"post_id,omitempty"`
	Position  *int       `json:"position,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
