// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"teknoblogoji/internal/models"
)

// CurationStore manages the admin-curated promotional slots: headlines,
// trending tags, the featured review, and popular guides. Every save
// replaces a list wholesale — delete all rows, re-insert with dense 1..N
// positions — inside a single transaction, so concurrent readers never
// observe a half-written or empty list. The lists are small (≤20 rows),
// which keeps the full rewrite cheap.
type CurationStore struct {
	db *sql.DB
}

// NewCurationStore returns a new CurationStore.
func NewCurationStore(db *sql.DB) *CurationStore {
	return &CurationStore{db: db}
}

// Headlines returns the pinned headline posts ordered by position.
func (s *CurationStore) Headlines() ([]models.Headline, error) {
	rows, err := s.db.Query(`
		SELECT id, post_id, position, created_at
		FROM headlines ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("list headlines: %w", err)
	}
	defer rows.Close()

	var items []models.Headline
	for rows.Next() {
		var h models.Headline
		if err := rows.Scan(&h.ID, &h.PostID, &h.Position, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan headline: %w", err)
		}
		items = append(items, h)
	}
	return items, rows.Err()
}

// ReplaceHeadlines replaces the headline list with the given posts, in
// order. Positions are recomputed as 1..N.
func (s *CurationStore) ReplaceHeadlines(postIDs []uuid.UUID) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin headlines tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM headlines`); err != nil {
		return fmt.Errorf("clear headlines: %w", err)
	}
	for i, id := range postIDs {
		if _, err := tx.Exec(`
			INSERT INTO headlines (post_id, position) VALUES ($1, $2)
		`, id, i+1); err != nil {
			return fmt.Errorf("insert headline %s: %w", id, err)
		}
	}

	return tx.Commit()
}

// TrendingTags returns the curated trending tags ordered by position.
func (s *CurationStore) TrendingTags() ([]models.TrendingTag, error) {
	rows, err := s.db.Query(`
		SELECT id, tag, position, created_at
		FROM trending_tags ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("list trending tags: %w", err)
	}
	defer rows.Close()

	var items []models.TrendingTag
	for rows.Next() {
		var t models.TrendingTag
		if err := rows.Scan(&t.ID, &t.Tag, &t.Position, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan trending tag: %w", err)
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

// ReplaceTrendingTags replaces the trending tag list, in order.
func (s *CurationStore) ReplaceTrendingTags(tags []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin trending tags tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM trending_tags`); err != nil {
		return fmt.Errorf("clear trending tags: %w", err)
	}
	for i, tag := range tags {
		if _, err := tx.Exec(`
			INSERT INTO trending_tags (tag, position) VALUES ($1, $2)
		`, tag, i+1); err != nil {
			return fmt.Errorf("insert trending tag %q: %w", tag, err)
		}
	}

	return tx.Commit()
}

// FeaturedReview returns the pinned featured review, or nil when unset.
func (s *CurationStore) FeaturedReview() (*models.FeaturedReview, error) {
	var f models.FeaturedReview
	err := s.db.QueryRow(`
		SELECT id, post_id, position, created_at
		FROM featured_review ORDER BY position ASC LIMIT 1
	`).Scan(&f.ID, &f.PostID, &f.Position, &f.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find featured review: %w", err)
	}
	return &f, nil
}

// ReplaceFeaturedReview replaces the featured review slot. A nil postID
// clears the slot.
func (s *CurationStore) ReplaceFeaturedReview(postID *uuid.UUID) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin featured review tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM featured_review`); err != nil {
		return fmt.Errorf("clear featured review: %w", err)
	}
	if postID != nil {
		if _, err := tx.Exec(`
			INSERT INTO featured_review (post_id, position) VALUES ($1, 1)
		`, *postID); err != nil {
			return fmt.Errorf("insert featured review: %w", err)
		}
	}

	return tx.Commit()
}

// PopularGuides returns the guides mode and, in manual mode, the pinned
// rows ordered by position. With no rows at all the mode defaults to
// automatic.
func (s *CurationStore) PopularGuides() (models.GuidesMode, []models.PopularGuide, error) {
	rows, err := s.db.Query(`
		SELECT id, mode, post_id, position, created_at
		FROM popular_guides ORDER BY position ASC NULLS LAST`)
	if err != nil {
		return "", nil, fmt.Errorf("list popular guides: %w", err)
	}
	defer rows.Close()

	mode := models.GuidesModeAutomatic
	var items []models.PopularGuide
	for rows.Next() {
		var g models.PopularGuide
		if err := rows.Scan(&g.ID, &g.Mode, &g.PostID, &g.Position, &g.CreatedAt); err != nil {
			return "", nil, fmt.Errorf("scan popular guide: %w", err)
		}
		mode = g.Mode
		if g.PostID != nil {
			items = append(items, g)
		}
	}
	if err := rows.Err(); err != nil {
		return "", nil, err
	}
	return mode, items, nil
}

// ReplacePopularGuides replaces the popular guides configuration. In
// automatic mode a single mode-only row is written and postIDs is ignored.
// In manual mode one row per pinned post is written with dense positions;
// an empty manual selection still writes a mode marker row.
func (s *CurationStore) ReplacePopularGuides(mode models.GuidesMode, postIDs []uuid.UUID) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin popular guides tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM popular_guides`); err != nil {
		return fmt.Errorf("clear popular guides: %w", err)
	}

	if mode == models.GuidesModeAutomatic || len(postIDs) == 0 {
		if _, err := tx.Exec(`
			INSERT INTO popular_guides (mode) VALUES ($1)
		`, mode); err != nil {
			return fmt.Errorf("insert guides mode: %w", err)
		}
		return tx.Commit()
	}

	for i, id := range postIDs {
		if _, err := tx.Exec(`
			INSERT INTO popular_guides (mode, post_id, position) VALUES ($1, $2, $3)
		`, mode, id, i+1); err != nil {
			return fmt.Errorf("insert popular guide %s: %w", id, err)
		}
	}

	return tx.Commit()
}
