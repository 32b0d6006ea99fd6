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

// CommentStore manages reader comments. New comments start unapproved and
// only appear publicly after moderation.
type CommentStore struct {
	db *sql.DB
}

// NewCommentStore returns a new CommentStore.
func NewCommentStore(db *sql.DB) *CommentStore {
	return &CommentStore{db: db}
}

const commentColumns = `id, post_id, author_name, content, approved, created_at`

// scanComment scans a row into a Comment struct.
func scanComment(scanner interface{ Scan(...any) error }) (*models.Comment, error) {
	var c models.Comment
	err := scanner.Scan(&c.ID, &c.PostID, &c.AuthorName, &c.Content, &c.Approved, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// collectComments drains a result set into a slice of comments.
func collectComments(rows *sql.Rows) ([]models.Comment, error) {
	defer rows.Close()
	var items []models.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// ListApprovedByPost returns the approved comments on a post, oldest first.
func (s *CommentStore) ListApprovedByPost(postID uuid.UUID) ([]models.Comment, error) {
	rows, err := s.db.Query(`
		SELECT `+commentColumns+` FROM comments
		WHERE post_id = $1 AND approved
		ORDER BY created_at ASC`, postID)
	if err != nil {
		return nil, fmt.Errorf("list approved comments: %w", err)
	}
	return collectComments(rows)
}

// ListAll returns every comment, newest first. Moderation use.
func (s *CommentStore) ListAll() ([]models.Comment, error) {
	rows, err := s.db.Query(`SELECT ` + commentColumns + ` FROM comments ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return collectComments(rows)
}

// Create inserts a new, unapproved comment and returns it.
func (s *CommentStore) Create(c *models.Comment) (*models.Comment, error) {
	row := s.db.QueryRow(`
		INSERT INTO comments (post_id, author_name, content)
		VALUES ($1, $2, $3)
		RETURNING `+commentColumns,
		c.PostID, c.AuthorName, c.Content,
	)
	result, err := scanComment(row)
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return result, nil
}

// Approve marks a comment as publicly visible.
func (s *CommentStore) Approve(id uuid.UUID) error {
	_, err := s.db.Exec(`UPDATE comments SET approved = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("approve comment: %w", err)
	}
	return nil
}

// Delete removes a comment by ID.
func (s *CommentStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}
