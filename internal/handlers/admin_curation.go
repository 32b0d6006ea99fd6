// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"teknoblogoji/internal/models"
)

// Curation saves use replace semantics: the submitted list becomes the
// entire table content, positions renumbered densely from 1.

// SaveHeadlines replaces the homepage headline slots.
func (a *Admin) SaveHeadlines(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PostIDs []string `json:"post_ids"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	postIDs, ok := parseUUIDs(w, req.PostIDs)
	if !ok {
		return
	}

	if err := a.curation.ReplaceHeadlines(postIDs); err != nil {
		slog.Error("headlines save failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to save headlines.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}

// SaveTrendingTags replaces the trending tag strip.
func (a *Admin) SaveTrendingTags(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Tags []string `json:"tags"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	tags := make([]string, 0, len(req.Tags))
	for _, tag := range req.Tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			respondError(w, http.StatusBadRequest, "Tags must not be empty.")
			return
		}
		tags = append(tags, tag)
	}

	if err := a.curation.ReplaceTrendingTags(tags); err != nil {
		slog.Error("trending tags save failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to save trending tags.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}

// SaveFeaturedReview pins a post into the featured review slot, or clears
// the slot when post_id is null.
func (a *Admin) SaveFeaturedReview(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PostID *string `json:"post_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	var postID *uuid.UUID
	if req.PostID != nil {
		id, err := uuid.Parse(*req.PostID)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid post ID.")
			return
		}
		postID = &id
	}

	if err := a.curation.ReplaceFeaturedReview(postID); err != nil {
		slog.Error("featured review save failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to save featured review.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}

// SavePopularGuides switches the popular guides list between automatic and
// manual mode. Manual mode pins the submitted post list; automatic mode
// ignores it.
func (a *Admin) SavePopularGuides(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Mode    string   `json:"mode"`
		PostIDs []string `json:"post_ids"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	mode := models.GuidesMode(req.Mode)
	if mode != models.GuidesModeAutomatic && mode != models.GuidesModeManual {
		respondError(w, http.StatusBadRequest, "Mode must be automatic or manual.")
		return
	}

	var postIDs []uuid.UUID
	if mode == models.GuidesModeManual {
		var ok bool
		postIDs, ok = parseUUIDs(w, req.PostIDs)
		if !ok {
			return
		}
	}

	if err := a.curation.ReplacePopularGuides(mode, postIDs); err != nil {
		slog.Error("popular guides save failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to save popular guides.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}

// parseUUIDs parses a list of UUID strings, writing a 400 and returning
// false on the first invalid value.
func parseUUIDs(w http.ResponseWriter, values []string) ([]uuid.UUID, bool) {
	ids := make([]uuid.UUID, 0, len(values))
	for _, v := range values {
		id, err := uuid.Parse(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid post ID.")
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}
