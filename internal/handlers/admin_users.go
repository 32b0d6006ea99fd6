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

	"teknoblogoji/internal/middleware"
	"teknoblogoji/internal/models"
)

// minPasswordLen is the minimum accepted password length for new accounts.
const minPasswordLen = 8

// ListUsers returns all accounts. Admin-only.
func (a *Admin) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := a.users.List()
	if err != nil {
		slog.Error("list users failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load users.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"users": users})
}

// CreateUser creates an editor or admin account. The new user is forced
// through 2FA enrollment on first login.
func (a *Admin) CreateUser(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var req struct {
		Email       string `json:"email"`
		DisplayName string `json:"display_name"`
		Password    string `json:"password"`
		Role        string `json:"role"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	email := strings.TrimSpace(req.Email)
	displayName := strings.TrimSpace(req.DisplayName)
	role := models.Role(req.Role)

	switch {
	case email == "":
		respondError(w, http.StatusBadRequest, "Email is required.")
		return
	case displayName == "":
		respondError(w, http.StatusBadRequest, "Display name is required.")
		return
	case len(req.Password) < minPasswordLen:
		respondError(w, http.StatusBadRequest, "Password must be at least 8 characters.")
		return
	case role != models.RoleAdmin && role != models.RoleEditor:
		respondError(w, http.StatusBadRequest, "Invalid role.")
		return
	}

	existing, err := a.users.FindByEmail(email)
	if err != nil {
		slog.Error("user lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to create user.")
		return
	}
	if existing != nil {
		respondError(w, http.StatusConflict, "A user with this email already exists.")
		return
	}

	created, err := a.users.Create(email, req.Password, displayName, role)
	if err != nil {
		slog.Error("user create failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to create user.")
		return
	}

	if created.IsAdmin() {
		slog.Info("admin account created", "email", created.Email, "by", sess.Email)
	}

	respondJSON(w, http.StatusCreated, map[string]any{"user": created})
}

// ResetUser2FA resets another user's 2FA, forcing re-setup on next login.
func (a *Admin) ResetUser2FA(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	targetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID.")
		return
	}

	// Cannot reset your own 2FA.
	if targetID == sess.UserID {
		respondError(w, http.StatusForbidden, "Cannot reset your own 2FA.")
		return
	}

	target, err := a.users.FindByID(targetID)
	if err != nil {
		slog.Error("user lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to reset 2FA.")
		return
	}
	if target == nil {
		respondError(w, http.StatusNotFound, "User not found.")
		return
	}

	if err := a.users.ResetTOTP(targetID); err != nil {
		slog.Error("reset 2fa failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to reset 2FA.")
		return
	}

	slog.Info("2fa reset by admin", "admin", sess.Email, "target_user", targetID)
	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}
