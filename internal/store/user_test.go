// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"teknoblogoji/internal/models"
)

func TestUserLifecycle(t *testing.T) {
	db := testDB(t)
	users := NewUserStore(db)

	created, err := users.Create("editor@example.com", "parola-sifre", "Editör", models.RoleEditor)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM users WHERE id = $1", created.ID)
	})

	if created.Role != models.RoleEditor {
		t.Errorf("role = %q, want editor", created.Role)
	}
	if created.IsAdmin() {
		t.Error("editor should not be admin")
	}
	if created.TOTPEnabled {
		t.Error("new user should not have TOTP enabled")
	}

	found, err := users.FindByEmail("editor@example.com")
	if err != nil {
		t.Fatalf("find by email: %v", err)
	}
	if found == nil || found.ID != created.ID {
		t.Fatal("created user not found by email")
	}

	if !users.CheckPassword(found, "parola-sifre") {
		t.Error("correct password rejected")
	}
	if users.CheckPassword(found, "yanlis") {
		t.Error("wrong password accepted")
	}

	listed, err := users.List()
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	var seen bool
	for _, u := range listed {
		if u.ID == created.ID {
			seen = true
		}
	}
	if !seen {
		t.Error("created user missing from List()")
	}
}

func TestUserTOTPReset(t *testing.T) {
	db := testDB(t)
	users := NewUserStore(db)

	created, err := users.Create("totp@example.com", "parola-sifre", "TOTP User", models.RoleEditor)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM users WHERE id = $1", created.ID)
	})

	if err := users.SetTOTPSecret(created.ID, "JBSWY3DPEHPK3PXP"); err != nil {
		t.Fatalf("set totp secret: %v", err)
	}
	if err := users.EnableTOTP(created.ID); err != nil {
		t.Fatalf("enable totp: %v", err)
	}

	enrolled, err := users.FindByID(created.ID)
	if err != nil || enrolled == nil {
		t.Fatalf("find enrolled user: %v", err)
	}
	if !enrolled.TOTPEnabled || enrolled.TOTPSecret == nil {
		t.Fatal("user should be 2FA-enrolled")
	}
	if enrolled.Needs2FASetup() {
		t.Error("enrolled user should not need 2FA setup")
	}

	// Admin reset forces re-enrollment on next login.
	if err := users.ResetTOTP(created.ID); err != nil {
		t.Fatalf("reset totp: %v", err)
	}

	reset, err := users.FindByID(created.ID)
	if err != nil || reset == nil {
		t.Fatalf("find reset user: %v", err)
	}
	if reset.TOTPEnabled || reset.TOTPSecret != nil {
		t.Error("reset should clear the secret and disable TOTP")
	}
	if !reset.Needs2FASetup() {
		t.Error("reset user should need 2FA setup again")
	}
}
