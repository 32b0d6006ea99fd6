package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// stockCategories is the curated category list created on first run.
// Slugs are pre-normalized at data-entry time; the slug generator is not
// applied to category names at read time.
var stockCategories = []struct {
	name string
	slug string
}{
	{"Genel", "genel"},
	{"Yazılım", "yazilim"},
	{"Telefon", "telefon"},
	{"Bilgisayar", "bilgisayar"},
	{"Yapay Zeka", "yapay-zeka"},
}

// Seed populates the database with initial development data: a default
// admin user and the stock category list. It is a no-op when users
// already exist. The admin will be prompted to set up 2FA on first login.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO users (email, password_hash, display_name, role, totp_enabled)
		VALUES ($1, $2, $3, $4, $5)
	`, "admin@teknoblogoji.local", string(hash), "Admin", "admin", false)
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	for _, c := range stockCategories {
		_, err := db.Exec(`
			INSERT INTO categories (name, slug) VALUES ($1, $2)
			ON CONFLICT (slug) DO NOTHING
		`, c.name, c.slug)
		if err != nil {
			return fmt.Errorf("seed category %s: %w", c.slug, err)
		}
	}

	slog.Info("database seeded with default admin user and stock categories",
		"email", "admin@teknoblogoji.local",
		"password", "admin",
	)

	return nil
}
