package store

import (
	"context"
	"testing"
	"time"

	"teknoblogoji/internal/models"
)

func TestPostLifecycle(t *testing.T) {
	db := testDB(t)
	cat := seedCategory(t, db, "Test Telefonlar", "test-telefonlar-lifecycle")
	posts := NewPostStore(db)

	created := seedPost(t, db, cat.ID, "Test En İyi Telefonlar Lifecycle", models.TagList{"telefon", "2025"})
	if created.Slug != "test-en-iyi-telefonlar-lifecycle" {
		t.Errorf("slug = %q, want transliterated slug", created.Slug)
	}
	if created.PublishedAt == nil {
		t.Error("publishing should set published_at")
	}

	// Slug lookup resolves the joined category slug.
	found, err := posts.FindPublishedBySlug(created.Slug)
	if err != nil {
		t.Fatalf("FindPublishedBySlug: %v", err)
	}
	if found == nil {
		t.Fatal("published post not found by slug")
	}
	if found.CategorySlug != cat.Slug {
		t.Errorf("CategorySlug = %q, want %q", found.CategorySlug, cat.Slug)
	}

	// Title edits must not re-derive the slug.
	found.Title = "Completely Different Title"
	if err := posts.Update(found); err != nil {
		t.Fatalf("Update: %v", err)
	}
	after, err := posts.FindByID(found.ID)
	if err != nil || after == nil {
		t.Fatalf("FindByID after update: %v", err)
	}
	if after.Slug != created.Slug {
		t.Errorf("slug changed on title edit: %q → %q", created.Slug, after.Slug)
	}
	if after.UpdatedAt == nil {
		t.Error("update should set updated_at")
	}

	// View counter.
	if err := posts.IncrementViews(found.ID); err != nil {
		t.Fatalf("IncrementViews: %v", err)
	}
	bumped, _ := posts.FindByID(found.ID)
	if bumped.Views != after.Views+1 {
		t.Errorf("views = %d, want %d", bumped.Views, after.Views+1)
	}

	if err := posts.Delete(found.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	gone, err := posts.FindByID(found.ID)
	if err != nil {
		t.Fatalf("FindByID after delete: %v", err)
	}
	if gone != nil {
		t.Error("post still present after delete")
	}
}

func TestPostListByTagAndGuides(t *testing.T) {
	db := testDB(t)
	cat := seedCategory(t, db, "Test Rehber Kategori", "test-rehber-kategori")
	posts := NewPostStore(db)

	seedPost(t, db, cat.ID, "Test Kulaklık Rehberi Tag", models.TagList{"rehber", "kulaklik-test-tag"})
	seedPost(t, db, cat.ID, "Test Telefon Haberi Tag", models.TagList{"kulaklik-test-tag"})

	tagged, err := posts.ListByTag("kulaklik-test-tag")
	if err != nil {
		t.Fatalf("ListByTag: %v", err)
	}
	if len(tagged) != 2 {
		t.Errorf("ListByTag returned %d posts, want 2", len(tagged))
	}

	guides, err := posts.ListGuides()
	if err != nil {
		t.Fatalf("ListGuides: %v", err)
	}
	foundGuide := false
	for _, g := range guides {
		if g.Slug == "test-kulaklik-rehberi-tag" {
			foundGuide = true
		}
		if g.Slug == "test-telefon-haberi-tag" {
			t.Error("non-guide post returned by ListGuides")
		}
	}
	if !foundGuide {
		t.Error("guide-tagged post missing from ListGuides")
	}
}

func TestPostSitemapSources(t *testing.T) {
	db := testDB(t)
	cat := seedCategory(t, db, "Test Sitemap Kategori", "test-sitemap-kategori")
	posts := NewPostStore(db)
	cats := NewCategoryStore(db)

	p := seedPost(t, db, cat.ID, "Test Sitemap Yazısı", models.TagList{"sitemap-test-etiket"})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	entries, err := posts.SitemapPosts(ctx)
	if err != nil {
		t.Fatalf("SitemapPosts: %v", err)
	}
	found := false
	for _, e := range entries {
		if e.Slug == p.Slug {
			found = true
			if e.CategorySlug != cat.Slug {
				t.Errorf("sitemap category slug = %q, want %q", e.CategorySlug, cat.Slug)
			}
			if e.LastModified.IsZero() {
				t.Error("sitemap entry missing last modified time")
			}
		}
	}
	if !found {
		t.Error("published post missing from sitemap entries")
	}

	tags, err := posts.SitemapTags(ctx)
	if err != nil {
		t.Fatalf("SitemapTags: %v", err)
	}
	foundTag := false
	for _, tag := range tags {
		if tag == "sitemap-test-etiket" {
			foundTag = true
		}
	}
	if !foundTag {
		t.Error("post tag missing from distinct sitemap tags")
	}

	catEntries, err := cats.SitemapCategories(ctx)
	if err != nil {
		t.Fatalf("SitemapCategories: %v", err)
	}
	foundCat := false
	for _, e := range catEntries {
		if e.Slug == cat.Slug {
			foundCat = true
		}
	}
	if !foundCat {
		t.Error("category missing from sitemap categories")
	}
}

func TestDraftsExcludedFromPublicQueries(t *testing.T) {
	db := testDB(t)
	cat := seedCategory(t, db, "Test Taslak Kategori", "test-taslak-kategori")
	posts := NewPostStore(db)

	draft, err := posts.Create(&models.Post{
		Title:      "Test Taslak Yazı",
		Slug:       "test-taslak-yazi",
		Content:    "draft content",
		CategoryID: cat.ID,
		Status:     models.PostStatusDraft,
	})
	if err != nil {
		t.Fatalf("create draft: %v", err)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM posts WHERE id = $1", draft.ID) })

	if draft.PublishedAt != nil {
		t.Error("draft should not get published_at")
	}

	found, err := posts.FindPublishedBySlug(draft.Slug)
	if err != nil {
		t.Fatalf("FindPublishedBySlug: %v", err)
	}
	if found != nil {
		t.Error("draft visible through published slug lookup")
	}

	ctx := context.Background()
	entries, err := posts.SitemapPosts(ctx)
	if err != nil {
		t.Fatalf("SitemapPosts: %v", err)
	}
	for _, e := range entries {
		if e.Slug == draft.Slug {
			t.Error("draft included in sitemap entries")
		}
	}
}
