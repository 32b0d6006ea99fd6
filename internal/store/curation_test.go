package store

import (
	"testing"

	"github.com/google/uuid"

	"teknoblogoji/internal/models"
)

func TestReplaceHeadlinesDensePositions(t *testing.T) {
	db := testDB(t)
	cat := seedCategory(t, db, "Test Manşet Kategori", "test-manset-kategori")
	curation := NewCurationStore(db)
	t.Cleanup(func() { db.Exec("DELETE FROM headlines") })

	a := seedPost(t, db, cat.ID, "Test Manşet Bir", nil)
	b := seedPost(t, db, cat.ID, "Test Manşet İki", nil)
	c := seedPost(t, db, cat.ID, "Test Manşet Üç", nil)

	if err := curation.ReplaceHeadlines([]uuid.UUID{c.ID, a.ID, b.ID}); err != nil {
		t.Fatalf("ReplaceHeadlines: %v", err)
	}

	headlines, err := curation.Headlines()
	if err != nil {
		t.Fatalf("Headlines: %v", err)
	}
	if len(headlines) != 3 {
		t.Fatalf("got %d headlines, want 3", len(headlines))
	}
	// Positions are dense 1..N and reflect the given order.
	wantOrder := []uuid.UUID{c.ID, a.ID, b.ID}
	for i, h := range headlines {
		if h.Position != i+1 {
			t.Errorf("headline %d position = %d, want %d", i, h.Position, i+1)
		}
		if h.PostID != wantOrder[i] {
			t.Errorf("headline %d post = %s, want %s", i, h.PostID, wantOrder[i])
		}
	}

	// A second save fully replaces the previous list.
	if err := curation.ReplaceHeadlines([]uuid.UUID{b.ID}); err != nil {
		t.Fatalf("ReplaceHeadlines second save: %v", err)
	}
	headlines, err = curation.Headlines()
	if err != nil {
		t.Fatalf("Headlines: %v", err)
	}
	if len(headlines) != 1 || headlines[0].PostID != b.ID || headlines[0].Position != 1 {
		t.Errorf("after replace got %+v, want single entry for %s at position 1", headlines, b.ID)
	}
}

func TestReplaceTrendingTags(t *testing.T) {
	db := testDB(t)
	curation := NewCurationStore(db)
	t.Cleanup(func() { db.Exec("DELETE FROM trending_tags") })

	if err := curation.ReplaceTrendingTags([]string{"yapay-zeka", "telefon", "oyun"}); err != nil {
		t.Fatalf("ReplaceTrendingTags: %v", err)
	}

	tags, err := curation.TrendingTags()
	if err != nil {
		t.Fatalf("TrendingTags: %v", err)
	}
	if len(tags) != 3 {
		t.Fatalf("got %d tags, want 3", len(tags))
	}
	if tags[0].Tag != "yapay-zeka" || tags[0].Position != 1 {
		t.Errorf("first tag = %+v, want yapay-zeka at 1", tags[0])
	}

	// Empty save clears the list.
	if err := curation.ReplaceTrendingTags(nil); err != nil {
		t.Fatalf("ReplaceTrendingTags empty: %v", err)
	}
	tags, err = curation.TrendingTags()
	if err != nil {
		t.Fatalf("TrendingTags: %v", err)
	}
	if len(tags) != 0 {
		t.Errorf("got %d tags after clear, want 0", len(tags))
	}
}

func TestReplaceFeaturedReview(t *testing.T) {
	db := testDB(t)
	cat := seedCategory(t, db, "Test İnceleme Kategori", "test-inceleme-kategori")
	curation := NewCurationStore(db)
	t.Cleanup(func() { db.Exec("DELETE FROM featured_review") })

	p := seedPost(t, db, cat.ID, "Test Öne Çıkan İnceleme", nil)

	if err := curation.ReplaceFeaturedReview(&p.ID); err != nil {
		t.Fatalf("ReplaceFeaturedReview: %v", err)
	}
	review, err := curation.FeaturedReview()
	if err != nil {
		t.Fatalf("FeaturedReview: %v", err)
	}
	if review == nil || review.PostID != p.ID {
		t.Fatalf("featured review = %+v, want post %s", review, p.ID)
	}

	// Clearing the slot.
	if err := curation.ReplaceFeaturedReview(nil); err != nil {
		t.Fatalf("ReplaceFeaturedReview clear: %v", err)
	}
	review, err = curation.FeaturedReview()
	if err != nil {
		t.Fatalf("FeaturedReview: %v", err)
	}
	if review != nil {
		t.Errorf("featured review = %+v after clear, want nil", review)
	}
}

func TestReplacePopularGuidesModes(t *testing.T) {
	db := testDB(t)
	cat := seedCategory(t, db, "Test Rehber Mod Kategori", "test-rehber-mod-kategori")
	curation := NewCurationStore(db)
	t.Cleanup(func() { db.Exec("DELETE FROM popular_guides") })

	g1 := seedPost(t, db, cat.ID, "Test Popüler Rehber Bir", models.TagList{"rehber"})
	g2 := seedPost(t, db, cat.ID, "Test Popüler Rehber İki", models.TagList{"rehber"})

	// Manual mode pins posts with dense positions.
	if err := curation.ReplacePopularGuides(models.GuidesModeManual, []uuid.UUID{g2.ID, g1.ID}); err != nil {
		t.Fatalf("ReplacePopularGuides manual: %v", err)
	}
	mode, guides, err := curation.PopularGuides()
	if err != nil {
		t.Fatalf("PopularGuides: %v", err)
	}
	if mode != models.GuidesModeManual {
		t.Errorf("mode = %s, want manual", mode)
	}
	if len(guides) != 2 || *guides[0].PostID != g2.ID || *guides[0].Position != 1 {
		t.Errorf("manual guides = %+v, want g2 first at position 1", guides)
	}

	// Automatic mode keeps a single marker row and no pins.
	if err := curation.ReplacePopularGuides(models.GuidesModeAutomatic, nil); err != nil {
		t.Fatalf("ReplacePopularGuides automatic: %v", err)
	}
	mode, guides, err = curation.PopularGuides()
	if err != nil {
		t.Fatalf("PopularGuides: %v", err)
	}
	if mode != models.GuidesModeAutomatic {
		t.Errorf("mode = %s, want automatic", mode)
	}
	if len(guides) != 0 {
		t.Errorf("automatic mode returned %d pinned guides, want 0", len(guides))
	}

	// Empty manual selection still records the mode.
	if err := curation.ReplacePopularGuides(models.GuidesModeManual, nil); err != nil {
		t.Fatalf("ReplacePopularGuides empty manual: %v", err)
	}
	mode, guides, err = curation.PopularGuides()
	if err != nil {
		t.Fatalf("PopularGuides: %v", err)
	}
	if mode != models.GuidesModeManual || len(guides) != 0 {
		t.Errorf("empty manual save: mode=%s guides=%d, want manual/0", mode, len(guides))
	}
}
