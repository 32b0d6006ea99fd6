package models

import (
	"testing"
	"time"
)

func TestPostIsGuide(t *testing.T) {
	tests := []struct {
		name string
		tags TagList
		want bool
	}{
		{"rehber tag", TagList{"telefon", "rehber"}, true},
		{"guide tag", TagList{"guide"}, true},
		{"no guide tag", TagList{"telefon", "2025"}, false},
		{"empty tags", nil, false},
		{"case sensitive", TagList{"Rehber"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Post{Tags: tt.tags}
			if got := p.IsGuide(); got != tt.want {
				t.Errorf("IsGuide() with tags %v = %v, want %v", tt.tags, got, tt.want)
			}
		})
	}
}

func TestPostLastModified(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	updated := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	p := &Post{CreatedAt: created}
	if got := p.LastModified(); !got.Equal(created) {
		t.Errorf("LastModified() without update = %v, want %v", got, created)
	}

	p.UpdatedAt = &updated
	if got := p.LastModified(); !got.Equal(updated) {
		t.Errorf("LastModified() with update = %v, want %v", got, updated)
	}
}

func TestTagListScan(t *testing.T) {
	var tags TagList
	if err := tags.Scan([]byte(`["telefon","2025"]`)); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(tags) != 2 || tags[0] != "telefon" || tags[1] != "2025" {
		t.Errorf("Scan result = %v, want [telefon 2025]", tags)
	}

	// NULL column yields an empty list, not an error.
	if err := tags.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) failed: %v", err)
	}
	if tags != nil {
		t.Errorf("Scan(nil) result = %v, want nil", tags)
	}

	if err := tags.Scan(42); err == nil {
		t.Error("Scan(int) should fail")
	}
}

func TestTagListValue(t *testing.T) {
	// nil serializes as an empty JSON array, never NULL.
	v, err := TagList(nil).Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if string(v.([]byte)) != "[]" {
		t.Errorf("nil TagList Value() = %s, want []", v)
	}

	v, err = TagList{"yapay-zeka"}.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if string(v.([]byte)) != `["yapay-zeka"]` {
		t.Errorf(`Value() = %s, want ["yapay-zeka"]`, v)
	}
}
