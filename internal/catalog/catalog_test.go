package catalog

import (
	"context"
	"errors"
	"testing"

	"campusmap/internal/models"
)

func TestSeed_Shape(t *testing.T) {
	campuses := Seed()
	if len(campuses) != 18 {
		t.Fatalf("len(Seed()) = %d; want 18", len(campuses))
	}
	seen := map[models.ID]bool{}
	for _, c := range campuses {
		if seen[c.ID] {
			t.Errorf("duplicate id %s", c.ID)
		}
		seen[c.ID] = true
		if !KnownCategory(c.Category) {
			t.Errorf("campus %s has unknown category %q", c.ID, c.Category)
		}
	}
}

func TestColorOf(t *testing.T) {
	tests := []struct {
		category string
		want     string
	}{
		{"administration", "darkblue"},
		{"education", "green"},
		{"dormitory", "orange"},
		{"library", "purple"},
		{"sport", "red"},
		{"culture", "pink"},
		{"food", "cadetblue"},
		{"medicine", "darkred"},
		{"parking", DefaultColor},
	}
	for _, tt := range tests {
		if got := ColorOf(tt.category); got != tt.want {
			t.Errorf("ColorOf(%q) = %q; want %q", tt.category, got, tt.want)
		}
	}
}

func TestMemoryRepository_Search(t *testing.T) {
	repo := NewMemoryRepository(Seed())
	ctx := context.Background()

	tests := []struct {
		name    string
		term    string
		wantIDs []models.ID
	}{
		{name: "by name", term: "library", wantIDs: []models.ID{"13"}},
		{name: "case insensitive", term: "DORMITORY no. 2", wantIDs: []models.ID{"12"}},
		{name: "by address", term: "karl marx", wantIDs: []models.ID{"1", "16", "17", "18"}},
		{name: "no match", term: "stadium", wantIDs: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Search(ctx, tt.term)
			if err != nil {
				t.Fatalf("Search(%q) returned error: %v", tt.term, err)
			}
			if got == nil {
				t.Fatalf("Search(%q) = nil; want empty slice", tt.term)
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Search(%q) = %d results; want %d", tt.term, len(got), len(tt.wantIDs))
			}
			for i, c := range got {
				if c.ID != tt.wantIDs[i] {
					t.Errorf("Search(%q)[%d].ID = %s; want %s", tt.term, i, c.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestMemoryRepository_Get(t *testing.T) {
	repo := NewMemoryRepository(Seed())
	ctx := context.Background()

	c, err := repo.Get(ctx, "17")
	if err != nil {
		t.Fatalf("Get(17) returned error: %v", err)
	}
	if c.MealTimes == nil || c.MealTimes.Oldest().Key != "Breakfast" {
		t.Errorf("Get(17) meal times = %v; want Breakfast first", c.MealTimes)
	}

	if _, err := repo.Get(ctx, "017"); err != nil {
		t.Errorf("Get(017) returned error: %v; want numeric match", err)
	}

	for _, id := range []models.ID{"99", "abc", ""} {
		if _, err := repo.Get(ctx, id); !errors.Is(err, ErrNotFound) {
			t.Errorf("Get(%q) error = %v; want ErrNotFound", id, err)
		}
	}
}

func TestFilterState_Layer(t *testing.T) {
	campuses := Seed()
	f := NewFilterState()

	if got := len(f.Layer(campuses)); got != 18 {
		t.Fatalf("initial layer = %d markers; want 18", got)
	}

	f.Set("education", false)
	f.Set("dormitory", false)
	layer := f.Layer(campuses)
	if len(layer) != 18-9-3 {
		t.Errorf("layer without education and dormitory = %d markers; want 6", len(layer))
	}
	for _, m := range layer {
		if m.Category == "education" || m.Category == "dormitory" {
			t.Errorf("hidden category %q in layer", m.Category)
		}
		if m.Color != ColorOf(m.Category) {
			t.Errorf("marker %s color = %q; want %q", m.ID, m.Color, ColorOf(m.Category))
		}
	}

	f.Set("education", true)
	if !f.Visible("education") || f.Visible("dormitory") {
		t.Errorf("Visible(education, dormitory) = %v, %v; want true, false", f.Visible("education"), f.Visible("dormitory"))
	}

	snap := f.Snapshot()
	if len(snap) != len(Categories) {
		t.Errorf("len(Snapshot()) = %d; want %d", len(snap), len(Categories))
	}
	if snap["dormitory"] || !snap["library"] {
		t.Errorf("Snapshot() = %v; want dormitory hidden and library shown", snap)
	}
}
