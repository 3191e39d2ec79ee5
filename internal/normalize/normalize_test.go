package normalize_test

import (
	"testing"

	"marquee/internal/catalog"
	"marquee/internal/normalize"
)

func TestCanonicalColumn(t *testing.T) {
	tests := map[string]string{
		"  Release Year ": "release_year",
		"Listed In":       "listed_in",
		"type":            "type",
		"":                "",
	}
	for in, want := range tests {
		if got := normalize.CanonicalColumn(in); got != want {
			t.Errorf("CanonicalColumn(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRecordResolvesAliasesInPriorityOrder(t *testing.T) {
	n := normalize.New(nil, nil)

	rec := n.Record(normalize.Row{
		"Content Type": "Movie",
		"Name":         "Alpha",
		"Year":         "2019",
		"Genres":       "Dramas",
		"Category":     "Ignored",
		"Run Time":     "95 min",
	})

	if rec.Kind != catalog.KindMovie || rec.KindLabel != "Movie" {
		t.Fatalf("unexpected kind %q (%q)", rec.Kind, rec.KindLabel)
	}
	if rec.Title != "Alpha" {
		t.Fatalf("unexpected title %q", rec.Title)
	}
	if rec.ReleaseYear == nil || *rec.ReleaseYear != "2019" {
		t.Fatalf("unexpected release year %v", rec.ReleaseYear)
	}
	if rec.Genre == nil || *rec.Genre != "Dramas" {
		t.Fatalf("expected genres column to win over category, got %v", rec.Genre)
	}
	if rec.Duration == nil || *rec.Duration != "95 min" {
		t.Fatalf("unexpected duration %v", rec.Duration)
	}
	if rec.Rating != nil || rec.Country != nil || rec.DateAdded != nil || rec.Director != nil {
		t.Fatalf("expected absent fields to be nil: %+v", rec)
	}
}

func TestRecordMissingKindAndTitle(t *testing.T) {
	rec := normalize.New(nil, nil).Record(normalize.Row{"rating": "PG", "title": "   "})

	if rec.Kind != catalog.KindUnknown || rec.KindLabel != "Unknown" {
		t.Fatalf("expected Unknown kind, got %q (%q)", rec.Kind, rec.KindLabel)
	}
	if rec.Title != "" {
		t.Fatalf("expected empty title, got %q", rec.Title)
	}
	if rec.Rating == nil || *rec.Rating != "PG" {
		t.Fatalf("unexpected rating %v", rec.Rating)
	}
}

func TestRecordKeepsUnrecognizedKindLabel(t *testing.T) {
	rec := normalize.New(nil, nil).Record(normalize.Row{"type": "Documentary"})
	if rec.Kind != catalog.KindUnknown {
		t.Fatalf("expected Unknown, got %q", rec.Kind)
	}
	if rec.KindLabel != "Documentary" {
		t.Fatalf("expected raw label kept, got %q", rec.KindLabel)
	}
}

func TestCollidingColumnsUseLexicallyFirst(t *testing.T) {
	rec := normalize.New(nil, nil).Record(normalize.Row{
		"Title":  "Upper",
		"title":  "lower",
		"TITLE ": "padded",
	})
	if rec.Title != "padded" {
		t.Fatalf("expected lexically first source column, got %q", rec.Title)
	}
}

func TestNormalizeKeepsOrder(t *testing.T) {
	rows := []normalize.Row{
		{"type": "TV Show", "title": "B"},
		{"type": "movie", "title": "A"},
		{"type": "Podcast", "title": "C"},
	}
	recs := normalize.New(nil, nil).Normalize(rows)
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}
	want := []catalog.Kind{catalog.KindTVShow, catalog.KindMovie, catalog.KindUnknown}
	for i, rec := range recs {
		if rec.Title != rows[i]["title"] || rec.Kind != want[i] {
			t.Fatalf("record %d = %q/%q", i, rec.Title, rec.Kind)
		}
	}
}

func TestFoldKind(t *testing.T) {
	tests := []struct {
		label string
		want  catalog.Kind
		ok    bool
	}{
		{"Movie", catalog.KindMovie, true},
		{"  TV   SHOW ", catalog.KindTVShow, true},
		{"Series", catalog.KindTVShow, true},
		{"FILM", catalog.KindMovie, true},
		{"unknown", catalog.KindUnknown, true},
		{"Anime", catalog.KindUnknown, false},
		{"", catalog.KindUnknown, false},
	}
	for _, tt := range tests {
		got, ok := normalize.FoldKind(tt.label)
		if got != tt.want || ok != tt.ok {
			t.Errorf("FoldKind(%q) = %q, %v; want %q, %v", tt.label, got, ok, tt.want, tt.ok)
		}
	}
}
