package catalog_test

import (
	"testing"
	"time"

	"marquee/internal/catalog"
)

func sample() *catalog.Catalog {
	return catalog.New([]catalog.Title{
		{Title: "A", Kind: catalog.KindMovie, Genres: []string{"Dramas"}},
		{Title: "B", Kind: catalog.KindTVShow, Countries: []string{"India"}},
		{Title: "C", Kind: catalog.KindMovie, Genres: []string{"Comedies", "Dramas"}},
	}, "titles.csv", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
}

func TestNewCopiesInput(t *testing.T) {
	titles := []catalog.Title{{Title: "A"}}
	cat := catalog.New(titles, "", time.Time{})
	titles[0].Title = "changed"
	if cat.At(0).Title != "A" {
		t.Fatalf("catalog observed caller mutation: %q", cat.At(0).Title)
	}
	out := cat.Titles()
	out[0].Title = "changed"
	if cat.At(0).Title != "A" {
		t.Fatalf("Titles returned shared storage")
	}
}

func TestSelectAndNarrowPreserveOrder(t *testing.T) {
	cat := sample()
	movies := cat.Select(func(t catalog.Title) bool { return t.Kind == catalog.KindMovie })
	if movies.Len() != 2 || movies.At(0).Title != "A" || movies.At(1).Title != "C" {
		t.Fatalf("unexpected movies %+v", movies.Titles())
	}
	if movies.Catalog() != cat {
		t.Fatal("view lost its catalog")
	}

	comedies := movies.Narrow(func(t catalog.Title) bool {
		return t.HasGenre(map[string]struct{}{"Comedies": {}})
	})
	if comedies.Len() != 1 || comedies.At(0).Title != "C" {
		t.Fatalf("unexpected comedies %+v", comedies.Titles())
	}
	if cat.Len() != 3 {
		t.Fatalf("catalog changed size: %d", cat.Len())
	}
}

func TestAllIteratesInOrder(t *testing.T) {
	var got []string
	for i, title := range sample().All().All() {
		if i != len(got) {
			t.Fatalf("unexpected index %d", i)
		}
		got = append(got, title.Title)
	}
	if len(got) != 3 || got[0] != "A" || got[2] != "C" {
		t.Fatalf("unexpected order %v", got)
	}
}

func TestZeroValuesAreEmpty(t *testing.T) {
	var cat *catalog.Catalog
	if cat.Len() != 0 || cat.All().Len() != 0 || cat.Titles() != nil {
		t.Fatal("nil catalog should be empty")
	}
	var view catalog.View
	if view.Len() != 0 || len(view.Titles()) != 0 {
		t.Fatal("zero view should be empty")
	}
	if (catalog.Title{}).RatingValue() != "" {
		t.Fatal("expected empty rating")
	}
}
