package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// CatalogCSV is a small dataset in the column layout of the public Netflix
// titles export. It covers both kinds, a title with no release year, blank
// cells and quoted multi-value cells.
const CatalogCSV = `show_id,type,title,director,country,date_added,release_year,rating,duration,listed_in
s1,Movie,Alpha,Ann Lee,"United States, India","September 25, 2021",2020,TV-MA,100 min,"Dramas, Comedies"
s2,TV Show,Beta,,United Kingdom,"July 1, 2019",2018,TV-14,3 Seasons,"Crime TV Shows, Dramas"
s3,Movie,Gamma,Raj Rao,India,"March 3, 2020",1995,PG,80 min,Comedies
s4,TV Show,Delta,,,,,,1 Season,Kids' TV
`

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
