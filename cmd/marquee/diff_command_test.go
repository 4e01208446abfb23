package main

import (
	"os"
	"path/filepath"
	"testing"

	"marquee/internal/catalog"
	"marquee/internal/imdb"
)

func TestDiffCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	oldPath := filepath.Join(env.baseDir, "media_catalog_2026-08-22.csv")
	newPath := filepath.Join(env.baseDir, "media_catalog_2026-08-29.csv")
	writeCatalogFixture(t, oldPath, catalog.Snapshot{
		{ID: "tt0000001", Title: "Steady", Year: intPtr(2020), Type: imdb.TypeMovie, PrimaryGenre: "Drama", Rating: 8.0, Votes: 5000},
		{ID: "tt0000002", Title: "Goner", Year: intPtr(2019), Type: imdb.TypeMovie, PrimaryGenre: "Action", Rating: 6.5, Votes: 900},
	})
	writeCatalogFixture(t, newPath, catalog.Snapshot{
		{ID: "tt0000001", Title: "Steady", Year: intPtr(2020), Type: imdb.TypeMovie, PrimaryGenre: "Drama", Rating: 8.1, Votes: 7500},
		{ID: "tt0000003", Title: "Debutant", Year: intPtr(2026), Type: imdb.TypeSeries, PrimaryGenre: "Comedy", Rating: 7.9, Votes: 1200},
	})

	reportPath := filepath.Join(env.baseDir, "report.html")
	out, _, err := runCLI(t, []string{"diff", oldPath, newPath, "--out", reportPath, "--print"}, env.configPath)
	if err != nil {
		t.Fatalf("diff: %v", err)
	}
	requireContains(t, out, "Comparing 2026-08-22")
	requireContains(t, out, "1 common, 1 new, 1 dropped")
	requireContains(t, out, "Top vote gainers")
	requireContains(t, out, "Steady")
	requireContains(t, out, reportPath)

	html, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	requireContains(t, string(html), "Debutant")
	requireContains(t, string(html), "Goner")
	requireContains(t, string(html), "2026-08-29")
}

func TestDiffCommandDefaultOutputPath(t *testing.T) {
	env := setupCLITestEnv(t)

	runDir := filepath.Join(env.baseDir, "2026-08-29")
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		t.Fatalf("mkdir run dir: %v", err)
	}
	oldPath := filepath.Join(env.baseDir, "media_catalog_2026-08-22.csv")
	newPath := filepath.Join(runDir, "media_catalog.csv")
	writeCatalogFixture(t, oldPath, catalog.Snapshot{})
	writeCatalogFixture(t, newPath, catalog.Snapshot{})

	if _, _, err := runCLI(t, []string{"diff", oldPath, newPath}, env.configPath); err != nil {
		t.Fatalf("diff: %v", err)
	}

	want := filepath.Join(runDir, "catalog_diff_2026-08-22_to_2026-08-29.html")
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("expected report at %s: %v", want, err)
	}
}
