// Package pipeline drives one catalog build run end to end: download the
// datasets into the run directory, parse them, build and optionally filter
// the catalog, and persist the result as CSV and SQLite.
//
// The pipeline owns sequencing and logging only; all data logic lives in the
// imdb, catalog, fetch, and store packages. Run state (the chosen run
// directory) comes in as an explicit value.
package pipeline
