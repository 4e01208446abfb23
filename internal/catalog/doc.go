// Package catalog joins parsed title and rating records into ranked,
// deduplicated catalog snapshots.
//
// Build performs a strict inner join on title id: an entry exists only when
// both title metadata and a known rating+vote pair are present. Category
// rules are pluggable predicates over the title record, so callers decide
// what to exclude (adult titles, non-movie/series types, undated titles)
// without the builder hardcoding policy. Snapshots are ordered by the
// popularity key — votes descending, rating descending, id ascending — and
// the ordering is reproducible byte for byte.
//
// Snapshots are never mutated in place; FilterMinVotes returns a fresh
// snapshot that preserves relative order.
package catalog
