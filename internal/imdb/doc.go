// Package imdb parses the IMDb bulk dataset dumps into typed records.
//
// The dumps are tab-delimited with a fixed column order and use `\N` as the
// "value not known" token. ParseTitle and ParseRating convert a single data
// line each; absent values become nil pointers, never zeros, so downstream
// ranking can tell an unknown vote count from a zero one. ReadTitles and
// ReadRatings stream whole files, skipping malformed lines and reporting how
// many were skipped.
package imdb
