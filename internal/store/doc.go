// Package store persists built catalog snapshots in SQLite.
//
// The Store owns the database connection, schema initialization, and the
// write path the pipeline uses after a build: WriteSnapshot replaces the
// media_catalog table contents in one transaction and records a build_runs
// row describing the run. Schema changes bump the version in schema.go;
// mismatched databases are rejected rather than migrated, since every run
// can rebuild its database from scratch.
package store
