// Package logging constructs the slog loggers used across marquee.
//
// New builds a logger from explicit options (level, format, optional log
// file); NewFromConfig derives those options from application configuration.
// Attr helpers keep field names consistent between the console and JSON
// outputs.
package logging
