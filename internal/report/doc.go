// Package report turns a trending comparison into human-readable output.
//
// RenderHTML produces a self-contained HTML page with one table per report
// section; the terminal rendering in the CLI reuses the same row formatting.
// All presentation lives here; the differ's structures stay plain data.
package report
