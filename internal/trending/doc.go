// Package trending compares two catalog snapshots and classifies titles into
// ranked report sections.
//
// Diff computes per-title vote and rating deltas, vote ranks, and membership
// changes, then emits size-capped sections: absolute vote gainers, percent
// vote gainers, rating movers, rank jumps, new titles, and dropped titles.
// Ranking always runs over the full eligible set before truncation, sections
// are independent, and every ordering carries a deterministic id tie-break.
//
// Percent change is undefined when the old vote count is zero; such titles
// are excluded from the percent section entirely rather than ranked last.
package trending
