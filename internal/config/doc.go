// Package config loads, normalizes, and validates marquee configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// MARQUEE_OUT_ROOT. The Config type centralizes every knob the CLI needs:
// dataset download locations, catalog category rules, vote thresholds, diff
// eligibility rules, and log output.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical type names, and clear validation errors.
package config
