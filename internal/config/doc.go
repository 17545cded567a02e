// Package config loads, normalizes, and validates proofsheet configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// PROOFSHEET_MEDIA_DIR. The Config type centralizes every knob the CLI needs,
// so render, sheet, and docs settings are discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
