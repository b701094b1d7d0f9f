// Package config loads, normalizes, and validates shownotes configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// SHOWNOTES_NTFY_TOPIC. The Config type centralizes every knob the CLI and
// server need, so scratch directories, external binaries, and lookup settings
// are discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
