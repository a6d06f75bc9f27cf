// Package config loads, normalizes, and validates gibberlink configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the GIBBERLINK_BUNDLE_DIR
// environment fallback. Obtain settings through this package so downstream
// code receives sanitized paths, a parseable default protocol token, and
// canonical log formats.
package config
