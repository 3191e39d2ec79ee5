// Package config loads, normalizes, and validates marquee configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours MARQUEE_* environment overrides.
// The Config type centralizes every knob the CLI needs: where the catalog
// dataset lives and how to read it, query limits, and log output.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical formats, and clear validation errors.
package config
