// Package config loads, normalizes, and validates corpstat configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, loads an optional .env file, and honours
// environment fallbacks such as CORPSTAT_CORPUS_DIR. The Config type
// centralizes every knob the scanner and CLI need.
//
// Always obtain settings through this package so downstream code receives
// absolute paths, canonical log formats, and clear validation errors.
package config
