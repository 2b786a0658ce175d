// Package logging assembles structured slog loggers for corpstat.
//
// It owns the console and JSON handlers, level and output plumbing, and
// context helpers that tag log lines with the scan run ID and the language or
// project being processed. A no-op logger is provided for tests and for
// wiring code that has no logger to hand.
package logging
