// Package main hosts the corpstat CLI entrypoint and command graph.
//
// The Cobra command tree resolves configuration once, builds the structured
// logger, and hands off to the internal packages: scan runs the statistics
// pipeline, languages lists the corpus layout, preflight checks the
// environment, and config scaffolds or validates the TOML file.
package main
