// Package scan runs a corpus scan end to end: it walks the requested
// languages, feeds every line into an aggregator, renders the report set and
// writes it to the output directory.
//
// By default all languages share one aggregator and produce one report set.
// In per-language mode every language gets its own aggregator and its own
// report directory, and languages are processed by a bounded worker pool.
package scan
