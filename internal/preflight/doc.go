// Package preflight provides readiness checks for the filesystem paths and
// settings a scan depends on.
//
// The CLI "corpstat preflight" command runs RunAll and prints one line per
// check. Each check returns a Result rather than an error so every problem is
// reported in a single pass.
package preflight
