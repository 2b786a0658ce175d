// Package output persists report artifacts into a results directory.
//
// Each report is replaced atomically so a reader never sees a half-written
// file. A failed write is logged and handed to the writer's error callback;
// it never stops the remaining reports from being written. An advisory lock
// file keeps two scans from writing into the same directory at once.
package output
