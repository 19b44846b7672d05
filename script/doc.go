// Package script loads multi-statement .sql files and feeds them through
// the parser one statement at a time.
//
// The parser core accepts exactly one statement per call; splitting a file
// into statements is the surrounding shell's job, and this package is that
// shell. Files are read through a billy.Filesystem so callers can use the
// host filesystem (osfs) while tests stay in memory (memfs).
package script
