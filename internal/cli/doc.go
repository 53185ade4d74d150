// Package cli implements the mergejoin command line interface.
//
// Three commands share one engine: merge and join operate directly on two
// sorted line files, while run executes a CUE job file that may also draw
// either side from an ordered SQLite query. Output goes to stdout as plain
// text or line-delimited JSON; diagnostics go to stderr.
package cli
