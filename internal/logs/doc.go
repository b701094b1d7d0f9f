// Package logs reads the shared shownotes log file for CLI diagnostics.
//
// It returns trailing lines with bounded memory and supports polling for new
// output, so following a running server's activity never holds the file open
// between reads.
package logs
