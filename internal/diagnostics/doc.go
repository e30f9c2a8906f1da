// Package diagnostics provides concrete implementations of the
// mkcatalog.Reporter interface.
//
// Available implementations:
//   - ConsoleReporter: Writes styled, human-readable lines to a terminal or any io.Writer
//   - NullReporter: Discards all messages (useful for testing)
//   - Recorder: Keeps every diagnostic in order and optionally forwards to another Reporter
//
// All reporter implementations are safe for concurrent use by multiple goroutines.
package diagnostics
