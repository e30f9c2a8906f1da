// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// This package defines the small set of operations the catalog generator
// performs: listing a directory, reading a file, and truncating a catalog
// file for writing. The in-memory implementation makes traversal and
// fatal-error paths testable without touching disk.
//
// Implementations:
//   - OSFileSystem: Production implementation using OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
package filesystem
