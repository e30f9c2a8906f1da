package filesystem

import (
	"io"
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// FileSystemProvider is the narrow view of a filesystem the catalog
// generator needs. Paths use the host separator for the OS provider and
// forward slashes for the in-memory provider; callers always build them
// with filepath.Join.
type FileSystemProvider interface {
	// ReadDir returns the immediate entries of a directory sorted by name.
	// Symbolic links are resolved so IsDir reports on the link target.
	ReadDir(path string) ([]FileInfo, error)

	// Open opens a file for reading.
	Open(path string) (io.ReadCloser, error)

	// RealPath returns the absolute path of a directory with every symbolic
	// link resolved. Two paths naming the same directory resolve equally.
	RealPath(path string) (string, error)

	// Create creates or truncates the file at path for writing.
	Create(path string) (io.WriteCloser, error)
}
