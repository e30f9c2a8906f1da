package classifier

import (
	"fmt"
	"strings"

	"github.com/vvka-141/mkcatalog/internal/files/filesystem"
	"github.com/vvka-141/mkcatalog/pkg/mkcatalog"
)

// File name suffixes recognized by the classifier. Matching is case-sensitive.
const (
	SchemaSuffix         = ".xsd"
	ClassificationSuffix = ".xml"
	DTDSuffix            = ".dtd"
)

// Entries is the classified listing of one directory.
// Every list keeps the directory-listing order and never contains hidden names.
type Entries struct {
	Subdirectories  []string
	Schemas         []string
	Classifications []string
	DTDs            []string
}

// FileCount returns the number of indexable files found in the directory.
func (e Entries) FileCount() int {
	return len(e.Schemas) + len(e.Classifications) + len(e.DTDs)
}

// Classifier buckets the immediate entries of a directory.
// Classifier is safe for concurrent use by multiple goroutines as long as
// the provided fsProvider is also thread-safe.
type Classifier struct {
	fsProvider filesystem.FileSystemProvider
}

// NewClassifier creates a classifier over the given filesystem provider.
// Panics if fsProvider is nil.
func NewClassifier(fsProvider filesystem.FileSystemProvider) *Classifier {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Classifier{fsProvider: fsProvider}
}

// Classify lists dirPath and sorts its entries into subdirectories, schema
// files, classification files and DTDs. Hidden entries are dropped and
// files with any other suffix are ignored.
//
// A directory that cannot be listed is fatal for the run; the returned
// error wraps mkcatalog.ErrDirectoryUnreadable.
func (c *Classifier) Classify(dirPath string) (Entries, error) {
	infos, err := c.fsProvider.ReadDir(dirPath)
	if err != nil {
		return Entries{}, fmt.Errorf("cannot open directory %s: %w: %w", dirPath, mkcatalog.ErrDirectoryUnreadable, err)
	}

	var entries Entries
	for _, info := range infos {
		name := info.Name()
		if IsHidden(name) {
			continue
		}
		if info.IsDir() {
			entries.Subdirectories = append(entries.Subdirectories, name)
			continue
		}
		switch {
		case strings.HasSuffix(name, SchemaSuffix):
			entries.Schemas = append(entries.Schemas, name)
		case strings.HasSuffix(name, ClassificationSuffix):
			entries.Classifications = append(entries.Classifications, name)
		case strings.HasSuffix(name, DTDSuffix):
			entries.DTDs = append(entries.DTDs, name)
		}
	}
	return entries, nil
}

// IsHidden reports whether a directory entry name is a dotfile or dot-directory.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
