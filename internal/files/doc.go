// Package files groups the filesystem-facing building blocks of mkcatalog.
//
// Sub-packages:
//   - filesystem: Filesystem abstraction interfaces and implementations (OS and in-memory)
//   - classifier: Buckets one directory listing into subdirectories, schemas,
//     classification schemes and DTDs
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/mkcatalog/internal/files/classifier"
//	    "github.com/vvka-141/mkcatalog/internal/files/filesystem"
//	)
//
//	c := classifier.NewClassifier(filesystem.NewOSFileSystem())
//	entries, err := c.Classify("./W3C/2015")
package files
