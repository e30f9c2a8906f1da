package catalog

import (
	"fmt"
	"path"
	"path/filepath"

	"github.com/vvka-141/mkcatalog/internal/files/classifier"
	"github.com/vvka-141/mkcatalog/internal/files/filesystem"
	"github.com/vvka-141/mkcatalog/pkg/mkcatalog"
)

// Generator regenerates the catalog files of a library tree.
//
// The tree has three tiers: the root directory (tier 1) receives a catalog
// of nextCatalog references to its subdirectories; each of those originator
// directories (tier 2) receives a catalog with one group per subdirectory;
// every directory from tier 3 down contributes a group of uri entries.
// Files that sit directly in tier 1 or tier 2 are never indexed.
//
// Traversal is sequential and depth-first. Each catalog file is fully
// written and closed before the next one is opened.
type Generator struct {
	fsProvider filesystem.FileSystemProvider
	classifier *classifier.Classifier
	reporter   mkcatalog.Reporter
	opts       mkcatalog.Options
}

// NewGenerator creates a generator. Zero-valued option fields fall back to
// mkcatalog.DefaultOptions.
// Panics if fsProvider or reporter is nil.
func NewGenerator(fsProvider filesystem.FileSystemProvider, reporter mkcatalog.Reporter, opts mkcatalog.Options) *Generator {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if reporter == nil {
		panic("reporter cannot be nil")
	}
	defaults := mkcatalog.DefaultOptions()
	if opts.CatalogName == "" {
		opts.CatalogName = defaults.CatalogName
	}
	if opts.Duplicates == "" {
		opts.Duplicates = defaults.Duplicates
	}
	return &Generator{
		fsProvider: fsProvider,
		classifier: classifier.NewClassifier(fsProvider),
		reporter:   reporter,
		opts:       opts,
	}
}

// Generate writes the root catalog for rootDir and then the catalog of
// every originator directory below it.
// The returned error is fatal and wraps mkcatalog.ErrDirectoryUnreadable or
// mkcatalog.ErrCatalogUnwritable; catalogs written before it stay in place.
func (g *Generator) Generate(rootDir string) (mkcatalog.Summary, error) {
	var summary mkcatalog.Summary

	entries, err := g.classifier.Classify(rootDir)
	if err != nil {
		return summary, err
	}
	entries.Subdirectories = g.dropRootAliases(rootDir, entries.Subdirectories, &summary)

	err = g.writeCatalog(filepath.Join(rootDir, g.opts.CatalogName), func(w *Writer) error {
		for _, sub := range entries.Subdirectories {
			w.NextCatalog(path.Join(sub, g.opts.CatalogName))
		}
		return nil
	})
	if err != nil {
		return summary, err
	}
	summary.Catalogs++

	for _, sub := range entries.Subdirectories {
		s, err := g.GenerateOriginator(filepath.Join(rootDir, sub))
		summary.Add(s)
		if err != nil {
			return summary, err
		}
	}
	return summary, nil
}

// GenerateOriginator writes the catalog of one originator directory:
// one top-level group per immediate subdirectory, nested groups below.
func (g *Generator) GenerateOriginator(originatorDir string) (mkcatalog.Summary, error) {
	var summary mkcatalog.Summary

	entries, err := g.classifier.Classify(originatorDir)
	if err != nil {
		return summary, err
	}

	b := &groupBuilder{
		gen:           g,
		originatorDir: originatorDir,
		seen:          newNamespaceIndex(),
		summary:       &summary,
		ancestors:     make(map[string]string),
	}
	if resolved, err := g.fsProvider.RealPath(originatorDir); err == nil {
		b.ancestors[resolved] = originatorDir
	}
	err = g.writeCatalog(filepath.Join(originatorDir, g.opts.CatalogName), func(w *Writer) error {
		for _, sub := range entries.Subdirectories {
			if w.Err() != nil {
				break
			}
			if err := b.build(w, sub); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return summary, err
	}
	summary.Catalogs++
	return summary, nil
}

// dropRootAliases removes originator directories that are links back to
// rootDir, whose catalog would overwrite the root catalog.
func (g *Generator) dropRootAliases(rootDir string, subdirs []string, summary *mkcatalog.Summary) []string {
	root, err := g.fsProvider.RealPath(rootDir)
	if err != nil {
		return subdirs
	}
	kept := subdirs[:0]
	for _, sub := range subdirs {
		dir := filepath.Join(rootDir, sub)
		if resolved, err := g.fsProvider.RealPath(dir); err == nil && resolved == root {
			summary.Warnings++
			g.reporter.Warning(dir, "symbolic link loops back to the library root; directory skipped")
			continue
		}
		kept = append(kept, sub)
	}
	return kept
}

// writeCatalog truncates catalogPath and writes preamble, body and closing tag.
func (g *Generator) writeCatalog(catalogPath string, body func(w *Writer) error) (err error) {
	f, err := g.fsProvider.Create(catalogPath)
	if err != nil {
		return fmt.Errorf("cannot open %s for writing: %w: %w", catalogPath, mkcatalog.ErrCatalogUnwritable, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("cannot close %s: %w: %w", catalogPath, mkcatalog.ErrCatalogUnwritable, cerr)
		}
	}()

	w := NewWriter(f)
	w.Begin()
	if err := body(w); err != nil {
		// Keep what was written so far on disk, as a fatal abort leaves it.
		_ = w.Flush()
		return err
	}
	w.End()
	if err := w.Flush(); err != nil {
		return fmt.Errorf("cannot write %s: %w: %w", catalogPath, mkcatalog.ErrCatalogUnwritable, err)
	}
	g.reporter.Verbose("Wrote %s", catalogPath)
	return nil
}
