package catalog

import (
	"fmt"
	"path"
	"path/filepath"

	"github.com/vvka-141/mkcatalog/internal/namespace"
	"github.com/vvka-141/mkcatalog/pkg/mkcatalog"
)

// groupBuilder emits the groups of one originator catalog.
type groupBuilder struct {
	gen           *Generator
	originatorDir string
	seen          *namespaceIndex
	summary       *mkcatalog.Summary

	// ancestors maps the resolved path of every directory on the current
	// descent, the originator included, to the path it was reached by.
	ancestors map[string]string
}

// build writes the group for rel (a slash-separated path relative to the
// originator directory) and, nested inside it, the groups of its
// subdirectories.
func (b *groupBuilder) build(w *Writer, rel string) error {
	dir := filepath.Join(b.originatorDir, filepath.FromSlash(rel))
	if resolved, err := b.gen.fsProvider.RealPath(dir); err == nil {
		if first, cycle := b.ancestors[resolved]; cycle {
			b.warn(dir, fmt.Sprintf("symbolic link loops back to %s; directory skipped", first))
			return nil
		}
		b.ancestors[resolved] = dir
		defer delete(b.ancestors, resolved)
	}

	entries, err := b.gen.classifier.Classify(dir)
	if err != nil {
		return err
	}

	w.OpenGroup(rel + "/")
	b.summary.Groups++

	if len(entries.Schemas) > 0 {
		w.Comment(SectionSchemas)
		for _, name := range entries.Schemas {
			b.addEntry(w, dir, rel, name, namespace.KindSchema)
		}
	}
	if len(entries.Classifications) > 0 {
		w.Comment(SectionClassifications)
		for _, name := range entries.Classifications {
			b.addEntry(w, dir, rel, name, namespace.KindClassification)
		}
	}
	if len(entries.DTDs) > 0 {
		w.Comment(SectionDTDs)
		for _, name := range entries.DTDs {
			w.DTDPlaceholder(name)
			b.summary.FixMes++
			b.gen.reporter.FixMe(filepath.Join(dir, name), "fill in publicId and systemId manually")
		}
	}

	b.gen.reporter.Progress(filepath.Join(b.originatorDir, filepath.FromSlash(rel)), entries.FileCount())

	for _, sub := range entries.Subdirectories {
		if w.Err() != nil {
			// The catalog can no longer be written; writeCatalog reports it.
			break
		}
		if err := b.build(w, path.Join(rel, sub)); err != nil {
			return err
		}
	}

	w.CloseGroup()
	return nil
}

// addEntry extracts the namespace of one file and writes its uri entry.
// Extraction problems are reported and the file is left out.
func (b *groupBuilder) addEntry(w *Writer, dir, rel, name string, kind namespace.Kind) {
	filePath := filepath.Join(dir, name)

	res := b.extract(filePath, kind)
	if !res.OK() {
		b.warn(filePath, res.Reason)
		return
	}

	location := path.Join(rel, name)
	if first, dup := b.seen.add(res.Namespace, location); dup {
		switch b.gen.opts.Duplicates {
		case mkcatalog.DuplicatesSkip:
			b.warn(filePath, fmt.Sprintf("namespace %s already mapped to %s; entry skipped", res.Namespace, first))
			return
		case mkcatalog.DuplicatesWarn:
			b.warn(filePath, fmt.Sprintf("namespace %s is also mapped to %s", res.Namespace, first))
		}
	}

	w.URI(Entry{Name: res.Namespace, URI: name})
	b.summary.Entries++
}

func (b *groupBuilder) extract(filePath string, kind namespace.Kind) namespace.Result {
	f, err := b.gen.fsProvider.Open(filePath)
	if err != nil {
		return namespace.Unreadable(err)
	}
	defer f.Close()
	return namespace.Extract(f, kind)
}

func (b *groupBuilder) warn(filePath, reason string) {
	b.summary.Warnings++
	b.gen.reporter.Warning(filePath, reason)
}

// namespaceIndex remembers where each namespace was first mapped within
// one originator catalog.
type namespaceIndex struct {
	first map[string]string
}

func newNamespaceIndex() *namespaceIndex {
	return &namespaceIndex{first: make(map[string]string)}
}

// add records location for ns and reports the earlier location if ns was
// already present.
func (idx *namespaceIndex) add(ns, location string) (string, bool) {
	if first, ok := idx.first[ns]; ok {
		return first, true
	}
	idx.first[ns] = location
	return "", false
}
