package catalog

import (
	"bufio"
	"encoding/xml"
	"io"
	"strings"

	"github.com/vvka-141/mkcatalog/pkg/mkcatalog"
)

// Section comments introducing each file kind inside a group.
const (
	SectionSchemas         = "W3C XML Schemas"
	SectionClassifications = "Classification Schemes"
	SectionDTDs            = "DTDs"
)

const indentUnit = "  "

// Writer emits XML Catalog markup. Errors are sticky: after the first
// failed write every call is a no-op and Err reports the failure.
type Writer struct {
	w     *bufio.Writer
	depth int
	err   error
}

// NewWriter wraps w. Call Flush when done.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

func (cw *Writer) line(parts ...string) {
	if cw.err != nil {
		return
	}
	for i := 0; i < cw.depth; i++ {
		if _, cw.err = cw.w.WriteString(indentUnit); cw.err != nil {
			return
		}
	}
	for _, p := range parts {
		if _, cw.err = cw.w.WriteString(p); cw.err != nil {
			return
		}
	}
	_, cw.err = cw.w.WriteString("\n")
}

// Begin writes the XML declaration, the OASIS XML Catalogs V1.1 doctype
// and the opening catalog element.
func (cw *Writer) Begin() {
	cw.line(`<?xml version="1.0" encoding="UTF-8"?>`)
	cw.line(`<!DOCTYPE catalog PUBLIC "`, mkcatalog.CatalogPublicID, `" "`, mkcatalog.CatalogSystemID, `">`)
	cw.line(`<catalog xmlns="`, mkcatalog.CatalogNamespace, `">`)
	cw.depth++
}

// End closes the catalog element.
func (cw *Writer) End() {
	cw.depth--
	cw.line(`</catalog>`)
}

// NextCatalog writes a forwarding reference.
func (cw *Writer) NextCatalog(ref string) {
	cw.line(`<nextCatalog catalog="`, attr(ref), `"/>`)
}

// OpenGroup starts a group scoped to base.
func (cw *Writer) OpenGroup(base string) {
	cw.line(`<group xml:base="`, attr(base), `">`)
	cw.depth++
}

// CloseGroup ends the innermost open group.
func (cw *Writer) CloseGroup() {
	cw.depth--
	cw.line(`</group>`)
}

// Comment writes an XML comment.
func (cw *Writer) Comment(text string) {
	cw.line(`<!-- `, comment(text), ` -->`)
}

// URI writes a namespace mapping.
func (cw *Writer) URI(e Entry) {
	cw.line(`<uri name="`, attr(e.Name), `" uri="`, attr(e.URI), `"/>`)
}

// DTDPlaceholder writes the FIXME reminder and an empty public/system
// identifier pair for a DTD file.
func (cw *Writer) DTDPlaceholder(filename string) {
	cw.Comment("FIXME: fill in publicId and systemId for " + filename)
	cw.line(`<public publicId="" uri="`, attr(filename), `"/>`)
	cw.line(`<system systemId="" uri="`, attr(filename), `"/>`)
}

// Flush writes buffered output and returns the first error seen.
func (cw *Writer) Flush() error {
	if cw.err != nil {
		return cw.err
	}
	cw.err = cw.w.Flush()
	return cw.err
}

// Err returns the first write error, if any.
func (cw *Writer) Err() error {
	return cw.err
}

func attr(s string) string {
	var b strings.Builder
	// EscapeText only fails when the underlying writer does.
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

// comment keeps text legal inside <!-- -->, which may not contain "--".
func comment(s string) string {
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "- -")
	}
	return s
}
