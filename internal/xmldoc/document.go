// Package xmldoc loads XML documents into a lightweight element tree.
//
// Loading is lenient: the decoder runs in non-strict mode, closes mismatched
// end tags automatically, and on the first unrecoverable syntax error keeps
// the part of the tree built so far instead of failing. Declared encodings
// are honored, and UTF-16 input is detected from its byte order mark or
// from the first bytes of the declaration. Callers inspect the
// result by element local name and by attribute, where an absent attribute
// is distinguishable from an empty one.
package xmldoc

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Element is one node of a loaded document.
type Element struct {
	Name     xml.Name
	Attrs    []xml.Attr
	Children []*Element
}

// Document is the best-effort result of loading an XML byte stream.
type Document struct {
	// Root is nil when no element could be recovered.
	Root *Element

	// Err is the syntax error that ended decoding early, if any.
	Err error
}

// Load parses r leniently. It never returns an error for malformed markup;
// the failure is recorded in Document.Err and the recovered tree is kept.
func Load(r io.Reader) *Document {
	dec := xml.NewDecoder(decodeUTF16(r))
	dec.Strict = false
	dec.CharsetReader = charsetReader

	doc := &Document{}
	var stack []*Element
	for {
		tok, err := dec.Token()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				doc.Err = err
			}
			return doc
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Name: t.Name, Attrs: append([]xml.Attr(nil), t.Attr...)}
			if len(stack) == 0 {
				if doc.Root != nil {
					// Content after the document element is ignored.
					return doc
				}
				doc.Root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}
}

// decodeUTF16 transcodes UTF-16 input to UTF-8 so that encoding/xml, which
// only understands ASCII-compatible prologs, can read it.
func decodeUTF16(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	head, _ := br.Peek(4)

	var enc encoding.Encoding
	switch {
	case bytes.HasPrefix(head, []byte{0xFF, 0xFE}), bytes.HasPrefix(head, []byte{0xFE, 0xFF}):
		// UseBOM lets the mark pick the byte order and strips it.
		enc = unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	case bytes.Equal(head, []byte{'<', 0, '?', 0}):
		enc = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case bytes.Equal(head, []byte{0, '<', 0, '?'}):
		enc = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	default:
		return br
	}
	return transform.NewReader(br, enc.NewDecoder())
}

// charsetReader resolves a declared encoding label. UTF-16 labels pass the
// stream through unchanged: by the time the declaration is read the bytes
// are already UTF-8, either transcoded by decodeUTF16 or mislabeled.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "utf-16", "utf-16le", "utf-16be", "utf16":
		return input, nil
	}
	return charset.NewReaderLabel(label, input)
}

// FindFirst returns the first element in document order whose local name
// equals local, ignoring its namespace, or nil.
func (d *Document) FindFirst(local string) *Element {
	if d == nil || d.Root == nil {
		return nil
	}
	return d.Root.FindFirst(local)
}

// FindFirst searches el and its descendants depth-first.
func (el *Element) FindFirst(local string) *Element {
	if el.Name.Local == local {
		return el
	}
	for _, child := range el.Children {
		if found := child.FindFirst(local); found != nil {
			return found
		}
	}
	return nil
}

// Attr returns the value of the unqualified attribute named local.
// The boolean is false when the attribute is not present.
func (el *Element) Attr(local string) (string, bool) {
	if el == nil {
		return "", false
	}
	for _, a := range el.Attrs {
		if a.Name.Space == "" && a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}
