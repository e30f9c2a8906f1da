package namespace

import (
	"io"
	"strings"

	"github.com/vvka-141/mkcatalog/internal/xmldoc"
)

// rule inspects a loaded document and returns a conclusive Result, or
// false to let the next rule in the chain decide.
type rule func(doc *xmldoc.Document) (Result, bool)

var rulesByKind = map[Kind][]rule{
	KindSchema: {
		schemaTargetNamespace,
	},
	KindClassification: {
		requireRootElement,
		classificationSchemeURI,
		rootTargetNamespace,
		fallbackNoNamespace,
	},
}

// Extract reads the document in r and determines the namespace of content
// declared as kind. Malformed markup is tolerated; see the package
// documentation for the rules.
func Extract(r io.Reader, kind Kind) Result {
	return extractDocument(xmldoc.Load(r), kind)
}

func extractDocument(doc *xmldoc.Document, kind Kind) Result {
	rules, ok := rulesByKind[kind]
	if !ok {
		return unrecognized("unsupported file kind " + kind.String())
	}
	for _, r := range rules {
		if res, done := r(doc); done {
			return res
		}
	}
	return unrecognized("not a recognized " + kind.String() + " document")
}

// attrValue reads an attribute and trims it; blank values count as absent.
func attrValue(el *xmldoc.Element, name string) (string, bool) {
	v, ok := el.Attr(name)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func schemaTargetNamespace(doc *xmldoc.Document) (Result, bool) {
	schema := doc.FindFirst("schema")
	if schema == nil {
		return unrecognized("not a recognized W3C XML Schema document"), true
	}
	if ns, ok := attrValue(schema, "targetNamespace"); ok {
		return extracted(ns), true
	}
	return noNamespace("schema has no targetNamespace"), true
}

func requireRootElement(doc *xmldoc.Document) (Result, bool) {
	if doc.Root == nil {
		return unrecognized("not a recognized XML document"), true
	}
	return Result{}, false
}

func classificationSchemeURI(doc *xmldoc.Document) (Result, bool) {
	scheme := doc.FindFirst("ClassificationScheme")
	if scheme == nil {
		return Result{}, false
	}
	if uri, ok := attrValue(scheme, "uri"); ok {
		return extracted(uri), true
	}
	return noNamespace("ClassificationScheme has no uri"), true
}

func rootTargetNamespace(doc *xmldoc.Document) (Result, bool) {
	if ns, ok := attrValue(doc.Root, "targetNamespace"); ok {
		return extracted(ns), true
	}
	return Result{}, false
}

func fallbackNoNamespace(doc *xmldoc.Document) (Result, bool) {
	return noNamespace("no ClassificationScheme uri and no targetNamespace on <" + doc.Root.Name.Local + ">"), true
}
