// Package namespace extracts the logical namespace of schema and
// classification scheme documents.
//
// # Outcomes
//
// Extraction never fails with a Go error. Every call yields a Result tagged
// with one of three outcomes:
//   - Extracted: the namespace was found; Result.Namespace holds it trimmed
//   - NoNamespace: the document has the expected shape but declares no namespace
//   - Unrecognized: the document is not a schema (or could not be read)
//
// # Rules
//
// Schema files (*.xsd):
//
//	first element named "schema" (any namespace)
//	    absent                  -> Unrecognized
//	    @targetNamespace absent -> NoNamespace
//	    otherwise               -> Extracted(@targetNamespace)
//
// Classification scheme files (*.xml):
//
//	first element named "ClassificationScheme" (any namespace)
//	    present, @uri present   -> Extracted(@uri)
//	    present, @uri absent    -> NoNamespace
//	document element @targetNamespace present -> Extracted
//	otherwise                                 -> NoNamespace
//
// A classification file from which no element at all could be recovered is
// Unrecognized.
//
// Values that are empty after trimming count as absent.
//
// # Usage
//
//	res := namespace.Extract(f, namespace.KindSchema)
//	switch res.Outcome {
//	case namespace.Extracted:
//	    entries = append(entries, catalog.Entry{Name: res.Namespace, URI: name})
//	default:
//	    reporter.Warning(path, res.Reason)
//	}
package namespace
