package namespace

import "fmt"

// Kind is the declared type of a file handed to the extractor.
type Kind int

const (
	KindSchema Kind = iota
	KindClassification
)

func (k Kind) String() string {
	switch k {
	case KindSchema:
		return "schema"
	case KindClassification:
		return "classification scheme"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Outcome tags a Result.
type Outcome int

const (
	Unrecognized Outcome = iota
	NoNamespace
	Extracted
)

func (o Outcome) String() string {
	switch o {
	case Unrecognized:
		return "unrecognized"
	case NoNamespace:
		return "no namespace"
	case Extracted:
		return "extracted"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result is the tagged outcome of one extraction.
type Result struct {
	Outcome   Outcome
	Namespace string // set only when Outcome is Extracted
	Reason    string // operator-facing explanation when Outcome is not Extracted
}

// OK reports whether a namespace was extracted.
func (r Result) OK() bool { return r.Outcome == Extracted }

func extracted(ns string) Result {
	return Result{Outcome: Extracted, Namespace: ns}
}

func noNamespace(reason string) Result {
	return Result{Outcome: NoNamespace, Reason: reason}
}

func unrecognized(reason string) Result {
	return Result{Outcome: Unrecognized, Reason: reason}
}

// Unreadable is the Result for a file whose content could not be read.
func Unreadable(err error) Result {
	return unrecognized(fmt.Sprintf("file could not be read: %v", err))
}
