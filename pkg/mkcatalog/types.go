package mkcatalog

import "fmt"

// DuplicatePolicy controls what happens when two files in one originator
// catalog declare the same namespace.
type DuplicatePolicy string

const (
	// DuplicatesWarn emits every entry and warns about the later ones.
	DuplicatesWarn DuplicatePolicy = "warn"

	// DuplicatesAllow emits every entry silently.
	DuplicatesAllow DuplicatePolicy = "allow"

	// DuplicatesSkip keeps only the first entry for a namespace and warns about the rest.
	DuplicatesSkip DuplicatePolicy = "skip"
)

// ParseDuplicatePolicy converts a configuration string into a DuplicatePolicy.
// An empty string selects DuplicatesWarn.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch DuplicatePolicy(s) {
	case "":
		return DuplicatesWarn, nil
	case DuplicatesWarn, DuplicatesAllow, DuplicatesSkip:
		return DuplicatePolicy(s), nil
	default:
		return "", fmt.Errorf("unknown duplicates policy %q (want warn, allow or skip): %w", s, ErrInvalidConfig)
	}
}

// Options configures one catalog generation run.
type Options struct {
	// CatalogName is the file name written at tier 1 and tier 2.
	CatalogName string

	// Duplicates selects the duplicate-namespace policy.
	Duplicates DuplicatePolicy
}

// DefaultOptions returns the options used when no mkcatalog.yaml is present.
func DefaultOptions() Options {
	return Options{
		CatalogName: DefaultCatalogName,
		Duplicates:  DuplicatesWarn,
	}
}

// Summary counts what a generation run produced.
type Summary struct {
	Catalogs int // catalog files written
	Groups   int // group elements emitted
	Entries  int // uri entries emitted
	Warnings int // files skipped for lack of a namespace
	FixMes   int // DTD placeholders written
}

// Add accumulates another summary into s.
func (s *Summary) Add(other Summary) {
	s.Catalogs += other.Catalogs
	s.Groups += other.Groups
	s.Entries += other.Entries
	s.Warnings += other.Warnings
	s.FixMes += other.FixMes
}
