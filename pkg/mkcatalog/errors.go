package mkcatalog

import (
	"errors"
	"strings"
)

// Sentinel errors for fatal failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := catalog.NewGenerator(fsys, reporter).Generate(root)
//	if errors.Is(err, mkcatalog.ErrCatalogUnwritable) {
//	    // Handle a catalog.xml that could not be opened for writing
//	}
var (
	// ErrDirectoryUnreadable indicates a directory could not be opened for listing.
	ErrDirectoryUnreadable = errors.New("directory unreadable")

	// ErrCatalogUnwritable indicates a catalog file could not be opened or written.
	ErrCatalogUnwritable = errors.New("catalog unwritable")

	// ErrInvalidConfig indicates mkcatalog.yaml or an environment override is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// usageErrorPatterns are fragments of cobra/pflag error messages that signal
// a command-line usage mistake rather than a runtime failure.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"arg(s), received",
	"invalid argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrDirectoryUnreadable):
		return ExitDirectoryUnreadable
	case errors.Is(err, ErrCatalogUnwritable):
		return ExitCatalogUnwritable
	}

	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
