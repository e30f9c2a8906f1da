package mkcatalog

// Reporter receives diagnostics and progress while catalogs are generated.
// Implementations must be safe for concurrent use by multiple goroutines.
type Reporter interface {
	// Verbose logs detailed diagnostic information.
	// Only logged when verbose mode is enabled.
	Verbose(format string, args ...interface{})

	// Info logs informational messages about normal operations.
	Info(format string, args ...interface{})

	// Progress reports that a content directory was indexed.
	// files is the number of schema, classification and DTD files found in it.
	Progress(dir string, files int)

	// Warning reports a file that was skipped because no namespace could be extracted.
	Warning(file string, reason string)

	// FixMe reports placeholder output the operator has to complete by hand.
	FixMe(file string, message string)

	// Error logs fatal error messages.
	Error(format string, args ...interface{})
}
