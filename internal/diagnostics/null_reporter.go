package diagnostics

// NullReporter is a no-op reporter that discards all messages.
// Safe for concurrent use by multiple goroutines.
// Useful for testing and when output is not desired.
type NullReporter struct{}

// NewNullReporter creates a new NullReporter.
func NewNullReporter() *NullReporter {
	return &NullReporter{}
}

func (NullReporter) Verbose(format string, args ...interface{}) {}
func (NullReporter) Info(format string, args ...interface{})    {}
func (NullReporter) Progress(dir string, files int)             {}
func (NullReporter) Warning(file string, reason string)         {}
func (NullReporter) FixMe(file string, message string)          {}
func (NullReporter) Error(format string, args ...interface{})   {}
