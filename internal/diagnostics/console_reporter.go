package diagnostics

import (
	"fmt"
	"io"
	"sync"
)

// Severity labels shown in front of diagnostics.
const (
	LabelWarning = "WARNING"
	LabelFixMe   = "FIXME"
	LabelError   = "ERROR"
)

// ConsoleReporter writes diagnostics and progress to an io.Writer,
// typically stderr.
// Safe for concurrent use by multiple goroutines.
type ConsoleReporter struct {
	out     io.Writer
	verbose bool
	styles  styles
	mu      sync.Mutex
}

// NewConsoleReporter creates a ConsoleReporter writing to out.
// If verbose is false, Verbose() calls are no-ops.
// Styling is enabled when out is a terminal and NO_COLOR is unset.
func NewConsoleReporter(out io.Writer, verbose bool) *ConsoleReporter {
	return NewConsoleReporterWithColor(out, verbose, ColorEnabled(out))
}

// NewConsoleReporterWithColor is NewConsoleReporter with explicit color control.
func NewConsoleReporterWithColor(out io.Writer, verbose, color bool) *ConsoleReporter {
	return &ConsoleReporter{
		out:     out,
		verbose: verbose,
		styles:  newStyles(out, color),
	}
}

func (r *ConsoleReporter) println(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.out, line)
}

func sprintf(format string, args []interface{}) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (r *ConsoleReporter) Verbose(format string, args ...interface{}) {
	if !r.verbose {
		return
	}
	r.println("[VERBOSE] " + sprintf(format, args))
}

// Info logs informational messages about normal operations.
func (r *ConsoleReporter) Info(format string, args ...interface{}) {
	r.println(sprintf(format, args))
}

// Success logs the closing line of a successful run.
func (r *ConsoleReporter) Success(format string, args ...interface{}) {
	r.println(r.styles.render(r.styles.success, "✓ "+sprintf(format, args)))
}

// Progress reports one indexed content directory.
func (r *ConsoleReporter) Progress(dir string, files int) {
	noun := "files"
	if files == 1 {
		noun = "file"
	}
	r.println(r.styles.render(r.styles.progress, fmt.Sprintf("  %s (%d %s)", dir, files, noun)))
}

// Warning reports a file skipped because no namespace was extracted.
func (r *ConsoleReporter) Warning(file string, reason string) {
	r.println(r.styles.render(r.styles.warning, LabelWarning+":") + " " + file + ": " + reason)
}

// FixMe reports placeholder output the operator must complete.
func (r *ConsoleReporter) FixMe(file string, message string) {
	r.println(r.styles.render(r.styles.fixMe, LabelFixMe+":") + " " + file + ": " + message)
}

// Error logs error messages.
func (r *ConsoleReporter) Error(format string, args ...interface{}) {
	r.println(r.styles.render(r.styles.err, LabelError+":") + " " + sprintf(format, args))
}
