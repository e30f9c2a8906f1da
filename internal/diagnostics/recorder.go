package diagnostics

import (
	"fmt"
	"sync"

	"github.com/vvka-141/mkcatalog/pkg/mkcatalog"
)

// Severity classifies a recorded diagnostic.
type Severity string

const (
	SeverityVerbose  Severity = "verbose"
	SeverityInfo     Severity = "info"
	SeverityProgress Severity = "progress"
	SeverityWarning  Severity = "warning"
	SeverityFixMe    Severity = "fixme"
	SeverityError    Severity = "error"
)

// Diagnostic is one recorded message.
type Diagnostic struct {
	Severity Severity
	File     string // file or directory the message is about, if any
	Message  string
	Count    int // file count for progress lines
}

// Recorder keeps every diagnostic in arrival order.
// If next is non-nil every call is forwarded to it as well.
// Safe for concurrent use by multiple goroutines.
type Recorder struct {
	next        mkcatalog.Reporter
	mu          sync.Mutex
	diagnostics []Diagnostic
}

// NewRecorder creates a Recorder that forwards to next (which may be nil).
func NewRecorder(next mkcatalog.Reporter) *Recorder {
	return &Recorder{next: next}
}

func (r *Recorder) record(d Diagnostic) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.diagnostics = append(r.diagnostics, d)
}

func (r *Recorder) Verbose(format string, args ...interface{}) {
	r.record(Diagnostic{Severity: SeverityVerbose, Message: sprintf(format, args)})
	if r.next != nil {
		r.next.Verbose(format, args...)
	}
}

func (r *Recorder) Info(format string, args ...interface{}) {
	r.record(Diagnostic{Severity: SeverityInfo, Message: sprintf(format, args)})
	if r.next != nil {
		r.next.Info(format, args...)
	}
}

func (r *Recorder) Progress(dir string, files int) {
	r.record(Diagnostic{Severity: SeverityProgress, File: dir, Count: files, Message: fmt.Sprintf("%d files", files)})
	if r.next != nil {
		r.next.Progress(dir, files)
	}
}

func (r *Recorder) Warning(file string, reason string) {
	r.record(Diagnostic{Severity: SeverityWarning, File: file, Message: reason})
	if r.next != nil {
		r.next.Warning(file, reason)
	}
}

func (r *Recorder) FixMe(file string, message string) {
	r.record(Diagnostic{Severity: SeverityFixMe, File: file, Message: message})
	if r.next != nil {
		r.next.FixMe(file, message)
	}
}

func (r *Recorder) Error(format string, args ...interface{}) {
	r.record(Diagnostic{Severity: SeverityError, Message: sprintf(format, args)})
	if r.next != nil {
		r.next.Error(format, args...)
	}
}

// Diagnostics returns a copy of everything recorded so far.
func (r *Recorder) Diagnostics() []Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Diagnostic(nil), r.diagnostics...)
}

// Filter returns the recorded diagnostics of one severity.
func (r *Recorder) Filter(severity Severity) []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics() {
		if d.Severity == severity {
			out = append(out, d)
		}
	}
	return out
}

// Count returns how many diagnostics of one severity were recorded.
func (r *Recorder) Count(severity Severity) int {
	return len(r.Filter(severity))
}

var (
	_ mkcatalog.Reporter = (*ConsoleReporter)(nil)
	_ mkcatalog.Reporter = (*NullReporter)(nil)
	_ mkcatalog.Reporter = (*Recorder)(nil)
)
