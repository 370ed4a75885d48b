package domain

import (
	"fmt"
	"strings"
)

// ConfigError is a fatal pre-batch configuration problem: conflicting input
// flags, an unreadable manifest, or a named file that does not exist. It
// stops the run before any file work begins.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return e.Reason }

// Configf builds a ConfigError the way fmt.Errorf builds errors.
func Configf(format string, args ...any) error {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}

// BatchError reports every file that failed a run, in input order. A file
// with no Err entry failed conformance only: its canonical rendering
// differs from its current contents.
type BatchError struct {
	Failures []FormatResult
}

func (e *BatchError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d file(s) failed", len(e.Failures))
	for _, f := range e.Failures {
		if f.Err != nil {
			fmt.Fprintf(&b, "\n  %s: %v", f.DisplayPath(), f.Err)
		} else {
			fmt.Fprintf(&b, "\n  %s: would reformat", f.DisplayPath())
		}
	}
	return b.String()
}
