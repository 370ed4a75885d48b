package domain

// ChangeStatus reports whether rendering altered a file's bytes. The
// comparison is byte-for-byte, never a semantic diff: NotChanged means the
// input already was a fixed point of the pipeline.
type ChangeStatus int

const (
	NotChanged ChangeStatus = iota
	Changed
)

// FormatResult is the outcome of running one source unit through the
// pipeline. All failure is carried as a value; nothing in the formatting
// path panics or unwinds past a sibling file.
type FormatResult struct {
	// Path is empty for stdin.
	Path string
	// Source is the original input bytes.
	Source []byte
	// Output is the fully rendered output; nil when the run failed.
	Output []byte
	Status ChangeStatus
	// Err is the parse (or read/write) error; non-nil iff the run failed.
	Err error
}

// Failed reports whether this file produced an error.
func (r FormatResult) Failed() bool { return r.Err != nil }

// DisplayPath names the file in reports; stdin has no path.
func (r FormatResult) DisplayPath() string {
	if r.Path == "" {
		return "<stdin>"
	}
	return r.Path
}

// RunReport collects everything a finished run has to say, in
// resolved-list order.
type RunReport struct {
	Results []FormatResult
	// Declined is set when the user refused the overwrite confirmation.
	// The filesystem is untouched and the run is a benign no-op.
	Declined bool
}

// Counts tallies the three outcome classes.
func (r *RunReport) Counts() (changed, unchanged, failed int) {
	for _, res := range r.Results {
		switch {
		case res.Failed():
			failed++
		case res.Status == Changed:
			changed++
		default:
			unchanged++
		}
	}
	return changed, unchanged, failed
}

// FormatFailure marks results that fail a format run: parse and I/O errors.
func FormatFailure(r FormatResult) bool { return r.Failed() }

// CheckFailure marks results that fail a validate run: errors, plus files
// whose canonical rendering differs from their current contents. "Would
// reformat" is a failure so check can gate CI, not just inform.
func CheckFailure(r FormatResult) bool { return r.Failed() || r.Status == Changed }

// Aggregate folds per-file results into a single verdict. failing decides
// which results count; input order is preserved so reports are reproducible.
// Returns nil when every result passes, otherwise a *BatchError naming each
// failing file with its cause.
func Aggregate(results []FormatResult, failing func(FormatResult) bool) error {
	var failures []FormatResult
	for _, r := range results {
		if failing(r) {
			failures = append(failures, r)
		}
	}
	if len(failures) == 0 {
		return nil
	}
	return &BatchError{Failures: failures}
}
