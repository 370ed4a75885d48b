package domain

import "bytes"

// FormatSource runs one source unit through the pipeline and classifies the
// outcome. Purely functional: no I/O happens here, which is what lets the
// same engine serve stdin, disk files, and unit tests. path is empty for
// stdin.
func FormatSource(p SourcePipeline, ptype ProjectType, path string, src []byte) FormatResult {
	out, err := p.Format(ptype, src)
	if err != nil {
		return FormatResult{Path: path, Source: src, Err: err}
	}
	status := Changed
	if bytes.Equal(out, src) {
		status = NotChanged
	}
	return FormatResult{Path: path, Source: src, Output: out, Status: status}
}
