package tui_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lumen-lang/lumenfmt/internal/adapters/outbound/tui"
	"github.com/lumen-lang/lumenfmt/internal/domain"
)

func TestStatusLine_FormatMode(t *testing.T) {
	changed := domain.FormatResult{Path: "src/a.lum", Status: domain.Changed}
	assert.Contains(t, tui.StatusLine(changed, false), "formatted")
	assert.Contains(t, tui.StatusLine(changed, false), "src/a.lum")

	unchanged := domain.FormatResult{Path: "src/b.lum", Status: domain.NotChanged}
	assert.Contains(t, tui.StatusLine(unchanged, false), "unchanged")
}

func TestStatusLine_CheckMode(t *testing.T) {
	invalid := domain.FormatResult{Path: "src/a.lum", Status: domain.Changed}
	line := tui.StatusLine(invalid, true)
	assert.Contains(t, line, "INVALID")
	assert.Contains(t, line, "would reformat")

	valid := domain.FormatResult{Path: "src/b.lum", Status: domain.NotChanged}
	assert.Contains(t, tui.StatusLine(valid, true), "VALID")
}

func TestStatusLine_ParseError(t *testing.T) {
	failed := domain.FormatResult{Path: "src/a.lum", Err: errors.New("line 2: malformed import")}
	line := tui.StatusLine(failed, false)
	assert.Contains(t, line, "parse error")
	assert.Contains(t, line, "line 2: malformed import")
}

func TestStatusLine_Stdin(t *testing.T) {
	res := domain.FormatResult{Status: domain.NotChanged}
	assert.Contains(t, tui.StatusLine(res, false), "<stdin>")
}

func TestReporter_WritesOneLinePerResult(t *testing.T) {
	buf := new(bytes.Buffer)
	reporter := tui.NewReporter(buf, false)

	reporter.FileResult(domain.FormatResult{Path: "a.lum", Status: domain.Changed})
	reporter.FileResult(domain.FormatResult{Path: "b.lum", Status: domain.NotChanged})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "a.lum")
	assert.Contains(t, lines[1], "b.lum")
}

func TestRenderSummary(t *testing.T) {
	report := &domain.RunReport{Results: []domain.FormatResult{
		{Path: "a.lum", Status: domain.Changed},
		{Path: "b.lum", Status: domain.NotChanged},
		{Path: "c.lum", Err: errors.New("boom")},
	}}

	out := tui.RenderSummary(report, false)
	assert.Contains(t, out, "3 file(s)")
	assert.Contains(t, out, "1 formatted")
	assert.Contains(t, out, "1 unchanged")
	assert.Contains(t, out, "1 failed")

	check := tui.RenderSummary(report, true)
	assert.Contains(t, check, "1 invalid")
	assert.Contains(t, check, "1 valid")
}

func TestRenderSummary_Declined(t *testing.T) {
	out := tui.RenderSummary(&domain.RunReport{Declined: true}, false)
	assert.Contains(t, out, "aborted")
}

func TestRenderSummary_EmptyBatch(t *testing.T) {
	out := tui.RenderSummary(&domain.RunReport{}, false)
	assert.Contains(t, out, "no source files")
}

func TestRenderConfirmPrompt(t *testing.T) {
	repo := &domain.RepoSummary{Head: "abcd1234", Branch: "main", DirtyFiles: 1}
	out := tui.RenderConfirmPrompt([]string{"src/a.lum", "src/b.lum"}, repo)

	assert.Contains(t, out, "src/a.lum")
	assert.Contains(t, out, "src/b.lum")
	assert.Contains(t, out, "main")
	assert.Contains(t, out, "uncommitted")
	assert.Contains(t, out, "[Y/n]")
}

func TestRenderConfirmPrompt_NoRepo(t *testing.T) {
	out := tui.RenderConfirmPrompt([]string{"a.lum"}, nil)
	assert.Contains(t, out, "a.lum")
	assert.NotContains(t, out, "uncommitted")
}

func TestRenderError_BatchEnumeratesFailures(t *testing.T) {
	batch := &domain.BatchError{Failures: []domain.FormatResult{
		{Path: "a.lum", Err: errors.New("line 1: malformed import")},
		{Path: "b.lum", Status: domain.Changed},
	}}

	out := tui.RenderError(batch)
	assert.Contains(t, out, "2 file(s) failed")
	assert.Contains(t, out, "a.lum: line 1: malformed import")
	assert.Contains(t, out, "b.lum: would reformat")
	assert.Less(t, strings.Index(out, "a.lum"), strings.Index(out, "b.lum"))
}

func TestRenderError_Plain(t *testing.T) {
	out := tui.RenderError(errors.New("lumen.yaml missing"))
	assert.Contains(t, out, "lumen.yaml missing")
}
