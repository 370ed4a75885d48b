package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lumen-lang/lumenfmt/internal/domain"
)

// ── warm terminal palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle     = lipgloss.NewStyle().Foreground(dim)
	changedStyle = lipgloss.NewStyle().Foreground(accent)
	passStyle    = lipgloss.NewStyle().Foreground(success)
	failStyle    = lipgloss.NewStyle().Foreground(danger)
	warnStyle    = lipgloss.NewStyle().Foreground(warning)
	promptStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent)
)

// Reporter prints one status line per file, in the order results arrive.
// It implements domain.Reporter.
type Reporter struct {
	out      io.Writer
	validate bool
}

// NewReporter creates a console reporter. validate switches the vocabulary
// from formatted/unchanged to VALID/INVALID.
func NewReporter(out io.Writer, validate bool) *Reporter {
	return &Reporter{out: out, validate: validate}
}

func (r *Reporter) FileResult(res domain.FormatResult) {
	fmt.Fprintln(r.out, StatusLine(res, r.validate))
}

// StatusLine renders the per-file status for one result.
func StatusLine(res domain.FormatResult, validate bool) string {
	name := res.DisplayPath()
	switch {
	case res.Failed():
		return fmt.Sprintf("  %s  %s: %v", failStyle.Render("parse error"), name, res.Err)
	case validate && res.Status == domain.Changed:
		return fmt.Sprintf("  %s      %s (would reformat)", failStyle.Render("INVALID"), name)
	case validate:
		return fmt.Sprintf("  %s        %s", passStyle.Render("VALID"), name)
	case res.Status == domain.Changed:
		return fmt.Sprintf("  %s    %s", changedStyle.Render("formatted"), name)
	default:
		return fmt.Sprintf("  %s    %s", dimStyle.Render("unchanged"), name)
	}
}

// RenderSummary renders the end-of-run line for a finished batch.
func RenderSummary(report *domain.RunReport, validate bool) string {
	if report.Declined {
		return dimStyle.Render("aborted, nothing was changed")
	}
	if len(report.Results) == 0 {
		return dimStyle.Render("no source files found")
	}

	changed, unchanged, failed := report.Counts()
	total := len(report.Results)

	parts := []string{fmt.Sprintf("%d file(s)", total)}
	if validate {
		if changed > 0 {
			parts = append(parts, failStyle.Render(fmt.Sprintf("%d invalid", changed)))
		}
		parts = append(parts, passStyle.Render(fmt.Sprintf("%d valid", unchanged)))
	} else {
		if changed > 0 {
			parts = append(parts, changedStyle.Render(fmt.Sprintf("%d formatted", changed)))
		}
		parts = append(parts, dimStyle.Render(fmt.Sprintf("%d unchanged", unchanged)))
	}
	if failed > 0 {
		parts = append(parts, failStyle.Render(fmt.Sprintf("%d failed", failed)))
	}
	return strings.Join(parts, dimStyle.Render(" · "))
}

// RenderConfirmPrompt lists every file about to be overwritten and asks for
// consent. repo carries version-control context when available: the
// overwrite keeps no backup, so an uncommitted file has no way back.
func RenderConfirmPrompt(paths []string, repo *domain.RepoSummary) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("The following files will be overwritten:"))
	b.WriteString("\n")
	for _, p := range paths {
		b.WriteString("  " + dimStyle.Render(p) + "\n")
	}

	if repo != nil {
		line := fmt.Sprintf("on %s @ %s", repo.Branch, repo.Head)
		if repo.Branch == "" {
			line = fmt.Sprintf("at %s (detached)", repo.Head)
		}
		b.WriteString("  " + dimStyle.Render(line) + "\n")
		if repo.DirtyFiles > 0 {
			b.WriteString("  " + warnStyle.Render(
				fmt.Sprintf("%d of these file(s) have uncommitted changes", repo.DirtyFiles)) + "\n")
		}
	}

	b.WriteString(promptStyle.Render("Proceed? [Y/n] "))
	return b.String()
}

// RenderError renders the final error of a failed run.
func RenderError(err error) string {
	var batch *domain.BatchError
	if errors.As(err, &batch) {
		var b strings.Builder
		b.WriteString(failStyle.Render(fmt.Sprintf("%d file(s) failed", len(batch.Failures))))
		for _, f := range batch.Failures {
			if f.Err != nil {
				b.WriteString(fmt.Sprintf("\n  %s: %v", f.DisplayPath(), f.Err))
			} else {
				b.WriteString(fmt.Sprintf("\n  %s: would reformat", f.DisplayPath()))
			}
		}
		return b.String()
	}
	return failStyle.Render("error: ") + err.Error()
}
