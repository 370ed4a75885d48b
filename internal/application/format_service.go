package application

import (
	"fmt"
	"io"
	"os"

	"github.com/lumen-lang/lumenfmt/internal/domain"
)

// FormatOptions control one format run.
type FormatOptions struct {
	// SkipConfirm bypasses the overwrite confirmation gate, for fully
	// automated runs.
	SkipConfirm bool
	// Stdin and Stdout carry the single-shot stdin path.
	Stdin  io.Reader
	Stdout io.Writer
}

// FormatService sequences the formatting pipeline over resolved inputs and
// rewrites changed files in place. Files are processed strictly one after
// another in resolved-list order; a failure on one file never stops its
// siblings ("fail at the end"). Only pre-batch configuration problems abort
// early.
type FormatService struct {
	pipeline  domain.SourcePipeline
	confirmer domain.Confirmer
	reporter  domain.Reporter
}

func NewFormatService(p domain.SourcePipeline, c domain.Confirmer, r domain.Reporter) *FormatService {
	return &FormatService{pipeline: p, confirmer: c, reporter: r}
}

// Run executes format mode over inputs. Per-file failures are collected and
// returned together as a *domain.BatchError. A declined confirmation is a
// benign no-op, reported on the RunReport, not an error.
func (s *FormatService) Run(inputs domain.Inputs, opts FormatOptions) (*domain.RunReport, error) {
	switch in := inputs.(type) {
	case domain.StdinInput:
		return s.runStdin(opts)
	case domain.FileInputs:
		return s.runBatch(domain.ProjectApplication, in.Paths, opts)
	case domain.ProjectInputs:
		return s.runBatch(in.Type, in.Paths, opts)
	default:
		return nil, domain.Configf("unsupported input selection %T", inputs)
	}
}

// runStdin formats the single anonymous input. Nothing on disk is touched;
// the rendered bytes go to stdout. Stdin cannot carry package identity, so
// it always parses in the application context.
func (s *FormatService) runStdin(opts FormatOptions) (*domain.RunReport, error) {
	src, err := io.ReadAll(opts.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}

	res := domain.FormatSource(s.pipeline, domain.ProjectApplication, "", src)
	s.reporter.FileResult(res)
	report := &domain.RunReport{Results: []domain.FormatResult{res}}
	if res.Failed() {
		return report, domain.Aggregate(report.Results, domain.FormatFailure)
	}
	if _, err := opts.Stdout.Write(res.Output); err != nil {
		return report, fmt.Errorf("writing stdout: %w", err)
	}
	return report, nil
}

func (s *FormatService) runBatch(ptype domain.ProjectType, paths []string, opts FormatOptions) (*domain.RunReport, error) {
	// Every named file must still exist before any file work begins; a file
	// the user explicitly asked for going missing is a configuration error,
	// not a per-file skip.
	if err := checkAllExist(paths); err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return &domain.RunReport{}, nil
	}

	if !opts.SkipConfirm {
		ok, err := s.confirmer.ConfirmOverwrite(paths)
		if err != nil {
			return nil, fmt.Errorf("reading confirmation: %w", err)
		}
		if !ok {
			return &domain.RunReport{Declined: true}, nil
		}
	}

	results := make([]domain.FormatResult, 0, len(paths))
	for _, path := range paths {
		res := s.formatFile(ptype, path)
		s.reporter.FileResult(res)
		results = append(results, res)
	}

	report := &domain.RunReport{Results: results}
	return report, domain.Aggregate(results, domain.FormatFailure)
}

func (s *FormatService) formatFile(ptype domain.ProjectType, path string) domain.FormatResult {
	src, err := os.ReadFile(path)
	if err != nil {
		return domain.FormatResult{Path: path, Err: fmt.Errorf("reading file: %w", err)}
	}

	res := domain.FormatSource(s.pipeline, ptype, path, src)
	if !res.Failed() && res.Status == domain.Changed {
		if werr := overwrite(path, res.Output); werr != nil {
			res.Err = fmt.Errorf("writing file: %w", werr)
		}
	}
	return res
}

// overwrite replaces the file's contents wholesale, keeping its permission
// bits. No backup is made; the confirmation gate exists for exactly that
// reason.
func overwrite(path string, data []byte) error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	return os.WriteFile(path, data, mode)
}

func checkAllExist(paths []string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			return domain.Configf("%s does not exist", p)
		}
	}
	return nil
}
