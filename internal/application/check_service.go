package application

import (
	"fmt"
	"io"
	"os"

	"github.com/lumen-lang/lumenfmt/internal/domain"
)

// CheckOptions control one validate run.
type CheckOptions struct {
	// NoCache forces a full re-check, discarding the stored state first.
	NoCache bool
	Stdin   io.Reader
}

// CheckService runs the same traversal as format mode but never writes:
// each file is classified as valid, invalid (would reformat), or parse
// error. Any invalid file or parse error fails the whole run, which is what
// lets check gate CI.
type CheckService struct {
	pipeline domain.SourcePipeline
	reporter domain.Reporter
	cache    domain.CheckCache
	root     string
}

func NewCheckService(p domain.SourcePipeline, r domain.Reporter, c domain.CheckCache, root string) *CheckService {
	return &CheckService{pipeline: p, reporter: r, cache: c, root: root}
}

// Run executes validate mode over inputs.
func (s *CheckService) Run(inputs domain.Inputs, opts CheckOptions) (*domain.RunReport, error) {
	switch in := inputs.(type) {
	case domain.StdinInput:
		return s.runStdin(opts)
	case domain.FileInputs:
		return s.runBatch(domain.ProjectApplication, in.Paths, false, opts)
	case domain.ProjectInputs:
		// Only whole-project runs use the cache: they have a stable root
		// to keep it under, and they are the repeated CI case.
		return s.runBatch(in.Type, in.Paths, true, opts)
	default:
		return nil, domain.Configf("unsupported input selection %T", inputs)
	}
}

func (s *CheckService) runStdin(opts CheckOptions) (*domain.RunReport, error) {
	src, err := io.ReadAll(opts.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}

	res := domain.FormatSource(s.pipeline, domain.ProjectApplication, "", src)
	s.reporter.FileResult(res)
	report := &domain.RunReport{Results: []domain.FormatResult{res}}
	return report, domain.Aggregate(report.Results, domain.CheckFailure)
}

func (s *CheckService) runBatch(ptype domain.ProjectType, paths []string, useCache bool, opts CheckOptions) (*domain.RunReport, error) {
	if err := checkAllExist(paths); err != nil {
		return nil, err
	}

	state := s.loadState(useCache, opts)
	next := domain.NewCheckState()

	results := make([]domain.FormatResult, 0, len(paths))
	for _, path := range paths {
		res := s.checkFile(ptype, path, state, next)
		s.reporter.FileResult(res)
		results = append(results, res)
	}

	if useCache && s.cache != nil {
		// Best effort: a cache that cannot be written only costs speed.
		_ = s.cache.Save(s.root, next)
	}

	report := &domain.RunReport{Results: results}
	return report, domain.Aggregate(results, domain.CheckFailure)
}

func (s *CheckService) checkFile(ptype domain.ProjectType, path string, state, next *domain.CheckState) domain.FormatResult {
	src, err := os.ReadFile(path)
	if err != nil {
		return domain.FormatResult{Path: path, Err: fmt.Errorf("reading file: %w", err)}
	}

	hash := domain.ContentHash(src)
	var res domain.FormatResult
	if state.Clean(path, hash) {
		res = domain.FormatResult{Path: path, Source: src, Output: src, Status: domain.NotChanged}
	} else {
		res = domain.FormatSource(s.pipeline, ptype, path, src)
	}

	if !res.Failed() && res.Status == domain.NotChanged {
		next.MarkClean(path, hash)
	}
	return res
}

func (s *CheckService) loadState(useCache bool, opts CheckOptions) *domain.CheckState {
	if useCache && s.cache != nil {
		if opts.NoCache {
			_ = s.cache.Invalidate(s.root)
		} else if state, err := s.cache.Load(s.root); err == nil && state != nil {
			return state
		}
	}
	return domain.NewCheckState()
}
