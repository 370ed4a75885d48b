package domain

// SourcePipeline is the external parse → normalize → render pipeline,
// consumed as a black box. Format runs the full pipeline on one source
// unit; the returned error is the parse error, the only stage that can
// fail. Implementations are pure: no I/O.
type SourcePipeline interface {
	Format(ptype ProjectType, src []byte) ([]byte, error)
}

// ManifestLoader reads a project's manifest from its root directory.
type ManifestLoader interface {
	Load(root string) (Manifest, error)
}

// SourceResolver turns the user's path list and stdin flag into exactly one
// Inputs variant, failing with a ConfigError when the combination conflicts.
type SourceResolver interface {
	Resolve(paths []string, stdin bool) (Inputs, error)
}

// Confirmer gates irreversible mutation: it presents the files about to be
// overwritten and reports the user's decision. Evaluated at most once per
// run, before any file is touched.
type Confirmer interface {
	ConfirmOverwrite(paths []string) (bool, error)
}

// Reporter receives each per-file result as soon as it is known. Results
// arrive in resolved-list order.
type Reporter interface {
	FileResult(res FormatResult)
}

// CheckCache persists which file contents already validated clean.
// Implementations treat a missing or corrupt cache as empty, never as an
// error.
type CheckCache interface {
	Load(root string) (*CheckState, error)
	Save(root string, state *CheckState) error
	Invalidate(root string) error
}

// RepoSummary describes the version-control state relevant before an
// overwrite: formatted files are replaced in place with no backup, so the
// repository is the only way back.
type RepoSummary struct {
	Head       string
	Branch     string
	DirtyFiles int
}

// RepoInspector reports repository context for the confirmation prompt.
// ok is false when root is not inside a repository; that never fails a run.
type RepoInspector interface {
	Summary(root string, paths []string) (sum RepoSummary, ok bool)
}
