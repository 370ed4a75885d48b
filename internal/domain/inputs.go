package domain

// ProjectType distinguishes a standalone application from a named package.
// It is chosen once per run, threaded through the pipeline, and never
// mutated; the parser resolves some constructs differently in each context.
type ProjectType int

const (
	ProjectApplication ProjectType = iota
	ProjectPackage
)

func (t ProjectType) String() string {
	if t == ProjectPackage {
		return "package"
	}
	return "application"
}

// Inputs describes what a run operates on. Exactly one variant is active:
// StdinInput, FileInputs, or ProjectInputs. Dispatch with a type switch so
// that an unhandled combination is impossible to paper over.
type Inputs interface {
	isInputs()
}

// StdinInput formats the single byte stream on standard input. There is no
// associated file path and no filesystem side effect.
type StdinInput struct{}

// FileInputs is an explicit, resolved, deduplicated list of source files.
type FileInputs struct {
	Paths []string
}

// ProjectInputs is the resolved file list of a project's declared source
// directories, tagged with the project's type from the manifest.
type ProjectInputs struct {
	Type  ProjectType
	Paths []string
}

func (StdinInput) isInputs()    {}
func (FileInputs) isInputs()    {}
func (ProjectInputs) isInputs() {}
