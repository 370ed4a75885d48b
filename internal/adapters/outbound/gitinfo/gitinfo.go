package gitinfo

import (
	"path/filepath"

	git "github.com/go-git/go-git/v5"

	"github.com/lumen-lang/lumenfmt/internal/domain"
)

// Inspector implements domain.RepoInspector using go-git.
type Inspector struct{}

func New() *Inspector { return &Inspector{} }

// Summary reports HEAD and how many of the given files carry uncommitted
// changes. ok is false when root is not inside a git repository; the
// formatter treats that as "no hint available", never as an error.
func (in *Inspector) Summary(root string, paths []string) (domain.RepoSummary, bool) {
	repo, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return domain.RepoSummary{}, false
	}

	head, err := repo.Head()
	if err != nil {
		return domain.RepoSummary{}, false
	}

	sum := domain.RepoSummary{Head: head.Hash().String()[:8]}
	if head.Name().IsBranch() {
		sum.Branch = head.Name().Short()
	}

	wt, err := repo.Worktree()
	if err != nil {
		return sum, true
	}
	status, err := wt.Status()
	if err != nil {
		return sum, true
	}

	targets := make(map[string]bool, len(paths))
	for _, p := range paths {
		if abs, err := filepath.Abs(p); err == nil {
			targets[abs] = true
		}
	}
	wtRoot := wt.Filesystem.Root()
	for rel, fileStatus := range status {
		if fileStatus.Worktree == git.Unmodified && fileStatus.Staging == git.Unmodified {
			continue
		}
		if targets[filepath.Join(wtRoot, filepath.FromSlash(rel))] {
			sum.DirtyFiles++
		}
	}
	return sum, true
}
