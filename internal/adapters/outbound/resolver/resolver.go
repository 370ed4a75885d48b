// Package resolver turns the user's path list, stdin flag, or the project
// manifest into a concrete, deduplicated list of source files.
package resolver

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/lumen-lang/lumenfmt/internal/domain"
)

// SourceSuffix is the Lumen source file extension.
const SourceSuffix = ".lum"

// skipDirs are never descended into during expansion: the build cache, the
// dependency cache, and version control.
var skipDirs = map[string]bool{
	".lumen":         true,
	"lumen_packages": true,
	".git":           true,
}

// FileResolver implements domain.SourceResolver against the real
// filesystem.
type FileResolver struct {
	manifests domain.ManifestLoader
	root      string
}

// New creates a resolver. root is the project directory consulted when no
// paths are given.
func New(manifests domain.ManifestLoader, root string) *FileResolver {
	return &FileResolver{manifests: manifests, root: root}
}

// Resolve maps the flag/path combination onto exactly one Inputs variant.
// Conflicting combinations fail as configuration errors; nothing is guessed.
func (r *FileResolver) Resolve(paths []string, stdin bool) (domain.Inputs, error) {
	switch {
	case stdin && len(paths) > 0:
		return nil, domain.Configf("--stdin cannot be combined with file arguments")

	case stdin:
		return domain.StdinInput{}, nil

	case len(paths) > 0:
		files, err := expandAll(paths)
		if err != nil {
			return nil, err
		}
		return domain.FileInputs{Paths: files}, nil

	default:
		manifest, err := r.manifests.Load(r.root)
		if err != nil {
			return nil, domain.Configf("reading project manifest: %v", err)
		}
		var dirs []string
		for _, dir := range manifest.SourceDirectories {
			full := filepath.Join(r.root, dir)
			// A declared directory that does not exist yet is not an error.
			if info, err := os.Stat(full); err == nil && info.IsDir() {
				dirs = append(dirs, full)
			}
		}
		files, err := expandAll(dirs)
		if err != nil {
			return nil, err
		}
		return domain.ProjectInputs{Type: manifest.Type, Paths: files}, nil
	}
}

func expandAll(paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	for _, p := range paths {
		expanded, err := expand(p)
		if err != nil {
			return nil, err
		}
		for _, f := range expanded {
			if seen[f] {
				continue
			}
			seen[f] = true
			files = append(files, f)
		}
	}
	return files, nil
}

// expand resolves one user-supplied path. Directories are walked in lexical
// order without following symlinks, so the result is deterministic and
// cycle-free. Explicitly named non-source files are dropped silently.
func expand(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, domain.Configf("%s does not exist", path)
	}

	if !info.IsDir() {
		if info.Mode().IsRegular() && strings.HasSuffix(path, SourceSuffix) {
			return []string{path}, nil
		}
		return nil, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDirs[d.Name()] && p != path {
				return filepath.SkipDir
			}
			return nil
		}
		// Anything that is neither file nor directory (symlinks included)
		// is excluded.
		if d.Type().IsRegular() && strings.HasSuffix(d.Name(), SourceSuffix) {
			files = append(files, p)
		}
		return nil
	})
	return files, err
}
