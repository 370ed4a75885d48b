package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lumen-lang/lumenfmt/internal/domain"
)

// FileName is the project manifest read from the project root.
const FileName = "lumen.yaml"

// YAMLLoader implements domain.ManifestLoader by reading lumen.yaml.
type YAMLLoader struct{}

func New() *YAMLLoader { return &YAMLLoader{} }

type rawManifest struct {
	Type              string   `yaml:"type"`
	Name              string   `yaml:"name"`
	SourceDirectories []string `yaml:"source-directories"`
}

// Load reads and validates the manifest at root. A missing or unreadable
// manifest is an error here: whole-project runs cannot proceed without one.
func (l *YAMLLoader) Load(root string) (domain.Manifest, error) {
	data, err := os.ReadFile(filepath.Join(root, FileName))
	if err != nil {
		return domain.Manifest{}, fmt.Errorf("reading %s: %w", FileName, err)
	}

	var raw rawManifest
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return domain.Manifest{}, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	m := domain.Manifest{Name: raw.Name, SourceDirectories: raw.SourceDirectories}
	switch raw.Type {
	case "application", "":
		m.Type = domain.ProjectApplication
	case "package":
		m.Type = domain.ProjectPackage
	default:
		return domain.Manifest{}, fmt.Errorf("invalid %s: unknown project type %q", FileName, raw.Type)
	}

	if err := m.Validate(); err != nil {
		return domain.Manifest{}, fmt.Errorf("invalid %s: %w", FileName, err)
	}
	return m, nil
}
