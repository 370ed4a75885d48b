package domain

import (
	"fmt"
	"strings"

	"github.com/fatih/camelcase"
)

// Manifest is the parsed lumen.yaml: project identity plus the declared
// source directories exactly as written. Directories are not verified to
// exist here; the resolver drops missing ones silently.
type Manifest struct {
	Type              ProjectType
	Name              string
	SourceDirectories []string
}

// Validate checks the invariants the decoder cannot express structurally.
func (m Manifest) Validate() error {
	if len(m.SourceDirectories) == 0 {
		return fmt.Errorf("manifest declares no source-directories")
	}
	if m.Type == ProjectPackage {
		if m.Name == "" {
			return fmt.Errorf("a package manifest requires a name")
		}
		if kebab := KebabCase(m.Name); kebab != m.Name {
			return fmt.Errorf("package name %q is not kebab-case (did you mean %q?)", m.Name, kebab)
		}
	}
	return nil
}

// KebabCase converts an identifier to the lower-kebab form package names
// must use, splitting camel-cased words on their case boundaries.
func KebabCase(name string) string {
	words := camelcase.Split(name)
	parts := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.Trim(strings.ToLower(w), "-_")
		if w != "" {
			parts = append(parts, w)
		}
	}
	return strings.Join(parts, "-")
}
