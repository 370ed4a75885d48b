// Package pipeline is the reference Lumen formatting pipeline: a parser,
// a normalizer and a renderer behind domain.SourcePipeline. The orchestrator
// never looks inside the tree; everything it needs is the rendered bytes or
// the parse error.
package pipeline

import "github.com/lumen-lang/lumenfmt/internal/domain"

// Lumen implements domain.SourcePipeline for .lum sources.
type Lumen struct{}

func New() *Lumen { return &Lumen{} }

// Format runs parse → normalize → render, short-circuiting on parse failure.
// Normalize and render are total; rendering the output again reproduces it
// byte for byte.
func (l *Lumen) Format(ptype domain.ProjectType, src []byte) ([]byte, error) {
	tree, err := parse(src, ptype)
	if err != nil {
		return nil, err
	}
	return render(normalize(tree, ptype)), nil
}
