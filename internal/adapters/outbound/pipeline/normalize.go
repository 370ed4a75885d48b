package pipeline

import (
	"sort"

	"github.com/lumen-lang/lumenfmt/internal/domain"
)

// normalize produces the canonical tree: imports sorted by module name and
// deduplicated, declarations left in source order. Total: never fails.
func normalize(f *sourceFile, _ domain.ProjectType) *sourceFile {
	out := &sourceFile{module: f.module, decls: f.decls}

	imports := append([]importDecl(nil), f.imports...)
	sort.SliceStable(imports, func(i, j int) bool {
		if imports[i].name != imports[j].name {
			return imports[i].name < imports[j].name
		}
		return imports[i].alias < imports[j].alias
	})

	seen := make(map[importDecl]bool, len(imports))
	for _, im := range imports {
		if seen[im] {
			continue
		}
		seen[im] = true
		out.imports = append(out.imports, im)
	}
	return out
}
