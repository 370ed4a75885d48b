package pipeline

import "strings"

const indentUnit = "  "

// render serializes the canonical tree: module header first, then the
// import block, then declarations, one blank line between blocks. Output is
// deterministic, ends in a single newline, and is a fixed point of
// parse → normalize → render.
func render(f *sourceFile) []byte {
	var blocks [][]string

	if f.module != "" {
		blocks = append(blocks, []string{"module " + f.module})
	}
	if len(f.imports) > 0 {
		lines := make([]string, 0, len(f.imports))
		for _, im := range f.imports {
			if im.alias != "" {
				lines = append(lines, "import "+im.name+" as "+im.alias)
			} else {
				lines = append(lines, "import "+im.name)
			}
		}
		blocks = append(blocks, lines)
	}
	for _, d := range f.decls {
		blocks = append(blocks, renderDecl(d))
	}

	var b strings.Builder
	for i, block := range blocks {
		if i > 0 {
			b.WriteString("\n")
		}
		for _, line := range block {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return []byte(b.String())
}

func renderDecl(d decl) []string {
	switch d.kind {
	case declComment:
		return []string{d.text}
	case declLet:
		return []string{"let " + d.name + " = " + d.text}
	default:
		lines := []string{"fn " + d.name + "(" + strings.Join(d.params, ", ") + ") {"}
		lines = append(lines, indentBody(d.body)...)
		return append(lines, "}")
	}
}

// indentBody re-indents trimmed body lines from their brace structure alone,
// so the result does not depend on the indentation the input arrived with.
func indentBody(body []string) []string {
	lines := make([]string, 0, len(body))
	depth := 1
	for _, raw := range body {
		if raw == "" {
			lines = append(lines, "")
			continue
		}
		eff := depth
		if strings.HasPrefix(raw, "}") {
			eff--
		}
		if eff < 1 {
			eff = 1
		}
		lines = append(lines, strings.Repeat(indentUnit, eff)+raw)
		depth += strings.Count(raw, "{") - strings.Count(raw, "}")
		if depth < 1 {
			depth = 1
		}
	}
	return lines
}
