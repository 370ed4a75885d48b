package pipeline

import (
	"fmt"
	"strings"

	"github.com/lumen-lang/lumenfmt/internal/domain"
)

// ParseError reports the first line the parser could not accept.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func errorf(line int, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Msg: fmt.Sprintf(format, args...)}
}

// sourceFile is the syntax tree of one Lumen source unit. Function bodies
// are kept as trimmed raw lines; the renderer re-indents them from their
// brace structure.
type sourceFile struct {
	module  string
	imports []importDecl
	decls   []decl
}

type importDecl struct {
	name  string
	alias string
}

type declKind int

const (
	declComment declKind = iota
	declLet
	declFn
)

type decl struct {
	kind   declKind
	name   string   // let binding name or fn name
	text   string   // comment text or let value expression
	params []string // fn parameters
	body   []string // fn body lines, trimmed
}

// parse reads src line by line. ProjectType matters in one place: a module
// header names a package, so application sources must not carry one.
func parse(src []byte, ptype domain.ProjectType) (*sourceFile, error) {
	file := &sourceFile{}
	lines := strings.Split(string(src), "\n")

	var (
		inFn    bool
		depth   int
		current decl
		fnLine  int
	)

	for i, line := range lines {
		n := i + 1
		t := strings.TrimSpace(line)

		if inFn {
			if t == "}" && depth == 1 {
				file.decls = append(file.decls, current)
				inFn = false
				continue
			}
			depth += strings.Count(t, "{") - strings.Count(t, "}")
			if depth < 1 {
				return nil, errorf(n, "unexpected '}'")
			}
			current.body = append(current.body, t)
			continue
		}

		if t == "" {
			continue
		}

		switch {
		case strings.HasPrefix(t, "#"):
			file.decls = append(file.decls, commentDecl(t))

		case t == "module" || strings.HasPrefix(t, "module "):
			if ptype != domain.ProjectPackage {
				return nil, errorf(n, "module declarations are only valid in package projects")
			}
			if file.module != "" {
				return nil, errorf(n, "duplicate module declaration")
			}
			if len(file.imports) > 0 || len(file.decls) > 0 {
				return nil, errorf(n, "module declaration must come first")
			}
			fields := strings.Fields(t)
			if len(fields) != 2 {
				return nil, errorf(n, "malformed module declaration")
			}
			file.module = fields[1]

		case t == "import" || strings.HasPrefix(t, "import "):
			im, err := parseImport(t, n)
			if err != nil {
				return nil, err
			}
			file.imports = append(file.imports, im)

		case t == "let" || strings.HasPrefix(t, "let "):
			d, err := parseLet(t, n)
			if err != nil {
				return nil, err
			}
			file.decls = append(file.decls, d)

		case t == "fn" || strings.HasPrefix(t, "fn "):
			d, err := parseFnHeader(t, n)
			if err != nil {
				return nil, err
			}
			current = d
			inFn = true
			depth = 1
			fnLine = n

		default:
			return nil, errorf(n, "unexpected %q at top level", strings.Fields(t)[0])
		}
	}

	if inFn {
		return nil, errorf(fnLine, "unclosed body of fn %s", current.name)
	}
	return file, nil
}

func commentDecl(t string) decl {
	text := strings.TrimSpace(strings.TrimPrefix(t, "#"))
	if text == "" {
		return decl{kind: declComment, text: "#"}
	}
	return decl{kind: declComment, text: "# " + text}
}

func parseImport(t string, n int) (importDecl, error) {
	fields := strings.Fields(t)
	switch {
	case len(fields) == 2:
		return importDecl{name: fields[1]}, nil
	case len(fields) == 4 && fields[2] == "as":
		return importDecl{name: fields[1], alias: fields[3]}, nil
	default:
		return importDecl{}, errorf(n, "malformed import")
	}
}

func parseLet(t string, n int) (decl, error) {
	fields := strings.Fields(t)
	if len(fields) < 4 || fields[2] != "=" {
		return decl{}, errorf(n, "let binding must have the form 'let name = value'")
	}
	// Joining fields collapses interior whitespace runs, which is the
	// canonical spacing; doing it twice is a no-op.
	return decl{kind: declLet, name: fields[1], text: strings.Join(fields[3:], " ")}, nil
}

func parseFnHeader(t string, n int) (decl, error) {
	rest := strings.TrimSpace(strings.TrimPrefix(t, "fn"))
	open := strings.Index(rest, "(")
	closing := strings.LastIndex(rest, ")")
	if open < 0 || closing < open {
		return decl{}, errorf(n, "fn declaration must have a parameter list")
	}
	name := strings.TrimSpace(rest[:open])
	if name == "" || len(strings.Fields(name)) != 1 {
		return decl{}, errorf(n, "malformed fn name")
	}
	if tail := strings.TrimSpace(rest[closing+1:]); tail != "{" {
		return decl{}, errorf(n, "fn body must open with '{' on the same line")
	}

	var params []string
	if raw := strings.TrimSpace(rest[open+1 : closing]); raw != "" {
		for _, p := range strings.Split(raw, ",") {
			p = strings.TrimSpace(p)
			if p == "" {
				return decl{}, errorf(n, "malformed parameter list")
			}
			params = append(params, p)
		}
	}
	return decl{kind: declFn, name: name, params: params}, nil
}
