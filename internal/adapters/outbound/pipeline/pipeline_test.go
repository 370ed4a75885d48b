package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumenfmt/internal/adapters/outbound/pipeline"
	"github.com/lumen-lang/lumenfmt/internal/domain"
)

func format(t *testing.T, ptype domain.ProjectType, src string) string {
	t.Helper()
	out, err := pipeline.New().Format(ptype, []byte(src))
	require.NoError(t, err)
	return string(out)
}

func TestFormat_CanonicalInputIsFixedPoint(t *testing.T) {
	canonical := "import list\nimport string\n\nfn add(a, b) {\n  a + b\n}\n"
	assert.Equal(t, canonical, format(t, domain.ProjectApplication, canonical))
}

func TestFormat_CollapsesWhitespace(t *testing.T) {
	got := format(t, domain.ProjectApplication, "let   x   =   1 + 2")
	assert.Equal(t, "let x = 1 + 2\n", got)
}

func TestFormat_SortsAndDeduplicatesImports(t *testing.T) {
	src := "import string\nimport array\nimport string\n"
	got := format(t, domain.ProjectApplication, src)
	assert.Equal(t, "import array\nimport string\n", got)
}

func TestFormat_ImportAlias(t *testing.T) {
	got := format(t, domain.ProjectApplication, "import  string  as  str")
	assert.Equal(t, "import string as str\n", got)
}

func TestFormat_ReindentsFunctionBodies(t *testing.T) {
	src := "fn greet ( name ) {\nif name {\ngreeting\n} else {\nfallback\n}\n}\n"
	want := "fn greet(name) {\n  if name {\n    greeting\n  } else {\n    fallback\n  }\n}\n"
	assert.Equal(t, want, format(t, domain.ProjectApplication, src))
}

func TestFormat_BlankLineBetweenDeclarations(t *testing.T) {
	src := "fn a() {\nx\n}\nfn b() {\ny\n}\n"
	want := "fn a() {\n  x\n}\n\nfn b() {\n  y\n}\n"
	assert.Equal(t, want, format(t, domain.ProjectApplication, src))
}

func TestFormat_ModuleHeaderInPackage(t *testing.T) {
	src := "module   string-utils\nlet x = 1\n"
	want := "module string-utils\n\nlet x = 1\n"
	assert.Equal(t, want, format(t, domain.ProjectPackage, src))
}

func TestFormat_EmptyInput(t *testing.T) {
	assert.Equal(t, "", format(t, domain.ProjectApplication, ""))
}

// Formatting twice must converge: the first rendering is already the fixed
// point of the pipeline.
func TestFormat_Idempotent(t *testing.T) {
	inputs := []string{
		"#   helper   functions\nimport string as str\nimport string as str\nimport  array\n\n\nfn  greet ( name ) {\nname\n}\nlet x =  1",
		"fn outer() {\na\n\nb\n}",
		"let x = 1",
		"",
		"import b\nimport a\n# trailing comment",
	}
	for _, src := range inputs {
		once := format(t, domain.ProjectApplication, src)
		twice := format(t, domain.ProjectApplication, once)
		assert.Equal(t, once, twice, "input %q did not converge", src)
	}
}

func TestFormat_PackageIdempotent(t *testing.T) {
	src := "module my-utils\nimport  b\nimport a\nfn f() {\nx\n}"
	once := format(t, domain.ProjectPackage, src)
	twice := format(t, domain.ProjectPackage, once)
	assert.Equal(t, once, twice)
}
