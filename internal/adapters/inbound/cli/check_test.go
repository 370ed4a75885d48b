package cli_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCommand_ValidAndInvalid(t *testing.T) {
	dir := t.TempDir()
	valid := filepath.Join(dir, "a.lum")
	invalid := filepath.Join(dir, "b.lum")
	writeFile(t, valid, "let a = 1\n")
	writeFile(t, invalid, "let   b =  2")

	stdout, _, err := runCommand(t, "", "check", valid, invalid, "--path", dir)
	require.Error(t, err, "an invalid file fails the whole run")

	assert.Contains(t, stdout, "VALID")
	assert.Contains(t, stdout, "INVALID")
	// Status lines keep resolved-list order.
	assert.Less(t, strings.Index(stdout, valid), strings.Index(stdout, invalid))
	// Check never rewrites.
	assert.Equal(t, "let   b =  2", readFile(t, invalid))
}

func TestCheckCommand_AllValid(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.lum")
	writeFile(t, file, "let a = 1\n")

	stdout, _, err := runCommand(t, "", "check", file, "--path", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "VALID")
}

func TestCheckCommand_ParseError(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.lum")
	writeFile(t, bad, "???")

	stdout, _, err := runCommand(t, "", "check", bad, "--path", dir)
	require.Error(t, err)
	assert.Contains(t, stdout, "parse error")
	assert.Contains(t, err.Error(), bad)
}

func TestCheckCommand_Stdin(t *testing.T) {
	_, _, err := runCommand(t, "let a = 1\n", "check", "--stdin")
	require.NoError(t, err)

	_, _, err = runCommand(t, "let   a =  1", "check", "--stdin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "<stdin>")
}

func TestCheckCommand_WholeProject(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "lumen.yaml"), "type: application\nsource-directories: [src]\n")
	writeFile(t, filepath.Join(dir, "src", "a.lum"), "let a = 1\n")

	stdout, _, err := runCommand(t, "", "check", "--path", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "1 valid")
}

func TestCheckCommand_MissingManifest(t *testing.T) {
	_, _, err := runCommand(t, "", "check", "--path", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "manifest")
}
