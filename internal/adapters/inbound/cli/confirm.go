package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lumen-lang/lumenfmt/internal/adapters/outbound/tui"
	"github.com/lumen-lang/lumenfmt/internal/domain"
)

// promptConfirmer implements domain.Confirmer over a terminal. An empty
// answer or EOF counts as consent: unattended invocations should not hang
// or silently do nothing, and --yes exists for fully automated runs.
type promptConfirmer struct {
	in        io.Reader
	out       io.Writer
	inspector domain.RepoInspector
	root      string
}

func newPromptConfirmer(in io.Reader, out io.Writer, inspector domain.RepoInspector, root string) *promptConfirmer {
	return &promptConfirmer{in: in, out: out, inspector: inspector, root: root}
}

func (c *promptConfirmer) ConfirmOverwrite(paths []string) (bool, error) {
	var repo *domain.RepoSummary
	if c.inspector != nil {
		if sum, ok := c.inspector.Summary(c.root, paths); ok {
			repo = &sum
		}
	}
	fmt.Fprint(c.out, tui.RenderConfirmPrompt(paths, repo))

	answer, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "", "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
