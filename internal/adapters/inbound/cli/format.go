package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumen-lang/lumenfmt/internal/adapters/outbound/gitinfo"
	"github.com/lumen-lang/lumenfmt/internal/adapters/outbound/manifest"
	"github.com/lumen-lang/lumenfmt/internal/adapters/outbound/pipeline"
	"github.com/lumen-lang/lumenfmt/internal/adapters/outbound/resolver"
	"github.com/lumen-lang/lumenfmt/internal/adapters/outbound/tui"
	"github.com/lumen-lang/lumenfmt/internal/application"
	"github.com/lumen-lang/lumenfmt/internal/domain"
)

func newFormatCmd() *cobra.Command {
	var (
		stdin bool
		yes   bool
		path  string
	)

	cmd := &cobra.Command{
		Use:   "format [files or directories...]",
		Short: "Rewrite Lumen sources into the canonical style",
		Long:  "Format the given files and directories in place, the whole project when no paths are given, or a single source unit from stdin. Files are only rewritten after confirmation.",
		RunE: func(cmd *cobra.Command, args []string) error {
			res := resolver.New(manifest.New(), path)
			inputs, err := res.Resolve(args, stdin)
			if err != nil {
				return err
			}

			// The stdin path writes the rendered bytes to stdout, so its
			// status line moves to stderr to keep stdout byte-exact.
			statusOut := cmd.OutOrStdout()
			if _, ok := inputs.(domain.StdinInput); ok {
				statusOut = cmd.ErrOrStderr()
			}
			reporter := tui.NewReporter(statusOut, false)
			confirmer := newPromptConfirmer(cmd.InOrStdin(), cmd.OutOrStdout(), gitinfo.New(), path)

			svc := application.NewFormatService(pipeline.New(), confirmer, reporter)
			report, err := svc.Run(inputs, application.FormatOptions{
				SkipConfirm: yes,
				Stdin:       cmd.InOrStdin(),
				Stdout:      cmd.OutOrStdout(),
			})
			if err != nil {
				return err
			}
			if _, ok := inputs.(domain.StdinInput); !ok {
				fmt.Fprintln(cmd.OutOrStdout(), tui.RenderSummary(report, false))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&stdin, "stdin", false, "Read a single source unit from standard input")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the overwrite confirmation prompt")
	cmd.Flags().StringVar(&path, "path", ".", "Project root consulted when no paths are given")

	return cmd
}
