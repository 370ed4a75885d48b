package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	cacheAdapter "github.com/lumen-lang/lumenfmt/internal/adapters/outbound/cache"
	"github.com/lumen-lang/lumenfmt/internal/adapters/outbound/manifest"
	"github.com/lumen-lang/lumenfmt/internal/adapters/outbound/pipeline"
	"github.com/lumen-lang/lumenfmt/internal/adapters/outbound/resolver"
	"github.com/lumen-lang/lumenfmt/internal/adapters/outbound/tui"
	"github.com/lumen-lang/lumenfmt/internal/application"
)

func newCheckCmd() *cobra.Command {
	var (
		stdin   bool
		noCache bool
		path    string
	)

	cmd := &cobra.Command{
		Use:   "check [files or directories...]",
		Short: "Check that Lumen sources are canonically formatted",
		Long:  "Report whether the given files, the whole project, or stdin conform to the canonical style without changing anything. A file that would be reformatted fails the check, so it can gate CI.",
		RunE: func(cmd *cobra.Command, args []string) error {
			res := resolver.New(manifest.New(), path)
			inputs, err := res.Resolve(args, stdin)
			if err != nil {
				return err
			}

			reporter := tui.NewReporter(cmd.OutOrStdout(), true)
			svc := application.NewCheckService(pipeline.New(), reporter, cacheAdapter.New(), path)
			report, err := svc.Run(inputs, application.CheckOptions{
				NoCache: noCache,
				Stdin:   cmd.InOrStdin(),
			})
			if report != nil && !stdin {
				fmt.Fprintln(cmd.OutOrStdout(), tui.RenderSummary(report, true))
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&stdin, "stdin", false, "Read a single source unit from standard input")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Force a full re-check")
	cmd.Flags().StringVar(&path, "path", ".", "Project root consulted when no paths are given")

	return cmd
}
