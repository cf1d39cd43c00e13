package cli

import (
	"github.com/spf13/cobra"

	"github.com/runoshun/relnotes/internal/app"
	"github.com/runoshun/relnotes/internal/usecase"
)

// newSummaryCommand creates the summary command.
func newSummaryCommand(container func() *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Manage the release summary",
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newSummaryInitCommand(container))

	return cmd
}

// newSummaryInitCommand creates the summary init subcommand.
func newSummaryInitCommand(container func() *app.Container) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write an empty release summary to fill in",
		Long: `Write a release summary template with every field present.
The branch is filled in from the current git repository when there is one.
The default path is ` + usecase.DefaultSummaryFilename + `.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := usecase.InitSummaryInput{Force: force}
			if len(args) == 1 {
				in.Path = args[0]
			}

			out, err := container().InitSummaryUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout())
			p.success("Created %s", out.Path)
			if out.Branch != "" {
				p.muted("  branch: %s", out.Branch)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	return cmd
}
