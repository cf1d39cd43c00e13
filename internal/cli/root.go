// Package cli provides the command-line interface for relnotes.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/runoshun/relnotes/internal/app"
	"github.com/runoshun/relnotes/internal/domain"
	"github.com/runoshun/relnotes/internal/usecase"
)

// Command group IDs.
const (
	groupGenerate = "generate"
	groupSetup    = "setup"
)

// usageText explains the positional invocation. It is printed, and nothing
// else happens, when the argument count is wrong.
const usageText = `Usage:

  relnotes SUMMARY BUG_LIST NOTES_LIST OUTPUT_PAMPHLET

    where
      SUMMARY          Summary, a filled-in copy of the template written by "relnotes summary init".
      BUG_LIST         An xml tracker report of issues addressed by this release.
      NOTES_LIST       An xml tracker report listing issues which have detailed releaseNote.html attachments.
      OUTPUT_PAMPHLET  The output file to generate, typically RELEASE-NOTES.html.

relnotes connects to the issue tracker in order to read the detailed
release notes that have been attached to individual issues. Before
running it, make sure that you can reach the tracker host.

relnotes assumes that the two tracker reports contain key, title, and
attachments elements for each issue. For each issue in NOTES_LIST it looks
through the attachments block in that report and grabs the latest reported
releaseNote.html.

For this reason, it is recommended that you freshly generate BUG_LIST
and NOTES_LIST just before you run this tool.
`

// ContainerFactory builds the container once global flags are parsed.
type ContainerFactory func(opts app.Options) (*app.Container, error)

// globalFlags holds the persistent flags shared by every command.
type globalFlags struct {
	configPath    string
	logLevel      string
	missingReport string
}

// generateFlags are the named alternative to the four positional arguments.
type generateFlags struct {
	summary   string
	bugList   string
	notesList string
	output    string
}

func (f generateFlags) any() bool {
	return f.summary != "" || f.bugList != "" || f.notesList != "" || f.output != ""
}

func (f generateFlags) complete() bool {
	return f.summary != "" && f.bugList != "" && f.notesList != "" && f.output != ""
}

// NewRootCommand creates the root command for relnotes.
// The container is built by newContainer after flag parsing.
func NewRootCommand(newContainer ContainerFactory, version string) *cobra.Command {
	var global globalFlags
	var named generateFlags
	var c *app.Container

	root := &cobra.Command{
		Use:   "relnotes [SUMMARY BUG_LIST NOTES_LIST OUTPUT_PAMPHLET]",
		Short: "Release notes generator",
		Long: `relnotes assembles an HTML release notes pamphlet from a hand-filled
release summary, two issue tracker exports and the detailed notes attached
to individual issues.

` + usageText,
		Version: version,
		Args:    cobra.ArbitraryArgs,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if c != nil {
				return nil
			}
			container, err := newContainer(app.Options{
				ConfigPath: global.configPath,
				LogLevel:   global.logLevel,
				LogOutput:  cmd.ErrOrStderr(),
			})
			if err != nil {
				return fmt.Errorf("failed to initialize: %w", err)
			}
			c = container

			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := generateInput(named, args)
			if errors.Is(err, domain.ErrUsage) {
				c.Logger.Debug("printing usage", "reason", err)
				printUsage(cmd.OutOrStdout())
				return nil
			}
			if err != nil {
				return err
			}
			return runGenerate(cmd, c, in, global.missingReport)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&global.configPath, "config", "", "Configuration file merged over the global one")
	pf.StringVar(&global.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&global.missingReport, "missing-report", "", "Write issues lacking a release note to this YAML file")

	f := root.Flags()
	f.StringVar(&named.summary, "summary", "", "Release summary (SUMMARY)")
	f.StringVar(&named.bugList, "bug-list", "", "Tracker report of fixed issues (BUG_LIST)")
	f.StringVar(&named.notesList, "notes-list", "", "Tracker report of issues with detailed notes (NOTES_LIST)")
	f.StringVar(&named.output, "output", "", "Pamphlet to generate (OUTPUT_PAMPHLET)")

	root.AddGroup(
		&cobra.Group{ID: groupGenerate, Title: "Release Notes:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	issuesCmd := newIssuesCommand(func() *app.Container { return c })
	issuesCmd.GroupID = groupGenerate

	summaryCmd := newSummaryCommand(func() *app.Container { return c })
	summaryCmd.GroupID = groupSetup

	configCmd := newConfigCommand(func() *app.Container { return c })
	configCmd.GroupID = groupSetup

	root.AddCommand(issuesCmd, summaryCmd, configCmd)

	return root
}

// generateInput resolves the inputs from either the named flags or exactly
// four positional arguments. Anything else is a domain.ErrUsage.
func generateInput(named generateFlags, args []string) (usecase.GenerateReleaseNotesInput, error) {
	switch {
	case named.any():
		if !named.complete() {
			return usecase.GenerateReleaseNotesInput{}, fmt.Errorf("%w: --summary, --bug-list, --notes-list and --output go together", domain.ErrUsage)
		}
		if len(args) != 0 {
			return usecase.GenerateReleaseNotesInput{}, fmt.Errorf("%w: named flags and positional arguments are exclusive", domain.ErrUsage)
		}
		return usecase.GenerateReleaseNotesInput{
			SummaryPath:   named.summary,
			BugListPath:   named.bugList,
			NotesListPath: named.notesList,
			OutputPath:    named.output,
		}, nil
	case len(args) == 4:
		return usecase.GenerateReleaseNotesInput{
			SummaryPath:   args[0],
			BugListPath:   args[1],
			NotesListPath: args[2],
			OutputPath:    args[3],
		}, nil
	default:
		return usecase.GenerateReleaseNotesInput{}, fmt.Errorf("%w: expected 4 arguments, got %d", domain.ErrUsage, len(args))
	}
}

func printUsage(w io.Writer) {
	_, _ = fmt.Fprint(w, usageText)
}

func runGenerate(cmd *cobra.Command, c *app.Container, in usecase.GenerateReleaseNotesInput, missingReport string) error {
	out, err := c.GenerateReleaseNotesUseCase().Execute(cmd.Context(), in)
	if err != nil {
		return err
	}

	if _, err := c.ReportMissingNotesUseCase().Execute(cmd.Context(), usecase.ReportMissingNotesInput{
		ReleaseID:  out.ReleaseID,
		ReportPath: missingReport,
		Missing:    out.Missing,
	}); err != nil {
		return err
	}

	p := newPrinter(cmd.OutOrStdout())
	p.success("Wrote %s", out.OutputPath)
	p.muted("  release %s: %d bug fixes, %d detailed notes", out.ReleaseID, out.BugCount, out.NoteCount)
	if n := len(out.Missing); n > 0 {
		p.warning("  %d issues still need release notes", n)
	}
	return nil
}
