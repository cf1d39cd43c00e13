package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/runoshun/relnotes/internal/app"
	"github.com/runoshun/relnotes/internal/domain"
	"github.com/runoshun/relnotes/internal/usecase"
)

// newIssuesCommand creates the issues command.
func newIssuesCommand(container func() *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "issues <report.xml>",
		Short: "List the issues of a tracker report",
		Long: `List the issues of a tracker report with the attachment id of their
detailed release note, if any. Use it to check a NOTES_LIST before generating.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := container().ListIssuesUseCase().Execute(cmd.Context(), usecase.ListIssuesInput{
				ReportPath: args[0],
			})
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout())
			_, _ = fmt.Fprintln(p.w, renderIssues(out.Issues, p))
			p.muted("%d issues, %d with release notes", len(out.Issues), out.NoteCount)
			return nil
		},
	}
}

// renderIssues formats issues as a table of key, note attachment and title.
// Keys are coloured when p writes to a terminal.
func renderIssues(issues []domain.Issue, p *printer) string {
	keyStyle := lipgloss.NewStyle().Foreground(colors.Key)
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Key", "Note", "Title"})
	for _, issue := range issues {
		note := "-"
		if issue.HasNote {
			note = strconv.FormatInt(issue.NoteAttachmentID, 10)
		}
		tw.AppendRow(table.Row{p.render(keyStyle, issue.Key), note, issue.Title})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
