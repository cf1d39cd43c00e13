package cli

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/relnotes/internal/domain"
)

func TestIssuesCommand(t *testing.T) {
	h := newHarness(t)
	notes := h.write(t, "notes.xml", testNotesList)

	err := h.run(t, "issues", notes)
	require.NoError(t, err)

	out := h.stdout.String()
	assert.Contains(t, out, "PROJ-2")
	assert.Contains(t, out, "12")
	assert.Contains(t, out, "behaviour change")
	assert.Contains(t, out, "PROJ-3")
	assert.Contains(t, out, "2 issues, 1 with release notes")
}

func TestIssuesCommand_RequiresReport(t *testing.T) {
	h := newHarness(t)
	assert.Error(t, h.run(t, "issues"))
}

func sampleIssues() []domain.Issue {
	return []domain.Issue{
		{Key: "DERBY-1", Title: "With note", NoteAttachmentID: 42, HasNote: true},
		{Key: "DERBY-2", Title: "Without note"},
	}
}

func TestRenderIssues(t *testing.T) {
	out := renderIssues(sampleIssues(), &printer{w: &bytes.Buffer{}})

	assert.Contains(t, out, "KEY")
	assert.Contains(t, out, "NOTE")
	assert.Contains(t, out, "TITLE")
	assert.Regexp(t, `DERBY-1\s+│\s+42\s+│\s+With note`, out)
	assert.Regexp(t, `DERBY-2\s+│\s+-\s+│\s+Without note`, out)
}

func TestRenderIssues_ColoredKeys(t *testing.T) {
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })

	out := renderIssues(sampleIssues(), &printer{w: &bytes.Buffer{}, colorize: true})

	assert.Contains(t, out, lipgloss.NewStyle().Foreground(colors.Key).Render("DERBY-1"))
	assert.Regexp(t, `42\s+│\s+With note`, out)
}
