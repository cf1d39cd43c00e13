package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/relnotes/internal/app"
	"github.com/runoshun/relnotes/internal/domain"
)

const testSummary = `<?xml version="1.0" encoding="UTF-8"?>
<summary>
  <releaseID>10.3.1.4</releaseID>
  <previousReleaseID>10.2.2.0</previousReleaseID>
  <branch>10.3</branch>
  <machine>Linux</machine>
  <antVersion>1.6.5</antVersion>
  <jdk1.4>1.4.2</jdk1.4>
  <java6>1.6.0</java6>
  <osgi>felix</osgi>
  <compilers>javac</compilers>
  <jsr169>phoneME</jsr169>
  <overview><p>Derby is a pure Java database.</p></overview>
  <newFeatures><p>Nothing new.</p></newFeatures>
</summary>`

const testBugList = `<rss><channel>
  <item><key>PROJ-1</key><title>[PROJ-1] fix crash</title></item>
</channel></rss>`

const testNotesList = `<rss><channel>
  <item><key>PROJ-2</key><title>[PROJ-2] behaviour change</title>
    <attachments>
      <attachment id="5" name="releaseNote.html"/>
      <attachment id="12" name="releaseNote.html"/>
      <attachment id="99" name="other.txt"/>
    </attachments>
  </item>
  <item><key>PROJ-3</key><title>[PROJ-3] no note yet</title></item>
</channel></rss>`

const testNote = `<html><body><h4>Summary of Change</h4><p>Queries now return sooner.</p></body></html>`

type harness struct {
	dir    string
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return &harness{dir: t.TempDir()}
}

func (h *harness) write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(h.dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func (h *harness) path(name string) string {
	return filepath.Join(h.dir, name)
}

func (h *harness) run(t *testing.T, args ...string) error {
	t.Helper()
	globalDir := filepath.Join(h.dir, "global")
	factory := func(opts app.Options) (*app.Container, error) {
		opts.GlobalConfigDir = globalDir
		opts.WorkDir = h.dir
		return app.New(opts)
	}
	root := NewRootCommand(factory, "test")
	root.SetOut(&h.stdout)
	root.SetErr(&h.stderr)
	root.SetArgs(args)
	return root.Execute()
}

func noteServer(t *testing.T) (*httptest.Server, *[]string) {
	t.Helper()
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		_, _ = w.Write([]byte(testNote))
	}))
	t.Cleanup(server.Close)
	return server, &paths
}

func TestRoot_WrongArgumentCountPrintsUsage(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"a"},
		{"a", "b", "c"},
		{"a", "b", "c", "d", "e"},
		{"--summary", "s.xml"},
	} {
		h := newHarness(t)
		err := h.run(t, args...)
		require.NoError(t, err, "%v", args)
		assert.Contains(t, h.stdout.String(), "relnotes SUMMARY BUG_LIST NOTES_LIST OUTPUT_PAMPHLET")
		entries, _ := os.ReadDir(h.dir)
		assert.Empty(t, entries, "nothing may be written for %v", args)
	}
}

func TestGenerateInput(t *testing.T) {
	in, err := generateInput(generateFlags{}, []string{"s", "b", "n", "o"})
	require.NoError(t, err)
	assert.Equal(t, "n", in.NotesListPath)

	in, err = generateInput(generateFlags{summary: "s", bugList: "b", notesList: "n", output: "o"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "o", in.OutputPath)

	_, err = generateInput(generateFlags{summary: "s"}, nil)
	assert.ErrorIs(t, err, domain.ErrUsage)

	_, err = generateInput(generateFlags{summary: "s", bugList: "b", notesList: "n", output: "o"}, []string{"x"})
	assert.ErrorIs(t, err, domain.ErrUsage)

	_, err = generateInput(generateFlags{}, []string{"s", "b"})
	assert.ErrorIs(t, err, domain.ErrUsage)
}

func TestRoot_Generate(t *testing.T) {
	server, paths := noteServer(t)
	h := newHarness(t)
	cfg := h.write(t, "relnotes.toml", `
[tracker]
attachment_base_url = "`+server.URL+`/secure/attachment"
`)
	summary := h.write(t, "summary.xml", testSummary)
	bugs := h.write(t, "bugs.xml", testBugList)
	notes := h.write(t, "notes.xml", testNotesList)
	output := h.path("RELEASE-NOTES.html")

	err := h.run(t, "--config", cfg, "--missing-report", h.path("missing.yaml"), summary, bugs, notes, output)
	require.NoError(t, err)

	assert.Equal(t, []string{"/secure/attachment/12/releaseNote.html"}, *paths)
	assert.Contains(t, h.stdout.String(), "Wrote "+output)
	assert.Contains(t, h.stdout.String(), "1 issues still need release notes")
	assert.Contains(t, h.stderr.String(), "key=PROJ-3")

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromFile(output))
	assert.Equal(t, "Release Notes for Derby 10.3.1.4", doc.FindElement("//title").Text())

	var captions []string
	for _, a := range doc.FindElements("/html/body/ul/li/a") {
		captions = append(captions, a.Text())
	}
	assert.Equal(t, []string{
		"Overview", "New Features", "Bug Fixes", "Issues", "Build Environment",
		"Note for PROJ-2: Queries now return sooner.",
		"Note for PROJ-3: ???",
	}, captions)

	html, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(html), `<a name="Overview"></a>`)
	assert.Contains(t, string(html), `<a href="http://issues.apache.org/jira/browse/PROJ-1">PROJ-1</a>`)

	report, err := os.ReadFile(h.path("missing.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(report), "key: PROJ-3")
	assert.Contains(t, string(report), "release_id: 10.3.1.4")
}

func TestRoot_GenerateWithNamedFlags(t *testing.T) {
	h := newHarness(t)
	summary := h.write(t, "summary.xml", testSummary)
	bugs := h.write(t, "bugs.xml", testBugList)
	notes := h.write(t, "notes.xml", `<rss><channel/></rss>`)
	output := h.path("out.html")

	err := h.run(t, "--summary", summary, "--bug-list", bugs, "--notes-list", notes, "--output", output)
	require.NoError(t, err)

	_, err = os.Stat(output)
	require.NoError(t, err)
	assert.NotContains(t, h.stdout.String(), "still need release notes")
}

func TestRoot_GenerateFailureWritesNothing(t *testing.T) {
	h := newHarness(t)
	summary := h.write(t, "summary.xml", `<summary><releaseID>1</releaseID></summary>`)
	bugs := h.write(t, "bugs.xml", testBugList)
	notes := h.write(t, "notes.xml", testNotesList)
	output := h.path("out.html")

	err := h.run(t, summary, bugs, notes, output)
	require.ErrorIs(t, err, domain.ErrMalformedInput)
	assert.Contains(t, err.Error(), "previousReleaseID")

	_, statErr := os.Stat(output)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestRoot_ConfigWarnings(t *testing.T) {
	h := newHarness(t)
	cfg := h.write(t, "relnotes.toml", "[pamphlet]\nproduct = \"typo\"\n")

	err := h.run(t, "--config", cfg, "config", "template")
	require.NoError(t, err)
	assert.Contains(t, h.stderr.String(), "Warning: unknown key in relnotes.toml: pamphlet.product")
}
