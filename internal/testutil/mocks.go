// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"time"

	"github.com/beevik/etree"

	"github.com/runoshun/relnotes/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockInputReader is a test double for domain.InputReader.
// Fields are ordered to minimize memory padding.
type MockInputReader struct {
	Summary    *domain.ReleaseSummary
	Issues     map[string][]domain.Issue // Keyed by path
	SummaryErr error
	IssuesErr  error
	Read       []string // Paths read, in order
}

// NewMockInputReader creates a new MockInputReader with initialized maps.
func NewMockInputReader() *MockInputReader {
	return &MockInputReader{
		Issues: make(map[string][]domain.Issue),
	}
}

// Ensure MockInputReader implements domain.InputReader interface.
var _ domain.InputReader = (*MockInputReader)(nil)

// ReadSummary returns the configured summary or error.
func (m *MockInputReader) ReadSummary(path string) (*domain.ReleaseSummary, error) {
	m.Read = append(m.Read, path)
	if m.SummaryErr != nil {
		return nil, m.SummaryErr
	}
	return m.Summary, nil
}

// ReadIssues returns the issues registered for path.
func (m *MockInputReader) ReadIssues(path string) ([]domain.Issue, error) {
	m.Read = append(m.Read, path)
	if m.IssuesErr != nil {
		return nil, m.IssuesErr
	}
	return m.Issues[path], nil
}

// MockNoteFetcher is a test double for domain.NoteFetcher.
type MockNoteFetcher struct {
	Notes   map[string]*domain.ReleaseNote // Keyed by issue key
	Errs    map[string]error               // Keyed by issue key
	Fetched []string
}

// NewMockNoteFetcher creates a new MockNoteFetcher with initialized maps.
func NewMockNoteFetcher() *MockNoteFetcher {
	return &MockNoteFetcher{
		Notes: make(map[string]*domain.ReleaseNote),
		Errs:  make(map[string]error),
	}
}

// Ensure MockNoteFetcher implements domain.NoteFetcher interface.
var _ domain.NoteFetcher = (*MockNoteFetcher)(nil)

// Fetch returns the note registered for the issue. Issues without a note
// return nil, as the real fetcher does.
func (m *MockNoteFetcher) Fetch(_ context.Context, issue domain.Issue) (*domain.ReleaseNote, error) {
	if !issue.HasNote {
		return nil, nil
	}
	m.Fetched = append(m.Fetched, issue.Key)
	if err, ok := m.Errs[issue.Key]; ok {
		return nil, err
	}
	return m.Notes[issue.Key], nil
}

// MockStore is a test double for domain.PamphletStore.
// Fields are ordered to minimize memory padding.
type MockStore struct {
	Pamphlet           *etree.Document
	SummaryTemplate    *etree.Document
	PamphletErr        error
	MissingErr         error
	SummaryErr         error
	PamphletPath       string
	MissingReportPath  string
	SummaryPath        string
	MissingReport      domain.MissingNotesReport
	PamphletWrites     int
	SummaryOverwrite   bool
	MissingReportWrote bool
}

// NewMockStore creates a new MockStore.
func NewMockStore() *MockStore {
	return &MockStore{}
}

// Ensure MockStore implements domain.PamphletStore interface.
var _ domain.PamphletStore = (*MockStore)(nil)

// WritePamphlet records the document.
func (m *MockStore) WritePamphlet(doc *etree.Document, path string) error {
	if m.PamphletErr != nil {
		return m.PamphletErr
	}
	m.Pamphlet = doc
	m.PamphletPath = path
	m.PamphletWrites++
	return nil
}

// WriteMissingReport records the report.
func (m *MockStore) WriteMissingReport(report domain.MissingNotesReport, path string) error {
	if m.MissingErr != nil {
		return m.MissingErr
	}
	m.MissingReport = report
	m.MissingReportPath = path
	m.MissingReportWrote = true
	return nil
}

// WriteSummaryTemplate records the template.
func (m *MockStore) WriteSummaryTemplate(doc *etree.Document, path string, overwrite bool) error {
	if m.SummaryErr != nil {
		return m.SummaryErr
	}
	m.SummaryTemplate = doc
	m.SummaryPath = path
	m.SummaryOverwrite = overwrite
	return nil
}

// MockGit is a test double for domain.Git.
type MockGit struct {
	CurrentBranchErr  error
	CurrentBranchName string
}

// Ensure MockGit implements domain.Git interface.
var _ domain.Git = (*MockGit)(nil)

// CurrentBranch returns the configured branch or error.
func (m *MockGit) CurrentBranch() (string, error) {
	if m.CurrentBranchErr != nil {
		return "", m.CurrentBranchErr
	}
	return m.CurrentBranchName, nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
	Infos   []domain.ConfigInfo
}

// NewMockConfigLoader creates a new MockConfigLoader with default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{
		Config: domain.NewDefaultConfig(),
	}
}

// Ensure MockConfigLoader implements domain.ConfigLoader interface.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// Load returns the configured config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// Sources returns the configured infos.
func (m *MockConfigLoader) Sources() []domain.ConfigInfo {
	return m.Infos
}
