package domain

import (
	"context"
	"time"

	"github.com/beevik/etree"
)

// DocumentLoader reads XML input documents.
type DocumentLoader interface {
	// Load parses the file at path.
	Load(path string) (*etree.Document, error)
}

// InputReader reads the generator's input files.
type InputReader interface {
	// ReadSummary parses a release summary.
	ReadSummary(path string) (*ReleaseSummary, error)

	// ReadIssues extracts the issues of a tracker export, in document order.
	ReadIssues(path string) ([]Issue, error)
}

// NoteFetcher retrieves detailed release notes.
type NoteFetcher interface {
	// Fetch returns the issue's note, or nil if the issue has none.
	Fetch(ctx context.Context, issue Issue) (*ReleaseNote, error)
}

// PamphletStore persists generated artifacts.
type PamphletStore interface {
	// WritePamphlet serializes the document to path in a single write.
	WritePamphlet(doc *etree.Document, path string) error

	// WriteMissingReport writes the missing-notes report to path.
	WriteMissingReport(report MissingNotesReport, path string) error

	// WriteSummaryTemplate writes a summary template, refusing to replace an
	// existing file unless overwrite is set.
	WriteSummaryTemplate(doc *etree.Document, path string, overwrite bool) error
}

// Git provides read-only repository information.
type Git interface {
	// CurrentBranch returns the short name of the checked out branch.
	CurrentBranch() (string, error)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration.
	Load() (*Config, error)

	// Sources lists the configuration files consulted, in merge order.
	Sources() []ConfigInfo
}

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system time.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
