// Package inputs reads the release summary and tracker exports from disk.
package inputs

import (
	"fmt"

	"github.com/runoshun/relnotes/internal/domain"
	"github.com/runoshun/relnotes/internal/infra/tracker"
	"github.com/runoshun/relnotes/internal/infra/xmldoc"
)

// Ensure Reader implements domain.InputReader.
var _ domain.InputReader = (*Reader)(nil)

// Reader implements domain.InputReader on top of a DocumentLoader.
type Reader struct {
	loader       domain.DocumentLoader
	noteFilename string
}

// NewReader creates a Reader. noteFilename is the attachment name that marks
// an issue's detailed release note.
func NewReader(loader domain.DocumentLoader, noteFilename string) *Reader {
	return &Reader{
		loader:       loader,
		noteFilename: noteFilename,
	}
}

// ReadSummary parses the release summary at path.
func (r *Reader) ReadSummary(path string) (*domain.ReleaseSummary, error) {
	doc, err := r.loader.Load(path)
	if err != nil {
		return nil, err
	}
	summary, err := xmldoc.ParseSummary(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return summary, nil
}

// ReadIssues extracts the issues of the tracker export at path.
func (r *Reader) ReadIssues(path string) ([]domain.Issue, error) {
	doc, err := r.loader.Load(path)
	if err != nil {
		return nil, err
	}
	issues, err := tracker.ExtractIssues(doc, r.noteFilename)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return issues, nil
}
