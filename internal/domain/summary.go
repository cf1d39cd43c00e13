package domain

import (
	"time"

	"github.com/beevik/etree"
)

// ReleaseSummary is the hand-filled description of a release.
type ReleaseSummary struct {
	// Overview and NewFeatures are the summary's free-text blocks. Their
	// children are copied into the pamphlet verbatim.
	Overview    *etree.Element
	NewFeatures *etree.Element

	// fields holds the squeezed text of every plain summary field.
	fields map[SummaryField]string
}

// NewReleaseSummary creates a summary from already squeezed field values.
func NewReleaseSummary(fields map[SummaryField]string, overview, newFeatures *etree.Element) *ReleaseSummary {
	copied := make(map[SummaryField]string, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	return &ReleaseSummary{
		Overview:    overview,
		NewFeatures: newFeatures,
		fields:      copied,
	}
}

// Field returns the value of a plain summary field.
// A field that was absent from the summary is a MalformedInputError.
func (s *ReleaseSummary) Field(f SummaryField) (string, error) {
	v, ok := s.fields[f]
	if !ok {
		return "", &MalformedInputError{Field: f.Tag(), Parent: SummaryRootTag}
	}
	return v, nil
}

// ReleaseID returns the identifier of the release being described.
func (s *ReleaseSummary) ReleaseID() (string, error) {
	return s.Field(FieldReleaseID)
}

// PreviousReleaseID returns the identifier of the preceding release.
func (s *ReleaseSummary) PreviousReleaseID() (string, error) {
	return s.Field(FieldPreviousReleaseID)
}

// ReleaseNote is the detailed note attached to an issue.
type ReleaseNote struct {
	// Body holds the note's content; its children are copied into the pamphlet.
	Body *etree.Element
	// Summary is the squeezed text of the note's first paragraph.
	Summary string
}

// MissingNote is an issue that should have had a detailed release note.
type MissingNote struct {
	Key   string `yaml:"key"`
	Title string `yaml:"title"`
}

// MissingNotesReport is the machine-readable form of the missing-notes listing.
type MissingNotesReport struct {
	GeneratedAt time.Time     `yaml:"generated_at"`
	ReleaseID   string        `yaml:"release_id"`
	Missing     []MissingNote `yaml:"missing"`
}
