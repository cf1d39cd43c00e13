package tracker

import (
	"github.com/beevik/etree"

	"github.com/runoshun/relnotes/internal/domain"
	"github.com/runoshun/relnotes/internal/infra/xmldoc"
)

// ParseNote extracts the summary and body of a fetched note.
func ParseNote(issue domain.Issue, note *etree.Document) (*domain.ReleaseNote, error) {
	summary, err := NoteSummary(issue, note)
	if err != nil {
		return nil, err
	}
	body, err := NoteBody(issue, note)
	if err != nil {
		return nil, err
	}
	return &domain.ReleaseNote{Summary: summary, Body: body}, nil
}

// NoteSummary returns the one-line summary of a release note: the text of its
// first paragraph. A release note looks like
//
//	<h4>Summary of Change</h4>
//	<p>
//	 Summary text
//	</p>
//	...
func NoteSummary(issue domain.Issue, note *etree.Document) (string, error) {
	root := note.Root()
	if root == nil {
		return "", &domain.NoteError{Kind: domain.ErrMalformedNote, Key: issue.Key, Err: domain.ErrEmptyReportDoc}
	}
	paragraph, err := xmldoc.FirstChild(root, domain.NoteParagraph)
	if err != nil {
		return "", &domain.NoteError{Kind: domain.ErrMalformedNote, Key: issue.Key, Err: err}
	}
	return xmldoc.SqueezeText(paragraph), nil
}

// NoteBody returns the body element of a release note.
func NoteBody(issue domain.Issue, note *etree.Document) (*etree.Element, error) {
	root := note.Root()
	if root == nil {
		return nil, &domain.NoteError{Kind: domain.ErrMalformedNote, Key: issue.Key, Err: domain.ErrEmptyReportDoc}
	}
	if root.Tag == domain.NoteBody {
		return root, nil
	}
	body, err := xmldoc.FirstChild(root, domain.NoteBody)
	if err != nil {
		return nil, &domain.NoteError{Kind: domain.ErrMalformedNote, Key: issue.Key, Err: err}
	}
	return body, nil
}
