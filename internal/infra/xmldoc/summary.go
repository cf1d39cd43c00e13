package xmldoc

import (
	"github.com/beevik/etree"
	"github.com/runoshun/relnotes/internal/domain"
)

// ParseSummary reads a release summary document. The release identifiers and
// both free-text blocks are required; the remaining fields are looked up
// lazily so that a missing one only fails the section that needs it.
func ParseSummary(doc *etree.Document) (*domain.ReleaseSummary, error) {
	root := doc.Root()
	if root == nil {
		return nil, domain.ErrEmptyReportDoc
	}

	fields := make(map[domain.SummaryField]string)
	for _, f := range domain.SummaryFields() {
		if f == domain.FieldOverview || f == domain.FieldNewFeatures {
			continue
		}
		child := OptionalChild(root, f.Tag())
		if child == nil {
			continue
		}
		if text := SqueezeText(child); text != "" {
			fields[f] = text
		}
	}

	for _, f := range []domain.SummaryField{domain.FieldReleaseID, domain.FieldPreviousReleaseID} {
		if _, ok := fields[f]; !ok {
			return nil, &domain.MalformedInputError{Field: f.Tag(), Parent: root.Tag}
		}
	}

	overview, err := FirstChild(root, domain.FieldOverview.Tag())
	if err != nil {
		return nil, err
	}
	newFeatures, err := FirstChild(root, domain.FieldNewFeatures.Tag())
	if err != nil {
		return nil, err
	}

	return domain.NewReleaseSummary(fields, overview, newFeatures), nil
}

// NewSummaryTemplate builds an empty summary document with every field
// present. The branch is pre-filled when known.
func NewSummaryTemplate(branch string) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement(domain.SummaryRootTag)
	for _, f := range domain.SummaryFields() {
		child := root.CreateElement(f.Tag())
		switch f {
		case domain.FieldBranch:
			if branch != "" {
				child.SetText(branch)
			}
		case domain.FieldOverview, domain.FieldNewFeatures:
			child.CreateElement("p")
		}
	}
	doc.Indent(2)
	return doc
}
