// Package xmldoc reads XML input documents and provides the small set of
// tree queries the generator needs on top of etree.
package xmldoc

import (
	"fmt"
	"os"
	"strings"

	"github.com/beevik/etree"
	"github.com/runoshun/relnotes/internal/domain"
)

// Ensure Loader implements domain.DocumentLoader.
var _ domain.DocumentLoader = (*Loader)(nil)

// Loader parses XML files from disk.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the file at path. An unreadable file is a domain.ErrIO, a
// document that does not parse is a domain.ErrMalformedInput.
func (l *Loader) Load(path string) (*etree.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", domain.ErrIO, path, err)
	}
	defer f.Close()

	doc := etree.NewDocument()
	doc.ReadSettings.PreserveCData = true
	if _, err := doc.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", domain.ErrMalformedInput, path, err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("%w: parse %s: %w", domain.ErrMalformedInput, path, domain.ErrEmptyReportDoc)
	}
	return doc, nil
}

// FindAll returns every descendant of e with the given tag, in document order.
// etree's ".//tag" path queries walk breadth-first, so nested matches would
// come out of order.
func FindAll(e *etree.Element, tag string) []*etree.Element {
	var found []*etree.Element
	var walk func(*etree.Element)
	walk = func(parent *etree.Element) {
		for _, child := range parent.ChildElements() {
			if child.Tag == tag {
				found = append(found, child)
			}
			walk(child)
		}
	}
	walk(e)
	return found
}

// OptionalChild returns the first descendant of e with the given tag, or nil.
func OptionalChild(e *etree.Element, tag string) *etree.Element {
	for _, child := range e.ChildElements() {
		if child.Tag == tag {
			return child
		}
		if found := OptionalChild(child, tag); found != nil {
			return found
		}
	}
	return nil
}

// FirstChild returns the first descendant of e with the given tag. A missing
// element is a domain.MalformedInputError.
func FirstChild(e *etree.Element, tag string) (*etree.Element, error) {
	child := OptionalChild(e, tag)
	if child == nil {
		return nil, &domain.MalformedInputError{Field: tag, Parent: e.Tag}
	}
	return child, nil
}

// SqueezeText returns the direct text content of e with runs of whitespace
// collapsed to single spaces.
func SqueezeText(e *etree.Element) string {
	var sb strings.Builder
	for _, tok := range e.Child {
		if cd, ok := tok.(*etree.CharData); ok {
			sb.WriteString(cd.Data)
			sb.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

// RequiredText returns the squeezed text of the first descendant of e with
// the given tag. An absent or empty element is a domain.MalformedInputError.
func RequiredText(e *etree.Element, tag string) (string, error) {
	child, err := FirstChild(e, tag)
	if err != nil {
		return "", err
	}
	text := SqueezeText(child)
	if text == "" {
		return "", &domain.MalformedInputError{Field: tag, Parent: e.Tag, Detail: "element has no text"}
	}
	return text, nil
}
