// Package filestore writes the generator's artifacts to disk.
package filestore

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/beevik/etree"
	"gopkg.in/yaml.v3"

	"github.com/runoshun/relnotes/internal/domain"
)

// Ensure Store implements domain.PamphletStore.
var _ domain.PamphletStore = (*Store)(nil)

// Store implements domain.PamphletStore on the local filesystem.
type Store struct {
	indent int // spaces per level; zero or negative writes the tree as built
}

// New creates a new Store.
func New(indent int) *Store {
	return &Store{indent: indent}
}

// WritePamphlet serializes the document in memory, then writes it to path in
// one go. Indenting inserts whitespace into mixed content, so it only happens
// when the store was created with a positive indent.
func (s *Store) WritePamphlet(doc *etree.Document, path string) error {
	out := doc.Copy()
	out.WriteSettings.CanonicalEndTags = true
	if s.indent > 0 {
		out.Indent(s.indent)
	}

	var buf bytes.Buffer
	if _, err := out.WriteTo(&buf); err != nil {
		return fmt.Errorf("%w: serialize pamphlet: %w", domain.ErrIO, err)
	}
	if err := writeAtomic(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: write pamphlet %s: %w", domain.ErrIO, path, err)
	}
	return nil
}

// WriteMissingReport writes the missing-notes report as YAML.
func (s *Store) WriteMissingReport(report domain.MissingNotesReport, path string) error {
	content, err := yaml.Marshal(&report)
	if err != nil {
		return fmt.Errorf("marshal missing notes report: %w", err)
	}
	if err := writeAtomic(path, content, 0o644); err != nil {
		return fmt.Errorf("%w: write missing notes report %s: %w", domain.ErrIO, path, err)
	}
	return nil
}

// WriteSummaryTemplate writes a release summary template.
func (s *Store) WriteSummaryTemplate(doc *etree.Document, path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s: %w", path, domain.ErrSummaryExists)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: stat %s: %w", domain.ErrIO, path, err)
		}
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return fmt.Errorf("%w: serialize summary template: %w", domain.ErrIO, err)
	}
	if err := writeAtomic(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: write summary template %s: %w", domain.ErrIO, path, err)
	}
	return nil
}

// writeAtomic writes to a temp file next to path, then renames it into place.
func writeAtomic(path string, content []byte, perm os.FileMode) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, content, perm); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
