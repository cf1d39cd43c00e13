package tracker

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"

	"github.com/runoshun/relnotes/internal/domain"
)

// Ensure NoteFetcher implements domain.NoteFetcher.
var _ domain.NoteFetcher = (*NoteFetcher)(nil)

// HTTPDoer describes the HTTP client used to download notes.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NoteFetcher downloads detailed release notes from the tracker's attachment
// store.
type NoteFetcher struct {
	client         HTTPDoer
	logger         *slog.Logger
	attachmentBase string
	noteFilename   string
	userAgent      string
}

// NewNoteFetcher creates a NoteFetcher for the configured tracker.
func NewNoteFetcher(cfg domain.TrackerConfig, userAgent string, client HTTPDoer, logger *slog.Logger) *NoteFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &NoteFetcher{
		client:         client,
		logger:         logger,
		attachmentBase: strings.TrimSpace(cfg.AttachmentBaseURL),
		noteFilename:   cfg.NoteFilename,
		userAgent:      userAgent,
	}
}

// Fetch downloads and parses the issue's detailed note. It returns nil
// without touching the network when the issue has no note.
func (f *NoteFetcher) Fetch(ctx context.Context, issue domain.Issue) (*domain.ReleaseNote, error) {
	if !issue.HasNote {
		return nil, nil
	}

	address := issue.NoteAddress(f.attachmentBase, f.noteFilename)
	f.logger.Debug("fetching release note", "key", issue.Key, "url", address)

	doc, err := f.get(ctx, address)
	if err != nil {
		noteErr := &domain.NoteError{Kind: domain.ErrNetwork, Key: issue.Key, Err: err}
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) {
			noteErr.Hint = fmt.Sprintf("Unknown host '%s'. Can you ping this host from a shell window?", dnsErr.Name)
			f.logger.Warn(noteErr.Hint, "key", issue.Key)
		}
		return nil, noteErr
	}
	return ParseNote(issue, doc)
}

func (f *NoteFetcher) get(ctx context.Context, address string) (*etree.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, address, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("GET %s returned %d", address, resp.StatusCode)
	}

	doc := newNoteDocument()
	if _, err := doc.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("parse %s: %w", address, err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("parse %s: %w", address, domain.ErrEmptyReportDoc)
	}
	return doc, nil
}

// newNoteDocument returns a document configured for the loosely written HTML
// that people attach as release notes.
func newNoteDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.ReadSettings.Permissive = true
	doc.ReadSettings.AutoClose = xml.HTMLAutoClose
	doc.ReadSettings.Entity = xml.HTMLEntity
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	return doc
}
