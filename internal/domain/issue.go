package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Issue is one entry of a tracker export.
// Fields are ordered to minimize memory padding.
type Issue struct {
	Key              string // Unique tracker ID, e.g. DERBY-2598
	Title            string // Title without its leading "[KEY] " prefix
	NoteAttachmentID int64  // Latest detailed-note attachment, valid when HasNote
	HasNote          bool
}

// TrackerAddress returns the public page of the issue.
func (i Issue) TrackerAddress(browseBase string) string {
	return strings.TrimRight(browseBase, "/") + "/" + i.Key
}

// NoteAddress returns the download address of the issue's detailed note.
// It returns an empty string when the issue has no note.
func (i Issue) NoteAddress(attachmentBase, noteFilename string) string {
	if !i.HasNote {
		return ""
	}
	return fmt.Sprintf("%s/%d/%s",
		strings.TrimRight(attachmentBase, "/"),
		i.NoteAttachmentID,
		url.PathEscape(noteFilename),
	)
}

// StripTrackerPrefix removes the leading bracketed tracker ID from a title:
// everything up to and including the first ']' plus one separator character.
//
//	"[DERBY-2598] new upgrade test failures" -> "new upgrade test failures"
//
// A title without ']' is rejected.
func StripTrackerPrefix(title string) (string, error) {
	idx := strings.IndexByte(title, ']')
	if idx < 0 {
		return "", fmt.Errorf("title %q has no bracketed tracker id", title)
	}
	rest := title[idx+1:]
	_, size := utf8.DecodeRuneInString(rest)
	return rest[size:], nil
}

var errEmptyID = errors.New("empty attachment id")

// ParseAttachmentID parses an attachment identifier written as an integer
// literal: an optional sign, then "0x", "0X" or "#" for hexadecimal, a
// leading "0" for octal, or plain decimal. Negative values and values outside
// int64 are rejected.
func ParseAttachmentID(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errEmptyID
	}

	neg := false
	digits := s
	switch digits[0] {
	case '-':
		neg = true
		digits = digits[1:]
	case '+':
		digits = digits[1:]
	}

	base := 10
	switch {
	case strings.HasPrefix(digits, "0x"), strings.HasPrefix(digits, "0X"):
		base, digits = 16, digits[2:]
	case strings.HasPrefix(digits, "#"):
		base, digits = 16, digits[1:]
	case len(digits) > 1 && digits[0] == '0':
		base, digits = 8, digits[1:]
	}
	if digits == "" || digits[0] == '-' || digits[0] == '+' {
		return 0, fmt.Errorf("invalid attachment id %q", s)
	}

	u, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid attachment id %q: %w", s, err)
	}
	if neg && u != 0 {
		return 0, fmt.Errorf("attachment id %q is negative", s)
	}
	if u > 1<<63-1 {
		return 0, fmt.Errorf("attachment id %q out of range", s)
	}
	return int64(u), nil
}
