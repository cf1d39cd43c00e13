// Package tracker reads issue tracker exports and downloads the detailed
// release notes attached to issues.
package tracker

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/samber/lo"

	"github.com/runoshun/relnotes/internal/domain"
	"github.com/runoshun/relnotes/internal/infra/xmldoc"
)

// ExtractIssues returns one Issue per <item> of a tracker export, in document
// order. noteFilename names the attachment that holds an issue's detailed
// release note.
func ExtractIssues(report *etree.Document, noteFilename string) ([]domain.Issue, error) {
	root := report.Root()
	if root == nil {
		return nil, domain.ErrEmptyReportDoc
	}

	items := xmldoc.FindAll(root, domain.TrackerItem)
	issues := make([]domain.Issue, 0, len(items))
	for i, item := range items {
		issue, err := makeIssue(item, noteFilename)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		issues = append(issues, issue)
	}
	return issues, nil
}

func makeIssue(item *etree.Element, noteFilename string) (domain.Issue, error) {
	key, err := xmldoc.RequiredText(item, domain.TrackerKey)
	if err != nil {
		return domain.Issue{}, err
	}
	rawTitle, err := xmldoc.RequiredText(item, domain.TrackerTitle)
	if err != nil {
		return domain.Issue{}, fmt.Errorf("%s: %w", key, err)
	}

	// "[DERBY-2598] new upgrade test failures" -> the key already carries the id
	title, err := domain.StripTrackerPrefix(rawTitle)
	if err != nil {
		return domain.Issue{}, fmt.Errorf("%s: %w", key, &domain.MalformedInputError{
			Field:  domain.TrackerTitle,
			Parent: item.Tag,
			Detail: err.Error(),
		})
	}

	id, ok, err := latestNoteAttachment(item, noteFilename)
	if err != nil {
		return domain.Issue{}, fmt.Errorf("%s: %w", key, err)
	}

	return domain.Issue{
		Key:              key,
		Title:            title,
		NoteAttachmentID: id,
		HasNote:          ok,
	}, nil
}

// latestNoteAttachment returns the highest id among the item's attachments
// named noteFilename. Trackers keep every re-upload, so the newest one wins.
func latestNoteAttachment(item *etree.Element, noteFilename string) (int64, bool, error) {
	attachments := xmldoc.OptionalChild(item, domain.TrackerAttachments)
	if attachments == nil {
		return 0, false, nil
	}

	notes := lo.Filter(attachments.FindElements(".//"+domain.TrackerAttachment), func(a *etree.Element, _ int) bool {
		return a.SelectAttrValue(domain.TrackerName, "") == noteFilename
	})

	var latest int64
	found := false
	for _, a := range notes {
		raw := a.SelectAttrValue(domain.TrackerID, "")
		id, err := domain.ParseAttachmentID(raw)
		if err != nil {
			return 0, false, &domain.MalformedInputError{
				Field:  domain.TrackerID,
				Parent: domain.TrackerAttachment,
				Detail: err.Error(),
			}
		}
		if !found || id > latest {
			latest = id
			found = true
		}
	}
	return latest, found, nil
}
