package usecase

import (
	"context"
	"log/slog"

	"github.com/runoshun/relnotes/internal/domain"
)

// ReportMissingNotesInput contains the input for the ReportMissingNotes use case.
type ReportMissingNotesInput struct {
	ReleaseID  string
	ReportPath string // Optional YAML report; empty skips it
	Missing    []domain.Issue
}

// ReportMissingNotesOutput contains the output of the ReportMissingNotes use case.
type ReportMissingNotesOutput struct {
	ReportWritten bool
}

// ReportMissingNotes tells the release manager which issues still lack a
// detailed release note. It never fails the run.
type ReportMissingNotes struct {
	store  domain.PamphletStore
	clock  domain.Clock
	logger *slog.Logger
}

// NewReportMissingNotes creates a new ReportMissingNotes use case.
func NewReportMissingNotes(store domain.PamphletStore, clock domain.Clock, logger *slog.Logger) *ReportMissingNotes {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportMissingNotes{
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

// Execute logs the missing notes and writes the optional report.
func (uc *ReportMissingNotes) Execute(_ context.Context, in ReportMissingNotesInput) (*ReportMissingNotesOutput, error) {
	out := &ReportMissingNotesOutput{}

	if len(in.Missing) > 0 {
		uc.logger.Warn("The following issues still need release notes:")
		for _, issue := range in.Missing {
			uc.logger.Warn("missing release note", "key", issue.Key, "title", issue.Title)
		}
	}

	if in.ReportPath == "" {
		return out, nil
	}

	report := domain.MissingNotesReport{
		GeneratedAt: uc.clock.Now(),
		ReleaseID:   in.ReleaseID,
		Missing:     make([]domain.MissingNote, 0, len(in.Missing)),
	}
	for _, issue := range in.Missing {
		report.Missing = append(report.Missing, domain.MissingNote{Key: issue.Key, Title: issue.Title})
	}
	if err := uc.store.WriteMissingReport(report, in.ReportPath); err != nil {
		uc.logger.Error("failed to write missing notes report", "path", in.ReportPath, "error", err)
		return out, nil
	}
	out.ReportWritten = true
	return out, nil
}
