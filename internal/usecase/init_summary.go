package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/beevik/etree"

	"github.com/runoshun/relnotes/internal/domain"
)

// DefaultSummaryFilename is the name used when no path is given.
const DefaultSummaryFilename = "releaseSummary.xml"

// InitSummaryInput contains the input for the InitSummary use case.
type InitSummaryInput struct {
	Path  string // Defaults to DefaultSummaryFilename
	Force bool   // Replace an existing file
}

// InitSummaryOutput contains the output of the InitSummary use case.
type InitSummaryOutput struct {
	Path   string
	Branch string // Empty when not run inside a repository
}

// SummaryTemplateFunc builds a summary template with the branch pre-filled.
type SummaryTemplateFunc func(branch string) *etree.Document

// InitSummary writes an empty release summary for the release manager to fill in.
type InitSummary struct {
	git      domain.Git
	store    domain.PamphletStore
	template SummaryTemplateFunc
	logger   *slog.Logger
}

// NewInitSummary creates a new InitSummary use case. git may be nil when the
// working directory is not a repository.
func NewInitSummary(git domain.Git, store domain.PamphletStore, template SummaryTemplateFunc, logger *slog.Logger) *InitSummary {
	if logger == nil {
		logger = slog.Default()
	}
	return &InitSummary{
		git:      git,
		store:    store,
		template: template,
		logger:   logger,
	}
}

// Execute writes the template.
func (uc *InitSummary) Execute(_ context.Context, in InitSummaryInput) (*InitSummaryOutput, error) {
	path := in.Path
	if path == "" {
		path = DefaultSummaryFilename
	}

	var branch string
	if uc.git != nil {
		b, err := uc.git.CurrentBranch()
		switch {
		case err == nil:
			branch = b
		case errors.Is(err, domain.ErrNotGitRepo):
		default:
			uc.logger.Warn("could not detect branch", "error", err)
		}
	}

	if err := uc.store.WriteSummaryTemplate(uc.template(branch), path, in.Force); err != nil {
		return nil, err
	}
	return &InitSummaryOutput{Path: path, Branch: branch}, nil
}
