package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/beevik/etree"

	"github.com/runoshun/relnotes/internal/domain"
	"github.com/runoshun/relnotes/internal/pamphlet"
)

// GenerateReleaseNotesInput contains the input for the GenerateReleaseNotes use case.
type GenerateReleaseNotesInput struct {
	SummaryPath   string // Hand-filled release summary
	BugListPath   string // Tracker export of the issues fixed in the release
	NotesListPath string // Tracker export of the issues that need a detailed note
	OutputPath    string // Where the pamphlet is written
}

// GenerateReleaseNotesOutput contains the output of the GenerateReleaseNotes use case.
// Fields are ordered to minimize memory padding.
type GenerateReleaseNotesOutput struct {
	ReleaseID  string
	OutputPath string
	Missing    []domain.Issue // Issues without a detailed note, in notes-list order
	BugCount   int
	NoteCount  int
}

// GenerateReleaseNotes assembles the release notes pamphlet and writes it.
type GenerateReleaseNotes struct {
	inputs   domain.InputReader
	fetcher  domain.NoteFetcher
	store    domain.PamphletStore
	logger   *slog.Logger
	tracker  domain.TrackerConfig
	pamphlet domain.PamphletConfig
}

// NewGenerateReleaseNotes creates a new GenerateReleaseNotes use case.
func NewGenerateReleaseNotes(
	inputs domain.InputReader,
	fetcher domain.NoteFetcher,
	store domain.PamphletStore,
	cfg *domain.Config,
	logger *slog.Logger,
) *GenerateReleaseNotes {
	if logger == nil {
		logger = slog.Default()
	}
	return &GenerateReleaseNotes{
		inputs:   inputs,
		fetcher:  fetcher,
		store:    store,
		logger:   logger,
		tracker:  cfg.Tracker,
		pamphlet: cfg.Pamphlet,
	}
}

// buildState carries the inputs and the document under construction through
// the build steps.
type buildState struct {
	summary   *domain.ReleaseSummary
	builder   *pamphlet.Builder
	releaseID string
	previous  string
	bugs      []domain.Issue
	notes     []domain.Issue
	missing   []domain.Issue
}

// Execute reads the three inputs, builds the pamphlet and writes it in one go.
// Any failure aborts the run before anything is written.
func (uc *GenerateReleaseNotes) Execute(ctx context.Context, in GenerateReleaseNotesInput) (*GenerateReleaseNotesOutput, error) {
	st, err := uc.read(in)
	if err != nil {
		return nil, err
	}

	steps := []struct {
		run  func(context.Context, *buildState) error
		name string
	}{
		{uc.begin, "begin"},
		{uc.overview, "overview"},
		{uc.newFeatures, "new features"},
		{uc.bugFixes, "bug fixes"},
		{uc.issues, "issues"},
		{uc.environment, "build environment"},
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		uc.logger.Debug("building section", "step", step.name)
		if err := step.run(ctx, st); err != nil {
			return nil, err
		}
	}

	if err := uc.store.WritePamphlet(st.builder.Document(), in.OutputPath); err != nil {
		return nil, err
	}
	uc.logger.Info("release notes written", "path", in.OutputPath, "bugs", len(st.bugs), "notes", len(st.notes))

	return &GenerateReleaseNotesOutput{
		ReleaseID:  st.releaseID,
		OutputPath: in.OutputPath,
		Missing:    st.missing,
		BugCount:   len(st.bugs),
		NoteCount:  len(st.notes),
	}, nil
}

func (uc *GenerateReleaseNotes) read(in GenerateReleaseNotesInput) (*buildState, error) {
	summary, err := uc.inputs.ReadSummary(in.SummaryPath)
	if err != nil {
		return nil, err
	}
	releaseID, err := summary.ReleaseID()
	if err != nil {
		return nil, err
	}
	previous, err := summary.PreviousReleaseID()
	if err != nil {
		return nil, err
	}
	bugs, err := uc.inputs.ReadIssues(in.BugListPath)
	if err != nil {
		return nil, err
	}
	notes, err := uc.inputs.ReadIssues(in.NotesListPath)
	if err != nil {
		return nil, err
	}
	return &buildState{
		summary:   summary,
		builder:   pamphlet.New(),
		releaseID: releaseID,
		previous:  previous,
		bugs:      bugs,
		notes:     notes,
	}, nil
}

// begin writes the title, the banner, the delta paragraph and the master
// table of contents.
func (uc *GenerateReleaseNotes) begin(_ context.Context, st *buildState) error {
	product := uc.pamphlet.ProductName
	title := fmt.Sprintf("Release Notes for %s %s", product, st.releaseID)

	banner := st.builder.Begin(title, domain.BannerLevel)
	pamphlet.AddParagraph(banner, fmt.Sprintf(
		"These notes describe the difference between %s release %s and the preceding release %s.",
		product, st.releaseID, st.previous))

	toc := st.builder.AddTOC()
	body := st.builder.Body()
	for _, section := range domain.Sections() {
		st.builder.AddSection(body, domain.MainSectionLevel, section.Title(), "", toc)
	}
	return nil
}

func (uc *GenerateReleaseNotes) overview(_ context.Context, st *buildState) error {
	return copySummaryBlock(st, domain.SectionOverview, st.summary.Overview)
}

func (uc *GenerateReleaseNotes) newFeatures(_ context.Context, st *buildState) error {
	return copySummaryBlock(st, domain.SectionNewFeatures, st.summary.NewFeatures)
}

func copySummaryBlock(st *buildState, section domain.Section, source *etree.Element) error {
	block, err := st.builder.Section(section.Title())
	if err != nil {
		return err
	}
	pamphlet.CloneChildren(source, block)
	return nil
}

// bugFixes writes one table row per fixed issue, linking to the tracker.
func (uc *GenerateReleaseNotes) bugFixes(_ context.Context, st *buildState) error {
	block, err := st.builder.Section(domain.SectionBugFixes.Title())
	if err != nil {
		return err
	}
	product := uc.pamphlet.ProductName
	pamphlet.AddParagraph(block, fmt.Sprintf(
		"The following issues are addressed by %s release %s. These issues are not addressed in the preceding %s release.",
		product, st.releaseID, st.previous))

	table := pamphlet.AddTable(block, uc.pamphlet.TableBorder, domain.IssueIDHeadline, domain.DescriptionHeadline)
	for _, issue := range st.bugs {
		row := pamphlet.AddRow(table)
		pamphlet.AddColumn(row).AddChild(pamphlet.NewLink(issue.TrackerAddress(uc.tracker.BrowseBaseURL), issue.Key))
		pamphlet.AddColumn(row).SetText(issue.Title)
	}
	return nil
}

// issues writes a subsection per issue on the notes list, holding the body of
// its detailed note. Issues without a note are recorded as missing.
func (uc *GenerateReleaseNotes) issues(ctx context.Context, st *buildState) error {
	block, err := st.builder.Section(domain.SectionIssues.Title())
	if err != nil {
		return err
	}
	pamphlet.AddParagraph(block, fmt.Sprintf(
		"Compared with the previous release (%s), %s release %s introduces the following new features and incompatibilities. These merit your special attention.",
		st.previous, uc.pamphlet.ProductName, st.releaseID))

	sublist := pamphlet.AddList(block)
	for _, issue := range st.notes {
		note, err := uc.fetcher.Fetch(ctx, issue)
		if err != nil {
			return err
		}

		summary := domain.MissingSummary
		if note != nil {
			summary = note.Summary
		}
		name := "Note for " + issue.Key
		caption := fmt.Sprintf("%s: %s", name, summary)

		pamphlet.AddLine(block)
		detail := st.builder.AddSection(block, domain.IssueDetailLevel, name, caption, sublist, st.builder.TOC())

		if note == nil {
			st.missing = append(st.missing, issue)
			continue
		}
		pamphlet.CloneChildren(note.Body, detail)
	}
	return nil
}

// environment lists the machine and toolchain the release was built with.
func (uc *GenerateReleaseNotes) environment(_ context.Context, st *buildState) error {
	block, err := st.builder.Section(domain.SectionBuildEnvironment.Title())
	if err != nil {
		return err
	}
	pamphlet.AddParagraph(block, fmt.Sprintf(
		"%s release %s was built using the following environment:",
		uc.pamphlet.ProductName, st.releaseID))

	list := pamphlet.AddList(block)
	for _, item := range domain.EnvironmentItems() {
		value, err := st.summary.Field(item.Field)
		if err != nil {
			return err
		}
		if item.Field == domain.FieldBranch {
			value = fmt.Sprintf("Source code came from the %s branch.", value)
		}
		pamphlet.AddHeadlinedItem(list, item.Headline, value)
	}
	return nil
}
