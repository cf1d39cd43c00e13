package domain

// SummaryField identifies a child element of the release summary document.
type SummaryField int

// Summary fields, in the order they appear in the summary template.
const (
	FieldReleaseID SummaryField = iota
	FieldPreviousReleaseID
	FieldBranch
	FieldMachine
	FieldAntVersion
	FieldJDK14
	FieldJava6
	FieldOSGi
	FieldCompilers
	FieldJSR169
	FieldOverview
	FieldNewFeatures
)

// SummaryRootTag is the root element of the release summary.
const SummaryRootTag = "summary"

var summaryFieldTags = [...]string{
	FieldReleaseID:         "releaseID",
	FieldPreviousReleaseID: "previousReleaseID",
	FieldBranch:            "branch",
	FieldMachine:           "machine",
	FieldAntVersion:        "antVersion",
	FieldJDK14:             "jdk1.4",
	FieldJava6:             "java6",
	FieldOSGi:              "osgi",
	FieldCompilers:         "compilers",
	FieldJSR169:            "jsr169",
	FieldOverview:          "overview",
	FieldNewFeatures:       "newFeatures",
}

// SummaryFields returns every summary field in template order.
func SummaryFields() []SummaryField {
	fields := make([]SummaryField, len(summaryFieldTags))
	for i := range summaryFieldTags {
		fields[i] = SummaryField(i)
	}
	return fields
}

// Tag returns the literal element name of the field.
func (f SummaryField) Tag() string {
	if f < 0 || int(f) >= len(summaryFieldTags) {
		return ""
	}
	return summaryFieldTags[f]
}

func (f SummaryField) String() string {
	return f.Tag()
}

// Section identifies one of the five main sections of the pamphlet.
type Section int

// Main sections, in document order.
const (
	SectionOverview Section = iota
	SectionNewFeatures
	SectionBugFixes
	SectionIssues
	SectionBuildEnvironment
)

var sectionTitles = [...]string{
	SectionOverview:         "Overview",
	SectionNewFeatures:      "New Features",
	SectionBugFixes:         "Bug Fixes",
	SectionIssues:           "Issues",
	SectionBuildEnvironment: "Build Environment",
}

// Sections returns the main sections in document order.
func Sections() []Section {
	return []Section{
		SectionOverview,
		SectionNewFeatures,
		SectionBugFixes,
		SectionIssues,
		SectionBuildEnvironment,
	}
}

// Title returns the heading text, which is also the anchor name.
func (s Section) Title() string {
	if s < 0 || int(s) >= len(sectionTitles) {
		return ""
	}
	return sectionTitles[s]
}

func (s Section) String() string {
	return s.Title()
}

// Header levels.
const (
	BannerLevel      = 1
	MainSectionLevel = BannerLevel + 1
	IssueDetailLevel = MainSectionLevel + 1
)

// EnvironmentItem pairs a summary field with the headline it is shown under
// in the Build Environment section.
type EnvironmentItem struct {
	Headline string
	Field    SummaryField
}

// EnvironmentItems returns the Build Environment entries in document order.
func EnvironmentItems() []EnvironmentItem {
	return []EnvironmentItem{
		{Headline: "Branch", Field: FieldBranch},
		{Headline: "Machine", Field: FieldMachine},
		{Headline: "Ant", Field: FieldAntVersion},
		{Headline: "JDK 1.4", Field: FieldJDK14},
		{Headline: "Java 6", Field: FieldJava6},
		{Headline: "OSGi", Field: FieldOSGi},
		{Headline: "Compiler", Field: FieldCompilers},
		{Headline: "JSR 169", Field: FieldJSR169},
	}
}

// Bug Fixes table headings.
const (
	IssueIDHeadline     = "Issue Id"
	DescriptionHeadline = "Description"
)

// Tags of tracker export documents.
const (
	TrackerItem        = "item"
	TrackerKey         = "key"
	TrackerTitle       = "title"
	TrackerAttachments = "attachments"
	TrackerAttachment  = "attachment"
	TrackerName        = "name"
	TrackerID          = "id"
)

// Tags looked up in a fetched release note.
const (
	NoteBody      = "body"
	NoteParagraph = "p"
)

// MissingSummary is the caption placeholder for issues without a note.
const MissingSummary = "???"
