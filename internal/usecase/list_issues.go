package usecase

import (
	"context"

	"github.com/runoshun/relnotes/internal/domain"
)

// ListIssuesInput contains the input for the ListIssues use case.
type ListIssuesInput struct {
	ReportPath string
}

// ListIssuesOutput contains the output of the ListIssues use case.
type ListIssuesOutput struct {
	Issues    []domain.Issue
	NoteCount int // Issues carrying a detailed note
}

// ListIssues reads a tracker export without generating anything.
type ListIssues struct {
	inputs domain.InputReader
}

// NewListIssues creates a new ListIssues use case.
func NewListIssues(inputs domain.InputReader) *ListIssues {
	return &ListIssues{inputs: inputs}
}

// Execute extracts the issues of the report.
func (uc *ListIssues) Execute(_ context.Context, in ListIssuesInput) (*ListIssuesOutput, error) {
	issues, err := uc.inputs.ReadIssues(in.ReportPath)
	if err != nil {
		return nil, err
	}
	out := &ListIssuesOutput{Issues: issues}
	for _, issue := range issues {
		if issue.HasNote {
			out.NoteCount++
		}
	}
	return out, nil
}
