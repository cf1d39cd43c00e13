package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/relnotes/internal/domain"
	"github.com/runoshun/relnotes/internal/testutil"
	"github.com/runoshun/relnotes/internal/usecase"
)

func stubTemplate(branch string) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateElement("summary").CreateElement("branch").SetText(branch)
	return doc
}

func TestInitSummary_Execute(t *testing.T) {
	t.Run("pre-fills the current branch", func(t *testing.T) {
		store := testutil.NewMockStore()
		git := &testutil.MockGit{CurrentBranchName: "10.3"}

		out, err := usecase.NewInitSummary(git, store, stubTemplate, nil).
			Execute(context.Background(), usecase.InitSummaryInput{})

		require.NoError(t, err)
		assert.Equal(t, usecase.DefaultSummaryFilename, out.Path)
		assert.Equal(t, "10.3", out.Branch)
		assert.Equal(t, usecase.DefaultSummaryFilename, store.SummaryPath)
		assert.False(t, store.SummaryOverwrite)
		assert.Equal(t, "10.3", store.SummaryTemplate.FindElement("//branch").Text())
	})

	t.Run("outside a repository", func(t *testing.T) {
		store := testutil.NewMockStore()
		git := &testutil.MockGit{CurrentBranchErr: domain.ErrNotGitRepo}

		out, err := usecase.NewInitSummary(git, store, stubTemplate, nil).
			Execute(context.Background(), usecase.InitSummaryInput{Path: "summary.xml", Force: true})

		require.NoError(t, err)
		assert.Empty(t, out.Branch)
		assert.Equal(t, "summary.xml", store.SummaryPath)
		assert.True(t, store.SummaryOverwrite)
	})

	t.Run("without git", func(t *testing.T) {
		store := testutil.NewMockStore()

		out, err := usecase.NewInitSummary(nil, store, stubTemplate, nil).
			Execute(context.Background(), usecase.InitSummaryInput{})

		require.NoError(t, err)
		assert.Empty(t, out.Branch)
	})

	t.Run("branch detection failure is not fatal", func(t *testing.T) {
		store := testutil.NewMockStore()
		git := &testutil.MockGit{CurrentBranchErr: errors.New("HEAD is detached")}

		out, err := usecase.NewInitSummary(git, store, stubTemplate, nil).
			Execute(context.Background(), usecase.InitSummaryInput{})

		require.NoError(t, err)
		assert.Empty(t, out.Branch)
	})

	t.Run("existing file", func(t *testing.T) {
		store := testutil.NewMockStore()
		store.SummaryErr = domain.ErrSummaryExists

		_, err := usecase.NewInitSummary(nil, store, stubTemplate, nil).
			Execute(context.Background(), usecase.InitSummaryInput{})

		assert.ErrorIs(t, err, domain.ErrSummaryExists)
	})
}
