package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/relnotes/internal/domain"
)

func setupTestRepo(t *testing.T) (string, *git.Repository) {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# Test"), 0o644))
	_, err = wt.Add("README.md")
	require.NoError(t, err)
	_, err = wt.Commit("Initial commit", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	return dir, repo
}

func TestClient_CurrentBranch(t *testing.T) {
	dir, repo := setupTestRepo(t)

	wt, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, wt.Checkout(&git.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName("10.3"),
		Create: true,
	}))

	client, err := NewClient(dir)
	require.NoError(t, err)

	branch, err := client.CurrentBranch()
	require.NoError(t, err)
	assert.Equal(t, "10.3", branch)
}

func TestClient_CurrentBranch_FromSubdirectory(t *testing.T) {
	dir, _ := setupTestRepo(t)
	sub := filepath.Join(dir, "java", "build")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	client, err := NewClient(sub)
	require.NoError(t, err)

	branch, err := client.CurrentBranch()
	require.NoError(t, err)
	assert.Equal(t, "master", branch)
}

func TestClient_CurrentBranch_NoCommits(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	client, err := NewClient(dir)
	require.NoError(t, err)

	branch, err := client.CurrentBranch()
	require.NoError(t, err)
	assert.Equal(t, "master", branch)
}

func TestClient_CurrentBranch_Detached(t *testing.T) {
	_, repo := setupTestRepo(t)
	head, err := repo.Head()
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, wt.Checkout(&git.CheckoutOptions{Hash: head.Hash()}))

	_, err = NewClientWithRepo(repo).CurrentBranch()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "detached")
}

func TestNewClient_NotARepository(t *testing.T) {
	_, err := NewClient(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotGitRepo)
}
