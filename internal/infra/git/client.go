// Package git provides the git operations the generator needs.
package git

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/runoshun/relnotes/internal/domain"
)

// Ensure Client implements domain.Git.
var _ domain.Git = (*Client)(nil)

// Client reads repository state with go-git.
type Client struct {
	repo *git.Repository
}

// NewClient opens the repository containing dir, searching parent
// directories for .git.
func NewClient(dir string) (*Client, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%s: %w", dir, domain.ErrNotGitRepo)
		}
		return nil, fmt.Errorf("open repository %s: %w", dir, err)
	}
	return &Client{repo: repo}, nil
}

// NewClientWithRepo wraps an already opened repository.
func NewClientWithRepo(repo *git.Repository) *Client {
	return &Client{repo: repo}
}

// CurrentBranch returns the short name of the checked out branch.
// A repository without commits reports the branch HEAD points at.
func (c *Client) CurrentBranch() (string, error) {
	head, err := c.repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD: %w", err)
	}
	if head.Type() == plumbing.SymbolicReference {
		return head.Target().Short(), nil
	}
	return "", fmt.Errorf("HEAD is detached at %s", head.Hash().String()[:7])
}
