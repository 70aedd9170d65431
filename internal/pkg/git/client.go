// Package git provides the version-control collaborator for acommit.
package git

import (
	"context"
	"os/exec"
	"strings"
	"time"

	apperrors "github.com/acommit/acommit/internal/pkg/errors"
)

const (
	// GitCommandTimeout is the default timeout for git commands.
	GitCommandTimeout = 10 * time.Second
)

// Client defines the interface for the git operations acommit needs.
// Each operation is pass/fail; any failure aborts the run.
type Client interface {
	// StatusLines returns the porcelain status lines for the working tree.
	// An empty slice means there is nothing to commit.
	StatusLines(ctx context.Context) ([]string, error)

	// NameStatusDiff returns the staged name-status diff, or the unstaged
	// one when nothing is staged.
	NameStatusDiff(ctx context.Context) (string, error)

	// AddAll stages all pending changes.
	AddAll(ctx context.Context) error

	// Commit records a commit with the given message.
	Commit(ctx context.Context, message string) error
}

// DefaultClient implements the Client interface using exec.CommandContext.
type DefaultClient struct {
	// workDir is the working directory for git commands.
	// If empty, uses the current directory.
	workDir string
}

// NewClient creates a new DefaultClient.
func NewClient() *DefaultClient {
	return &DefaultClient{}
}

// NewClientWithWorkDir creates a new DefaultClient with a specific working directory.
func NewClientWithWorkDir(workDir string) *DefaultClient {
	return &DefaultClient{workDir: workDir}
}

// StatusLines runs git status --porcelain. A failing status command means
// we are not inside a repository (or git is missing), which is fatal.
func (c *DefaultClient) StatusLines(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, GitCommandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "status", "--porcelain")
	if c.workDir != "" {
		cmd.Dir = c.workDir
	}

	output, err := cmd.Output()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, apperrors.NewTimeoutError(ctx.Err())
		}
		return nil, apperrors.NewNotARepositoryError(err)
	}

	trimmed := strings.TrimSpace(string(output))
	if trimmed == "" {
		return nil, nil
	}
	return strings.Split(trimmed, "\n"), nil
}

// NameStatusDiff returns the staged name-status diff text. When the staged
// diff is empty it falls back to the unstaged diff so freshly modified but
// unstaged files still produce a prompt.
func (c *DefaultClient) NameStatusDiff(ctx context.Context) (string, error) {
	staged, err := c.nameStatus(ctx, true)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(staged) != "" {
		return staged, nil
	}
	return c.nameStatus(ctx, false)
}

func (c *DefaultClient) nameStatus(ctx context.Context, cached bool) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, GitCommandTimeout)
	defer cancel()

	args := []string{"diff", "--name-status"}
	if cached {
		args = []string{"diff", "--cached", "--name-status"}
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	if c.workDir != "" {
		cmd.Dir = c.workDir
	}

	output, err := cmd.Output()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", apperrors.NewTimeoutError(ctx.Err())
		}
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", apperrors.NewGitError(err, string(exitErr.Stderr))
		}
		return "", apperrors.NewGitError(err, "")
	}

	return string(output), nil
}

// AddAll stages all changes (git add -A).
func (c *DefaultClient) AddAll(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, GitCommandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "add", "-A")
	if c.workDir != "" {
		cmd.Dir = c.workDir
	}

	output, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return apperrors.NewTimeoutError(ctx.Err())
		}
		return apperrors.NewGitError(err, string(output))
	}
	return nil
}

// Commit executes a git commit with the given message.
func (c *DefaultClient) Commit(ctx context.Context, message string) error {
	ctx, cancel := context.WithTimeout(ctx, GitCommandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "commit", "-m", message)
	if c.workDir != "" {
		cmd.Dir = c.workDir
	}

	output, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return apperrors.NewTimeoutError(ctx.Err())
		}
		return apperrors.NewGitError(err, string(output))
	}
	return nil
}
