// Package app contains the application layer with the commit workflow.
package app

import (
	"context"
	"fmt"

	"github.com/acommit/acommit/internal/pkg/ai"
	"github.com/acommit/acommit/internal/pkg/git"
	"github.com/acommit/acommit/internal/pkg/ui"
)

// CommitService orchestrates the commit message generation workflow.
type CommitService struct {
	gitClient git.Client
	generator ai.Generator
	uiManager ui.Manager
}

// NewCommitService creates a new CommitService with the given dependencies.
func NewCommitService(gitClient git.Client, generator ai.Generator, uiManager ui.Manager) *CommitService {
	return &CommitService{
		gitClient: gitClient,
		generator: generator,
		uiManager: uiManager,
	}
}

// Run executes the complete workflow:
// check changes, get diff, generate, display, confirm, stage, commit.
func (s *CommitService) Run(ctx context.Context) error {
	lines, err := s.gitClient.StatusLines(ctx)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		s.uiManager.ShowInfo("No changes to commit.")
		return nil
	}

	s.uiManager.ShowChanges(lines)

	diff, err := s.gitClient.NameStatusDiff(ctx)
	if err != nil {
		return err
	}

	prompt := ai.BuildPrompt(diff)

	spinner := s.uiManager.ShowSpinner(fmt.Sprintf("Generating commit message with %s...", s.generator.Name()))
	spinner.Start()
	message, err := s.generator.Generate(ctx, prompt)
	spinner.Stop()
	if err != nil {
		return err
	}

	s.uiManager.ShowMessage(message)

	confirmed, err := s.uiManager.PromptConfirm("Commit with this message?")
	if err != nil {
		return fmt.Errorf("failed to prompt user: %w", err)
	}
	if !confirmed {
		s.uiManager.ShowInfo("Commit cancelled.")
		return nil
	}

	if err := s.gitClient.AddAll(ctx); err != nil {
		return err
	}
	if err := s.gitClient.Commit(ctx, message); err != nil {
		return err
	}

	s.uiManager.ShowSuccess("Committed: " + message)
	return nil
}
