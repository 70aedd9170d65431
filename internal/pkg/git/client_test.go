// Package git provides the version-control collaborator for acommit.
package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/acommit/acommit/internal/pkg/errors"
)

// setupTestRepo creates a temporary git repository for testing.
func setupTestRepo(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	runGit(t, tmpDir, "init")
	runGit(t, tmpDir, "config", "user.email", "test@example.com")
	runGit(t, tmpDir, "config", "user.name", "Test User")

	return tmpDir
}

// runGit runs a git command in the specified directory.
func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %v\nOutput: %s", args, err, output)
	}
	return string(output)
}

// writeFile creates a file with the given content.
func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create directories: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
}

func TestStatusLines_CleanTree(t *testing.T) {
	tmpDir := setupTestRepo(t)

	writeFile(t, tmpDir, "README.md", "# Test")
	runGit(t, tmpDir, "add", ".")
	runGit(t, tmpDir, "commit", "-m", "initial commit")

	client := NewClientWithWorkDir(tmpDir)
	lines, err := client.StatusLines(context.Background())
	if err != nil {
		t.Fatalf("StatusLines failed: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("expected no status lines, got %v", lines)
	}
}

func TestStatusLines_UntrackedAndModified(t *testing.T) {
	tmpDir := setupTestRepo(t)

	writeFile(t, tmpDir, "README.md", "# Test")
	runGit(t, tmpDir, "add", ".")
	runGit(t, tmpDir, "commit", "-m", "initial commit")

	writeFile(t, tmpDir, "README.md", "# Changed")
	writeFile(t, tmpDir, "new.go", "package main")

	client := NewClientWithWorkDir(tmpDir)
	lines, err := client.StatusLines(context.Background())
	if err != nil {
		t.Fatalf("StatusLines failed: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 status lines, got %v", lines)
	}
}

func TestStatusLines_NotARepository(t *testing.T) {
	client := NewClientWithWorkDir(t.TempDir())

	_, err := client.StatusLines(context.Background())
	if err == nil {
		t.Fatal("expected error outside a repository")
	}

	appErr := apperrors.GetAppError(err)
	if appErr == nil || appErr.Code != apperrors.ErrNotARepository {
		t.Errorf("expected ErrNotARepository, got %v", err)
	}
}

func TestNameStatusDiff_StagedChanges(t *testing.T) {
	tmpDir := setupTestRepo(t)

	writeFile(t, tmpDir, "README.md", "# Test")
	runGit(t, tmpDir, "add", ".")
	runGit(t, tmpDir, "commit", "-m", "initial commit")

	writeFile(t, tmpDir, "README.md", "# Changed")
	runGit(t, tmpDir, "add", ".")

	client := NewClientWithWorkDir(tmpDir)
	diff, err := client.NameStatusDiff(context.Background())
	if err != nil {
		t.Fatalf("NameStatusDiff failed: %v", err)
	}
	if !strings.Contains(diff, "README.md") || !strings.HasPrefix(strings.TrimSpace(diff), "M") {
		t.Errorf("unexpected staged diff: %q", diff)
	}
}

// Nothing staged: the client falls back to the unstaged diff so a modified
// working tree still produces a prompt.
func TestNameStatusDiff_UnstagedFallback(t *testing.T) {
	tmpDir := setupTestRepo(t)

	writeFile(t, tmpDir, "README.md", "# Test")
	runGit(t, tmpDir, "add", ".")
	runGit(t, tmpDir, "commit", "-m", "initial commit")

	writeFile(t, tmpDir, "README.md", "# Changed")

	client := NewClientWithWorkDir(tmpDir)
	diff, err := client.NameStatusDiff(context.Background())
	if err != nil {
		t.Fatalf("NameStatusDiff failed: %v", err)
	}
	if !strings.Contains(diff, "README.md") {
		t.Errorf("expected unstaged diff to mention README.md, got %q", diff)
	}
}

func TestAddAllAndCommit(t *testing.T) {
	tmpDir := setupTestRepo(t)

	writeFile(t, tmpDir, "main.go", "package main")
	writeFile(t, tmpDir, "pkg/util.go", "package pkg")

	client := NewClientWithWorkDir(tmpDir)
	ctx := context.Background()

	if err := client.AddAll(ctx); err != nil {
		t.Fatalf("AddAll failed: %v", err)
	}
	if err := client.Commit(ctx, "feat: initial layout"); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	log := runGit(t, tmpDir, "log", "--oneline")
	if !strings.Contains(log, "feat: initial layout") {
		t.Errorf("expected commit in log, got %q", log)
	}

	lines, err := client.StatusLines(ctx)
	if err != nil {
		t.Fatalf("StatusLines failed: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("expected clean tree after commit, got %v", lines)
	}
}

func TestCommit_NothingStaged(t *testing.T) {
	tmpDir := setupTestRepo(t)

	writeFile(t, tmpDir, "README.md", "# Test")
	runGit(t, tmpDir, "add", ".")
	runGit(t, tmpDir, "commit", "-m", "initial commit")

	client := NewClientWithWorkDir(tmpDir)
	err := client.Commit(context.Background(), "chore: empty")
	if err == nil {
		t.Fatal("expected commit with nothing staged to fail")
	}

	appErr := apperrors.GetAppError(err)
	if appErr == nil || appErr.Code != apperrors.ErrGitCommandFailed {
		t.Errorf("expected ErrGitCommandFailed, got %v", err)
	}
}
