package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// resolveTempDir creates a temp directory and resolves macOS symlinks.
func resolveTempDir(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	resolved, err := filepath.EvalSymlinks(tmpDir)
	if err != nil {
		t.Fatalf("failed to resolve symlinks for %s: %v", tmpDir, err)
	}
	return resolved
}

// setupTestRepo creates an empty git repo and returns its resolved path.
func setupTestRepo(t *testing.T) string {
	t.Helper()
	repoPath := filepath.Join(resolveTempDir(t), "test-repo")
	if err := runGit(context.Background(), "", "init", "-b", "main", repoPath); err != nil {
		t.Fatalf("failed to init repo: %v", err)
	}
	return repoPath
}

func TestTopLevel(t *testing.T) {
	t.Parallel()
	repoPath := setupTestRepo(t)

	sub := filepath.Join(repoPath, "a", "b")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}

	got, err := TopLevel(context.Background(), sub)
	if err != nil {
		t.Fatalf("TopLevel() error = %v", err)
	}
	if got != repoPath {
		t.Errorf("TopLevel() = %q, want %q", got, repoPath)
	}
}

func TestTopLevel_NotARepo(t *testing.T) {
	t.Parallel()
	if _, err := TopLevel(context.Background(), resolveTempDir(t)); err == nil {
		t.Error("TopLevel() outside a repo = nil, want error")
	}
}

func TestHooksPath(t *testing.T) {
	t.Parallel()
	repoPath := setupTestRepo(t)
	ctx := context.Background()

	if p, ok := HooksPath(ctx, repoPath); ok {
		t.Errorf("HooksPath() = %q, true on fresh repo, want unset", p)
	}

	if err := runGit(ctx, repoPath, "config", "core.hooksPath", ".githooks"); err != nil {
		t.Fatalf("failed to set core.hooksPath: %v", err)
	}

	p, ok := HooksPath(ctx, repoPath)
	if !ok || p != ".githooks" {
		t.Errorf("HooksPath() = %q, %v, want %q, true", p, ok, ".githooks")
	}
}

func TestVersion(t *testing.T) {
	t.Parallel()
	v, err := Version(context.Background())
	if err != nil {
		t.Fatalf("Version() error = %v", err)
	}
	if v == "" {
		t.Error("Version() returned empty string")
	}
}
