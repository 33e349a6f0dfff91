package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/raphi011/git-hook-setup/internal/config"
	"github.com/raphi011/git-hook-setup/internal/output"
)

// isolateConfig points the global config at a file inside a temp dir and
// returns its path. The file does not exist yet.
func isolateConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv(config.EnvConfigPath, path)
	return path
}

// newTestRoot returns a repository root with an empty .git directory and an
// isolated global config.
func newTestRoot(t *testing.T) string {
	t.Helper()
	isolateConfig(t)
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, ".git"), 0755); err != nil {
		t.Fatalf("failed to create .git: %v", err)
	}
	return root
}

// runCLI executes the command tree with args and returns what it wrote,
// with ANSI styling removed.
func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer
	ctx := output.WithPrinter(context.Background(), &outBuf)

	cmd := newRootCmd(&errBuf)
	cmd.SetArgs(args)
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	err = cmd.ExecuteContext(ctx)

	return ansi.Strip(outBuf.String()), ansi.Strip(errBuf.String()), err
}

// writeFile writes content to path, creating parent directories.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// readHook returns the content of the named hook under root.
func readHook(t *testing.T, root, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, ".git", "hooks", name))
	if err != nil {
		t.Fatalf("failed to read hook %s: %v", name, err)
	}
	return string(data)
}
