package git

import (
	"context"
	"fmt"
	"strings"
)

// TopLevel returns the working tree root containing dir.
func TopLevel(ctx context.Context, dir string) (string, error) {
	out, err := outputGit(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not in a git repository: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// HooksPath returns the core.hooksPath setting for the repository at dir.
// ok is false when the setting is absent.
func HooksPath(ctx context.Context, dir string) (path string, ok bool) {
	out, err := outputGit(ctx, dir, "config", "--get", "core.hooksPath")
	if err != nil {
		// git config exits 1 for unset keys
		return "", false
	}
	path = strings.TrimSpace(string(out))
	return path, path != ""
}

// Version returns the output of "git --version" without the "git version"
// prefix.
func Version(ctx context.Context) (string, error) {
	out, err := outputGit(ctx, "", "--version")
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(strings.TrimSpace(string(out)), "git version "), nil
}
