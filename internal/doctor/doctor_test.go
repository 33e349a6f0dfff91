package doctor

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raphi011/git-hook-setup/internal/config"
	"github.com/raphi011/git-hook-setup/internal/git"
	"github.com/raphi011/git-hook-setup/internal/hooks"
	"github.com/raphi011/git-hook-setup/internal/script"
)

func newRepo(t *testing.T) *hooks.Repository {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))
	return hooks.New(root)
}

func issuesIn(r Report, cat IssueCategory) []Issue {
	var out []Issue
	for _, i := range r.Issues {
		if i.Category == cat {
			out = append(out, i)
		}
	}
	return out
}

func TestCheck_NotARepository(t *testing.T) {
	t.Parallel()

	r := Check(context.Background(), hooks.New(t.TempDir()), nil)
	require.NotEmpty(t, r.Issues)
	assert.Contains(t, r.Issues[len(r.Issues)-1].Description, "no git metadata directory")
}

func TestCheck_HealthyHook(t *testing.T) {
	t.Parallel()

	repo := newRepo(t)
	_, err := repo.Install(script.PreCommit, script.Options{Linter: script.LinterRuff}, "")
	require.NoError(t, err)

	r := Check(context.Background(), repo, nil)
	assert.Empty(t, issuesIn(r, CategoryHook))
	assert.Contains(t, r.Passed, "pre-commit hook is executable")
}

func TestCheck_NotExecutable(t *testing.T) {
	t.Parallel()

	repo := newRepo(t)
	h, err := repo.Install(script.PrePush, script.Options{RunTests: true}, "")
	require.NoError(t, err)
	require.NoError(t, os.Chmod(h.Path, 0o644))

	r := Check(context.Background(), repo, nil)
	hookIssues := issuesIn(r, CategoryHook)
	require.Len(t, hookIssues, 1)
	assert.Equal(t, FixChmod, hookIssues[0].FixAction)
	assert.Equal(t, h.Path, hookIssues[0].Path)
	assert.Len(t, r.Fixable(), 1)
}

func TestCheck_MissingShebang(t *testing.T) {
	t.Parallel()

	repo := newRepo(t)
	path, _ := repo.ResolveHookPath("commit-msg")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("echo hi\n"), 0o755))

	hookIssues := issuesIn(Check(context.Background(), repo, nil), CategoryHook)
	require.Len(t, hookIssues, 1)
	assert.Equal(t, FixNone, hookIssues[0].FixAction)
	assert.Contains(t, hookIssues[0].Description, "#!")
}

func TestCheck_UnknownConfigValues(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Defaults.Linter = "golint"

	cfgIssues := issuesIn(Check(context.Background(), newRepo(t), &cfg), CategoryConfig)
	require.Len(t, cfgIssues, 1)
	assert.True(t, cfgIssues[0].Warning)
	assert.Contains(t, cfgIssues[0].Key, "golint")
}

func TestRun_Fix(t *testing.T) {
	t.Parallel()

	repo := newRepo(t)
	h, err := repo.Install(script.PreCommit, script.Options{}, "")
	require.NoError(t, err)
	require.NoError(t, os.Chmod(h.Path, 0o640))

	var buf bytes.Buffer
	_, err = Run(context.Background(), &buf, repo, nil, false)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "doctor --fix")

	info, err := os.Stat(h.Path)
	require.NoError(t, err)
	assert.False(t, hooks.IsExecutable(info.Mode()), "check-only run must not change modes")

	buf.Reset()
	_, err = Run(context.Background(), &buf, repo, nil, true)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "made pre-commit executable")

	info, err = os.Stat(h.Path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o740), info.Mode().Perm())
}

func TestCheck_EmptyGitDirIsNotAWorkTree(t *testing.T) {
	t.Parallel()
	if git.CheckGit() != nil {
		t.Skip("git not available")
	}

	var found bool
	for _, issue := range issuesIn(Check(context.Background(), newRepo(t), nil), CategoryGit) {
		if issue.Warning && strings.Contains(issue.Description, "work tree") {
			found = true
		}
	}
	assert.True(t, found, "an empty .git directory should produce a work tree warning")
}
