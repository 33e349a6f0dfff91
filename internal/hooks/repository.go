package hooks

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/raphi011/git-hook-setup/internal/script"
)

// ErrNotARepository is returned by mutating operations when the root has no
// git metadata directory.
var ErrNotARepository = errors.New("not a git repository")

const (
	hooksDirName = "hooks"
	dirPerm      = 0o755
	filePerm     = 0o644

	// ownerExec is ORed into the existing mode on install.
	ownerExec fs.FileMode = 0o100
)

// InstalledHook is a hook file found on disk.
type InstalledHook struct {
	Kind script.Kind `json:"kind"`
	Path string      `json:"path"`
}

// Repository manages the hooks of the repository at Root.
type Repository struct {
	Root string
}

// New returns a Repository for root.
func New(root string) *Repository {
	return &Repository{Root: root}
}

// GitDir returns the metadata directory for the repository root.
// ok is false when the root has no .git entry or it cannot be resolved.
func (r *Repository) GitDir() (dir string, ok bool) {
	dotGit := filepath.Join(r.Root, ".git")

	info, err := os.Stat(dotGit)
	if err != nil {
		return "", false
	}
	if info.IsDir() {
		return dotGit, true
	}
	if !info.Mode().IsRegular() {
		return "", false
	}

	gitdir, err := readGitdirFile(dotGit)
	if err != nil {
		return "", false
	}
	if !filepath.IsAbs(gitdir) {
		gitdir = filepath.Join(r.Root, gitdir)
	}
	if !isDir(gitdir) {
		return "", false
	}

	// Linked worktrees keep hooks in the common directory.
	if common, err := os.ReadFile(filepath.Join(gitdir, "commondir")); err == nil {
		c := strings.TrimSpace(string(common))
		if !filepath.IsAbs(c) {
			c = filepath.Join(gitdir, c)
		}
		if isDir(c) {
			return filepath.Clean(c), true
		}
	}
	return filepath.Clean(gitdir), true
}

// readGitdirFile parses a ".git" file of the form "gitdir: <path>".
func readGitdirFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	line, _, _ := strings.Cut(string(data), "\n")
	gitdir, ok := strings.CutPrefix(strings.TrimSpace(line), "gitdir:")
	if !ok {
		return "", fmt.Errorf("%s: missing gitdir prefix", path)
	}
	gitdir = strings.TrimSpace(gitdir)
	if gitdir == "" {
		return "", fmt.Errorf("%s: empty gitdir", path)
	}
	return gitdir, nil
}

// HooksDir returns <gitdir>/hooks. ok is false without a metadata directory.
func (r *Repository) HooksDir() (string, bool) {
	gitDir, ok := r.GitDir()
	if !ok {
		return "", false
	}
	return filepath.Join(gitDir, hooksDirName), true
}

// ResolveHookPath returns where a hook called name lives, whether or not the
// file exists. ok is false only when there is no metadata directory.
func (r *Repository) ResolveHookPath(name string) (string, bool) {
	dir, ok := r.HooksDir()
	if !ok {
		return "", false
	}
	return filepath.Join(dir, name), true
}

// Install synthesizes the script for kind and writes it to the hooks
// directory under target, or under the kind's own name when target is empty.
// An existing file is overwritten in place. The owner-execute bit is ORed
// into the resulting mode.
//
// Nothing is written when the root is not a repository or synthesis fails.
func (r *Repository) Install(kind script.Kind, opts script.Options, target string) (InstalledHook, error) {
	if target == "" {
		target = kind.FileName()
	}
	if err := validateName(target); err != nil {
		return InstalledHook{}, err
	}

	path, ok := r.ResolveHookPath(target)
	if !ok {
		return InstalledHook{}, fmt.Errorf("%w: %s", ErrNotARepository, r.Root)
	}

	s, err := script.Synthesize(r.Root, kind, opts)
	if err != nil {
		return InstalledHook{}, err
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return InstalledHook{}, fmt.Errorf("create hooks directory: %w", err)
	}
	if err := os.WriteFile(path, s.Bytes(), filePerm); err != nil {
		return InstalledHook{}, fmt.Errorf("write hook %s: %w", target, err)
	}
	if err := MakeExecutable(path); err != nil {
		return InstalledHook{}, err
	}

	return InstalledHook{Kind: kind, Path: path}, nil
}

// MakeExecutable ORs the owner-execute bit into the file's current mode.
func MakeExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.Chmod(path, info.Mode().Perm()|ownerExec); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	return nil
}

// IsExecutable reports whether mode has the owner-execute bit.
func IsExecutable(mode fs.FileMode) bool {
	return mode&ownerExec != 0
}

// List returns the installed hooks among the known kinds, in enumeration
// order. A missing metadata or hooks directory yields an empty list.
func (r *Repository) List() ([]InstalledHook, error) {
	dir, ok := r.HooksDir()
	if !ok {
		return []InstalledHook{}, nil
	}

	out := []InstalledHook{}
	for _, k := range script.Kinds() {
		path := filepath.Join(dir, k.FileName())
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
				continue
			}
			return nil, fmt.Errorf("stat hook %s: %w", k, err)
		}
		if !info.Mode().IsRegular() {
			continue
		}
		out = append(out, InstalledHook{Kind: k, Path: path})
	}
	return out, nil
}

// Remove deletes the hook called name. It reports false, with a nil error,
// when there is no metadata directory or no regular file by that name.
func (r *Repository) Remove(name string) (bool, error) {
	if validateName(name) != nil {
		return false, nil
	}
	path, ok := r.ResolveHookPath(name)
	if !ok {
		return false, nil
	}
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false, nil
	}
	if err := os.Remove(path); err != nil {
		return false, fmt.Errorf("remove hook %s: %w", name, err)
	}
	return true, nil
}

// Read returns the contents of the installed hook called name.
// The error wraps fs.ErrNotExist when the hook is not installed.
func (r *Repository) Read(name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}
	path, ok := r.ResolveHookPath(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotARepository, r.Root)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read hook %s: %w", name, err)
	}
	return string(data), nil
}

// validateName rejects names that would escape the hooks directory.
func validateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid hook name %q", name)
	}
	return nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
