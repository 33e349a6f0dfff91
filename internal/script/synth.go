package script

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrReferenceNotFound is returned when Options.CustomScript points at a
// file that does not exist.
var ErrReferenceNotFound = errors.New("custom script not found")

const (
	shebang    = "#!/bin/bash"
	strictMode = "set -e"

	// FallbackCommand compiles staged Python files. Its failure is swallowed.
	FallbackCommand = `python -m py_compile $(git diff --cached --name-only --diff-filter=ACM | grep '\.py$') || true`
)

// Test runner commands, chosen by marker files in the repository root.
const (
	testPytest       = "pytest"
	testNpm          = "npm test"
	testPythonModule = "python -m pytest"
)

// commitMsgScript validates commit messages against the conventional commit
// format. The pattern here must stay in sync with CommitMsgPattern.
const commitMsgScript = `#!/bin/bash
# Validate commit message format (conventional commits)

commit_msg=$(cat "$1")
pattern="^(feat|fix|docs|style|refactor|test|chore)(\(.+\))?: .+"

if ! echo "$commit_msg" | grep -qE "$pattern"; then
    echo "Error: Commit message does not follow conventional commit format."
    echo ""
    echo "Format: <type>(<scope>): <subject>"
    echo ""
    echo "Types: feat, fix, docs, style, refactor, test, chore"
    echo ""
    echo "Example: feat(api): add user authentication"
    exit 1
fi
`

// CommitMsgPattern is the expression the commit-msg hook applies to the
// proposed message. Case-sensitive.
var CommitMsgPattern = regexp.MustCompile(`^(feat|fix|docs|style|refactor|test|chore)(\(.+\))?: .+`)

// Script is synthesized hook text bound to its kind.
type Script struct {
	Kind Kind
	Text string
}

// Bytes returns the script text as bytes for writing.
func (s Script) Bytes() []byte {
	return []byte(s.Text)
}

// Synthesize builds the script for kind. root is the repository root; it is
// used to resolve relative custom script paths and to detect the test runner.
func Synthesize(root string, kind Kind, opts Options) (Script, error) {
	switch kind {
	case CommitMsg:
		return Script{Kind: kind, Text: commitMsgScript}, nil
	case PreCommit, PrePush:
	default:
		if _, err := ParseKind(string(kind)); err != nil {
			return Script{}, err
		}
		return Script{}, fmt.Errorf("%w: %s", ErrNotInstallable, kind)
	}

	var b strings.Builder
	b.WriteString(shebang + "\n")
	b.WriteString(strictMode + "\n\n")

	if opts.CustomScript != "" {
		path, err := ResolveCustomScript(root, opts.CustomScript)
		if err != nil {
			return Script{}, err
		}
		b.WriteString("exec " + shellQuote(path) + "\n")
		return Script{Kind: kind, Text: b.String()}, nil
	}

	for _, cmd := range Commands(root, opts) {
		b.WriteString(cmd + "\n")
	}
	return Script{Kind: kind, Text: b.String()}, nil
}

// Commands returns the command lines an option-driven hook runs, ignoring
// CustomScript. The result is never empty.
func Commands(root string, opts Options) []string {
	var cmds []string

	if cmd, ok := opts.Linter.Command(); ok {
		cmds = append(cmds, cmd)
	}
	if cmd, ok := opts.Formatter.Command(); ok {
		cmds = append(cmds, cmd)
	}
	if opts.RunTests {
		cmds = append(cmds, DetectTestCommand(root))
	}

	if len(cmds) == 0 {
		cmds = append(cmds, FallbackCommand)
	}
	return cmds
}

// DetectTestCommand picks the test runner from marker files in root.
// Python configuration wins over a Node manifest.
func DetectTestCommand(root string) string {
	switch {
	case exists(filepath.Join(root, "pytest.ini")), exists(filepath.Join(root, "pyproject.toml")):
		return testPytest
	case exists(filepath.Join(root, "package.json")):
		return testNpm
	default:
		return testPythonModule
	}
}

// ResolveCustomScript returns the absolute path of a custom hook script.
// Relative paths are taken relative to root.
func ResolveCustomScript(root, path string) (string, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve custom script %s: %w", path, err)
	}
	if !exists(abs) {
		return "", fmt.Errorf("%w: %s", ErrReferenceNotFound, path)
	}
	return abs, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// shellQuote single-quotes s when it contains characters the shell would
// interpret. Plain paths are left as they are.
func shellQuote(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\n'\"\\$`!*?[]{}()<>|&;#~") {
		return s
	}
	// 'it's' becomes 'it'\''s'
	return "'" + strings.ReplaceAll(s, "'", "'\\''") + "'"
}
