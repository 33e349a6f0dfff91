package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	t.Parallel()

	for _, k := range Kinds() {
		got, err := ParseKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
		assert.Equal(t, string(k), got.FileName())
	}

	_, err := ParseKind("pre-rebase")
	require.ErrorIs(t, err, ErrUnknownKind)
	assert.Contains(t, err.Error(), `"pre-rebase"`)
}

func TestKinds_Order(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []Kind{PreCommit, CommitMsg, PrePush, PostCommit}, Kinds())
	assert.Equal(t, []Kind{PreCommit, CommitMsg, PrePush}, InstallableKinds())

	// Kinds returns a copy
	ks := Kinds()
	ks[0] = "mutated"
	assert.Equal(t, PreCommit, Kinds()[0])
}

func TestLinterCommand_NoOp(t *testing.T) {
	t.Parallel()

	for _, l := range Linters() {
		cmd, ok := l.Command()
		assert.True(t, ok, "linter %s", l)
		assert.NotEmpty(t, cmd)
	}

	for _, l := range []Linter{LinterNone, "golint", "RUFF"} {
		cmd, ok := l.Command()
		assert.False(t, ok, "linter %q", l)
		assert.Empty(t, cmd)
		assert.False(t, l.Known())
	}

	for _, f := range []Formatter{FormatterNone, "gofmt", "Black"} {
		_, ok := f.Command()
		assert.False(t, ok, "formatter %q", f)
	}
}

func TestOptions_IsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, Options{}.IsZero())
	assert.False(t, Options{RunTests: true}.IsZero())
	assert.False(t, Options{Linter: "unknown"}.IsZero())
}
