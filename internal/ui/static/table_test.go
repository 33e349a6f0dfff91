package static

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestRenderTable_Empty(t *testing.T) {
	t.Parallel()

	if got := RenderTable([]string{"KIND", "PATH"}, nil); got != "" {
		t.Errorf("RenderTable with no rows = %q, want empty", got)
	}
}

func TestRenderTable_Alignment(t *testing.T) {
	t.Parallel()

	out := ansi.Strip(RenderTable(
		[]string{"KIND", "PATH", "MODE"},
		[][]string{
			{"pre-commit", "/repo/.git/hooks/pre-commit", "-rwxr--r--"},
			{"commit-msg", "/repo/.git/hooks/commit-msg", "-rwxr-xr-x"},
		},
	))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "KIND") {
		t.Errorf("header = %q, want KIND first", lines[0])
	}

	// PATH column starts at the same offset in every line
	col := strings.Index(lines[0], "PATH")
	for _, l := range lines[1:] {
		if idx := strings.Index(l, "/repo"); idx != col {
			t.Errorf("PATH column at %d in %q, header at %d", idx, l, col)
		}
	}

	for _, border := range []string{"│", "─", "┼"} {
		if strings.Contains(out, border) {
			t.Errorf("table should have no borders, found %q", border)
		}
	}
}
