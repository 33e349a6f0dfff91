package doctor

import (
	"fmt"
	"io"

	"github.com/raphi011/git-hook-setup/internal/hooks"
	"github.com/raphi011/git-hook-setup/internal/ui/styles"
)

// fixAllIssues applies fixes for all fixable issues.
func fixAllIssues(w io.Writer, issues []Issue) error {
	var failed int

	for _, issue := range issues {
		switch issue.FixAction {
		case FixChmod:
			if err := hooks.MakeExecutable(issue.Path); err != nil {
				fmt.Fprintln(w, "  "+styles.Fail(fmt.Sprintf("%s: %v", issue.Key, err)))
				failed++
				continue
			}
			fmt.Fprintln(w, "  "+styles.OK("made "+issue.Key+" executable"))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d fixes failed", failed)
	}
	return nil
}
