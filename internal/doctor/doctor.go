package doctor

import (
	"context"
	"fmt"
	"io"

	"github.com/raphi011/git-hook-setup/internal/config"
	"github.com/raphi011/git-hook-setup/internal/hooks"
	"github.com/raphi011/git-hook-setup/internal/ui/styles"
)

// Run performs diagnostic checks, prints the results to w and optionally
// fixes what can be fixed.
func Run(ctx context.Context, w io.Writer, repo *hooks.Repository, cfg *config.Config, fix bool) (Report, error) {
	report := Check(ctx, repo, cfg)

	for _, line := range report.Passed {
		fmt.Fprintln(w, styles.OK(line))
	}

	if len(report.Issues) == 0 {
		fmt.Fprintln(w, "\nNo issues found")
		return report, nil
	}

	fmt.Fprintf(w, "\nFound %d issues:\n", len(report.Issues))
	printIssuesByCategory(w, report.Issues)

	fixable := report.Fixable()
	if len(fixable) == 0 {
		return report, nil
	}
	if !fix {
		fmt.Fprintln(w, "\nRun 'git-hook-setup doctor --fix' to repair.")
		return report, nil
	}

	fmt.Fprintln(w)
	return report, fixAllIssues(w, fixable)
}

// printIssuesByCategory groups and prints issues.
func printIssuesByCategory(w io.Writer, issues []Issue) {
	byCategory := make(map[IssueCategory][]Issue)
	for _, issue := range issues {
		byCategory[issue.Category] = append(byCategory[issue.Category], issue)
	}

	categoryNames := map[IssueCategory]string{
		CategoryGit:    "Git",
		CategoryHook:   "Hooks",
		CategoryConfig: "Config",
	}

	for _, cat := range []IssueCategory{CategoryGit, CategoryHook, CategoryConfig} {
		catIssues := byCategory[cat]
		if len(catIssues) == 0 {
			continue
		}

		fmt.Fprintf(w, "\n%s:\n", styles.PrimaryStyle.Render(categoryNames[cat]))
		for _, issue := range catIssues {
			line := fmt.Sprintf("%s: %s", issue.Key, issue.Description)
			if issue.Warning {
				fmt.Fprintln(w, "  "+styles.Warn(line))
			} else {
				fmt.Fprintln(w, "  "+styles.Fail(line))
			}
		}
	}
}
