package doctor

// IssueCategory groups issues by type.
type IssueCategory string

const (
	// CategoryGit represents problems with the git installation or settings.
	CategoryGit IssueCategory = "git"
	// CategoryHook represents problems with installed hook files.
	CategoryHook IssueCategory = "hook"
	// CategoryConfig represents suspicious configuration values.
	CategoryConfig IssueCategory = "config"
)

// FixAction names what --fix does for an issue.
type FixAction string

const (
	// FixNone means the issue needs manual attention.
	FixNone FixAction = ""
	// FixChmod ORs the owner-execute bit into the hook's mode.
	FixChmod FixAction = "chmod"
)

// Issue represents a problem detected by doctor.
type Issue struct {
	Key         string        // hook name or setting
	Description string        // human-readable description
	FixAction   FixAction     // what --fix would do
	Category    IssueCategory // issue category
	Path        string        // file the fix applies to
	Warning     bool          // informational, hooks still run
}

// Report is the outcome of all checks.
type Report struct {
	Passed []string // one line per successful check
	Issues []Issue
}

// Fixable returns the issues --fix can repair.
func (r Report) Fixable() []Issue {
	var out []Issue
	for _, issue := range r.Issues {
		if issue.FixAction != FixNone {
			out = append(out, issue)
		}
	}
	return out
}
