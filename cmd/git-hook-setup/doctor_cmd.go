package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/git-hook-setup/internal/config"
	"github.com/raphi011/git-hook-setup/internal/doctor"
	"github.com/raphi011/git-hook-setup/internal/output"
)

func newDoctorCmd() *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:         "doctor",
		Short:       "Diagnose and repair hook issues",
		GroupID:     GroupConfig,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationConfigOptional: ""},
		Long: `Diagnose why installed hooks might not run.

Checks:
- Git is installed
- The repository has a metadata directory
- core.hooksPath does not point git at another directory
- Installed hooks are executable and start with a #! line
- Configured linters and formatters are recognized`,
		Example: `  git-hook-setup doctor          # Check for issues
  git-hook-setup doctor --fix    # Make installed hooks executable`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			_, err := doctor.Run(ctx, out.Writer(), repositoryFromContext(ctx), config.FromContext(ctx), fix)
			return err
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "Repair fixable issues")

	return cmd
}
