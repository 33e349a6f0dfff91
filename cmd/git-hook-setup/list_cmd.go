package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/git-hook-setup/internal/log"
	"github.com/raphi011/git-hook-setup/internal/output"
	"github.com/raphi011/git-hook-setup/internal/ui/static"
)

func newListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List installed hooks",
		Aliases: []string{"ls"},
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `List installed hooks.

Only pre-commit, commit-msg, pre-push and post-commit are reported, in that
order. Sample hooks and hooks installed under other names are not shown.`,
		Example: `  git-hook-setup list          # Table of installed hooks
  git-hook-setup list --json   # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)
			repo := repositoryFromContext(ctx)

			installed, err := repo.List()
			if err != nil {
				return err
			}
			l.Debug("listed hooks", "root", repo.Root, "count", len(installed))

			if jsonOutput {
				return out.JSON(installed)
			}

			if len(installed) == 0 {
				out.Println("No hooks installed.")
				return nil
			}

			rows := make([][]string, 0, len(installed))
			for _, h := range installed {
				mode := "?"
				if info, err := os.Stat(h.Path); err == nil {
					mode = info.Mode().Perm().String()
				}
				rows = append(rows, []string{h.Kind.String(), h.Path, mode})
			}
			out.Print(static.RenderTable([]string{"KIND", "PATH", "MODE"}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
