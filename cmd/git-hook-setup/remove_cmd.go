package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/git-hook-setup/internal/log"
	"github.com/raphi011/git-hook-setup/internal/output"
	"github.com/raphi011/git-hook-setup/internal/ui/styles"
)

func newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "remove <name>",
		Short:             "Remove an installed hook",
		Aliases:           []string{"rm"},
		GroupID:           GroupCore,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeInstalledHooks,
		Long: `Remove an installed hook.

The hook file is deleted from the hooks directory. Any file name in the
hooks directory can be removed, including hooks installed with --as.`,
		Example: `  git-hook-setup remove pre-commit
  git-hook-setup rm pre-push.local`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)
			repo := repositoryFromContext(ctx)

			name := args[0]
			l.Debug("removing hook", "name", name, "root", repo.Root)

			removed, err := repo.Remove(name)
			if err != nil {
				return err
			}
			if !removed {
				return hookNotFound(repo, name)
			}

			out.Println(styles.OK(fmt.Sprintf("hook %q removed", name)))
			return nil
		},
	}

	return cmd
}
