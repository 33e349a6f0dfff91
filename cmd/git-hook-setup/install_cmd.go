package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/git-hook-setup/internal/config"
	"github.com/raphi011/git-hook-setup/internal/hooks"
	"github.com/raphi011/git-hook-setup/internal/log"
	"github.com/raphi011/git-hook-setup/internal/output"
	"github.com/raphi011/git-hook-setup/internal/script"
	"github.com/raphi011/git-hook-setup/internal/ui/styles"
)

func newInstallCmd() *cobra.Command {
	var (
		flags       hookFlags
		target      string
		interactive bool
		dryRun      bool
	)

	cmd := &cobra.Command{
		Use:               "install <kind>",
		Short:             "Install a git hook",
		Aliases:           []string{"add"},
		GroupID:           GroupCore,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeInstallableKinds,
		Long: `Install a git hook into the repository's hooks directory.

Kinds: pre-commit, commit-msg, pre-push.

pre-commit and pre-push run the selected linter, formatter and tests in that
order, or a custom script instead. Without any option the hook byte-compiles
staged Python files. commit-msg always installs a conventional-commit
message check and ignores options.

Options not given as flags come from the config files. An existing hook is
overwritten; the owner-execute bit is added to its current permissions.`,
		Example: `  git-hook-setup install pre-commit --linter ruff --formatter black
  git-hook-setup install pre-push --test
  git-hook-setup install pre-commit --custom scripts/lint.sh
  git-hook-setup install commit-msg
  git-hook-setup install pre-commit -i          # Pick options interactively
  git-hook-setup install pre-commit --dry-run   # Print the script only`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)
			repo := repositoryFromContext(ctx)

			kind, err := parseKind(args[0], script.InstallableKinds())
			if err != nil {
				return err
			}
			if !kind.Installable() {
				return fmt.Errorf("%w: %s", script.ErrNotInstallable, kind)
			}

			opts, err := flags.options(cmd, config.FromContext(ctx), kind)
			if err != nil {
				return err
			}
			if interactive {
				var ok bool
				opts, ok, err = flags.interactive(cmd, kind, opts)
				if err != nil {
					return err
				}
				if !ok {
					l.Println(styles.MutedStyle.Render("Cancelled"))
					return nil
				}
			}
			if err := validateOptions(kind, opts); err != nil {
				return err
			}
			logIgnored(l, opts)

			if dryRun {
				s, err := script.Synthesize(repo.Root, kind, opts)
				if err != nil {
					return err
				}
				out.Print(s.Text)
				return nil
			}

			l.Debug("installing hook", "kind", kind, "root", repo.Root)
			h, err := repo.Install(kind, opts, target)
			if err != nil {
				if errors.Is(err, hooks.ErrNotARepository) {
					return fmt.Errorf("%w (run 'git init' first)", err)
				}
				return err
			}

			out.Println(styles.OK(fmt.Sprintf("%s hook installed: %s", kind, h.Path)))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&target, "as", "", "Install under this file name instead of the kind")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Choose options interactively")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Print the script instead of installing it")

	return cmd
}
