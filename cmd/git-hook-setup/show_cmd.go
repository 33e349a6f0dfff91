package main

import (
	"errors"
	"io/fs"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/raphi011/git-hook-setup/internal/config"
	"github.com/raphi011/git-hook-setup/internal/log"
	"github.com/raphi011/git-hook-setup/internal/output"
	"github.com/raphi011/git-hook-setup/internal/script"
	"github.com/raphi011/git-hook-setup/internal/ui/styles"
)

func newShowCmd() *cobra.Command {
	var (
		flags           hookFlags
		installed       bool
		copyToClipboard bool
	)

	cmd := &cobra.Command{
		Use:               "show <kind>",
		Short:             "Print a hook script",
		Aliases:           []string{"cat"},
		GroupID:           GroupCore,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeInstallableKinds,
		Long: `Print the script install would write, without touching the repository.

With --installed, print the hook currently on disk instead. Option flags
work as they do for install.`,
		Example: `  git-hook-setup show pre-commit --linter ruff
  git-hook-setup show pre-push --test --copy   # Also copy to clipboard
  git-hook-setup show pre-commit --installed   # Print the installed hook`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)
			repo := repositoryFromContext(ctx)

			var text string
			if installed {
				name := args[0]
				t, err := repo.Read(name)
				if errors.Is(err, fs.ErrNotExist) {
					return hookNotFound(repo, name)
				}
				if err != nil {
					return err
				}
				text = t
			} else {
				kind, err := parseKind(args[0], script.InstallableKinds())
				if err != nil {
					return err
				}
				opts, err := flags.options(cmd, config.FromContext(ctx), kind)
				if err != nil {
					return err
				}
				if err := validateOptions(kind, opts); err != nil {
					return err
				}
				logIgnored(l, opts)

				s, err := script.Synthesize(repo.Root, kind, opts)
				if err != nil {
					return err
				}
				text = s.Text
			}

			out.Print(text)

			// Copy to clipboard if requested
			if copyToClipboard {
				if err := clipboard.WriteAll(text); err != nil {
					l.Warnf("failed to copy to clipboard: %v", err)
				} else {
					l.Println(styles.InfoStyle.Render("Copied to clipboard"))
				}
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&installed, "installed", false, "Print the installed hook instead")
	cmd.Flags().BoolVarP(&copyToClipboard, "copy", "c", false, "Copy the script to the clipboard")
	for _, name := range hookFlagNames {
		cmd.MarkFlagsMutuallyExclusive("installed", name)
	}

	return cmd
}
