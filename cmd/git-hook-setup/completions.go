package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/git-hook-setup/internal/hooks"
	"github.com/raphi011/git-hook-setup/internal/script"
)

// completeInstallableKinds provides completion for the kind argument of
// install and show.
func completeInstallableKinds(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return stringsOf(script.InstallableKinds()), cobra.ShellCompDirectiveNoFileComp
}

// completeInstalledHooks provides completion for hooks present on disk.
func completeInstalledHooks(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	ctx := cmd.Context()
	root, err := resolveRoot(ctx, repoDir)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	installed, err := hooks.New(root).List()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	names := make([]string, len(installed))
	for i, h := range installed {
		names[i] = h.Kind.FileName()
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func completeLinters(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return stringsOf(script.Linters()), cobra.ShellCompDirectiveNoFileComp
}

func completeFormatters(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return stringsOf(script.Formatters()), cobra.ShellCompDirectiveNoFileComp
}
