package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/raphi011/git-hook-setup/internal/config"
	"github.com/raphi011/git-hook-setup/internal/log"
	"github.com/raphi011/git-hook-setup/internal/output"
	"github.com/raphi011/git-hook-setup/internal/script"
	"github.com/raphi011/git-hook-setup/internal/ui/static"
	"github.com/raphi011/git-hook-setup/internal/ui/styles"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage git-hook-setup configuration.

Global config: ~/.config/git-hook-setup/config.toml (or $GIT_HOOK_SETUP_CONFIG)
Local config:  .git-hook-setup.toml (in the repository root)`,
		Example: `  git-hook-setup config init          # Create default global config
  git-hook-setup config init --local  # Create local repo config
  git-hook-setup config show          # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
		local  bool
	)

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create default config file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationConfigOptional: ""},
		Long: `Create default config file.

Without flags, creates the global config.
With --local, creates .git-hook-setup.toml in the repository root.`,
		Example: `  git-hook-setup config init           # Create global config
  git-hook-setup config init --local   # Create local repo config
  git-hook-setup config init -f        # Overwrite existing config
  git-hook-setup config init -s        # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			if stdout {
				if local {
					out.Print(config.DefaultLocalConfig())
				} else {
					out.Print(config.DefaultConfig())
				}
				return nil
			}

			var (
				path string
				err  error
			)
			if local {
				path, err = config.InitLocal(repositoryFromContext(ctx).Root, force)
			} else {
				path, err = config.Init(force)
			}
			if errors.Is(err, config.ErrConfigExists) {
				return fmt.Errorf("%w (use -f to overwrite)", err)
			}
			if err != nil {
				return err
			}

			if local {
				out.Printf("Created local config: %s\n", path)
			} else {
				out.Printf("Created config file: %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")
	cmd.Flags().BoolVar(&local, "local", false, "Create per-repo .git-hook-setup.toml instead of global config")

	return cmd
}

// effectiveConfig is the JSON form of config show: the theme plus the
// resolved settings of every installable kind.
type effectiveConfig struct {
	Theme config.ThemeConfig             `json:"theme"`
	Hooks map[string]config.HookSettings `json:"hooks"`
}

func newConfigShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show effective configuration.

Prints the settings each hook kind resolves to after merging the local
config over the global config. Command-line flags are not included.`,
		Example: `  git-hook-setup config show          # Show effective config
  git-hook-setup config show --json   # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)
			root := repositoryFromContext(ctx).Root

			eff := effectiveConfig{
				Theme: cfg.Theme,
				Hooks: make(map[string]config.HookSettings),
			}
			for _, k := range script.InstallableKinds() {
				eff.Hooks[string(k)] = cfg.Resolve(k)
			}

			if jsonOutput {
				return out.JSON(eff)
			}

			globalPath, err := config.Path()
			if err != nil {
				l.Warnf("cannot determine global config path: %v", err)
			}
			out.Printf("Global config: %s\n", describeConfigFile(globalPath))
			out.Printf("Local config:  %s\n", describeConfigFile(filepath.Join(root, config.LocalConfigFileName)))
			out.Println()
			out.Printf("theme: %s (%s)\n", cfg.Theme.Name, cfg.Theme.Mode)
			out.Println()

			rows := make([][]string, 0, len(eff.Hooks))
			for _, k := range script.InstallableKinds() {
				s := eff.Hooks[string(k)]
				test := "false"
				if s.Test != nil {
					test = strconv.FormatBool(*s.Test)
				}
				rows = append(rows, []string{string(k), orDash(s.Linter), orDash(s.Formatter), test, orDash(s.Custom)})
			}
			out.Print(static.RenderTable([]string{"KIND", "LINTER", "FORMATTER", "TEST", "CUSTOM"}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

// describeConfigFile returns path, or "(none)" when no file exists there.
func describeConfigFile(path string) string {
	none := styles.MutedStyle.Render("(none)")
	if path == "" {
		return none
	}
	if _, err := os.Stat(path); err != nil {
		return path + " " + none
	}
	return path
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
