package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/raphi011/git-hook-setup/internal/config"
	"github.com/raphi011/git-hook-setup/internal/git"
	"github.com/raphi011/git-hook-setup/internal/hooks"
	"github.com/raphi011/git-hook-setup/internal/log"
	"github.com/raphi011/git-hook-setup/internal/output"
	"github.com/raphi011/git-hook-setup/internal/ui/styles"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	repoDir string
)

// Command group IDs for organizing help output
const (
	GroupCore   = "core"
	GroupConfig = "config"
)

// annotationConfigOptional marks commands that still run, with defaults,
// when the config files cannot be loaded.
const annotationConfigOptional = "config-optional"

type repoKey struct{}

// withRepository attaches the hook repository for the resolved root.
func withRepository(ctx context.Context, r *hooks.Repository) context.Context {
	return context.WithValue(ctx, repoKey{}, r)
}

// repositoryFromContext returns the attached repository, or one rooted at
// the working directory.
func repositoryFromContext(ctx context.Context) *hooks.Repository {
	if r, ok := ctx.Value(repoKey{}).(*hooks.Repository); ok {
		return r
	}
	wd, _ := os.Getwd()
	return hooks.New(wd)
}

// newRootCmd builds the command tree. Diagnostics are written to stderr.
func newRootCmd(stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "git-hook-setup",
		Short: "Generate and manage git hooks",
		Long: `git-hook-setup generates, installs, lists and removes git hooks.

Hooks are small shell scripts git runs at lifecycle points. Scripts are
generated from a linter, a formatter and a test runner, or delegate to a
custom script of your own.`,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2, // Enable typo suggestions
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := log.WithLogger(cmd.Context(), log.New(stderr, verbose, quiet))
			cmd.SetContext(ctx)

			// Skip repository and config setup for completion and help commands
			switch cmd.Name() {
			case "completion", "help", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
				return nil
			}

			root, err := resolveRoot(ctx, repoDir)
			if err != nil {
				return err
			}
			ctx = withRepository(ctx, hooks.New(root))

			cfg, err := loadConfig(ctx, root)
			if err != nil {
				if _, ok := cmd.Annotations[annotationConfigOptional]; !ok {
					return err
				}
				log.FromContext(ctx).Warnf("%v (using defaults)", err)
				def := config.Default()
				cfg = &def
			}
			styles.Init(cfg.Theme)
			ctx = config.WithConfig(ctx, cfg)

			cmd.SetContext(ctx)
			return nil
		},
		// Run is not set - shows help when no subcommand provided
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&repoDir, "repo", "C", "", "Repository root (default: git toplevel of the working directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands and debug output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	rootCmd.MarkPersistentFlagDirname("repo")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Hook Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Hook commands
	rootCmd.AddCommand(newInstallCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newRemoveCmd())
	rootCmd.AddCommand(newShowCmd())

	// Config commands
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newDoctorCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// Execute runs the command tree and exits non-zero on error.
func Execute() {
	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Output printer (stdout for primary data). The writer drops colors
	// when stdout is not a terminal.
	ctx = output.WithPrinter(ctx, colorprofile.NewWriter(os.Stdout, os.Environ()))

	if err := newRootCmd(os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'git-hook-setup -h' for help")
		os.Exit(1)
	}
}

// resolveRoot picks the repository root: the --repo flag when given,
// otherwise the git toplevel of the working directory, falling back to the
// working directory itself when git is unavailable or it is not inside a
// work tree.
func resolveRoot(ctx context.Context, dir string) (string, error) {
	l := log.FromContext(ctx)

	if dir != "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return "", fmt.Errorf("resolve --repo: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	if err := git.CheckGit(); err != nil {
		l.Debug("git unavailable, using working directory", "dir", wd)
		return wd, nil
	}
	top, err := git.TopLevel(ctx, wd)
	if err != nil {
		l.Debug("no git toplevel, using working directory", "dir", wd)
		return wd, nil
	}
	return top, nil
}

// loadConfig loads the global config and merges the local config of root
// into it.
func loadConfig(ctx context.Context, root string) (*config.Config, error) {
	l := log.FromContext(ctx)

	global, err := config.Load()
	if err != nil {
		return nil, err
	}
	local, err := config.LoadLocal(root)
	if err != nil {
		return nil, err
	}
	if local != nil {
		l.Debug("loaded local config", "path", filepath.Join(root, config.LocalConfigFileName))
	}

	cfg := config.MergeLocal(&global, local)
	for _, v := range cfg.UnknownValues() {
		l.Debug("ignoring unrecognized setting: " + v)
	}
	return cfg, nil
}
