package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/raphi011/git-hook-setup/internal/config"
	"github.com/raphi011/git-hook-setup/internal/log"
	"github.com/raphi011/git-hook-setup/internal/script"
	"github.com/raphi011/git-hook-setup/internal/ui/prompt"
)

// ErrPrePushRequiresTests is returned when a pre-push hook would not run
// the test suite.
var ErrPrePushRequiresTests = errors.New("pre-push hook requires --test")

// hookFlagNames are the flags registered by hookFlags.
var hookFlagNames = []string{"linter", "formatter", "test", "custom"}

// hookFlags are the option flags shared by install and show.
type hookFlags struct {
	linter    string
	formatter string
	test      bool
	custom    string
}

func (f *hookFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.linter, "linter", "", "Linter to run ("+joinNames(script.Linters())+")")
	cmd.Flags().StringVar(&f.formatter, "formatter", "", "Formatter to run ("+joinNames(script.Formatters())+")")
	cmd.Flags().BoolVar(&f.test, "test", false, "Run the test suite")
	cmd.Flags().StringVar(&f.custom, "custom", "", "Run this script instead of generated commands")

	cmd.RegisterFlagCompletionFunc("linter", completeLinters)
	cmd.RegisterFlagCompletionFunc("formatter", completeFormatters)
	cmd.MarkFlagFilename("custom")
}

// options returns the configured settings for kind with every flag given on
// the command line applied on top. A relative --custom path is taken
// relative to the working directory.
func (f *hookFlags) options(cmd *cobra.Command, cfg *config.Config, kind script.Kind) (script.Options, error) {
	s := cfg.Resolve(kind)
	flags := cmd.Flags()

	if flags.Changed("linter") {
		s.Linter = f.linter
	}
	if flags.Changed("formatter") {
		s.Formatter = f.formatter
	}
	if flags.Changed("test") {
		v := f.test
		s.Test = &v
	}
	if flags.Changed("custom") {
		s.Custom = f.custom
		if s.Custom != "" {
			abs, err := filepath.Abs(s.Custom)
			if err != nil {
				return script.Options{}, fmt.Errorf("resolve --custom: %w", err)
			}
			s.Custom = abs
		}
	}

	return s.Options(), nil
}

// interactive asks for every option not given as a flag, starting each
// prompt at the value resolved from config. ok is false when the user
// cancels.
func (f *hookFlags) interactive(cmd *cobra.Command, kind script.Kind, opts script.Options) (_ script.Options, ok bool, err error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return opts, false, errors.New("--interactive requires a terminal")
	}
	// commit-msg takes no options
	if kind == script.CommitMsg {
		return opts, true, nil
	}
	flags := cmd.Flags()

	if !flags.Changed("custom") {
		res, err := prompt.TextInput("Custom script (leave empty to generate one):", "scripts/"+string(kind)+".sh", opts.CustomScript)
		if err != nil || res.Cancelled {
			return opts, false, err
		}
		opts.CustomScript = ""
		if res.Value != "" {
			abs, err := filepath.Abs(res.Value)
			if err != nil {
				return opts, false, err
			}
			opts.CustomScript = abs
		}
	}
	if opts.CustomScript != "" {
		return opts, true, nil
	}

	if !flags.Changed("linter") {
		res, err := prompt.Select("Linter:", toolOptions(script.Linters()), toolIndex(script.Linters(), opts.Linter))
		if err != nil || res.Cancelled {
			return opts, false, err
		}
		opts.Linter = script.Linter(selectedTool(res))
	}

	if !flags.Changed("formatter") {
		res, err := prompt.Select("Formatter:", toolOptions(script.Formatters()), toolIndex(script.Formatters(), opts.Formatter))
		if err != nil || res.Cancelled {
			return opts, false, err
		}
		opts.Formatter = script.Formatter(selectedTool(res))
	}

	if !flags.Changed("test") {
		res, err := prompt.Confirm("Run tests?", opts.RunTests)
		if err != nil || res.Cancelled {
			return opts, false, err
		}
		opts.RunTests = res.Confirmed
	}

	log.FromContext(cmd.Context()).Debug("interactive options",
		"linter", opts.Linter, "formatter", opts.Formatter, "tests", opts.RunTests)
	return opts, true, nil
}

// validateOptions enforces CLI rules that the synthesizer does not.
func validateOptions(kind script.Kind, opts script.Options) error {
	if kind == script.PrePush && !opts.RunTests {
		return ErrPrePushRequiresTests
	}
	return nil
}

// logIgnored reports option values that generate no command.
func logIgnored(l *log.Logger, opts script.Options) {
	if opts.CustomScript != "" {
		return
	}
	if opts.Linter != script.LinterNone && !opts.Linter.Known() {
		l.Debug("unknown linter, no lint step", "linter", opts.Linter)
	}
	if opts.Formatter != script.FormatterNone && !opts.Formatter.Known() {
		l.Debug("unknown formatter, no format step", "formatter", opts.Formatter)
	}
}

// tool is a linter or formatter.
type tool interface {
	~string
	Command() (string, bool)
}

// toolOptions lists "none" followed by every tool with its command.
func toolOptions[T tool](tools []T) []prompt.Option {
	opts := []prompt.Option{{Title: "none", Description: "skip this step"}}
	for _, t := range tools {
		c, _ := t.Command()
		opts = append(opts, prompt.Option{Title: string(t), Description: c})
	}
	return opts
}

// toolIndex returns the position of current in toolOptions(tools), or 0
// ("none") when it is unset or unknown.
func toolIndex[T tool](tools []T, current T) int {
	for i, t := range tools {
		if t == current {
			return i + 1
		}
	}
	return 0
}

// selectedTool maps the leading "none" entry of toolOptions to "".
func selectedTool(res prompt.SelectResult) string {
	if res.Index == 0 {
		return ""
	}
	return res.Value
}

func joinNames[T ~string](names []T) string {
	return strings.Join(stringsOf(names), ", ")
}
