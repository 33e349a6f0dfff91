package config

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/raphi011/git-hook-setup/internal/script"
)

// Valid enum values for configuration fields.
var (
	ValidThemeNames = []string{"none", "default", "dracula", "nord", "gruvbox", "catppuccin"}
	ValidThemeModes = []string{"auto", "light", "dark"}
)

// validateEnum checks that value (if non-empty) is one of the allowed values.
// Returns a formatted error mentioning the field name and allowed options.
func validateEnum(value, field string, allowed []string) error {
	if value == "" {
		return nil
	}
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("invalid %s %q: must be %s", field, value, formatOptions(allowed))
	}
	return nil
}

// validateHookSections rejects [hooks.X] sections whose name is not an
// installable hook kind.
func validateHookSections(hooks map[string]HookSettings) error {
	allowed := make([]string, 0, 3)
	for _, k := range script.InstallableKinds() {
		allowed = append(allowed, string(k))
	}

	names := make([]string, 0, len(hooks))
	for name := range hooks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := validateEnum(name, "hook section", allowed); err != nil {
			return err
		}
	}
	return nil
}

// UnknownValues lists linter and formatter values that no hook command
// exists for. They are accepted and ignored at generation time; callers
// report them as diagnostics.
func (c *Config) UnknownValues() []string {
	var out []string
	check := func(section string, s HookSettings) {
		if s.Linter != "" && !script.Linter(s.Linter).Known() {
			out = append(out, fmt.Sprintf("%s.linter = %q", section, s.Linter))
		}
		if s.Formatter != "" && !script.Formatter(s.Formatter).Known() {
			out = append(out, fmt.Sprintf("%s.formatter = %q", section, s.Formatter))
		}
	}

	check("defaults", c.Defaults)
	for _, k := range script.InstallableKinds() {
		if s, ok := c.Hooks[string(k)]; ok {
			check("hooks."+string(k), s)
		}
	}
	return out
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
