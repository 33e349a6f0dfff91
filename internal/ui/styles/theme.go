package styles

import (
	"image/color"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/raphi011/git-hook-setup/internal/config"
)

// Theme is the set of colors the styles are built from.
type Theme struct {
	Primary color.Color // headings, table borders
	Accent  color.Color // selected prompt items
	Success color.Color
	Error   color.Color
	Muted   color.Color // hints, "(none)", cancelled prompts
	Info    color.Color
	Warning color.Color // doctor findings
}

// variants holds the light and dark rendition of one theme name. Either
// may be nil.
type variants struct {
	light, dark *Theme
}

// palette builds a Theme from color strings in field order. An empty
// string leaves the terminal default.
func palette(primary, accent, success, errColor, muted, info, warning string) *Theme {
	c := func(s string) color.Color {
		if s == "" {
			return lipgloss.NoColor{}
		}
		return lipgloss.Color(s)
	}
	return &Theme{
		Primary: c(primary),
		Accent:  c(accent),
		Success: c(success),
		Error:   c(errColor),
		Muted:   c(muted),
		Info:    c(info),
		Warning: c(warning),
	}
}

var (
	plain       = palette("", "", "", "", "", "", "")
	defaultDark = palette("62", "212", "82", "196", "240", "244", "214")
)

// families is keyed by the names config.ValidThemeNames accepts.
var families = map[string]variants{
	"none":    {light: plain, dark: plain},
	"default": {dark: defaultDark},
	"dracula": {dark: palette("#bd93f9", "#ff79c6", "#50fa7b", "#ff5555", "#6272a4", "#8be9fd", "#ffb86c")},
	"nord": {
		light: palette("#5e81ac", "#b48ead", "#a3be8c", "#bf616a", "#9a9a9a", "#81a1c1", "#d08770"),
		dark:  palette("#88c0d0", "#b48ead", "#a3be8c", "#bf616a", "#4c566a", "#81a1c1", "#ebcb8b"),
	},
	"gruvbox": {
		light: palette("#076678", "#8f3f71", "#79740e", "#9d0006", "#928374", "#427b58", "#b57614"),
		dark:  palette("#83a598", "#d3869b", "#b8bb26", "#fb4934", "#665c54", "#8ec07c", "#fabd2f"),
	},
	"catppuccin": {
		light: palette("#1e66f5", "#ea76cb", "#40a02b", "#d20f39", "#9ca0b0", "#179299", "#fe640b"),
		dark:  palette("#89b4fa", "#f5c2e7", "#a6e3a1", "#f38ba8", "#6c7086", "#94e2d5", "#fab387"),
	},
}

// Init rebuilds the package styles from the configured theme. The
// terminal background is only queried in auto mode.
func Init(cfg config.ThemeConfig) {
	applyTheme(selectTheme(cfg, func() bool {
		return lipgloss.HasDarkBackground(os.Stdin, os.Stderr)
	}))
}

func selectTheme(cfg config.ThemeConfig, isDark func() bool) Theme {
	v, ok := families[cfg.Name]
	if !ok {
		v = families["default"]
	}

	dark := cfg.Mode == "dark" || (cfg.Mode != "light" && isDark())
	preferred, other := v.light, v.dark
	if dark {
		preferred, other = v.dark, v.light
	}
	if preferred == nil {
		preferred = other
	}
	return *preferred
}

func applyTheme(t Theme) {
	Primary, Accent, Success, Error = t.Primary, t.Accent, t.Success, t.Error
	Muted, Info, Warning = t.Muted, t.Info, t.Warning

	PrimaryStyle = lipgloss.NewStyle().Foreground(t.Primary)
	AccentStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(t.Success)
	ErrorStyle = lipgloss.NewStyle().Foreground(t.Error)
	MutedStyle = lipgloss.NewStyle().Foreground(t.Muted)
	InfoStyle = lipgloss.NewStyle().Foreground(t.Info).Italic(true)
	WarningStyle = lipgloss.NewStyle().Foreground(t.Warning)
}
