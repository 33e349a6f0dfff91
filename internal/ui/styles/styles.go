// Package styles provides shared lipgloss styles for UI components.
//
// The static and prompt packages render through these variables so the
// configured theme applies everywhere. Call [Init] once the config is
// loaded; until then the default dark theme is used.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Colors of the active theme. Updated by Init.
var (
	Primary color.Color = defaultDark.Primary
	Accent  color.Color = defaultDark.Accent
	Success color.Color = defaultDark.Success
	Error   color.Color = defaultDark.Error
	Muted   color.Color = defaultDark.Muted
	Info    color.Color = defaultDark.Info
	Warning color.Color = defaultDark.Warning
)

var (
	Bold = lipgloss.NewStyle().Bold(true)

	PrimaryStyle = lipgloss.NewStyle().Foreground(Primary)
	AccentStyle  = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)
	InfoStyle    = lipgloss.NewStyle().Foreground(Info).Italic(true)
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)
)
