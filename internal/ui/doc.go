// Package ui groups the terminal presentation packages of git-hook-setup.
//
//   - styles: theme presets and shared lipgloss styles
//   - static: non-interactive output such as the hook table
//   - prompt: bubbletea prompts used by "install --interactive"
//
// Core packages never import ui. Only cmd/git-hook-setup does.
package ui
