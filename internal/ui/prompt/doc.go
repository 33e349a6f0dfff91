// Package prompt provides the interactive prompts behind
// "install --interactive".
//
// Prompts render on stderr so stdout stays clean for script output.
//
// Available prompts:
//   - [Confirm]: Yes/No confirmation prompt
//   - [TextInput]: Single-line text input
//   - [Select]: Single selection from a list
package prompt
