// Package script synthesizes git hook scripts.
//
// A script is derived from a hook [Kind] and a set of [Options]. The result is
// deterministic: the same kind, options and repository root always produce
// byte-identical text.
//
// # Generation Order
//
// For option-driven kinds (pre-commit, pre-push) the body is built as:
//
//   - Custom override: Options.CustomScript replaces everything with a single
//     exec line. A missing script fails with [ErrReferenceNotFound].
//   - Linter command, looked up from a fixed table
//   - Formatter command, looked up from a fixed table
//   - Test command, detected from marker files in the repository root
//   - Fallback syntax check when nothing else produced a command
//
// Linter and formatter values outside the known tables produce no command.
// This is deliberate; [Linter.Command] and [Formatter.Command] report it
// through their boolean result.
//
// # commit-msg
//
// The commit-msg kind ignores options and always yields the same
// conventional-commit validator. [CommitMsgPattern] is the pattern embedded in
// that script.
package script
