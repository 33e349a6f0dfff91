// Package config handles loading and validation of git-hook-setup
// configuration.
//
// # Configuration Sources (highest priority first)
//
//   - Command-line flags (applied by the caller)
//   - .git-hook-setup.toml at the repository root
//   - Global config: $GIT_HOOK_SETUP_CONFIG, or
//     ~/.config/git-hook-setup/config.toml
//   - Default values
//
// A missing file is not an error. A file that fails to parse or names an
// unknown hook kind or theme is.
//
// # Hook Settings
//
// [defaults] applies to every installable hook kind and [hooks.KIND]
// overrides it for one kind:
//
//	[defaults]
//	linter = "ruff"
//
//	[hooks.pre-push]
//	test = true
//
// Linter and formatter names are not validated. A name without a command is
// ignored when the script is generated; [Config.UnknownValues] lists them so
// the CLI can report them in verbose mode.
package config
