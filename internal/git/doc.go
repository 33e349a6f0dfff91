// Package git provides the few git queries git-hook-setup needs, via the git
// CLI.
//
// Hook installation itself never runs git: the metadata directory is found on
// the filesystem by package hooks. git is only consulted to find the
// repository root from the working directory and for diagnostics:
//
//   - [TopLevel]: working tree root for a directory
//   - [HooksPath]: the core.hooksPath override, which makes git ignore
//     .git/hooks
//   - [Version]: git version for doctor output
package git
