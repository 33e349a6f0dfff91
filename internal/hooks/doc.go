// Package hooks persists synthesized hook scripts inside a repository's git
// metadata directory.
//
// A [Repository] is bound to an explicit repository root. It never consults
// the process working directory.
//
// # Metadata Directory
//
// The metadata directory is found from the root:
//
//   - <root>/.git is a directory: it is used as is
//   - <root>/.git is a file containing "gitdir: <path>": the path is resolved
//     relative to root (linked worktrees and submodules)
//   - the resolved directory contains a commondir file: the common directory
//     is used, since hooks are shared by every worktree of a repository
//
// Hooks live in <gitdir>/hooks/<name>.
//
// # Permissions
//
// Install ORs the owner-execute bit into whatever mode the file already has.
// Group and other bits set by the user survive a reinstall.
package hooks
