// Package doctor diagnoses why installed hooks might not run.
//
// Checks:
//
//   - git is available
//   - the repository has a metadata directory
//   - core.hooksPath is not redirecting git elsewhere (warning)
//   - every installed hook has the owner-execute bit and a #! line
//   - configured linter and formatter names have commands (warning)
//
// Only missing execute bits are fixable: --fix ORs the bit in, the same way
// install does.
//
//	report, err := doctor.Run(ctx, w, hooks.New(root), cfg, false)
package doctor
