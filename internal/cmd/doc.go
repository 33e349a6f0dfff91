// Package cmd runs external commands with context cancellation and verbose
// logging.
//
// stderr is captured and used as the error message when a command fails, so
// callers can show git's own explanation to the user:
//
//	out, err := cmd.OutputContext(ctx, repoDir, "git", "config", "core.hooksPath")
//	if err != nil {
//	    return fmt.Errorf("read hooks path: %w", err)
//	}
package cmd
