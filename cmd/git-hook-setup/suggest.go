package main

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/raphi011/git-hook-setup/internal/hooks"
	"github.com/raphi011/git-hook-setup/internal/script"
)

// suggestions returns the candidates that fuzzily match input, best first.
func suggestions(input string, candidates []string) []string {
	matches := fuzzy.Find(input, candidates)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Str)
	}
	return out
}

// withSuggestions appends a "Did you mean" list to err when any candidate
// matches input. The result still wraps err.
func withSuggestions(err error, input string, candidates []string) error {
	s := suggestions(input, candidates)
	if len(s) == 0 {
		return err
	}
	return fmt.Errorf("%w\n\nDid you mean?\n  %s", err, strings.Join(s, "\n  "))
}

// parseKind parses name, suggesting close matches among candidates.
func parseKind(name string, candidates []script.Kind) (script.Kind, error) {
	kind, err := script.ParseKind(name)
	if err != nil {
		return "", withSuggestions(err, name, stringsOf(candidates))
	}
	return kind, nil
}

// hookNotFound builds the error for a hook that is not installed,
// suggesting installed hook names.
func hookNotFound(repo *hooks.Repository, name string) error {
	err := fmt.Errorf("hook %q not found", name)
	installed, listErr := repo.List()
	if listErr != nil {
		return err
	}
	names := make([]string, len(installed))
	for i, h := range installed {
		names[i] = h.Kind.FileName()
	}
	return withSuggestions(err, name, names)
}

// stringsOf converts kinds, linters or formatters to plain strings.
func stringsOf[T ~string](xs []T) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = string(x)
	}
	return out
}
