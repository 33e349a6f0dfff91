package script

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned by ParseKind for names outside the known set.
var ErrUnknownKind = errors.New("unknown hook kind")

// ErrNotInstallable is returned when synthesizing a kind that is only
// recognized for listing.
var ErrNotInstallable = errors.New("hook kind is not installable")

// Kind identifies a git lifecycle hook. The value doubles as the hook's file
// name inside the hooks directory.
type Kind string

const (
	PreCommit  Kind = "pre-commit"
	CommitMsg  Kind = "commit-msg"
	PrePush    Kind = "pre-push"
	PostCommit Kind = "post-commit"
)

// kinds is the fixed enumeration order used for listing.
var kinds = []Kind{PreCommit, CommitMsg, PrePush, PostCommit}

// Kinds returns all known kinds in enumeration order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// InstallableKinds returns the kinds that can be synthesized.
func InstallableKinds() []Kind {
	var out []Kind
	for _, k := range kinds {
		if k.Installable() {
			out = append(out, k)
		}
	}
	return out
}

// ParseKind converts a hook name to a Kind.
func ParseKind(name string) (Kind, error) {
	for _, k := range kinds {
		if string(k) == name {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownKind, name)
}

// Installable reports whether scripts can be generated for the kind.
// post-commit is known only so that existing hooks show up in listings.
func (k Kind) Installable() bool {
	switch k {
	case PreCommit, CommitMsg, PrePush:
		return true
	default:
		return false
	}
}

// FileName returns the canonical file name of the hook.
func (k Kind) FileName() string {
	return string(k)
}

func (k Kind) String() string {
	return string(k)
}
