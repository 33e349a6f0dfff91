package config

import "github.com/raphi011/git-hook-setup/internal/script"

// MergeLocal merges a local per-repo config into a global config,
// returning a new Config without mutating the global.
// Returns global unchanged if local is nil.
//
// Effective precedence for a hook kind, highest first: local [hooks.kind],
// local [defaults], global [hooks.kind], global [defaults]. To keep that
// order in a single Config, local defaults are folded into every kind
// section on top of the global one.
func MergeLocal(global *Config, local *LocalConfig) *Config {
	if local == nil {
		return global
	}

	merged := *global
	merged.Defaults = overlay(global.Defaults, local.Defaults)
	merged.Hooks = make(map[string]HookSettings, len(script.InstallableKinds()))

	for _, k := range script.InstallableKinds() {
		name := string(k)
		s := overlay(global.Hooks[name], local.Defaults)
		s = overlay(s, local.Hooks[name])
		if !s.IsZero() {
			merged.Hooks[name] = s
		}
	}

	return &merged
}

// overlay returns base with every field that is set in top replaced.
func overlay(base, top HookSettings) HookSettings {
	if top.Linter != "" {
		base.Linter = top.Linter
	}
	if top.Formatter != "" {
		base.Formatter = top.Formatter
	}
	if top.Test != nil {
		v := *top.Test
		base.Test = &v
	}
	if top.Custom != "" {
		base.Custom = top.Custom
	}
	return base
}

// Resolve returns the effective settings for kind: its [hooks.kind] section
// on top of [defaults].
func (c *Config) Resolve(kind script.Kind) HookSettings {
	return overlay(c.Defaults, c.Hooks[string(kind)])
}

// Options converts the settings into synthesizer options.
func (s HookSettings) Options() script.Options {
	return script.Options{
		Linter:       script.Linter(s.Linter),
		Formatter:    script.Formatter(s.Formatter),
		RunTests:     s.Test != nil && *s.Test,
		CustomScript: s.Custom,
	}
}
