package config

import "context"

type ctxKey struct{}

// WithConfig returns a new context carrying the effective config.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext returns the config stored by WithConfig.
// Returns a pointer to Default() if none is stored.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok && cfg != nil {
		return cfg
	}
	d := Default()
	return &d
}
