package cli

import (
	"context"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolve returns a [kong.ConfigurationLoader] that decodes a YAML config
// file into a flat map and exposes it as a [kong.Resolver].
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve(ctx, "config"), "/path/to/config")
//
// Flag names with hyphens (e.g., "log-level") should use underscores in the
// config file (e.g., "log_level"); both forms are tried on lookup.
// Command-line flags override config file values.
func resolve(_ context.Context, _ string) func(r io.Reader) (kong.Resolver, error) {
	return func(r io.Reader) (kong.Resolver, error) {
		body, err := io.ReadAll(r)
		if err != nil {
			// Missing or unreadable config file - return empty config.
			return config{}, nil //nolint:nilerr
		}

		var decoded map[string]any

		if err := yaml.Unmarshal(body, &decoded); err != nil {
			// Malformed config - return empty config rather than fail Run.
			return config{}, nil //nolint:nilerr
		}

		if decoded == nil {
			decoded = map[string]any{}
		}

		return config(decoded), nil
	}
}

// config implements [kong.Resolver] over a flat map decoded from YAML.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	name := flag.Name
	underscoreName := strings.ReplaceAll(name, "-", "_")

	if value, ok := r[name]; ok {
		return value, nil
	}

	if value, ok := r[underscoreName]; ok {
		return value, nil
	}

	return nil, nil
}
