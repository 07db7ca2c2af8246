package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

type partialsPathKey struct{}

// WithPartialsPath returns a new context.Context carrying the ordered list
// of directories to search for {{>name}} partial templates.
func WithPartialsPath(ctx context.Context, dirs []string) context.Context {
	return context.WithValue(ctx, partialsPathKey{}, dirs)
}

// PartialsPathFrom retrieves the partials search path stored by
// [WithPartialsPath]. Returns nil if none was stored.
func PartialsPathFrom(ctx context.Context) []string {
	dirs, _ := ctx.Value(partialsPathKey{}).([]string)

	return dirs
}

// LoadPartials resolves every *.mustache file reachable under the partials
// search path into a name -> body map, keyed by file name with its
// extension stripped. Directories earlier in the list take precedence when
// the same name appears in more than one.
func LoadPartials(dirs []string) (map[string]string, error) {
	partials := make(map[string]string)

	for i := len(dirs) - 1; i >= 0; i-- {
		entries, err := os.ReadDir(dirs[i])
		if err != nil {
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != ".mustache" {
				continue
			}

			body, err := os.ReadFile(filepath.Join(dirs[i], entry.Name()))
			if err != nil {
				return nil, err
			}

			name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
			partials[name] = string(body)
		}
	}

	return partials, nil
}
