package cli

import (
	"os"
	"strings"

	"github.com/ardnew/mung"
)

// partialsPathEnv names the environment variable holding a PATH-like,
// OS-delimited list of directories to search for {{>partial}} templates.
const partialsPathEnv = "ODIN_MUSTACHE_PARTIALS_PATH"

// partialsSearchPath combines directories given via --partials with
// partialsPathEnv into one ordered, deduplicated search path. Flag-supplied
// directories take precedence, mirroring the reference module's own
// PATH-like prefixing via mung.
func partialsSearchPath(flagDirs []string) []string {
	combined := mung.Make(
		mung.WithSubjectItems(splitPathList(os.Getenv(partialsPathEnv))...),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(flagDirs...),
	)

	return splitPathList(combined.String())
}

// splitPathList splits s on the OS path-list separator, dropping empty
// segments (a lone separator, or an unset variable, yields none).
func splitPathList(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, string(os.PathListSeparator))
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}

	return out
}
