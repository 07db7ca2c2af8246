package repl

import (
	"strings"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"
)

// isWordBoundary reports whether r delimits a completable word. Dots are
// excluded so a dotted key ("user.name") completes as one candidate.
func isWordBoundary(r rune) bool {
	switch r {
	case ' ', '\t', '=':
		return true
	default:
		return false
	}
}

// wordBounds returns the word at cursor and its byte boundaries within
// input, walking outward from the cursor until it meets a word boundary.
func wordBounds(input string, cursor int) (word string, start, end int) {
	if cursor > len(input) {
		cursor = len(input)
	}

	start = cursor
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	end = cursor
	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if isWordBoundary(r) {
			break
		}

		end += size
	}

	return input[start:end], start, end
}

// matchCandidates fuzzy-matches word against candidates, ranked best-first.
func matchCandidates(word string, candidates []string) fuzzy.Matches {
	if word == "" {
		matches := make(fuzzy.Matches, len(candidates))
		for i, c := range candidates {
			matches[i] = fuzzy.Match{Str: c, Index: i}
		}

		return matches
	}

	return fuzzy.Find(word, candidates)
}

// dataKeyCandidates returns the top-level keys of data plus every known
// partial name (prefixed with ">"), used as the Tab-completion source.
func dataKeyCandidates(data map[string]any, partials map[string]string) []string {
	names := make([]string, 0, len(data)+len(partials))

	for k := range data {
		names = append(names, k)
	}

	for name := range partials {
		names = append(names, ">"+name)
	}

	return names
}

// splitAssignment splits "key=value" into its two parts. ok is false when
// line contains no '='.
func splitAssignment(line string) (key, value string, ok bool) {
	idx := strings.IndexByte(line, '=')
	if idx < 0 {
		return "", "", false
	}

	return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+1:]), true
}
