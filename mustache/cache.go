package mustache

import (
	"hash/maphash"
	"sync"
)

// lexCache memoizes lexed token sequences keyed by a content hash of
// (source, delimiters), exactly as the reference module's namespace cache
// keys on a content hash, but using [hash/maphash] rather than the
// reference's xxh3/readahead pair. See DESIGN.md for why those two are not
// carried forward: they're imported by the reference module's own cache
// code but never declared in its go.mod.
//
//nolint:gochecknoglobals
var (
	lexCacheSeed = maphash.MakeSeed()
	lexCache     sync.Map
)

type lexEntry struct {
	once   sync.Once
	tokens []Token
	err    error
}

func cacheKey(source string, delim Delimiters) uint64 {
	var h maphash.Hash

	h.SetSeed(lexCacheSeed)
	h.WriteString(delim.Open)
	h.WriteByte(0)
	h.WriteString(delim.Close)
	h.WriteByte(0)
	h.WriteString(source)

	return h.Sum64()
}

// lexCached lexes source under delim, returning a cached result if this
// exact (source, delimiters) pair has been lexed before in this process.
func lexCached(source string, delim Delimiters) ([]Token, error) {
	key := cacheKey(source, delim)

	v, _ := lexCache.LoadOrStore(key, &lexEntry{})

	entry, ok := v.(*lexEntry)
	if !ok {
		return nil, NewError("cache: unexpected entry type")
	}

	entry.once.Do(func() {
		entry.tokens, entry.err = Lex(source, delim)
	})

	if entry.err != nil {
		return nil, entry.err
	}

	return entry.tokens, nil
}

// ClearCache removes all cached lexed token sequences. Primarily useful for
// tests that assert on cache population, or for reclaiming memory after
// rendering many one-off templates.
func ClearCache() {
	lexCache = sync.Map{}
}

func cloneTokens(toks []Token) []Token {
	out := make([]Token, len(toks))
	copy(out, toks)

	return out
}
