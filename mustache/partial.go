package mustache

import (
	"context"
	"log/slog"
)

// inlinePartial lexes the named partial under the delimiters currently
// active in the host stream, splices its tokens in after the Partial
// token, and propagates the host's indentation when the Partial token is
// itself standalone.
func (it *interpreter) inlinePartial(ctx context.Context) error {
	idx := it.cursor
	name := it.tokens[idx].Value

	body, ok := it.partials[name]
	if !ok {
		it.logger.DebugContext(ctx, "partial not found",
			slog.Any("error", ErrPartialNotFound.With(slog.String("name", name))))
		it.cursor++

		return nil
	}

	toks, err := lexCached(body, it.delim)
	if err != nil {
		return err
	}

	toks = cloneTokens(toks)
	analyzeWhitespace(toks)

	if indent := it.standaloneIndent(idx); indent != "" {
		toks = reindent(toks, indent)
	}

	if n := len(toks); n > 0 && toks[n-1].Kind == EOF {
		toks = toks[:n-1]
	}

	// A delimiter change inside the partial ends with the partial: restore
	// the host's delimiters for any partial reached later in the host.
	for _, t := range toks {
		if t.Kind == SetDelim {
			toks = append(toks, Token{Kind: SetDelim, Value: it.delim.Open + " " + it.delim.Close})

			break
		}
	}

	merged := make([]Token, 0, len(it.tokens)+len(toks))
	merged = append(merged, it.tokens[:idx+1]...)
	merged = append(merged, toks...)
	merged = append(merged, it.tokens[idx+1:]...)
	it.tokens = merged

	// The Partial token is spent: a list-section replay walks the spliced
	// tokens again instead of splicing a second copy.
	it.tokens[idx].Kind = Skip
	it.cursor++

	return nil
}

// standaloneIndent returns the blank-text run preceding the Partial token
// on its own line, iff that line is standalone with the Partial itself
// counted as the line's one structural tag. Returns "" otherwise.
//
// The line's bounds are found by walking to the nearest Newline on either
// side rather than by comparing Token.Line, since after earlier splices
// it.tokens mixes line numbers from multiple independently-lexed sources:
// two tokens with an equal Line can belong to unrelated templates.
func (it *interpreter) standaloneIndent(idx int) string {
	// A Newline elided by the whitespace analyzer is a Skip that keeps its
	// "\n" value; it still ends a line.
	isBreak := func(t Token) bool {
		return t.Kind == Newline || (t.Kind == Skip && t.Value == "\n")
	}

	lineStart := idx
	for lineStart > 0 && !isBreak(it.tokens[lineStart-1]) {
		lineStart--
	}

	lineEnd := idx
	for lineEnd < len(it.tokens)-1 && !isBreak(it.tokens[lineEnd]) {
		lineEnd++
	}

	allBlank := true
	hasInterp := false
	structuralCount := 0
	precedingBlank := ""

	for i := lineStart; i <= lineEnd; i++ {
		t := it.tokens[i]
		if t.Kind == Newline || t.Kind == EOF {
			continue
		}

		if t.Kind == Text && !t.blankText() {
			allBlank = false
		}

		if t.interpolation() {
			hasInterp = true
		}

		if t.Kind == Partial || t.structural() {
			structuralCount++
		}

		if i < idx && t.Kind == Text && t.blankText() {
			precedingBlank = t.Value
		}
	}

	if allBlank && !hasInterp && structuralCount == 1 {
		return precedingBlank
	}

	return ""
}

// reindent inserts a copy of indent at the start of every line inside toks
// except the first.
func reindent(toks []Token, indent string) []Token {
	out := make([]Token, 0, len(toks)+8)
	atLineStart := false

	for _, t := range toks {
		if atLineStart && t.Kind != EOF {
			out = append(out, Token{
				Kind: Text, Value: indent,
				Line: t.Line, StartCol: 1, EndCol: 1 + len(indent),
			})
			atLineStart = false
		}

		out = append(out, t)

		if t.Kind == Newline {
			atLineStart = true
		}
	}

	return out
}
