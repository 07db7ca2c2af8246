package mustache

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dholmin/odin-mustache/log"
)

var falseyStrings = map[string]bool{"": true, "false": true, "null": true} //nolint:gochecknoglobals

func isFalseyString(s string) bool { return falseyStrings[s] }

// isTruthyValue classifies a bare data value for section-gating purposes,
// independent of any ContextFrame wrapping it.
func isTruthyValue(v any, acc Accessor) bool {
	switch acc.TypeOf(v) {
	case KindNil:
		return false
	case KindMap, KindStruct, KindList:
		return acc.LengthOf(v) > 0
	default:
		return !isFalseyString(acc.ToString(v))
	}
}

// isTruthyFrame reports whether the frame gates emission: the ROOT frame
// always does, every other frame defers to isTruthyValue.
func isTruthyFrame(f ContextFrame, acc Accessor) bool {
	if f.Label == "ROOT" {
		return true
	}

	return isTruthyValue(f.Data, acc)
}

// htmlEscape substitutes exactly &, <, >, and " (not ' or /), in that
// order, so & is handled before the entities it introduces are themselves
// escaped.
func htmlEscape(s string) string {
	if !strings.ContainsAny(s, `&<>"`) {
		return s
	}

	var b strings.Builder

	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// interpreter walks a Template's token stream against a context stack,
// expanding list sections in place and inlining partials as it encounters
// them. It never recurses into the token stream: section replay rewinds
// the cursor instead, so stack depth tracks only genuine section nesting,
// guarded by maxDepth.
type interpreter struct {
	tokens   []Token
	cursor   int
	stack    *contextStack
	accessor Accessor
	logger   log.Logger
	partials map[string]string
	maxDepth int
	depth    int
	delim    Delimiters
}

func (it *interpreter) run(ctx context.Context) (string, error) {
	var out strings.Builder

	for it.cursor < len(it.tokens) {
		if err := ctx.Err(); err != nil {
			return out.String(), WrapError(err)
		}

		tok := it.tokens[it.cursor]

		switch tok.Kind {
		case EOF, Skip, Comment:
			it.cursor++

		case SetDelim:
			if parts := strings.Fields(tok.Value); len(parts) == 2 {
				it.delim = Delimiters{Open: parts[0], Close: parts[1]}
			}

			it.cursor++

		case Text, Newline:
			if isTruthyFrame(it.stack.top(), it.accessor) {
				out.WriteString(tok.Value)
			}

			it.cursor++

		case Tag:
			if isTruthyFrame(it.stack.top(), it.accessor) {
				v := it.stack.resolve(tok.Value, it.accessor)
				out.WriteString(htmlEscape(it.accessor.ToString(v)))
			}

			it.cursor++

		case TagLiteral, TagLiteralTriple:
			if isTruthyFrame(it.stack.top(), it.accessor) {
				v := it.stack.resolve(tok.Value, it.accessor)
				out.WriteString(it.accessor.ToString(v))
			}

			it.cursor++

		case SectionOpen, SectionOpenInverted:
			if err := it.openSection(); err != nil {
				return out.String(), err
			}

		case SectionClose:
			it.closeSection()

		case Partial:
			if err := it.inlinePartial(ctx); err != nil {
				return out.String(), err
			}

		default:
			it.cursor++
		}
	}

	return out.String(), nil
}

// matchingClose finds the SectionClose that terminates the section opened
// at openIdx, skipping over any nested section that reuses the same name.
func (it *interpreter) matchingClose(openIdx int) int {
	name := it.tokens[openIdx].Value
	nested := 0

	for i := openIdx + 1; i < len(it.tokens); i++ {
		t := it.tokens[i]

		switch {
		case (t.Kind == SectionOpen || t.Kind == SectionOpenInverted) && t.Value == name:
			nested++
		case t.Kind == SectionClose && t.Value == name:
			if nested == 0 {
				return i
			}

			nested--
		}
	}

	return -1
}

func (it *interpreter) openSection() error {
	tok := it.tokens[it.cursor]
	name := tok.Value
	inverted := tok.Kind == SectionOpenInverted

	closeIdx := it.matchingClose(it.cursor)
	if closeIdx < 0 {
		return ErrUnbalancedTags.With(slog.String("name", name))
	}

	it.depth++
	if it.depth > it.maxDepth {
		return ErrMaxDepthExceeded.With(slog.String("name", name), slog.Int("depth", it.depth))
	}

	val := it.stack.resolve(name, it.accessor)

	if inverted {
		falsey := !isTruthyValue(val, it.accessor)
		it.stack.push(ContextFrame{Data: boolString(falsey), Label: name})

		if falsey {
			it.cursor++
		} else {
			it.cursor = closeIdx
		}

		return nil
	}

	switch it.accessor.TypeOf(val) {
	case KindList:
		it.openListSection(val, name, closeIdx)
	case KindNil:
		it.stack.push(ContextFrame{Data: nil, Label: name})
		it.cursor = closeIdx
	default:
		it.stack.push(ContextFrame{Data: val, Label: name})

		if isTruthyValue(val, it.accessor) {
			it.cursor++
		} else {
			it.cursor = closeIdx
		}
	}

	return nil
}

// openListSection implements the non-recursive list-iteration mechanism:
// the closing token's Iters/ReplayTo fields drive replay, and the n element
// frames are pre-staged on the stack in reverse order so the first
// iteration's SectionClose pops the element-0 frame.
func (it *interpreter) openListSection(val any, name string, closeIdx int) {
	n := it.accessor.LengthOf(val)

	if n == 0 {
		it.stack.push(ContextFrame{Data: nil, Label: name})
		it.cursor = closeIdx

		return
	}

	it.tokens[closeIdx].Iters = n - 1
	it.tokens[closeIdx].ReplayTo = it.cursor

	for i := n - 1; i >= 0; i-- {
		it.stack.push(ContextFrame{Data: it.accessor.IndexAt(val, i), Label: name})
	}

	it.cursor++
}

func (it *interpreter) closeSection() {
	tok := &it.tokens[it.cursor]

	it.stack.pop()

	if tok.Iters > 0 {
		tok.Iters--
		it.cursor = tok.ReplayTo + 1

		return
	}

	it.depth--
	it.cursor++
}

func boolString(v bool) string {
	if v {
		return "true"
	}

	return "false"
}
