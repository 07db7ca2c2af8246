package mustache

import (
	"bytes"
	"log/slog"
	"strings"
)

// lexer turns template source into a flat Token stream. It mirrors the
// reference module's cursor-based parser: pos/line/col track position,
// advanceSigil/peekString move and inspect the cursor, and flushText closes
// out pending literal runs before emitting a structural token.
type lexer struct {
	input []byte
	pos   int
	line  int
	col   int
	delim Delimiters

	tokens []Token

	textStart int
	textLine  int
	textCol   int
}

// Lex scans source into an ordered Token sequence using the given starting
// Delimiters. A {{=...=}} tag retargets the lexer's own delimiter table for
// the remainder of the scan; the returned tokens reflect whichever table
// was active when each was produced.
func Lex(source string, delim Delimiters) ([]Token, error) {
	l := &lexer{
		input: []byte(source),
		line:  1,
		col:   1,
		delim: delim,
	}
	l.textLine, l.textCol = 1, 1

	return l.run(source)
}

func (l *lexer) eof() bool { return l.pos >= len(l.input) }

func (l *lexer) peekString(s string) bool {
	end := l.pos + len(s)

	return end <= len(l.input) && string(l.input[l.pos:end]) == s
}

// advanceSigil advances the cursor n bytes, tracking line/column. Used only
// for sigils and tag bodies, both of which are scanned byte-wise since the
// mustache grammar itself is ASCII even though tag names may not be.
func (l *lexer) advanceSigil(n int) {
	for range n {
		if l.eof() {
			return
		}

		if l.input[l.pos] == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}

		l.pos++
	}
}

func (l *lexer) flushText() {
	if l.pos > l.textStart {
		l.tokens = append(l.tokens, Token{
			Kind:     Text,
			Value:    string(l.input[l.textStart:l.pos]),
			Line:     l.textLine,
			StartCol: l.textCol,
			EndCol:   l.col,
		})
	}

	l.textStart = l.pos
	l.textLine = l.line
	l.textCol = l.col
}

func (l *lexer) run(source string) ([]Token, error) {
	for !l.eof() {
		switch {
		case l.input[l.pos] == '\n':
			l.flushText()

			startLine, startCol := l.line, l.col
			l.advanceSigil(1)

			l.tokens = append(l.tokens, Token{
				Kind: Newline, Value: "\n",
				Line: startLine, StartCol: startCol, EndCol: startCol + 1,
			})

			l.textStart, l.textLine, l.textCol = l.pos, l.line, l.col

		case l.peekString(TripleOpen):
			if err := l.lexTag(TripleOpen, TripleClose, TagLiteralTriple, source); err != nil {
				return nil, err
			}

		case l.peekString(l.delim.sigil('#')):
			if err := l.lexTag(l.delim.sigil('#'), l.delim.close(), SectionOpen, source); err != nil {
				return nil, err
			}

		case l.peekString(l.delim.sigil('/')):
			if err := l.lexTag(l.delim.sigil('/'), l.delim.close(), SectionClose, source); err != nil {
				return nil, err
			}

		case l.peekString(l.delim.sigil('^')):
			if err := l.lexTag(l.delim.sigil('^'), l.delim.close(), SectionOpenInverted, source); err != nil {
				return nil, err
			}

		case l.peekString(l.delim.sigil('!')):
			if err := l.lexTag(l.delim.sigil('!'), l.delim.close(), Comment, source); err != nil {
				return nil, err
			}

		case l.peekString(l.delim.sigil('>')):
			if err := l.lexTag(l.delim.sigil('>'), l.delim.close(), Partial, source); err != nil {
				return nil, err
			}

		case l.peekString(l.delim.sigil('&')):
			if err := l.lexTag(l.delim.sigil('&'), l.delim.close(), TagLiteral, source); err != nil {
				return nil, err
			}

		case l.peekString(l.delim.sigil('=')):
			if err := l.lexSetDelim(source); err != nil {
				return nil, err
			}

		case l.peekString(l.delim.open()):
			if err := l.lexTag(l.delim.open(), l.delim.close(), Tag, source); err != nil {
				return nil, err
			}

		default:
			l.advanceSigil(1)
		}
	}

	l.flushText()
	l.tokens = append(l.tokens, Token{Kind: EOF, Line: l.line, StartCol: l.col, EndCol: l.col})

	return l.tokens, nil
}

// lexTag scans one tag of the form openSig ... closeSig, stripping internal
// whitespace from its value so "{{ name }}" and "{{name}}" resolve to the
// same lookup key.
func (l *lexer) lexTag(openSig, closeSig string, kind Kind, source string) error {
	startLine, startCol := l.line, l.col

	l.flushText()
	l.advanceSigil(len(openSig))

	idx := bytes.Index(l.input[l.pos:], []byte(closeSig))
	if idx < 0 {
		return l.unbalanced(startLine, startCol, source)
	}

	content := string(l.input[l.pos : l.pos+idx])
	l.advanceSigil(idx)
	l.advanceSigil(len(closeSig))

	l.tokens = append(l.tokens, Token{
		Kind:     kind,
		Value:    strings.Join(strings.Fields(content), ""),
		Line:     startLine,
		StartCol: startCol,
		EndCol:   l.col,
	})

	l.textStart, l.textLine, l.textCol = l.pos, l.line, l.col

	return nil
}

// lexSetDelim scans "{{=NEWOPEN NEWCLOSE=}}" and retargets l.delim for the
// remainder of the scan.
func (l *lexer) lexSetDelim(source string) error {
	startLine, startCol := l.line, l.col

	l.flushText()

	openSig := l.delim.sigil('=')
	closeSig := "=" + l.delim.close()

	l.advanceSigil(len(openSig))

	idx := bytes.Index(l.input[l.pos:], []byte(closeSig))
	if idx < 0 {
		return l.unbalanced(startLine, startCol, source)
	}

	content := strings.TrimSpace(string(l.input[l.pos : l.pos+idx]))
	l.advanceSigil(idx)
	l.advanceSigil(len(closeSig))

	fields := strings.Fields(content)
	if len(fields) != 2 {
		pos := Position{Line: startLine, Column: startCol}

		return NewLexError(
			ErrUnbalancedTags.With(slog.String("reason", "malformed set-delimiter tag")).WithPosition(pos),
			source,
			pos,
		)
	}

	l.tokens = append(l.tokens, Token{
		Kind:     SetDelim,
		Value:    fields[0] + " " + fields[1],
		Line:     startLine,
		StartCol: startCol,
		EndCol:   l.col,
	})

	l.delim = Delimiters{Open: fields[0], Close: fields[1]}
	l.textStart, l.textLine, l.textCol = l.pos, l.line, l.col

	return nil
}

func (l *lexer) unbalanced(line, col int, source string) error {
	pos := Position{Line: line, Column: col}

	return NewLexError(ErrUnbalancedTags.WithPosition(pos), source, pos)
}
