package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dholmin/odin-mustache/mustache"
)

// Fmt re-lexes a template and prints it back with tag-internal whitespace
// normalized ("{{ name }}" becomes "{{name}}"), leaving everything else —
// literal text, line breaks, standalone-line layout — untouched.
type Fmt struct {
	Source string `arg:"" default:"-" help:"Template file or '-' for stdin" name:"source"`
}

// Run executes the fmt command.
func (f *Fmt) Run(_ context.Context) error {
	body, err := readFileOrStdin(f.Source)
	if err != nil {
		return ErrReadData.With(slog.String("file", f.Source)).Wrap(err)
	}

	tokens, err := mustache.Lex(string(body), mustache.DefaultDelimiters)
	if err != nil {
		return ErrRenderFailed.With(slog.String("stage", "lex")).Wrap(err)
	}

	var out strings.Builder

	for _, tok := range tokens {
		writeToken(&out, tok)
	}

	fmt.Print(out.String())

	return nil
}

func writeToken(out *strings.Builder, tok mustache.Token) {
	switch tok.Kind {
	case mustache.Text, mustache.Newline:
		out.WriteString(tok.Value)
	case mustache.Tag:
		fmt.Fprintf(out, "{{%s}}", tok.Value)
	case mustache.TagLiteral:
		fmt.Fprintf(out, "{{&%s}}", tok.Value)
	case mustache.TagLiteralTriple:
		fmt.Fprintf(out, "{{{%s}}}", tok.Value)
	case mustache.SectionOpen:
		fmt.Fprintf(out, "{{#%s}}", tok.Value)
	case mustache.SectionOpenInverted:
		fmt.Fprintf(out, "{{^%s}}", tok.Value)
	case mustache.SectionClose:
		fmt.Fprintf(out, "{{/%s}}", tok.Value)
	case mustache.Partial:
		fmt.Fprintf(out, "{{>%s}}", tok.Value)
	case mustache.Comment:
		fmt.Fprintf(out, "{{! %s }}", tok.Value)
	case mustache.SetDelim:
		fmt.Fprintf(out, "{{=%s=}}", tok.Value)
	}
}
