// Package mustache implements a Mustache template renderer.
//
// # Overview
//
// Rendering runs a single template through a short pipeline: the lexer
// (lexer.go) turns source text into a flat token stream, the whitespace
// analyzer (whitespace.go) marks standalone structural lines for elision,
// and the interpreter (interpreter.go) walks the stream against a stack of
// data contexts, expanding list sections in place and inlining partials as
// it goes.
//
// # Basic usage
//
//	out, err := mustache.Render(ctx, "Hello, {{name}}!", map[string]any{"name": "World"}, nil)
//
// A [Template] pre-lexes and caches its token stream so the same source can
// be rendered against many data values without re-lexing:
//
//	t, err := mustache.New("{{#items}}{{.}}\n{{/items}}")
//	out, err := t.Render(ctx, map[string]any{"items": []string{"a", "b"}}, nil)
//
// # Data access
//
// Values are classified and read through an [Accessor]. The default
// accessor (access.go) uses [reflect] and accepts maps, structs, slices,
// arrays, and scalars; an alternative accessor can be supplied with
// [WithAccessor] to bypass reflection entirely.
//
// # Errors
//
// Unbalanced tags are reported as an error, wrapped in a [LexError] with
// source position. Rendering also fails when the interpreter reaches a
// section open with no matching close ([ErrUnbalancedTags], without a
// position), when sections nest deeper than the depth guard
// ([ErrMaxDepthExceeded]), or when ctx is done; a stray section close is
// ignored. Every other anomaly (missing names, missing partials, type
// mismatches) degrades to empty output for the affected tag or section.
package mustache
