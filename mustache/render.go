package mustache

import (
	"context"
	"log/slog"

	"github.com/dholmin/odin-mustache/log"
)

// DefaultMaxDepth bounds section nesting depth absent an explicit
// [WithMaxDepth] option. Mustache data has no native cycle detection, so
// this guard is the only defense against runaway recursive section data.
const DefaultMaxDepth = 100

// config holds the resolved option values for a Template, following the
// reference module's functional-options-over-a-config-struct shape.
type config struct {
	accessor Accessor
	logger   log.Logger
	maxDepth int
}

func defaultConfig() config {
	return config{
		accessor: DefaultAccessor,
		logger:   log.Default(),
		maxDepth: DefaultMaxDepth,
	}
}

// Option configures a Template.
type Option func(config) config

func applyOptions(c config, opts ...Option) config {
	for _, opt := range opts {
		c = opt(c)
	}

	return c
}

// WithAccessor overrides the data-access collaborator used to read caller
// data, bypassing reflection entirely if the supplied Accessor does.
func WithAccessor(a Accessor) Option {
	return func(c config) config {
		if a != nil {
			c.accessor = a
		}

		return c
	}
}

// WithLogger routes renderer diagnostics (missing partials) to l instead of
// the package-level default logger. Resolution misses are not logged.
func WithLogger(l log.Logger) Option {
	return func(c config) config {
		c.logger = l

		return c
	}
}

// WithMaxDepth overrides the section-nesting depth guard.
func WithMaxDepth(n int) Option {
	return func(c config) config {
		if n > 0 {
			c.maxDepth = n
		}

		return c
	}
}

// Template is a pre-lexed Mustache template. Lexing happens once in [New];
// [Template.Render] may be called repeatedly against different data without
// re-lexing, since the cached token stream is cloned per render before the
// whitespace analyzer or partial inliner mutate it.
type Template struct {
	source string
	tokens []Token
	cfg    config
}

// New lexes source and returns a reusable Template. The lexed token stream
// is cached process-wide (cache.go) keyed on source and delimiters, so
// constructing many Templates from the same source string is cheap.
func New(source string, opts ...Option) (*Template, error) {
	cfg := applyOptions(defaultConfig(), opts...)

	tokens, err := lexCached(source, DefaultDelimiters)
	if err != nil {
		return nil, err
	}

	return &Template{source: source, tokens: tokens, cfg: cfg}, nil
}

// Render renders the template against data, inlining any partial named in
// partials. It fails on a partial that does not lex, a section open with no
// matching close ([ErrUnbalancedTags]), sections nested deeper than the
// depth guard ([ErrMaxDepthExceeded]), a done ctx, or a zero-value
// Template ([ErrInvalidAccessor]); everything else (missing names, missing
// partials, type mismatches) degrades to empty output for the affected
// tag or section.
func (t *Template) Render(
	ctx context.Context,
	data any,
	partials map[string]string,
) (string, error) {
	if t.cfg.accessor == nil {
		return "", ErrInvalidAccessor.With(slog.String("reason", "zero-value Template; use New or Render"))
	}

	tokens := cloneTokens(t.tokens)
	analyzeWhitespace(tokens)

	it := &interpreter{
		tokens:   tokens,
		stack:    newContextStack(data),
		accessor: t.cfg.accessor,
		logger:   t.cfg.logger,
		partials: partials,
		maxDepth: t.cfg.maxDepth,
		delim:    DefaultDelimiters,
	}

	return it.run(ctx)
}

// Render lexes template and renders it against data in one call. Prefer
// [New] plus [Template.Render] when the same template will be rendered
// more than once.
func Render(
	ctx context.Context,
	template string,
	data any,
	partials map[string]string,
	opts ...Option,
) (string, error) {
	t, err := New(template, opts...)
	if err != nil {
		return "", err
	}

	return t.Render(ctx, data, partials)
}
