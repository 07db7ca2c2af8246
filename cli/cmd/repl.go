package cmd

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/dholmin/odin-mustache/cli/cmd/repl"
	"github.com/dholmin/odin-mustache/mustache"
)

// Repl starts a live-preview REPL for the given template.
type Repl struct {
	Template string `arg:"" help:"Template file"   name:"template"`
	History  string `help:"History file path" name:"history"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) error {
	body, err := readFileOrStdin(r.Template)
	if err != nil {
		return ErrReadData.With(slog.String("file", r.Template)).Wrap(err)
	}

	tmpl, err := mustache.New(string(body))
	if err != nil {
		return ErrRenderFailed.With(slog.String("stage", "parse")).Wrap(err)
	}

	partials, err := LoadPartials(PartialsPathFrom(ctx))
	if err != nil {
		return ErrReadData.With(slog.String("stage", "partials")).Wrap(err)
	}

	historyPath := r.History
	if historyPath == "" {
		historyPath = filepath.Join(".", repl.BaseHistory)
	}

	m := repl.New(func() context.Context { return ctx }, tmpl, partials, nil, historyPath)

	return repl.Run(m)
}
