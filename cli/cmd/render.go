package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/dholmin/odin-mustache/mustache"
)

// Render renders a template against a data file.
type Render struct {
	Template string `arg:"" help:"Template file or '-' for stdin"                name:"template"`
	Data     string `arg:"" default:"-" help:"YAML or JSON data file, or '-' for stdin" name:"data"`
}

// Run executes the render command.
func (r *Render) Run(ctx context.Context) error {
	body, err := readFileOrStdin(r.Template)
	if err != nil {
		return ErrReadData.With(slog.String("file", r.Template)).Wrap(err)
	}

	var data any

	if r.Data != "" {
		raw, err := readFileOrStdin(r.Data)
		if err != nil {
			return ErrReadData.With(slog.String("file", r.Data)).Wrap(err)
		}

		if err := yaml.Unmarshal(raw, &data); err != nil {
			return ErrDecodeData.With(slog.String("file", r.Data)).Wrap(err)
		}
	}

	partials, err := LoadPartials(PartialsPathFrom(ctx))
	if err != nil {
		return ErrReadData.With(slog.String("stage", "partials")).Wrap(err)
	}

	out, err := mustache.Render(ctx, string(body), data, partials)
	if err != nil {
		return ErrRenderFailed.
			With(slog.String("template", r.Template)).
			Wrap(err)
	}

	fmt.Print(out)

	return nil
}

func readFileOrStdin(path string) ([]byte, error) {
	if path == "-" || path == "" {
		return io.ReadAll(os.Stdin)
	}

	return os.ReadFile(path)
}
