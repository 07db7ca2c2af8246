package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/dholmin/odin-mustache/log"
)

const (
	starterTemplate = `Hello, {{name}}!
{{#items}}
  - {{.}}
{{/items}}
`
	starterData = `name: World
items:
  - one
  - two
`
)

// Init scaffolds a starter template and data file in the current directory.
type Init struct {
	Force    bool   `help:"Overwrite existing files"          short:"f"`
	Template string `default:"example.mustache" help:"Template file to create"`
	Data     string `default:"example.yaml"     help:"Data file to create"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) error {
	if err := writeStarterFile(i.Template, starterTemplate, i.Force); err != nil {
		return err
	}

	if err := writeStarterFile(i.Data, starterData, i.Force); err != nil {
		return err
	}

	log.DebugContext(ctx, "initialized starter files",
		slog.String("template", i.Template),
		slog.String("data", i.Data),
	)

	return nil
}

func writeStarterFile(path, body string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return ErrWriteConfig.
				With(slog.String("file", path)).
				Wrap(ErrFileExists)
		}
	}

	return os.WriteFile(path, []byte(body), 0o644) //nolint:gosec
}
