// Package cli contains the command line interface for odin-mustache.
//
// # Usage
//
// The CLI provides logging and profiling configuration alongside its
// subcommands:
//
//	odin-mustache --log-level=debug render template.mustache data.yaml
//
// # Subcommands
//
//   - render: render a template against a YAML or JSON data file
//   - fmt: re-lex a template and print it back with normalized tag spacing
//   - repl: a live-preview REPL for editing data and watching the
//     rendered output change
//   - init: scaffold a starter template and data file in the current
//     directory
//
// # Partials Search Path
//
// The --partials/-I flag and the ODIN_MUSTACHE_PARTIALS_PATH environment
// variable (colon-delimited on Unix, semicolon-delimited on Windows) are
// combined into one ordered search path for {{>partial}} templates, with
// flag-supplied directories taking precedence over the environment
// variable.
//
// # Configuration Loader
//
// The package includes a Kong configuration loader ([resolve]) that reads
// a YAML config file via [github.com/goccy/go-yaml] and converts its
// top-level keys to Kong flag values. Flag names with hyphens (e.g.
// "log-level") should use underscores in the config file (e.g. "log_level").
// Command-line flags override config file values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o odin-mustache .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/odin-mustache/pprof)
//
// # Examples
//
//	# Render a template against a data file
//	odin-mustache render template.mustache data.yaml
//
//	# Debug logging with CPU profiling
//	odin-mustache --log-level=debug --pprof-mode=cpu render template.mustache data.yaml
package cli
