package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func TestResolveDecodesYAMLIntoConfig(t *testing.T) {
	loader := resolve(context.Background(), "config")

	r, err := loader(strings.NewReader("log_level: debug\npartials:\n  - ./partials\n"))
	if err != nil {
		t.Fatalf("loader() unexpected error = %v", err)
	}

	cfg, ok := r.(config)
	if !ok {
		t.Fatalf("loader() returned %T, want config", r)
	}

	if cfg["log_level"] != "debug" {
		t.Errorf(`cfg["log_level"] = %v, want "debug"`, cfg["log_level"])
	}
}

func TestResolveMalformedYAMLReturnsEmptyConfig(t *testing.T) {
	loader := resolve(context.Background(), "config")

	r, err := loader(strings.NewReader("{not: valid: yaml"))
	if err != nil {
		t.Fatalf("loader() unexpected error = %v", err)
	}

	cfg, ok := r.(config)
	if !ok {
		t.Fatalf("loader() returned %T, want config", r)
	}

	if len(cfg) != 0 {
		t.Errorf("expected empty config for malformed YAML, got %v", cfg)
	}
}

func TestConfigResolveChecksUnderscoreAndHyphenNames(t *testing.T) {
	cfg := config{"log_level": "warn"}

	flag := &kong.Flag{Value: &kong.Value{Name: "log-level"}}

	value, err := cfg.Resolve(nil, nil, flag)
	if err != nil {
		t.Fatalf("Resolve() unexpected error = %v", err)
	}

	if value != "warn" {
		t.Errorf("Resolve() = %v, want %q", value, "warn")
	}
}

func TestConfigResolveReturnsNilForUnknownFlag(t *testing.T) {
	cfg := config{"log_level": "warn"}

	flag := &kong.Flag{Value: &kong.Value{Name: "unknown-flag"}}

	value, err := cfg.Resolve(nil, nil, flag)
	if err != nil {
		t.Fatalf("Resolve() unexpected error = %v", err)
	}

	if value != nil {
		t.Errorf("Resolve() = %v, want nil", value)
	}
}

func TestConfigValidateAlwaysSucceeds(t *testing.T) {
	if err := (config{}).Validate(nil); err != nil {
		t.Errorf("Validate() unexpected error = %v", err)
	}
}
