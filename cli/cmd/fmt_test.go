package cmd

import (
	"context"
	"testing"
)

func TestFmtRunNormalizesTagWhitespace(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "strips internal spacing from a value tag",
			source: "{{ name }}",
			want:   "{{name}}",
		},
		{
			name:   "strips internal spacing from a section pair",
			source: "{{# items }}x{{/ items }}",
			want:   "{{#items}}x{{/items}}",
		},
		{
			name:   "strips internal spacing from a partial tag",
			source: "{{> header }}",
			want:   "{{>header}}",
		},
		{
			name:   "literal text passes through unchanged",
			source: "plain text, no tags\n",
			want:   "plain text, no tags\n",
		},
		{
			name:   "triple mustache literal tag",
			source: "{{{ raw }}}",
			want:   "{{{raw}}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sourcePath := writeTempFile(t, "fmt-*.mustache", tt.source)
			f := &Fmt{Source: sourcePath}

			output := captureStdout(t, func() {
				if err := f.Run(context.Background()); err != nil {
					t.Fatalf("Fmt.Run() unexpected error = %v", err)
				}
			})

			if output != tt.want {
				t.Errorf("output = %q, want %q", output, tt.want)
			}
		})
	}
}

func TestFmtRunUnclosedTagReturnsError(t *testing.T) {
	sourcePath := writeTempFile(t, "fmt-*.mustache", "{{name")
	f := &Fmt{Source: sourcePath}

	if err := f.Run(context.Background()); err == nil {
		t.Fatal("expected error for unclosed tag, got nil")
	}
}

func TestFmtRunMissingSourceFileReturnsError(t *testing.T) {
	f := &Fmt{Source: "/nonexistent/path.mustache"}

	if err := f.Run(context.Background()); err == nil {
		t.Fatal("expected error for missing source file, got nil")
	}
}
