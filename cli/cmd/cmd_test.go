package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestWithPartialsPathRoundTrips(t *testing.T) {
	ctx := WithPartialsPath(context.Background(), []string{"a", "b"})

	got := PartialsPathFrom(ctx)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("PartialsPathFrom() = %v, want [a b]", got)
	}
}

func TestPartialsPathFromEmptyContextReturnsNil(t *testing.T) {
	got := PartialsPathFrom(context.Background())
	if got != nil {
		t.Errorf("PartialsPathFrom() = %v, want nil", got)
	}
}

func TestLoadPartialsLoadsAllMustacheFiles(t *testing.T) {
	dir := t.TempDir()

	files := map[string]string{
		"header.mustache": "<h1>{{title}}</h1>",
		"footer.mustache": "<footer>{{year}}</footer>",
		"notes.txt":       "ignored, not a .mustache file",
	}

	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	partials, err := LoadPartials([]string{dir})
	if err != nil {
		t.Fatalf("LoadPartials() unexpected error = %v", err)
	}

	if len(partials) != 2 {
		t.Errorf("len(partials) = %d, want 2; got %v", len(partials), partials)
	}

	if partials["header"] != "<h1>{{title}}</h1>" {
		t.Errorf("partials[header] = %q", partials["header"])
	}

	if partials["footer"] != "<footer>{{year}}</footer>" {
		t.Errorf("partials[footer] = %q", partials["footer"])
	}

	if _, ok := partials["notes"]; ok {
		t.Error("expected non-.mustache file to be excluded")
	}
}

func TestLoadPartialsEarlierDirectoryTakesPrecedence(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()

	if err := os.WriteFile(filepath.Join(dirA, "greeting.mustache"), []byte("from A"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(dirB, "greeting.mustache"), []byte("from B"), 0o600); err != nil {
		t.Fatal(err)
	}

	partials, err := LoadPartials([]string{dirA, dirB})
	if err != nil {
		t.Fatalf("LoadPartials() unexpected error = %v", err)
	}

	if partials["greeting"] != "from A" {
		t.Errorf("partials[greeting] = %q, want %q", partials["greeting"], "from A")
	}
}

func TestLoadPartialsSkipsMissingDirectories(t *testing.T) {
	partials, err := LoadPartials([]string{"/nonexistent/dir"})
	if err != nil {
		t.Fatalf("LoadPartials() unexpected error = %v", err)
	}

	if len(partials) != 0 {
		t.Errorf("len(partials) = %d, want 0", len(partials))
	}
}

func TestLoadPartialsEmptyDirListReturnsEmptyMap(t *testing.T) {
	partials, err := LoadPartials(nil)
	if err != nil {
		t.Fatalf("LoadPartials() unexpected error = %v", err)
	}

	if len(partials) != 0 {
		t.Errorf("len(partials) = %d, want 0", len(partials))
	}
}
