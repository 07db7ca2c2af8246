package repl

import (
	"path/filepath"
	"testing"
)

func TestHistoryLoadMissingFileIsNotError(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), "missing.utf8"))

	if err := h.Load(); err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}

	if h.Len() != 0 {
		t.Errorf("Len() = %d, want 0", h.Len())
	}
}

func TestHistoryAppendPersistsAndReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.utf8")

	h := NewHistory(path)

	if err := h.Append("name=Ada"); err != nil {
		t.Fatalf("Append() unexpected error = %v", err)
	}

	if err := h.Append("age=42"); err != nil {
		t.Fatalf("Append() unexpected error = %v", err)
	}

	if h.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", h.Len())
	}

	reloaded := NewHistory(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}

	if reloaded.Len() != 2 {
		t.Fatalf("reloaded Len() = %d, want 2", reloaded.Len())
	}

	if reloaded.At(0) != "name=Ada" || reloaded.At(1) != "age=42" {
		t.Errorf("reloaded entries = [%q, %q]", reloaded.At(0), reloaded.At(1))
	}
}

func TestHistoryAtOutOfRangeReturnsEmpty(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), "history.utf8"))

	if got := h.At(0); got != "" {
		t.Errorf("At(0) = %q, want empty string", got)
	}

	if got := h.At(-1); got != "" {
		t.Errorf("At(-1) = %q, want empty string", got)
	}
}

func TestHistoryLoadSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.utf8")

	h := NewHistory(path)

	for _, line := range []string{"one", "", "two", "   "} {
		if err := h.Append(line); err != nil {
			t.Fatalf("Append() unexpected error = %v", err)
		}
	}

	reloaded := NewHistory(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}

	if reloaded.Len() != 2 {
		t.Errorf("Len() = %d, want 2", reloaded.Len())
	}
}
