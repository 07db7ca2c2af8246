package cli

import (
	"os"
	"testing"
)

func TestPartialsSearchPathCombinesFlagAndEnv(t *testing.T) {
	t.Setenv(partialsPathEnv, "/env/one"+string(os.PathListSeparator)+"/env/two")

	got := partialsSearchPath([]string{"/flag/one"})

	want := []string{"/flag/one", "/env/one", "/env/two"}
	if len(got) != len(want) {
		t.Fatalf("partialsSearchPath() = %v, want %v", got, want)
	}

	for i, dir := range want {
		if got[i] != dir {
			t.Errorf("partialsSearchPath()[%d] = %q, want %q", i, got[i], dir)
		}
	}
}

func TestPartialsSearchPathNoEnvReturnsOnlyFlagDirs(t *testing.T) {
	t.Setenv(partialsPathEnv, "")

	got := partialsSearchPath([]string{"/flag/one", "/flag/two"})

	want := []string{"/flag/one", "/flag/two"}
	if len(got) != len(want) {
		t.Fatalf("partialsSearchPath() = %v, want %v", got, want)
	}
}

func TestPartialsSearchPathNoFlagsReturnsOnlyEnvDirs(t *testing.T) {
	t.Setenv(partialsPathEnv, "/env/only")

	got := partialsSearchPath(nil)

	want := []string{"/env/only"}
	if len(got) != len(want) || got[0] != want[0] {
		t.Errorf("partialsSearchPath() = %v, want %v", got, want)
	}
}

func TestSplitPathListDropsEmptySegments(t *testing.T) {
	sep := string(os.PathListSeparator)

	got := splitPathList("a" + sep + "" + sep + "b")

	want := []string{"a", "b"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("splitPathList() = %v, want %v", got, want)
	}
}

func TestSplitPathListEmptyStringReturnsNil(t *testing.T) {
	if got := splitPathList(""); got != nil {
		t.Errorf("splitPathList(\"\") = %v, want nil", got)
	}
}
