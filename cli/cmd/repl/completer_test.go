package repl

import "testing"

func TestWordBounds(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		cursor    int
		wantWord  string
		wantStart int
		wantEnd   int
	}{
		{
			name:      "cursor at end of single word",
			input:     "user.name",
			cursor:    9,
			wantWord:  "user.name",
			wantStart: 0,
			wantEnd:   9,
		},
		{
			name:      "cursor at end of word before assignment",
			input:     "user.name=",
			cursor:    9,
			wantWord:  "user.name",
			wantStart: 0,
			wantEnd:   9,
		},
		{
			name:      "cursor after space starts new word",
			input:     "unset user",
			cursor:    10,
			wantWord:  "user",
			wantStart: 6,
			wantEnd:   10,
		},
		{
			name:      "empty input",
			input:     "",
			cursor:    0,
			wantWord:  "",
			wantStart: 0,
			wantEnd:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, start, end := wordBounds(tt.input, tt.cursor)

			if word != tt.wantWord || start != tt.wantStart || end != tt.wantEnd {
				t.Errorf(
					"wordBounds(%q, %d) = (%q, %d, %d), want (%q, %d, %d)",
					tt.input, tt.cursor, word, start, end,
					tt.wantWord, tt.wantStart, tt.wantEnd,
				)
			}
		})
	}
}

func TestMatchCandidatesEmptyWordReturnsAll(t *testing.T) {
	candidates := []string{"alpha", "beta", "gamma"}

	matches := matchCandidates("", candidates)
	if len(matches) != len(candidates) {
		t.Fatalf("len(matches) = %d, want %d", len(matches), len(candidates))
	}
}

func TestMatchCandidatesFuzzyMatchesSubsequence(t *testing.T) {
	candidates := []string{"username", "email", "age"}

	matches := matchCandidates("usr", candidates)
	if len(matches) == 0 {
		t.Fatal("expected at least one fuzzy match for \"usr\"")
	}

	if matches[0].Str != "username" {
		t.Errorf("best match = %q, want %q", matches[0].Str, "username")
	}
}

func TestMatchCandidatesNoMatch(t *testing.T) {
	candidates := []string{"alpha", "beta"}

	matches := matchCandidates("zzz", candidates)
	if len(matches) != 0 {
		t.Errorf("len(matches) = %d, want 0", len(matches))
	}
}

func TestDataKeyCandidatesIncludesDataAndPartials(t *testing.T) {
	data := map[string]any{"name": "Ada", "age": 42}
	partials := map[string]string{"header": "<h1></h1>"}

	got := dataKeyCandidates(data, partials)

	want := map[string]bool{"name": false, "age": false, ">header": false}
	for _, c := range got {
		if _, ok := want[c]; !ok {
			t.Errorf("unexpected candidate %q", c)
		}

		want[c] = true
	}

	for c, found := range want {
		if !found {
			t.Errorf("missing expected candidate %q", c)
		}
	}
}

func TestSplitAssignment(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantKey   string
		wantValue string
		wantOK    bool
	}{
		{"simple assignment", "name=Ada", "name", "Ada", true},
		{"spaces around operands", "  name = Ada  ", "name", "Ada", true},
		{"no equals sign", "help", "", "", false},
		{"empty value", "flag=", "flag", "", true},
		{"value contains equals", "expr=a=b", "expr", "a=b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, value, ok := splitAssignment(tt.line)

			if key != tt.wantKey || value != tt.wantValue || ok != tt.wantOK {
				t.Errorf(
					"splitAssignment(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.line, key, value, ok, tt.wantKey, tt.wantValue, tt.wantOK,
				)
			}
		})
	}
}
