package tokenizer

import (
	"testing"

	"golang.org/x/text/language"
)

func TestFoldKey(t *testing.T) {
	tests := []struct {
		input    string
		tag      language.Tag
		expected string
	}{
		{"Hello", language.English, "hello"},
		{"NEW YORK", language.English, "new york"},
		{"Straße", language.German, "straße"},
		{"café", language.French, "café"},
		{"İstanbul", language.Turkish, "istanbul"},
		{"你好", language.Chinese, "你好"},
	}

	for _, tt := range tests {
		result := FoldKey(tt.input, tt.tag)
		if result != tt.expected {
			t.Errorf("FoldKey(%q, %v) = %q, want %q", tt.input, tt.tag, result, tt.expected)
		}
	}
}

func TestSnapshot_Lookup(t *testing.T) {
	s := mustSnapshot(t, map[string]uint64{
		"Hello":     1,
		"test word": 2,
		"":          3,
	})

	if s.Len() != 2 {
		t.Errorf("Len = %d, want 2", s.Len())
	}

	tests := []struct {
		phrase string
		id     uint64
		ok     bool
	}{
		{"hello", 1, true},
		{"HELLO", 1, true},
		{"Test Word", 2, true},
		{"test", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		// Twice, so the second lookup is served from the cache.
		for n := 0; n < 2; n++ {
			id, ok := s.Lookup(tt.phrase)
			if id != tt.id || ok != tt.ok {
				t.Errorf("Lookup(%q) = %d, %v, want %d, %v", tt.phrase, id, ok, tt.id, tt.ok)
			}
		}
	}
}

func TestSnapshot_FoldCollision(t *testing.T) {
	s := mustSnapshot(t, map[string]uint64{"Apple": 4, "apple": 9, "APPLE": 2})
	if id, _ := s.Lookup("apple"); id != 9 {
		t.Errorf("Lookup(apple) = %d, want 9", id)
	}
}

func TestSnapshot_MaxTerms(t *testing.T) {
	tests := []struct {
		entries  map[string]uint64
		expected int
	}{
		{map[string]uint64{"a": 1}, 1},
		{map[string]uint64{"in front of": 1, "go": 2}, 3},
		{map[string]uint64{"你好吗": 1}, 3},
	}
	for _, tt := range tests {
		if got := mustSnapshot(t, tt.entries).MaxTerms(); got != tt.expected {
			t.Errorf("MaxTerms(%v) = %d, want %d", tt.entries, got, tt.expected)
		}
	}
}

func TestLexiconFunc(t *testing.T) {
	lex := LexiconFunc(func(p string) (uint64, bool) { return 1, p == "x" })
	if _, ok := lex.Lookup("x"); !ok {
		t.Error("LexiconFunc did not forward lookup")
	}
	if _, ok := NoLexicon.Lookup("anything"); ok {
		t.Error("NoLexicon knows a word")
	}
}
