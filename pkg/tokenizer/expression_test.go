package tokenizer

import (
	"context"
	"testing"

	"golang.org/x/text/language"
)

func mustSnapshot(t testing.TB, entries map[string]uint64) *Snapshot {
	t.Helper()
	s, err := NewSnapshot(entries, language.English)
	if err != nil {
		t.Fatalf("NewSnapshot: %v", err)
	}
	return s
}

func splitEnglish(t *testing.T, text string) []Token {
	t.Helper()
	s, err := NewRegexSplitter("a-zA-Z")
	if err != nil {
		t.Fatalf("NewRegexSplitter: %v", err)
	}
	tokens, err := s.Split(context.Background(), text)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	return tokens
}

func TestMatcher_MultiWordExpression(t *testing.T) {
	lex := mustSnapshot(t, map[string]uint64{"test word": 7})
	tokens := NewMatcher(DefaultMaxTerms).Merge(splitEnglish(t, "This is a test word example."), lex)

	var found *Token
	for i := range tokens {
		if tokens[i].Text == "test" || tokens[i].Text == "word" {
			t.Errorf("constituent %q kept as separate token", tokens[i].Text)
		}
		if tokens[i].Kind == KindExpression {
			found = &tokens[i]
		}
	}
	if found == nil {
		t.Fatalf("no expression token in %v", tokens)
	}
	if found.Text != "test word" || found.WordCount != 2 {
		t.Errorf("expression = %q (WordCount %d), want %q (2)", found.Text, found.WordCount, "test word")
	}
	if found.LexiconID == nil || *found.LexiconID != 7 {
		t.Errorf("expression LexiconID = %v, want 7", found.LexiconID)
	}
}

func TestMatcher_LongestFirst(t *testing.T) {
	lex := mustSnapshot(t, map[string]uint64{
		"in front":    1,
		"in front of": 2,
	})
	tokens := NewMatcher(DefaultMaxTerms).Merge(splitEnglish(t, "It stood in front of me"), lex)

	var exprs []Token
	for _, tok := range tokens {
		if tok.Kind == KindExpression {
			exprs = append(exprs, tok)
		}
	}
	if len(exprs) != 1 {
		t.Fatalf("got %d expressions, want 1: %v", len(exprs), tokens)
	}
	if exprs[0].Text != "in front of" || exprs[0].WordCount != 3 || *exprs[0].LexiconID != 2 {
		t.Errorf("expression = %q/%d/%d, want \"in front of\"/3/2", exprs[0].Text, exprs[0].WordCount, *exprs[0].LexiconID)
	}
}

func TestMatcher_NoBacktracking(t *testing.T) {
	// "a b" matches first and consumes "b", so "b c d" is never tried.
	lex := mustSnapshot(t, map[string]uint64{
		"a b":   1,
		"b c d": 2,
	})
	tokens := NewMatcher(DefaultMaxTerms).Merge(splitEnglish(t, "a b c d"), lex)

	want := []wantToken{
		{"a b", KindExpression, 2},
		{" ", KindNonWord, 0},
		{"c", KindWord, 1},
		{" ", KindNonWord, 0},
		{"d", KindWord, 1},
	}
	if got := simplify(tokens); !equalTokens(got, want) {
		t.Errorf("Merge = %+v, want %+v", got, want)
	}
}

func TestMatcher_PunctuationBlocksExpression(t *testing.T) {
	lex := mustSnapshot(t, map[string]uint64{"test word": 1})
	tokens := NewMatcher(DefaultMaxTerms).Merge(splitEnglish(t, "a test, word"), lex)
	for _, tok := range tokens {
		if tok.Kind == KindExpression {
			t.Errorf("unexpected expression %q across punctuation", tok.Text)
		}
	}
}

func TestMatcher_CaseInsensitive(t *testing.T) {
	lex := mustSnapshot(t, map[string]uint64{"New York": 3})
	tokens := NewMatcher(DefaultMaxTerms).Merge(splitEnglish(t, "NEW YORK"), lex)
	if len(tokens) != 1 || tokens[0].Kind != KindExpression || tokens[0].Text != "NEW YORK" {
		t.Errorf("Merge = %v, want one expression \"NEW YORK\"", tokens)
	}
}

func TestMatcher_AdjacentWordsJoinWithoutSpace(t *testing.T) {
	lex := mustSnapshot(t, map[string]uint64{"你好": 5})
	tokens := []Token{
		newToken("你", KindWord),
		newToken("好", KindWord),
		newToken("。", KindNonWord),
	}
	got := simplify(NewMatcher(DefaultMaxTerms).Merge(tokens, lex))
	want := []wantToken{{"你好", KindExpression, 2}, {"。", KindNonWord, 0}}
	if !equalTokens(got, want) {
		t.Errorf("Merge = %+v, want %+v", got, want)
	}
}

func TestMatcher_MaxTerms(t *testing.T) {
	lex := mustSnapshot(t, map[string]uint64{"one two three": 1})
	tokens := NewMatcher(2).Merge(splitEnglish(t, "one two three"), lex)
	for _, tok := range tokens {
		if tok.Kind == KindExpression {
			t.Errorf("expression %q longer than MaxTerms", tok.Text)
		}
	}
}

func TestMatcher_SingleWordLookup(t *testing.T) {
	lex := mustSnapshot(t, map[string]uint64{"hello": 11})
	tokens := NewMatcher(DefaultMaxTerms).Merge(splitEnglish(t, "Hello world"), lex)

	if tokens[0].LexiconID == nil || *tokens[0].LexiconID != 11 {
		t.Errorf("Hello LexiconID = %v, want 11", tokens[0].LexiconID)
	}
	if tokens[2].LexiconID != nil {
		t.Errorf("world LexiconID = %v, want nil", *tokens[2].LexiconID)
	}
	if tokens[2].WordCount != 1 {
		t.Errorf("world WordCount = %d, want 1", tokens[2].WordCount)
	}
}

func equalTokens(a, b []wantToken) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
