package tokenizer

import (
	"strings"
	"unicode"
)

// DefaultMaxTerms is the longest expression, in words, the matcher tries.
const DefaultMaxTerms = 9

// Matcher merges runs of words that form a known lexicon expression.
type Matcher struct {
	MaxTerms int
}

// NewMatcher creates a matcher trying expressions of up to maxTerms words.
func NewMatcher(maxTerms int) *Matcher {
	if maxTerms < 1 {
		maxTerms = 1
	}
	return &Matcher{MaxTerms: maxTerms}
}

// Merge replaces the longest known phrase starting at each word with one
// expression token, scanning left to right without backtracking. Words
// are joined by a single space when separated by whitespace and by
// nothing when adjacent. Words not covered by an expression are looked up
// on their own.
func (m *Matcher) Merge(tokens []Token, lex Lexicon) []Token {
	maxTerms := m.MaxTerms
	if tl, ok := lex.(termLimiter); ok && tl.MaxTerms() < maxTerms {
		maxTerms = max(tl.MaxTerms(), 1)
	}

	out := make([]Token, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		if t.Kind != KindWord {
			out = append(out, t)
			continue
		}

		if maxTerms > 1 {
			if merged, end, ok := m.longest(tokens, i, maxTerms, lex); ok {
				out = append(out, merged)
				i = end
				continue
			}
		}

		if id, ok := lex.Lookup(t.Text); ok {
			t.LexiconID = &id
		}
		out = append(out, t)
	}
	return out
}

// longest collects up to maxTerms words from position i and tries the
// candidates from longest to shortest. It returns the expression token and
// the index of its last constituent.
func (m *Matcher) longest(tokens []Token, i, maxTerms int, lex Lexicon) (Token, int, bool) {
	type candidate struct {
		phrase string
		end    int
	}

	var b strings.Builder
	b.WriteString(tokens[i].Text)
	cands := []candidate{{phrase: b.String(), end: i}}

	j := i + 1
	for len(cands) < maxTerms && j < len(tokens) {
		joiner := ""
		if tokens[j].Kind == KindNonWord {
			if !isBlank(tokens[j].Text) || j+1 >= len(tokens) {
				break
			}
			joiner = " "
			j++
		}
		if tokens[j].Kind != KindWord {
			break
		}
		b.WriteString(joiner)
		b.WriteString(tokens[j].Text)
		cands = append(cands, candidate{phrase: b.String(), end: j})
		j++
	}

	for n := len(cands); n >= 2; n-- {
		c := cands[n-1]
		id, ok := lex.Lookup(c.phrase)
		if !ok {
			continue
		}
		var text strings.Builder
		for k := i; k <= c.end; k++ {
			text.WriteString(tokens[k].Text)
		}
		return Token{
			Text:      text.String(),
			Kind:      KindExpression,
			WordCount: n,
			LexiconID: &id,
		}, c.end, true
	}
	return Token{}, 0, false
}

// isBlank reports a non-empty run of whitespace only.
func isBlank(s string) bool {
	return s != "" && strings.TrimFunc(s, unicode.IsSpace) == ""
}
