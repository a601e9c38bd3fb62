package tokenizer

import (
	"strings"

	"github.com/kljensen/snowball"
)

// Stemmer annotates word tokens with their Snowball stem as a lemma hint.
type Stemmer struct {
	language string
}

// NewStemmer creates a stemmer for a Snowball language name such as
// "english" or "spanish".
func NewStemmer(language string) (*Stemmer, error) {
	if _, err := snowball.Stem("test", language, true); err != nil {
		return nil, err
	}
	return &Stemmer{language: language}, nil
}

// Stem returns the stem of word, or the lowercased word if stemming fails.
func (s *Stemmer) Stem(word string) string {
	lower := strings.ToLower(word)
	stemmed, err := snowball.Stem(lower, s.language, true)
	if err != nil {
		return lower
	}
	return stemmed
}

// Annotate sets Lemma on every single-word token.
func (s *Stemmer) Annotate(tokens []Token) {
	for i := range tokens {
		if tokens[i].Kind == KindWord && tokens[i].Lemma == "" {
			tokens[i].Lemma = s.Stem(tokens[i].Text)
		}
	}
}
