package tokenizer

import (
	"context"
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"
)

// WordSplitter splits one sentence into Word and NonWord tokens. Every
// byte of the sentence ends up in exactly one token.
type WordSplitter interface {
	Split(ctx context.Context, sentence string) ([]Token, error)
}

// NewWordSplitter selects the strategy a profile asks for: an external
// segmenter when configured, per-character splitting, or word-run matching.
// defaultTimeout applies to process segmenters without their own timeout.
func NewWordSplitter(p *Profile, defaultTimeout time.Duration) (WordSplitter, error) {
	re, err := p.wordPattern()
	if err != nil {
		return nil, &ConfigError{Profile: p.Code, Field: "word_characters", Reason: err.Error()}
	}

	if p.Segmenter != nil {
		switch p.Segmenter.Kind {
		case SegmenterProcess:
			timeout := p.Segmenter.Timeout
			if timeout == 0 {
				timeout = defaultTimeout
			}
			return NewProcessSplitter(p.Segmenter.Command, timeout, re), nil
		case SegmenterKagome:
			return NewKagomeSplitter(re)
		default:
			return nil, &ConfigError{Profile: p.Code, Field: "segmenter.kind", Reason: fmt.Sprintf("unknown kind %q", p.Segmenter.Kind)}
		}
	}

	if p.SplitEachCharacter {
		return &CharSplitter{word: re}, nil
	}
	return &RegexSplitter{word: re}, nil
}

// RegexSplitter emits maximal runs of word characters as Word tokens and
// the text between them as NonWord tokens.
type RegexSplitter struct {
	word *regexp.Regexp
}

// NewRegexSplitter builds a RegexSplitter from a character class body
// such as "a-zA-Z".
func NewRegexSplitter(wordCharacters string) (*RegexSplitter, error) {
	re, err := regexp.Compile("[" + wordCharacters + "]+")
	if err != nil {
		return nil, err
	}
	return &RegexSplitter{word: re}, nil
}

func (s *RegexSplitter) Split(_ context.Context, sentence string) ([]Token, error) {
	return SplitWords(sentence, s.word), nil
}

// SplitWords splits text into word runs matched by word and the separators
// between them. A word running to the end of text is still emitted.
func SplitWords(text string, word *regexp.Regexp) []Token {
	var tokens []Token
	prev := 0
	for _, loc := range word.FindAllStringIndex(text, -1) {
		if loc[0] > prev {
			tokens = append(tokens, newToken(text[prev:loc[0]], KindNonWord))
		}
		tokens = append(tokens, newToken(text[loc[0]:loc[1]], KindWord))
		prev = loc[1]
	}
	if prev < len(text) {
		tokens = append(tokens, newToken(text[prev:], KindNonWord))
	}
	return tokens
}

// CharSplitter emits one token per character, for scripts written without
// spaces between words.
type CharSplitter struct {
	word *regexp.Regexp
}

func (s *CharSplitter) Split(_ context.Context, sentence string) ([]Token, error) {
	tokens := make([]Token, 0, len(sentence)/3+1)
	for i := 0; i < len(sentence); {
		_, size := utf8.DecodeRuneInString(sentence[i:])
		c := sentence[i : i+size]
		i += size
		kind := KindNonWord
		if s.word.MatchString(c) {
			kind = KindWord
		}
		tokens = append(tokens, newToken(c, kind))
	}
	return tokens, nil
}
