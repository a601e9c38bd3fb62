// Package tokenizer turns raw text into sentences and word tokens for a
// language-learning reader: it normalizes characters, finds sentence
// boundaries, splits words, merges multi-word lexicon expressions and
// computes known/unknown vocabulary statistics.
package tokenizer

import (
	"context"
	"fmt"
	"time"
)

// Config holds engine settings that are not part of a language profile.
type Config struct {
	MaxExpressionTerms int           // longest expression tried by the matcher
	PreviewSentences   int           // sentences included in Stats.Preview
	PreviewLength      int           // rune limit of Stats.Preview
	MaxTextSize        int           // bytes; 0 disables the check
	SegmenterTimeout   time.Duration // default for external segmenters
}

// DefaultConfig returns the settings used by the command line tools.
func DefaultConfig() Config {
	return Config{
		MaxExpressionTerms: DefaultMaxTerms,
		PreviewSentences:   3,
		PreviewLength:      250,
		MaxTextSize:        65000,
		SegmenterTimeout:   10 * time.Second,
	}
}

// Tokenizer segments texts for one language profile. It holds no mutable
// state and is safe for concurrent use.
type Tokenizer struct {
	profile    *Profile
	cfg        Config
	normalizer *Normalizer
	segmenter  *Segmenter
	splitter   WordSplitter
	matcher    *Matcher
	stemmer    *Stemmer
}

// New validates the profile and builds the pipeline it describes.
func New(p *Profile, cfg Config) (*Tokenizer, error) {
	if p == nil {
		return nil, &ConfigError{Reason: "no language profile"}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	splitter, err := NewWordSplitter(p, cfg.SegmenterTimeout)
	if err != nil {
		return nil, err
	}

	t := &Tokenizer{
		profile:    p,
		cfg:        cfg,
		normalizer: NewNormalizer(p),
		segmenter:  NewSegmenter(p),
		splitter:   splitter,
		matcher:    NewMatcher(cfg.MaxExpressionTerms),
	}
	if p.Stemmer != "" {
		if t.stemmer, err = NewStemmer(p.Stemmer); err != nil {
			return nil, &ConfigError{Profile: p.Code, Field: "stemmer", Reason: err.Error()}
		}
	}
	return t, nil
}

// Profile returns the profile the tokenizer was built with.
func (t *Tokenizer) Profile() *Profile {
	return t.profile
}

// Normalize applies the profile's character normalization.
func (t *Tokenizer) Normalize(raw string) string {
	return t.normalizer.Normalize(raw)
}

// Parse normalizes text, splits it into sentences and tokens and merges
// known expressions from lex. It either covers the whole text or fails.
func (t *Tokenizer) Parse(ctx context.Context, text string, lex Lexicon) ([]Sentence, error) {
	if t.cfg.MaxTextSize > 0 && len(text) > t.cfg.MaxTextSize {
		return nil, &InputError{Reason: fmt.Sprintf("text is %d bytes, limit is %d", len(text), t.cfg.MaxTextSize)}
	}
	if lex == nil {
		lex = NoLexicon
	}

	sentences := t.segmenter.Segment(t.normalizer.Normalize(text))
	for i := range sentences {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tokens, err := t.splitter.Split(ctx, sentences[i].Text)
		if err != nil {
			return nil, fmt.Errorf("sentence %d: %w", i, err)
		}
		if t.stemmer != nil {
			t.stemmer.Annotate(tokens)
		}
		sentences[i].Tokens = t.matcher.Merge(tokens, lex)
	}
	return sentences, nil
}

// Assemble parses text and numbers the result.
func (t *Tokenizer) Assemble(ctx context.Context, text string, lex Lexicon) (*Assembly, error) {
	sentences, err := t.Parse(ctx, text, lex)
	if err != nil {
		return nil, err
	}
	a := Assemble(sentences, t.cfg)
	a.RightToLeft = t.profile.RightToLeft
	return a, nil
}

// Stats is the dry run: it returns the statistics without producing
// records for persistence.
func (t *Tokenizer) Stats(ctx context.Context, text string, lex Lexicon) (Stats, error) {
	a, err := t.Assemble(ctx, text, lex)
	if err != nil {
		return Stats{}, err
	}
	return a.Stats, nil
}

// Persist segments text and hands its records to gw under textID.
func (t *Tokenizer) Persist(ctx context.Context, textID int64, text string, lex Lexicon, gw Gateway) (Stats, error) {
	if textID <= 0 {
		return Stats{}, &InputError{Reason: "text id must be positive"}
	}
	if gw == nil {
		return Stats{}, &InputError{Reason: "no gateway"}
	}

	a, err := t.Assemble(ctx, text, lex)
	if err != nil {
		return Stats{}, err
	}
	sentences, err := a.SentenceRecords(textID)
	if err != nil {
		return Stats{}, err
	}
	items, err := a.TextItems(textID)
	if err != nil {
		return Stats{}, err
	}
	if err := gw.SaveText(ctx, textID, sentences, items); err != nil {
		return Stats{}, err
	}
	return a.Stats, nil
}
