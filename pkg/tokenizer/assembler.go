package tokenizer

import (
	"math"
	"strings"
	"unicode/utf8"
)

// ParagraphMark separates paragraphs in the preview string.
const ParagraphMark = "¶"

// Stats summarizes a segmented text for the dry-run view.
type Stats struct {
	Sentences      int     `json:"sentences"`
	Words          int     `json:"words"`
	Terms          int     `json:"terms"`
	Unknown        int     `json:"unknown"`
	UnknownPercent float64 `json:"unknown_percent"`
	Preview        string  `json:"preview"`
}

// Assembly is the numbered, final form of a segmented text.
type Assembly struct {
	Sentences   []Sentence
	Stats       Stats
	RightToLeft bool
}

// Assemble numbers sentences and their tokens from 0 and computes the
// statistics. Words counts word and expression tokens; Terms sums their
// word counts; UnknownPercent is the share of word tokens without a
// lexicon id, rounded to two decimals, and 0 when there are no words.
func Assemble(sentences []Sentence, cfg Config) *Assembly {
	a := &Assembly{Sentences: make([]Sentence, len(sentences))}

	for i, s := range sentences {
		s.Order = i
		tokens := make([]Token, len(s.Tokens))
		for j, t := range s.Tokens {
			t.Order = j
			tokens[j] = t
			if !t.IsWord() {
				continue
			}
			a.Stats.Words++
			a.Stats.Terms += t.WordCount
			if t.LexiconID == nil {
				a.Stats.Unknown++
			}
		}
		s.Tokens = tokens
		a.Sentences[i] = s
	}

	a.Stats.Sentences = len(a.Sentences)
	if a.Stats.Words > 0 {
		pct := 100 * float64(a.Stats.Unknown) / float64(a.Stats.Words)
		a.Stats.UnknownPercent = math.Round(pct*100) / 100
	}
	a.Stats.Preview = preview(a.Sentences, cfg.PreviewSentences, cfg.PreviewLength)
	return a
}

// preview joins the first n sentences, marking paragraph ends, and cuts
// the result to limit runes.
func preview(sentences []Sentence, n, limit int) string {
	var b strings.Builder
	for i, s := range sentences {
		if i >= n {
			break
		}
		text := strings.Join(strings.Fields(s.Text), " ")
		if text == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(text)
		if s.ParagraphEnd {
			b.WriteString(" " + ParagraphMark)
		}
	}

	out := b.String()
	if limit > 0 && utf8.RuneCountInString(out) > limit {
		runes := []rune(out)
		out = string(runes[:limit]) + "…"
	}
	return out
}

// SentenceRecords returns the persist-ready sentences of the text.
func (a *Assembly) SentenceRecords(textID int64) ([]SentenceRecord, error) {
	if textID <= 0 {
		return nil, &InputError{Reason: "text id must be positive"}
	}
	out := make([]SentenceRecord, len(a.Sentences))
	for i, s := range a.Sentences {
		out[i] = SentenceRecord{
			TextID:       textID,
			Order:        s.Order,
			Start:        s.Start,
			Text:         s.Text,
			ParagraphEnd: s.ParagraphEnd,
		}
	}
	return out, nil
}

// TextItems returns the persist-ready tokens of the text.
func (a *Assembly) TextItems(textID int64) ([]TextItem, error) {
	if textID <= 0 {
		return nil, &InputError{Reason: "text id must be positive"}
	}
	var items []TextItem
	for _, s := range a.Sentences {
		for _, t := range s.Tokens {
			items = append(items, TextItem{
				TextID:        textID,
				SentenceOrder: s.Order,
				Order:         t.Order,
				Text:          t.Text,
				Kind:          t.Kind,
				WordCount:     t.WordCount,
				LexiconID:     t.LexiconID,
				Lemma:         t.Lemma,
				Reading:       t.Reading,
			})
		}
	}
	return items, nil
}
