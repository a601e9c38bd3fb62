package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Segmenter splits normalized text into sentences.
type Segmenter struct {
	profile *Profile
	rules   []Rule
}

// NewSegmenter creates a segmenter using DefaultRules.
func NewSegmenter(p *Profile) *Segmenter {
	return &Segmenter{profile: p, rules: DefaultRules()}
}

// NewSegmenterWithRules creates a segmenter with a custom rule list.
func NewSegmenterWithRules(p *Profile, rules ...Rule) *Segmenter {
	return &Segmenter{profile: p, rules: rules}
}

// Segment splits text with the default rules.
func Segment(text string, p *Profile) []Sentence {
	return NewSegmenter(p).Segment(text)
}

// Segment splits text into sentences. Concatenating the sentence texts
// reconstructs text exactly: whitespace after a boundary belongs to the
// sentence it closes. Two or more line breaks always end a sentence and
// mark a paragraph end. The end of text always ends a sentence, so
// whitespace-only text is one sentence without words.
func (s *Segmenter) Segment(text string) []Sentence {
	var sentences []Sentence
	start := 0
	content := false

	emit := func(end int, paragraph bool) {
		sentences = append(sentences, Sentence{
			Text:         text[start:end],
			Order:        len(sentences),
			Start:        start,
			ParagraphEnd: paragraph,
		})
		start = end
		content = false
	}

	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])

		if unicode.IsSpace(r) {
			end, newlines := scanSpace(text, i)
			if newlines >= 2 && content {
				emit(end, true)
			}
			i = end
			continue
		}

		if !s.isCandidate(r) {
			content = true
			i += size
			continue
		}

		content = true
		punctEnd := i
		for punctEnd < len(text) {
			pr, ps := utf8.DecodeRuneInString(text[punctEnd:])
			if !s.isCandidate(pr) {
				break
			}
			punctEnd += ps
		}
		closeEnd := punctEnd
		for closeEnd < len(text) {
			cr, cs := utf8.DecodeRuneInString(text[closeEnd:])
			if !isCloser(cr) {
				break
			}
			closeEnd += cs
		}
		spaceEnd, newlines := scanSpace(text, closeEnd)

		if newlines >= 2 {
			emit(spaceEnd, true)
		} else if brk, _ := Decide(s.rules, boundaryAt(text, i, punctEnd, closeEnd, spaceEnd), s.profile); brk {
			emit(spaceEnd, false)
		}
		i = spaceEnd
	}

	if start < len(text) {
		emit(len(text), false)
	}
	return sentences
}

// isCandidate reports runes that may end a sentence; the colon is always a
// soft candidate.
func (s *Segmenter) isCandidate(r rune) bool {
	return r == ':' || s.profile.isSentenceEnd(r)
}

// boundaryAt builds the context window for the punctuation run text[i:punctEnd]
// followed by closers up to closeEnd and whitespace up to spaceEnd.
func boundaryAt(text string, i, punctEnd, closeEnd, spaceEnd int) Boundary {
	b := Boundary{
		Punct:  text[i:punctEnd],
		Spaced: spaceEnd > closeEnd,
	}
	if i > 0 {
		b.Prev, _ = utf8.DecodeLastRuneInString(text[:i])
	}
	if closeEnd < len(text) {
		b.Next, _ = utf8.DecodeRuneInString(text[closeEnd:])
	}

	ps := i
	for ps > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:ps])
		if unicode.IsSpace(r) {
			break
		}
		ps -= size
	}
	b.Preceding = strings.TrimLeftFunc(text[ps:i], isOpener)

	fe := spaceEnd
	for fe < len(text) {
		r, size := utf8.DecodeRuneInString(text[fe:])
		if unicode.IsSpace(r) {
			break
		}
		fe += size
	}
	b.Following = strings.TrimLeftFunc(text[spaceEnd:fe], isOpener)
	return b
}

// scanSpace returns the end of the whitespace run starting at i and the
// number of line breaks inside it.
func scanSpace(text string, i int) (int, int) {
	newlines := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !unicode.IsSpace(r) {
			break
		}
		if r == '\n' {
			newlines++
		}
		i += size
	}
	return i, newlines
}
