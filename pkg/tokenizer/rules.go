package tokenizer

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Verdict is a rule's decision about a candidate sentence boundary.
type Verdict int

const (
	Abstain Verdict = iota
	Keep            // the sentence continues
	Break           // the sentence ends here
)

// Boundary is the context window around one run of sentence-end punctuation.
type Boundary struct {
	Punct     string // the punctuation run, without closing quotes
	Preceding string // non-space token before Punct, leading openers trimmed
	Prev      rune   // rune right before Punct, 0 at start of text
	Next      rune   // rune right after Punct and its closers, 0 at end of text
	Spaced    bool   // whitespace follows the closers
	Following string // next non-space token, leading openers trimmed
}

// Rule is one named predicate of the sentence-end heuristic.
type Rule struct {
	Name  string
	Apply func(b Boundary, p *Profile) Verdict
}

// DefaultRules returns the sentence-end heuristic in evaluation order.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "exception", Apply: exceptionRule},
		{Name: "inline", Apply: inlineRule},
		{Name: "initials", Apply: initialsRule},
		{Name: "numeric", Apply: numericRule},
		{Name: "case", Apply: caseRule},
		{Name: "consonants", Apply: consonantRule},
	}
}

// Decide evaluates rules in order; the first non-abstaining rule wins.
// When all abstain the boundary breaks and the rule name is "default".
func Decide(rules []Rule, b Boundary, p *Profile) (bool, string) {
	for _, r := range rules {
		switch r.Apply(b, p) {
		case Keep:
			return false, r.Name
		case Break:
			return true, r.Name
		}
	}
	return true, "default"
}

// exceptionRule keeps listed abbreviations such as "Mr." intact.
// The comparison is literal and case-sensitive.
func exceptionRule(b Boundary, p *Profile) Verdict {
	if b.Preceding != "" && slices.Contains(p.Exceptions, b.Preceding+b.Punct) {
		return Keep
	}
	return Abstain
}

// inlineRule keeps punctuation glued between ASCII letters or digits:
// 3.14, 10:30, example.com.
func inlineRule(b Boundary, _ *Profile) Verdict {
	if !b.Spaced && isASCIIAlnum(b.Prev) && isASCIIAlnum(b.Next) {
		return Keep
	}
	return Abstain
}

// initialsRule keeps "A. Smith".
func initialsRule(b Boundary, _ *Profile) Verdict {
	if b.Punct != "." || utf8.RuneCountInString(b.Preceding) != 1 {
		return Abstain
	}
	r, _ := utf8.DecodeRuneInString(b.Preceding)
	if unicode.IsUpper(r) {
		return Keep
	}
	return Abstain
}

// numericDigits is the digit-run length from which a number followed by a
// period ends the sentence. Shorter runs are decimals or ordinals.
const numericDigits = 3

func numericRule(b Boundary, _ *Profile) Verdict {
	if b.Punct != "." || b.Preceding == "" {
		return Abstain
	}
	for _, r := range b.Preceding {
		if !unicode.IsDigit(r) {
			return Abstain
		}
	}
	if utf8.RuneCountInString(b.Preceding) < numericDigits {
		return Keep
	}
	return Break
}

// caseRule keeps the sentence open when the next word starts lowercase.
func caseRule(b Boundary, _ *Profile) Verdict {
	if b.Following == "" {
		return Abstain
	}
	r, _ := utf8.DecodeRuneInString(b.Following)
	if unicode.IsLower(r) {
		return Keep
	}
	return Abstain
}

// maxClusterRunes bounds what counts as a short consonant-only token.
const maxClusterRunes = 5

// consonantRule treats short vowel-less tokens ("Mr", "St", "pp") as
// abbreviations. Only the first rune may be uppercase, so acronyms such as
// "HTML" still end a sentence.
func consonantRule(b Boundary, _ *Profile) Verdict {
	if b.Punct == "." && isConsonantCluster(b.Preceding) {
		return Keep
	}
	return Abstain
}

const (
	upperConsonants = "BCDFGHJKLMNPQRSTVWXZ"
	lowerConsonants = "bcdfghjklmnpqrstvwxzñ"
)

func isConsonantCluster(s string) bool {
	n := utf8.RuneCountInString(s)
	if n == 0 || n > maxClusterRunes {
		return false
	}
	for i, r := range s {
		if i == 0 && strings.ContainsRune(upperConsonants, r) {
			continue
		}
		if !strings.ContainsRune(lowerConsonants, r) {
			return false
		}
	}
	return true
}

func isASCIIAlnum(r rune) bool {
	return r < utf8.RuneSelf && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
}

// isOpener reports opening brackets and quotes that may precede a word.
func isOpener(r rune) bool {
	return unicode.In(r, unicode.Ps, unicode.Pi) || r == '"' || r == '\'' || r == '¿' || r == '¡'
}

// isCloser reports closing brackets and quotes that may trail punctuation.
func isCloser(r rune) bool {
	return unicode.In(r, unicode.Pe, unicode.Pf) || r == '"' || r == '\''
}
