package tokenizer

import (
	"strings"
)

// NormalizerFunc defines a single normalization step.
type NormalizerFunc func(string) string

// Normalizer applies a configurable pipeline of normalization steps.
type Normalizer struct {
	steps []NormalizerFunc
}

// NewNormalizer creates the pipeline a profile asks for: line endings,
// character substitutions, brace escaping and, optionally, space removal.
func NewNormalizer(p *Profile) *Normalizer {
	steps := []NormalizerFunc{NormalizeLineEndings}
	if len(p.Substitutions) > 0 {
		steps = append(steps, Substitute(p.Substitutions))
	}
	steps = append(steps, EscapeBraces)
	if p.RemoveSpaces {
		steps = append(steps, RemoveSpaces)
	}
	return &Normalizer{steps: steps}
}

// NewNormalizerWithSteps creates a normalizer with a custom pipeline.
func NewNormalizerWithSteps(steps ...NormalizerFunc) *Normalizer {
	return &Normalizer{steps: steps}
}

// Normalize applies all configured steps in order.
func (n *Normalizer) Normalize(s string) string {
	for _, step := range n.steps {
		s = step(s)
	}
	return s
}

// Normalize runs the profile's default pipeline over raw.
func Normalize(raw string, p *Profile) string {
	return NewNormalizer(p).Normalize(raw)
}

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// NormalizeLineEndings converts CRLF and lone CR to LF.
func NormalizeLineEndings(s string) string {
	return lineEndings.Replace(s)
}

// Substitute returns a step replacing each pair literally. At any position
// the earliest pair in the list wins; replaced text is not rescanned.
func Substitute(subs []Substitution) NormalizerFunc {
	oldnew := make([]string, 0, len(subs)*2)
	for _, s := range subs {
		oldnew = append(oldnew, s.From, s.To)
	}
	r := strings.NewReplacer(oldnew...)
	return r.Replace
}

var braces = strings.NewReplacer("{", "[", "}", "]")

// EscapeBraces turns { and } into [ and ]; braces are reserved for
// annotation markup.
func EscapeBraces(s string) string {
	return braces.Replace(s)
}

// RemoveSpaces deletes U+0020 only. Other space characters, including
// zero-width ones, are kept.
func RemoveSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}
