package tokenizer

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/ikawaha/kagome-dict/ipa"
	kagome "github.com/ikawaha/kagome/v2/tokenizer"
)

// nonWordPOS are the IPA part-of-speech heads that are not vocabulary.
var nonWordPOS = map[string]bool{
	"記号":   true,
	"補助記号": true,
	"空白":   true,
}

// KagomeSplitter segments Japanese in-process with the kagome
// morphological analyzer and the IPA dictionary.
type KagomeSplitter struct {
	t    *kagome.Tokenizer
	word *regexp.Regexp
}

// NewKagomeSplitter loads the IPA dictionary. word classifies any text
// kagome leaves between surfaces.
func NewKagomeSplitter(word *regexp.Regexp) (*KagomeSplitter, error) {
	t, err := kagome.New(ipa.Dict(), kagome.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("%w: kagome: %v", ErrConfiguration, err)
	}
	return &KagomeSplitter{t: t, word: word}, nil
}

func (s *KagomeSplitter) Split(ctx context.Context, sentence string) ([]Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if sentence == "" {
		return nil, nil
	}

	ktoks := s.t.Tokenize(sentence)
	segs := make([]segment, 0, len(ktoks))
	for _, kt := range ktoks {
		if kt.Surface == "" {
			continue
		}
		sg := segment{surface: kt.Surface, kind: KindWord}
		if pos := kt.POS(); (len(pos) > 0 && nonWordPOS[pos[0]]) || strings.TrimFunc(kt.Surface, unicode.IsSpace) == "" {
			sg.kind = KindNonWord
		}
		if reading, ok := kt.Reading(); ok && reading != "*" {
			sg.reading = reading
		}
		segs = append(segs, sg)
	}
	return align(sentence, segs, s.word)
}
