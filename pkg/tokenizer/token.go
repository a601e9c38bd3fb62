package tokenizer

import "fmt"

// Kind identifies the type of token.
type Kind int

const (
	KindWord Kind = iota
	KindNonWord
	KindExpression // multi-word lexicon entry
)

func (k Kind) String() string {
	switch k {
	case KindWord:
		return "Word"
	case KindNonWord:
		return "NonWord"
	case KindExpression:
		return "MultiWordExpression"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText lets Kind appear by name in JSON output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Token is one word, non-word run or merged expression of a sentence.
type Token struct {
	Text      string
	Kind      Kind
	WordCount int
	Order     int
	LexiconID *uint64 // nil when the token is not in the lexicon
	Lemma     string
	Reading   string
}

// IsWord reports whether the token counts towards vocabulary statistics.
func (t Token) IsWord() bool {
	return t.Kind == KindWord || t.Kind == KindExpression
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)#%d", t.Kind, t.Text, t.Order)
}

func newToken(text string, kind Kind) Token {
	t := Token{Text: text, Kind: kind}
	if kind == KindWord {
		t.WordCount = 1
	}
	return t
}

// Sentence is an ordered run of tokens. Start is the byte offset of the
// sentence's first character in the normalized text.
type Sentence struct {
	Text         string
	Order        int
	Start        int
	ParagraphEnd bool
	Tokens       []Token
}

// SentenceRecord is the persist-ready form of a sentence.
type SentenceRecord struct {
	TextID       int64  `json:"text_id"`
	Order        int    `json:"order"`
	Start        int    `json:"start"`
	Text         string `json:"text"`
	ParagraphEnd bool   `json:"paragraph_end,omitempty"`
}

// TextItem is the persist-ready form of a token.
type TextItem struct {
	TextID        int64   `json:"text_id"`
	SentenceOrder int     `json:"sentence_order"`
	Order         int     `json:"order"`
	Text          string  `json:"text"`
	Kind          Kind    `json:"kind"`
	WordCount     int     `json:"word_count"`
	LexiconID     *uint64 `json:"lexicon_id"`
	Lemma         string  `json:"lemma,omitempty"`
	Reading       string  `json:"reading,omitempty"`
}
