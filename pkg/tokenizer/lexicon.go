package tokenizer

import (
	"bytes"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/blevesearch/vellum"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// LookupCacheSize is the maximum number of cached lookups per snapshot.
const LookupCacheSize = 50_000

// Lexicon resolves a word or space-joined phrase to the id of a known
// lexicon entry. Implementations must not change during a call.
type Lexicon interface {
	Lookup(phrase string) (uint64, bool)
}

// LexiconFunc adapts a function to Lexicon.
type LexiconFunc func(phrase string) (uint64, bool)

func (f LexiconFunc) Lookup(phrase string) (uint64, bool) { return f(phrase) }

// NoLexicon knows no words.
var NoLexicon Lexicon = LexiconFunc(func(string) (uint64, bool) { return 0, false })

// termLimiter is implemented by lexicons that know their longest entry.
type termLimiter interface {
	MaxTerms() int
}

// FoldKey brings a phrase into lookup form: NFC, then lowercased by the
// rules of tag.
func FoldKey(s string, tag language.Tag) string {
	return cases.Lower(tag).String(norm.NFC.String(s))
}

// termCount bounds the number of word tokens a key can span. Keys without
// spaces may come from scripts without word separators, so each rune counts.
func termCount(key string) int {
	if strings.Contains(key, " ") {
		return len(strings.Fields(key))
	}
	return utf8.RuneCountInString(key)
}

type lookupResult struct {
	id uint64
	ok bool
}

// Snapshot is an immutable, FST-backed lexicon. It is safe for concurrent
// use; editing the Dictionary it came from does not affect it.
type Snapshot struct {
	fst      *vellum.FST
	tag      language.Tag
	size     int
	maxTerms int
	cache    *lru.Cache[string, lookupResult]
}

// NewSnapshot builds a snapshot from phrase → id entries. Phrases are
// folded with FoldKey; when two phrases fold to the same key the larger id
// wins so the result does not depend on map order.
func NewSnapshot(entries map[string]uint64, tag language.Tag) (*Snapshot, error) {
	folded := make(map[string]uint64, len(entries))
	for phrase, id := range entries {
		key := FoldKey(phrase, tag)
		if key == "" {
			continue
		}
		if prev, ok := folded[key]; !ok || id > prev {
			folded[key] = id
		}
	}

	data, err := buildFST(folded)
	if err != nil {
		return nil, err
	}
	fst, err := vellum.Load(data)
	if err != nil {
		return nil, err
	}

	maxTerms := 0
	for key := range folded {
		if n := termCount(key); n > maxTerms {
			maxTerms = n
		}
	}

	cache, _ := lru.New[string, lookupResult](LookupCacheSize)
	return &Snapshot{
		fst:      fst,
		tag:      tag,
		size:     len(folded),
		maxTerms: maxTerms,
		cache:    cache,
	}, nil
}

// Lookup folds phrase and looks it up in the FST.
func (s *Snapshot) Lookup(phrase string) (uint64, bool) {
	key := FoldKey(phrase, s.tag)
	if r, ok := s.cache.Get(key); ok {
		return r.id, r.ok
	}
	id, ok, err := s.fst.Get([]byte(key))
	if err != nil {
		ok = false
	}
	s.cache.Add(key, lookupResult{id: id, ok: ok})
	return id, ok
}

// MaxTerms returns an upper bound on the number of words in any entry.
func (s *Snapshot) MaxTerms() int { return s.maxTerms }

// Len returns the number of entries.
func (s *Snapshot) Len() int { return s.size }

// buildFST encodes sorted keys and their ids into an FST.
func buildFST(entries map[string]uint64) ([]byte, error) {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	builder, err := vellum.New(&buf, nil)
	if err != nil {
		return nil, err
	}
	for _, k := range keys {
		if err := builder.Insert([]byte(k), entries[k]); err != nil {
			builder.Close()
			return nil, err
		}
	}
	if err := builder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
