package tokenizer

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/kljensen/snowball"
	"golang.org/x/text/language"
)

// Segmenter kinds accepted in SegmenterConfig.Kind.
const (
	SegmenterProcess = "process"
	SegmenterKagome  = "kagome"
)

// Substitution is one literal replacement applied before segmentation.
type Substitution struct {
	From string
	To   string
}

// SegmenterConfig selects a morphological analyzer that replaces the
// built-in word tokenizer for a language.
type SegmenterConfig struct {
	Kind    string
	Command []string
	Timeout time.Duration
}

// Profile describes how one language is normalized, segmented and split
// into words. A Profile is treated as immutable once handed to New.
type Profile struct {
	Code               string
	Name               string
	WordCharacters     string
	SentenceEnd        string
	Exceptions         []string
	Substitutions      []Substitution
	SplitEachCharacter bool
	RemoveSpaces       bool
	RightToLeft        bool
	Segmenter          *SegmenterConfig
	Stemmer            string
}

// Validate checks every field the engine depends on. Nothing is defaulted:
// a broken word pattern would silently corrupt word counts.
func (p *Profile) Validate() error {
	fail := func(field, reason string) error {
		return &ConfigError{Profile: p.Code, Field: field, Reason: reason}
	}

	if p.Code == "" {
		return fail("code", "missing")
	}
	if _, err := language.Parse(p.Code); err != nil {
		return fail("code", err.Error())
	}
	if strings.TrimSpace(p.WordCharacters) == "" {
		return fail("word_characters", "empty")
	}
	if _, err := p.wordPattern(); err != nil {
		return fail("word_characters", err.Error())
	}
	if p.SentenceEnd == "" {
		return fail("sentence_end", "empty")
	}
	for _, s := range p.Substitutions {
		if s.From == "" {
			return fail("substitutions", "empty source string")
		}
	}
	if p.Stemmer != "" {
		if _, err := snowball.Stem("test", p.Stemmer, true); err != nil {
			return fail("stemmer", err.Error())
		}
	}

	if p.Segmenter == nil {
		return nil
	}
	switch p.Segmenter.Kind {
	case SegmenterKagome:
	case SegmenterProcess:
		if len(p.Segmenter.Command) == 0 {
			return fail("segmenter.command", "missing")
		}
		if _, err := exec.LookPath(p.Segmenter.Command[0]); err != nil {
			return fail("segmenter.command", err.Error())
		}
	default:
		return fail("segmenter.kind", fmt.Sprintf("unknown kind %q", p.Segmenter.Kind))
	}
	if p.Segmenter.Timeout < 0 {
		return fail("segmenter.timeout", "negative")
	}
	return nil
}

// Tag returns the profile's language tag, or language.Und when the code
// does not parse.
func (p *Profile) Tag() language.Tag {
	tag, err := language.Parse(p.Code)
	if err != nil {
		return language.Und
	}
	return tag
}

// wordPattern compiles the word character class as a run matcher.
func (p *Profile) wordPattern() (*regexp.Regexp, error) {
	return regexp.Compile("[" + p.WordCharacters + "]+")
}

// isSentenceEnd reports whether r can end a sentence for this profile.
func (p *Profile) isSentenceEnd(r rune) bool {
	return strings.ContainsRune(p.SentenceEnd, r)
}

// ParseExceptions splits a pipe-delimited abbreviation list, keeping order.
func ParseExceptions(s string) []string {
	var out []string
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ParseSubstitutions parses "from=to|from=to" pairs. The target may be
// empty, which deletes the source string.
func ParseSubstitutions(s string) ([]Substitution, error) {
	var out []Substitution
	for _, part := range strings.Split(s, "|") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		from, to, ok := strings.Cut(part, "=")
		if !ok || from == "" {
			return nil, fmt.Errorf("malformed substitution %q", part)
		}
		out = append(out, Substitution{From: from, To: to})
	}
	return out, nil
}

//go:embed profiles.json
var builtinProfilesJSON []byte

// profileJSON is the on-disk form, mirroring the settings form fields.
type profileJSON struct {
	Code               string         `json:"code"`
	Name               string         `json:"name"`
	WordCharacters     string         `json:"word_characters"`
	SentenceEnd        string         `json:"sentence_end"`
	Exceptions         string         `json:"exceptions"`
	Substitutions      string         `json:"substitutions"`
	SplitEachCharacter bool           `json:"split_each_character"`
	RemoveSpaces       bool           `json:"remove_spaces"`
	RightToLeft        bool           `json:"right_to_left"`
	Segmenter          *segmenterJSON `json:"segmenter,omitempty"`
	Stemmer            string         `json:"stemmer,omitempty"`
}

type segmenterJSON struct {
	Kind    string   `json:"kind"`
	Command []string `json:"command,omitempty"`
	Timeout string   `json:"timeout,omitempty"`
}

// ProfileSet indexes profiles by language code.
type ProfileSet struct {
	profiles map[string]*Profile
}

// BuiltinProfiles returns the embedded default profiles.
func BuiltinProfiles() (*ProfileSet, error) {
	return parseProfiles(builtinProfilesJSON)
}

// LoadProfiles reads a JSON array of profiles from path.
func LoadProfiles(path string) (*ProfileSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read profiles: %v", ErrConfiguration, err)
	}
	return parseProfiles(data)
}

func parseProfiles(data []byte) (*ProfileSet, error) {
	var raw []profileJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: parse profiles: %v", ErrConfiguration, err)
	}

	set := &ProfileSet{profiles: make(map[string]*Profile, len(raw))}
	for _, r := range raw {
		p, err := r.profile()
		if err != nil {
			return nil, err
		}
		if _, dup := set.profiles[p.Code]; dup {
			return nil, &ConfigError{Profile: p.Code, Reason: "duplicate profile"}
		}
		set.profiles[p.Code] = p
	}
	return set, nil
}

func (r profileJSON) profile() (*Profile, error) {
	subs, err := ParseSubstitutions(r.Substitutions)
	if err != nil {
		return nil, &ConfigError{Profile: r.Code, Field: "substitutions", Reason: err.Error()}
	}

	p := &Profile{
		Code:               r.Code,
		Name:               r.Name,
		WordCharacters:     r.WordCharacters,
		SentenceEnd:        r.SentenceEnd,
		Exceptions:         ParseExceptions(r.Exceptions),
		Substitutions:      subs,
		SplitEachCharacter: r.SplitEachCharacter,
		RemoveSpaces:       r.RemoveSpaces,
		RightToLeft:        r.RightToLeft,
		Stemmer:            r.Stemmer,
	}

	if r.Segmenter != nil {
		seg := &SegmenterConfig{Kind: r.Segmenter.Kind, Command: r.Segmenter.Command}
		if r.Segmenter.Timeout != "" {
			d, err := time.ParseDuration(r.Segmenter.Timeout)
			if err != nil {
				return nil, &ConfigError{Profile: r.Code, Field: "segmenter.timeout", Reason: err.Error()}
			}
			seg.Timeout = d
		}
		p.Segmenter = seg
	}
	return p, nil
}

// Get returns the profile for code. Unknown codes are configuration errors.
func (s *ProfileSet) Get(code string) (*Profile, error) {
	p, ok := s.profiles[code]
	if !ok {
		return nil, &ConfigError{Profile: code, Reason: "no such language profile"}
	}
	return p, nil
}

// Codes returns the known language codes in sorted order.
func (s *ProfileSet) Codes() []string {
	codes := make([]string, 0, len(s.profiles))
	for code := range s.profiles {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
