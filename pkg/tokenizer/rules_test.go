package tokenizer

import (
	"testing"
)

func TestDecide(t *testing.T) {
	p := englishProfile()

	tests := []struct {
		name      string
		b         Boundary
		wantBreak bool
		wantRule  string
	}{
		{
			name:      "listed abbreviation",
			b:         Boundary{Punct: ".", Preceding: "Mr", Prev: 'r', Next: ' ', Spaced: true, Following: "Smith"},
			wantBreak: false,
			wantRule:  "exception",
		},
		{
			name:      "decimal point",
			b:         Boundary{Punct: ".", Preceding: "3", Prev: '3', Next: '1', Following: ""},
			wantBreak: false,
			wantRule:  "inline",
		},
		{
			name:      "glued large number",
			b:         Boundary{Punct: ".", Preceding: "2023", Prev: '3', Next: '5'},
			wantBreak: false,
			wantRule:  "inline",
		},
		{
			name:      "initial",
			b:         Boundary{Punct: ".", Preceding: "A", Prev: 'A', Next: ' ', Spaced: true, Following: "Smith"},
			wantBreak: false,
			wantRule:  "initials",
		},
		{
			name:      "short number",
			b:         Boundary{Punct: ".", Preceding: "10", Prev: '0', Next: ' ', Spaced: true, Following: "Then"},
			wantBreak: false,
			wantRule:  "numeric",
		},
		{
			name:      "year",
			b:         Boundary{Punct: ".", Preceding: "2023", Prev: '3', Next: ' ', Spaced: true, Following: "then"},
			wantBreak: true,
			wantRule:  "numeric",
		},
		{
			name:      "lowercase continuation",
			b:         Boundary{Punct: ".", Preceding: "etc", Prev: 'c', Next: ' ', Spaced: true, Following: "and"},
			wantBreak: false,
			wantRule:  "case",
		},
		{
			name:      "ellipsis continuation",
			b:         Boundary{Punct: "...", Preceding: "Wait", Prev: 't', Next: ' ', Spaced: true, Following: "what"},
			wantBreak: false,
			wantRule:  "case",
		},
		{
			name:      "consonant cluster",
			b:         Boundary{Punct: ".", Preceding: "St", Prev: 't', Next: ' ', Spaced: true, Following: "Paul"},
			wantBreak: false,
			wantRule:  "consonants",
		},
		{
			name:      "single consonant before capitalized word",
			b:         Boundary{Punct: ".", Preceding: "b", Prev: 'b', Next: ' ', Spaced: true, Following: "Then"},
			wantBreak: false,
			wantRule:  "consonants",
		},
		{
			name:      "acronym",
			b:         Boundary{Punct: ".", Preceding: "HTML", Prev: 'L', Next: ' ', Spaced: true, Following: "The"},
			wantBreak: true,
			wantRule:  "default",
		},
		{
			name:      "question",
			b:         Boundary{Punct: "?", Preceding: "Why", Prev: 'y', Next: ' ', Spaced: true, Following: "Because"},
			wantBreak: true,
			wantRule:  "default",
		},
		{
			name:      "exception is case-sensitive",
			b:         Boundary{Punct: ".", Preceding: "MR", Prev: 'R', Next: ' ', Spaced: true, Following: "Smith"},
			wantBreak: true,
			wantRule:  "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			brk, rule := Decide(DefaultRules(), tt.b, p)
			if brk != tt.wantBreak || rule != tt.wantRule {
				t.Errorf("Decide(%+v) = (%v, %q), want (%v, %q)", tt.b, brk, rule, tt.wantBreak, tt.wantRule)
			}
		})
	}
}

func TestIsConsonantCluster(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"Mr", true},
		{"St", true},
		{"pp", true},
		{"Blvd", true},
		{"sñ", true},
		{"Jones", false},
		{"HTML", false},
		{"Strngth", false},
		{"y", false},
		{"", false},
	}

	for _, tt := range tests {
		result := isConsonantCluster(tt.input)
		if result != tt.expected {
			t.Errorf("isConsonantCluster(%q) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}

func TestDecide_NoRules(t *testing.T) {
	brk, rule := Decide(nil, Boundary{Punct: ".", Preceding: "Mr"}, englishProfile())
	if !brk || rule != "default" {
		t.Errorf("Decide(nil, ...) = (%v, %q), want (true, \"default\")", brk, rule)
	}
}
