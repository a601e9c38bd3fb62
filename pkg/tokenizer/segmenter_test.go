package tokenizer

import (
	"reflect"
	"strings"
	"testing"
)

func sentenceTexts(sentences []Sentence) []string {
	out := make([]string, len(sentences))
	for i, s := range sentences {
		out[i] = s.Text
	}
	return out
}

func TestSegment(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{
			input:    "Mr. Smith met Dr. Jones. They talked.",
			expected: []string{"Mr. Smith met Dr. Jones. ", "They talked."},
		},
		{
			input:    "The value is 3.14 today.",
			expected: []string{"The value is 3.14 today."},
		},
		{
			input:    "Year 2023. Next year.",
			expected: []string{"Year 2023. ", "Next year."},
		},
		{
			input:    "I was 10. Then I left.",
			expected: []string{"I was 10. Then I left."},
		},
		{
			input:    "A. Smith wrote it. Done.",
			expected: []string{"A. Smith wrote it. ", "Done."},
		},
		{
			input:    "Wait... what happened? Nothing!",
			expected: []string{"Wait... what happened? ", "Nothing!"},
		},
		{
			input:    "He said \"Stop.\" Then he left.",
			expected: []string{"He said \"Stop.\" ", "Then he left."},
		},
		{
			input:    "Visit example.com today. Ok",
			expected: []string{"Visit example.com today. ", "Ok"},
		},
		{
			input:    "Note: the end. Note: The start.",
			expected: []string{"Note: the end. ", "Note: ", "The start."},
		},
		{
			input:    "See St. Paul. Then",
			expected: []string{"See St. Paul. ", "Then"},
		},
		{
			input:    "We use HTML. The web",
			expected: []string{"We use HTML. ", "The web"},
		},
		{
			input:    "Is it? yes it is.",
			expected: []string{"Is it? yes it is."},
		},
		{
			input:    "One.\nTwo.",
			expected: []string{"One.\n", "Two."},
		},
		{
			input:    "  Leading space. Next",
			expected: []string{"  Leading space. ", "Next"},
		},
		{
			input:    "No punctuation at all",
			expected: []string{"No punctuation at all"},
		},
		{
			input:    "Trailing dot.",
			expected: []string{"Trailing dot."},
		},
	}

	p := englishProfile()
	for _, tt := range tests {
		result := sentenceTexts(Segment(tt.input, p))
		if !reflect.DeepEqual(result, tt.expected) {
			t.Errorf("Segment(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestSegment_Empty(t *testing.T) {
	if got := Segment("", englishProfile()); len(got) != 0 {
		t.Errorf("Segment(\"\") returned %d sentences, want 0", len(got))
	}
}

func TestSegment_WhitespaceOnly(t *testing.T) {
	input := "   \n\n  "
	got := Segment(input, englishProfile())
	if len(got) != 1 || got[0].Text != input || got[0].ParagraphEnd {
		t.Errorf("Segment(%q) = %+v, want one sentence holding the input", input, got)
	}
}

func TestSegment_Paragraphs(t *testing.T) {
	input := "First paragraph\n\nSecond one. Still second.\n \n\nThird"
	got := Segment(input, englishProfile())

	wantTexts := []string{"First paragraph\n\n", "Second one. ", "Still second.\n \n\n", "Third"}
	wantPara := []bool{true, false, true, false}

	if texts := sentenceTexts(got); !reflect.DeepEqual(texts, wantTexts) {
		t.Fatalf("Segment(%q) = %q, want %q", input, texts, wantTexts)
	}
	for i, s := range got {
		if s.ParagraphEnd != wantPara[i] {
			t.Errorf("sentence %d ParagraphEnd = %v, want %v", i, s.ParagraphEnd, wantPara[i])
		}
	}
}

func TestSegment_LeadingParagraphBreak(t *testing.T) {
	got := sentenceTexts(Segment("\n\nHello. World", englishProfile()))
	want := []string{"\n\nHello. ", "World"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segment = %q, want %q", got, want)
	}
}

func TestSegment_OrderAndOffsets(t *testing.T) {
	input := "Mr. Smith met Dr. Jones. They talked. Bye."
	got := Segment(input, englishProfile())

	if len(got) != 3 {
		t.Fatalf("got %d sentences, want 3: %q", len(got), sentenceTexts(got))
	}
	for i, s := range got {
		if s.Order != i {
			t.Errorf("sentence %d Order = %d", i, s.Order)
		}
		if input[s.Start:s.Start+len(s.Text)] != s.Text {
			t.Errorf("sentence %d Start = %d does not point at %q", i, s.Start, s.Text)
		}
	}
	if got[1].Start != len("Mr. Smith met Dr. Jones. ") {
		t.Errorf("second sentence Start = %d, want %d", got[1].Start, len("Mr. Smith met Dr. Jones. "))
	}
}

func TestSegment_Chinese(t *testing.T) {
	got := sentenceTexts(Segment("你好。我很好！谢谢", chineseProfile()))
	want := []string{"你好。", "我很好！", "谢谢"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segment = %q, want %q", got, want)
	}
}

func TestSegment_RightToLeftDoesNotChangeSegmentation(t *testing.T) {
	ltr := englishProfile()
	rtl := englishProfile()
	rtl.RightToLeft = true

	input := "One sentence. Another one."
	a := sentenceTexts(Segment(input, ltr))
	b := sentenceTexts(Segment(input, rtl))
	if !reflect.DeepEqual(a, b) {
		t.Errorf("RightToLeft changed segmentation: %q vs %q", a, b)
	}
}

func TestSegment_Arabic(t *testing.T) {
	p := &Profile{
		Code:           "ar",
		WordCharacters: `\x{0620}-\x{065F}\x{066E}-\x{06D3}`,
		SentenceEnd:    ".!?؟",
		RightToLeft:    true,
	}
	got := sentenceTexts(Segment("كيف حالك؟ أنا بخير.", p))
	want := []string{"كيف حالك؟ ", "أنا بخير."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segment = %q, want %q", got, want)
	}
}

func TestSegmenterWithRules_NoRules(t *testing.T) {
	s := NewSegmenterWithRules(englishProfile())
	got := sentenceTexts(s.Segment("Mr. Smith is here."))
	want := []string{"Mr. ", "Smith is here."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segment = %q, want %q", got, want)
	}
}

func TestSegment_Coverage(t *testing.T) {
	inputs := []string{
		"Mr. Smith met Dr. Jones. They talked.",
		"a.b.c. D. e?! F\n\n\ng",
		"...",
		"\n\n\n",
		"«Quoted.» Next: one; two.",
	}
	for _, input := range inputs {
		got := strings.Join(sentenceTexts(Segment(input, englishProfile())), "")
		if got != input {
			t.Errorf("Segment(%q) reassembles to %q", input, got)
		}
	}
}
