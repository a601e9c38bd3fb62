package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kerem-kaynak/textseg/pkg/tokenizer"
)

const (
	iterations = 20000
	warmup     = 500
	boxWidth   = 62

	// ANSI color codes
	colorReset  = "\033[0m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorDim    = "\033[2m"
)

var line = strings.Repeat("─", boxWidth)

func main() {
	lang := "en"
	if len(os.Args) > 1 {
		lang = os.Args[1]
	}
	lexPath := ""
	if len(os.Args) > 2 {
		lexPath = os.Args[2]
	}

	set, err := tokenizer.BuiltinProfiles()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	profile, err := set.Get(lang)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Building %s pipeline... ", profile.Name)
	start := time.Now()
	tok, err := tokenizer.New(profile, tokenizer.DefaultConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var lex *tokenizer.Snapshot
	if lexPath != "" {
		var dict *tokenizer.Dictionary
		dict, err = tokenizer.NewDictionary(lexPath, profile.Tag())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		lex, err = dict.Snapshot()
		dict.Close()
	} else {
		lex, err = tokenizer.NewSnapshot(map[string]uint64{
			"in front of": 1,
			"test word":   2,
			"the":         3,
		}, profile.Tag())
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("done (%d lexicon entries in %v)\n", lex.Len(), time.Since(start).Round(time.Millisecond))
	fmt.Printf("Iterations: %d (warmup: %d)\n", iterations, warmup)
	fmt.Println("Reference: 1 second = 1,000,000,000 ns")
	fmt.Println()

	// Test data
	ctx := context.Background()
	sentence := "They stood in front of the station and talked."
	paragraph := "Mr. Smith met Dr. Jones at 10.30 in front of the station. " +
		"They talked about the weather, the news and a test word or two!\n\n" +
		"Later that day it rained. Nobody cared much; the city was used to it."

	// Full pipeline benchmarks
	printHeader("FULL PIPELINE THROUGHPUT")
	bench("Sentence (9 words)", func() { tok.Parse(ctx, sentence, lex) })
	bench("Paragraph (40 words)", func() { tok.Parse(ctx, paragraph, lex) })
	bench("Stats (dry run)", func() { tok.Stats(ctx, paragraph, lex) })
	printFooter()
	fmt.Println()

	// Component breakdown
	printHeader("COMPONENT BREAKDOWN")

	norm := tokenizer.NewNormalizer(profile)
	bench("Normalizer", func() {
		norm.Normalize(paragraph)
	})

	seg := tokenizer.NewSegmenter(profile)
	bench("Sentence segmenter", func() {
		seg.Segment(paragraph)
	})

	splitter, err := tokenizer.NewWordSplitter(profile, time.Second)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	bench("Word splitter", func() {
		splitter.Split(ctx, sentence)
	})

	tokens, _ := splitter.Split(ctx, sentence)
	matcher := tokenizer.NewMatcher(tokenizer.DefaultMaxTerms)
	bench("Expression matcher", func() {
		matcher.Merge(tokens, lex)
	})

	bench("Lexicon lookup (cached)", func() {
		lex.Lookup("In Front Of")
	})
	printFooter()
	fmt.Println()

	// Normalizer steps
	printHeader("NORMALIZER STEPS BREAKDOWN")
	bench("Line endings", func() {
		tokenizer.NormalizeLineEndings("one\r\ntwo\rthree")
	})
	subst := tokenizer.Substitute(profile.Substitutions)
	bench("Substitutions", func() {
		subst("isn\u2019t it")
	})
	bench("Escape braces", func() {
		tokenizer.EscapeBraces("{a} and {b}")
	})
	bench("Remove spaces", func() {
		tokenizer.RemoveSpaces("你 好 吗")
	})
	bench("Fold key", func() {
		tokenizer.FoldKey("In Front Of", profile.Tag())
	})
	printFooter()
}

func bench(name string, fn func()) {
	for i := 0; i < warmup; i++ {
		fn()
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		fn()
	}
	elapsed := time.Since(start)

	opsPerSec := float64(iterations) / elapsed.Seconds()
	nsPerOp := float64(elapsed.Nanoseconds()) / float64(iterations)

	// Truncate name if too long
	displayName := name
	if len(displayName) > 26 {
		displayName = displayName[:26]
	}

	// Format with colors - build plain string for padding, colored for display
	plain := fmt.Sprintf("  %-26s %10.0f ops/sec %8.0f ns", displayName, opsPerSec, nsPerOp)
	padded := padLine(plain)

	// Now colorize the padded string
	colored := fmt.Sprintf("  %-26s %s%10.0f%s ops/sec %s%8.0f%s ns",
		displayName,
		colorGreen, opsPerSec, colorReset,
		colorYellow, nsPerOp, colorReset)

	// Calculate how much padding we added
	extraPad := len(padded) - len(plain)
	if extraPad > 0 {
		colored += strings.Repeat(" ", extraPad)
	}

	fmt.Println(colorDim + "│" + colorReset + colored + colorDim + "│" + colorReset)
}

func padLine(content string) string {
	if len(content) >= boxWidth {
		return content[:boxWidth]
	}
	return content + strings.Repeat(" ", boxWidth-len(content))
}

func printHeader(title string) {
	fmt.Println(colorDim + "┌" + line + "┐" + colorReset)
	printTitleRow("  " + title)
	fmt.Println(colorDim + "├" + line + "┤" + colorReset)
}

func printFooter() {
	fmt.Println(colorDim + "└" + line + "┘" + colorReset)
}

func printTitleRow(content string) {
	fmt.Println(colorDim + "│" + colorReset + colorCyan + padLine(content) + colorReset + colorDim + "│" + colorReset)
}
