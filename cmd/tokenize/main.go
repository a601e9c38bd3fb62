package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/kerem-kaynak/textseg/pkg/tokenizer"
)

var (
	profilesPath = flag.String("profiles", "", "JSON file with language profiles (default: builtin profiles)")
	lang         = flag.String("lang", "en", "language profile code")
	lexiconPath  = flag.String("lexicon", "", "lexicon text file of known words and expressions")
	textID       = flag.Int64("text-id", 0, "emit persist records for this text id instead of statistics")
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: tokenize [flags] [text]")
	fmt.Fprintln(os.Stderr, "       tokenize [flags] -             (read text from stdin)")
	fmt.Fprintln(os.Stderr, "       tokenize [flags]               (interactive mode)")
	fmt.Fprintln(os.Stderr)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()
	defer glog.Flush()

	profile, err := loadProfile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading profile: %v\n", err)
		os.Exit(1)
	}

	tok, err := tokenizer.New(profile, tokenizer.DefaultConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating tokenizer: %v\n", err)
		os.Exit(1)
	}

	var lex tokenizer.Lexicon = tokenizer.NoLexicon
	words := 0
	if *lexiconPath != "" {
		dict, err := tokenizer.NewDictionary(*lexiconPath, profile.Tag())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading lexicon: %v\n", err)
			os.Exit(1)
		}
		snap, err := dict.Snapshot()
		dict.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading lexicon: %v\n", err)
			os.Exit(1)
		}
		lex = snap
		words = snap.Len()
		glog.V(1).Infof("lexicon %s: %d entries", *lexiconPath, words)
	}

	ctx := context.Background()

	// If text provided as argument, segment and exit
	if flag.NArg() > 0 {
		text := strings.Join(flag.Args(), " ")
		if text == "-" {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
				os.Exit(1)
			}
			text = string(data)
		}
		if err := run(ctx, tok, text, lex); err != nil {
			glog.Errorf("segment: %v", err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Interactive mode
	fmt.Printf("Text segmenter (interactive mode, profile %s)\n", profile.Code)
	fmt.Printf("Lexicon loaded: %d entries\n", words)
	fmt.Println("Type a sentence or paragraph, press Enter to segment. Ctrl+C to exit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		text := scanner.Text()
		if text == "" {
			continue
		}

		a, err := tok.Assemble(ctx, text, lex)
		if err != nil {
			fmt.Printf("  error: %v\n\n", err)
			continue
		}
		for _, s := range a.Sentences {
			parts := make([]string, 0, len(s.Tokens))
			for _, t := range s.Tokens {
				if t.IsWord() {
					mark := "?"
					if t.LexiconID != nil {
						mark = fmt.Sprint(*t.LexiconID)
					}
					parts = append(parts, fmt.Sprintf("[%s:%s]", t.Text, mark))
				} else if strings.TrimSpace(t.Text) != "" {
					parts = append(parts, t.Text)
				}
			}
			fmt.Printf("  %d: %s\n", s.Order, strings.Join(parts, " "))
		}
		fmt.Printf("  %d words, %d unknown (%.2f%%)\n\n", a.Stats.Words, a.Stats.Unknown, a.Stats.UnknownPercent)
	}
}

func loadProfile() (*tokenizer.Profile, error) {
	var set *tokenizer.ProfileSet
	var err error
	if *profilesPath != "" {
		set, err = tokenizer.LoadProfiles(*profilesPath)
	} else {
		set, err = tokenizer.BuiltinProfiles()
	}
	if err != nil {
		return nil, err
	}
	return set.Get(*lang)
}

// run prints dry-run statistics, or persist records when a text id is set.
func run(ctx context.Context, tok *tokenizer.Tokenizer, text string, lex tokenizer.Lexicon) error {
	if *textID == 0 {
		stats, err := tok.Stats(ctx, text, lex)
		if err != nil {
			return err
		}
		output, _ := json.Marshal(stats)
		fmt.Println(string(output))
		return nil
	}

	w := bufio.NewWriter(os.Stdout)
	stats, err := tok.Persist(ctx, *textID, text, lex, tokenizer.NewJSONGateway(w))
	if err != nil {
		return err
	}
	glog.Infof("text %d: %d sentences, %d words, %.2f%% unknown",
		*textID, stats.Sentences, stats.Words, stats.UnknownPercent)
	return w.Flush()
}
