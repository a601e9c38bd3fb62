package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/kerem-kaynak/textseg/pkg/tokenizer"
	"golang.org/x/text/language"
)

var lang = flag.String("lang", "en", "language used to fold phrases")

func main() {
	flag.Usage = printUsage
	flag.Parse()
	defer glog.Flush()

	args := flag.Args()
	if len(args) < 2 {
		printUsage()
		os.Exit(1)
	}

	dictPath := args[0]
	command := args[1]
	args = args[2:]

	tag, err := language.Parse(*lang)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: bad language %q: %v\n", *lang, err)
		os.Exit(1)
	}

	dict, err := tokenizer.NewDictionary(dictPath, tag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading lexicon: %v\n", err)
		os.Exit(1)
	}
	defer dict.Close()

	switch command {
	case "add":
		if len(args) < 1 {
			fmt.Println("Error: add requires at least one phrase")
			os.Exit(1)
		}
		for _, arg := range args {
			phrase, id, err := parseEntry(arg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			assigned, err := dict.AddEntry(phrase, id)
			if err != nil {
				glog.Errorf("add %q: %v", phrase, err)
				fmt.Fprintf(os.Stderr, "Error adding '%s': %v\n", phrase, err)
				os.Exit(1)
			}
			fmt.Printf("Added: %s (%d)\n", phrase, assigned)
		}
		fmt.Printf("Total entries: %d\n", dict.WordCount())

	case "remove":
		if len(args) < 1 {
			fmt.Println("Error: remove requires at least one phrase")
			os.Exit(1)
		}
		for _, phrase := range args {
			if err := dict.RemoveEntry(phrase); err != nil {
				glog.Errorf("remove %q: %v", phrase, err)
				fmt.Fprintf(os.Stderr, "Error removing '%s': %v\n", phrase, err)
				os.Exit(1)
			}
			fmt.Printf("Removed: %s\n", phrase)
		}
		fmt.Printf("Total entries: %d\n", dict.WordCount())

	case "contains":
		if len(args) < 1 {
			fmt.Println("Error: contains requires a phrase")
			os.Exit(1)
		}
		phrase := strings.Join(args, " ")
		if id, ok := dict.Lookup(phrase); ok {
			fmt.Printf("'%s' exists in lexicon (id %d)\n", phrase, id)
		} else {
			fmt.Printf("'%s' NOT in lexicon\n", phrase)
			os.Exit(1)
		}

	case "rebuild":
		if err := dict.RebuildFST(); err != nil {
			glog.Errorf("rebuild %s: %v", dictPath, err)
			fmt.Fprintf(os.Stderr, "Error rebuilding FST: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("FST rebuilt. Total entries: %d\n", dict.WordCount())

	case "stats":
		snap, err := dict.Snapshot()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Lexicon: %s\n", dictPath)
		fmt.Printf("Entry count: %d\n", dict.WordCount())
		fmt.Printf("Longest entry: %d terms\n", snap.MaxTerms())

	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

// parseEntry splits "phrase=id"; a bare phrase gets the next free id.
func parseEntry(arg string) (string, uint64, error) {
	i := strings.LastIndex(arg, "=")
	if i < 0 {
		return arg, 0, nil
	}
	id, err := strconv.ParseUint(arg[i+1:], 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("bad id in %q", arg)
	}
	return arg[:i], id, nil
}

func printUsage() {
	fmt.Println("Usage: dictmgr [-lang code] <lexicon.txt> <command> [args...]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  add <phrase[=id]> [...]    Add phrases to the lexicon")
	fmt.Println("  remove <phrase> [...]      Remove phrases from the lexicon")
	fmt.Println("  contains <phrase>          Check if a phrase exists")
	fmt.Println("  rebuild                    Rebuild FST from text file")
	fmt.Println("  stats                      Show lexicon statistics")
}
