package tokenizer

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"github.com/golang/glog"
)

// ProcessSplitter delegates word segmentation to an external analyzer.
// The sentence is written to the command's stdin; the command prints one
// surface form per line. Blank lines, MeCab's "EOS" marker and anything
// after a tab on a line are ignored, so both the bridge scripts and a plain
// `mecab` invocation work.
type ProcessSplitter struct {
	command []string
	timeout time.Duration
	word    *regexp.Regexp
}

// NewProcessSplitter creates a splitter running command with the given
// timeout. Surfaces containing a word character become Word tokens.
func NewProcessSplitter(command []string, timeout time.Duration, word *regexp.Regexp) *ProcessSplitter {
	return &ProcessSplitter{command: command, timeout: timeout, word: word}
}

func (s *ProcessSplitter) Split(ctx context.Context, sentence string) ([]Token, error) {
	if sentence == "" {
		return nil, nil
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, s.command[0], s.command[1:]...)
	cmd.Stdin = strings.NewReader(sentence)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	if glog.V(1) {
		glog.Infof("segmenter %s: %d bytes in %v", s.command[0], len(sentence), time.Since(start))
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrSegmentationUnavailable, s.command[0], ctxErr)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("%w: %s exited with %d: %s",
				ErrSegmentationUnavailable, s.command[0], exitErr.ExitCode(), strings.TrimSpace(stderr.String()))
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrSegmentationUnavailable, s.command[0], err)
	}

	var segs []segment
	sc := bufio.NewScanner(&stdout)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		surface, _, _ := strings.Cut(strings.TrimRight(sc.Text(), "\r"), "\t")
		if surface == "" || surface == "EOS" {
			continue
		}
		kind := KindNonWord
		if s.word.MatchString(surface) {
			kind = KindWord
		}
		segs = append(segs, segment{surface: surface, kind: kind})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: read %s output: %v", ErrSegmentationUnavailable, s.command[0], err)
	}

	return align(sentence, segs, s.word)
}

// segment is one surface form reported by a morphological analyzer.
type segment struct {
	surface string
	kind    Kind
	reading string
}

// align maps analyzer surfaces back onto the sentence in order. Text the
// analyzer skipped (usually whitespace) is split with word so nothing is
// lost. A surface that cannot be found means the analyzer rewrote the
// input, which is reported rather than papered over.
func align(sentence string, segs []segment, word *regexp.Regexp) ([]Token, error) {
	tokens := make([]Token, 0, len(segs)+2)
	pos := 0
	for _, sg := range segs {
		idx := strings.Index(sentence[pos:], sg.surface)
		if idx < 0 {
			return nil, fmt.Errorf("%w: surface %q not found in input", ErrSegmentationUnavailable, sg.surface)
		}
		if idx > 0 {
			tokens = append(tokens, SplitWords(sentence[pos:pos+idx], word)...)
		}
		t := newToken(sg.surface, sg.kind)
		t.Reading = sg.reading
		tokens = append(tokens, t)
		pos += idx + len(sg.surface)
	}
	if pos < len(sentence) {
		tokens = append(tokens, SplitWords(sentence[pos:], word)...)
	}
	return tokens, nil
}
