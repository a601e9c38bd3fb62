package tokenizer

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/blevesearch/vellum"
	"golang.org/x/text/language"
)

// Dictionary is the user's editable lexicon. The text file (one
// "phrase<TAB>id" per line) is the source of truth; an FST next to it
// serves lookups. Lines without an id get the next free id on load.
type Dictionary struct {
	fst     *vellum.FST
	entries map[string]uint64 // folded phrase → id
	tag     language.Tag
	fstPath string
	txtPath string
	mu      sync.RWMutex
}

// NewDictionary loads the lexicon at txtPath, folding phrases for tag.
// The FST is always rebuilt from the text file, which may have been edited
// since the FST was written.
func NewDictionary(txtPath string, tag language.Tag) (*Dictionary, error) {
	d := &Dictionary{
		entries: make(map[string]uint64),
		tag:     tag,
		fstPath: strings.TrimSuffix(txtPath, ".txt") + ".fst",
		txtPath: txtPath,
	}

	if err := d.loadTextFile(); err != nil {
		return nil, err
	}
	if err := d.rebuildFST(); err != nil {
		return nil, err
	}
	return d, nil
}

// loadTextFile reads entries from the source text file.
func (d *Dictionary) loadTextFile() error {
	file, err := os.Open(d.txtPath)
	if err != nil {
		return err
	}
	defer file.Close()

	var bare []string
	var maxID uint64
	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		phrase, rawID, hasID := strings.Cut(text, "\t")
		key := FoldKey(strings.TrimSpace(phrase), d.tag)
		if !hasID {
			bare = append(bare, key)
			continue
		}
		id, err := strconv.ParseUint(strings.TrimSpace(rawID), 10, 64)
		if err != nil {
			return fmt.Errorf("%s:%d: bad id %q", d.txtPath, line, rawID)
		}
		d.entries[key] = id
		maxID = max(maxID, id)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	for _, key := range bare {
		if _, exists := d.entries[key]; exists {
			continue
		}
		maxID++
		d.entries[key] = maxID
	}
	return nil
}

// Contains checks if a phrase is in the lexicon.
func (d *Dictionary) Contains(phrase string) bool {
	_, ok := d.Lookup(phrase)
	return ok
}

// Lookup returns the id stored for phrase.
func (d *Dictionary) Lookup(phrase string) (uint64, bool) {
	key := FoldKey(phrase, d.tag)

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.fst == nil {
		return 0, false
	}
	id, exists, _ := d.fst.Get([]byte(key))
	return id, exists
}

// AddEntry adds phrase with id and rebuilds the FST. An id of 0 assigns
// the next free id, or keeps the id of a phrase already present. The
// phrase's id is returned.
func (d *Dictionary) AddEntry(phrase string, id uint64) (uint64, error) {
	key := FoldKey(strings.TrimSpace(phrase), d.tag)
	if key == "" {
		return 0, &InputError{Reason: "empty phrase"}
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if id == 0 {
		if existing, ok := d.entries[key]; ok {
			return existing, nil
		}
		for _, existing := range d.entries {
			id = max(id, existing)
		}
		id++
	}
	d.entries[key] = id
	return id, d.rebuildFST()
}

// RemoveEntry removes phrase and rebuilds the FST.
func (d *Dictionary) RemoveEntry(phrase string) error {
	key := FoldKey(strings.TrimSpace(phrase), d.tag)

	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.entries, key)
	return d.rebuildFST()
}

// RebuildFST rebuilds the FST from the current entries and saves to disk.
func (d *Dictionary) RebuildFST() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rebuildFST()
}

// rebuildFST rebuilds FST without locking (caller must hold lock).
func (d *Dictionary) rebuildFST() error {
	if d.fst != nil {
		d.fst.Close()
		d.fst = nil
	}

	data, err := buildFST(d.entries)
	if err != nil {
		return err
	}
	if err := os.WriteFile(d.fstPath, data, 0o644); err != nil {
		return err
	}

	fst, err := vellum.Open(d.fstPath)
	if err != nil {
		return err
	}
	d.fst = fst

	return d.saveTextFile()
}

// saveTextFile writes the current entries back to the text file.
func (d *Dictionary) saveTextFile() error {
	keys := make([]string, 0, len(d.entries))
	for key := range d.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	file, err := os.Create(d.txtPath)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, key := range keys {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", key, d.entries[key]); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Snapshot returns an immutable copy of the lexicon for one or more
// segmentation calls.
func (d *Dictionary) Snapshot() (*Snapshot, error) {
	d.mu.RLock()
	entries := make(map[string]uint64, len(d.entries))
	for k, v := range d.entries {
		entries[k] = v
	}
	d.mu.RUnlock()

	return NewSnapshot(entries, d.tag)
}

// Close releases FST resources.
func (d *Dictionary) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.fst != nil {
		err := d.fst.Close()
		d.fst = nil
		return err
	}
	return nil
}

// WordCount returns the number of entries in the lexicon.
func (d *Dictionary) WordCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.entries)
}
