// Package dictionary loads and indexes the word lists used to fill
// crossword grids.
package dictionary

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

//go:embed words.txt
var builtinWords []byte

// Dictionary is an immutable word list indexed by length.
type Dictionary struct {
	byLength map[int][]string
	all      map[string]bool
	minLen   int
	maxLen   int
}

var (
	builtinOnce sync.Once
	builtin     *Dictionary
)

// Builtin returns the embedded dictionary, parsed once on first use.
func Builtin() *Dictionary {
	builtinOnce.Do(func() {
		d, err := parse(bytes.NewReader(builtinWords))
		if err != nil || d.Len() == 0 {
			// The embedded list is part of the binary; an empty or
			// unparsable one is a build defect, not a runtime state.
			panic(fmt.Sprintf("built-in dictionary unusable: %v", err))
		}
		builtin = d
	})
	return builtin
}

// Load reads a newline-delimited word list from path. A missing,
// unreadable or empty file is not an error: generation must never
// hard-fail on a bad word list, so Load falls back to the built-in
// dictionary and logs the substitution.
func Load(path string) *Dictionary {
	if path == "" {
		return Builtin()
	}
	f, err := os.Open(path)
	if err != nil {
		slog.Warn("word list unreadable, using built-in dictionary", "path", path, "err", err)
		return Builtin()
	}
	defer f.Close()

	d, err := parse(f)
	if err != nil || d.Len() == 0 {
		slog.Warn("word list empty, using built-in dictionary", "path", path)
		return Builtin()
	}
	return d
}

func parse(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{
		byLength: make(map[int][]string),
		all:      make(map[string]bool),
	}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		word := strings.ToUpper(strings.TrimSpace(sc.Text()))
		if len(word) < 2 || d.all[word] {
			continue
		}
		d.all[word] = true
		d.byLength[len(word)] = append(d.byLength[len(word)], word)
		if d.minLen == 0 || len(word) < d.minLen {
			d.minLen = len(word)
		}
		if len(word) > d.maxLen {
			d.maxLen = len(word)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan word list: %w", err)
	}
	return d, nil
}

// WordsOfLength returns every word of exactly n letters.
func (d *Dictionary) WordsOfLength(n int) []string {
	return d.byLength[n]
}

// Contains reports membership, case-insensitively.
func (d *Dictionary) Contains(word string) bool {
	return d.all[strings.ToUpper(word)]
}

// Len returns the total word count.
func (d *Dictionary) Len() int {
	return len(d.all)
}

// MinLength returns the shortest word length in the dictionary.
func (d *Dictionary) MinLength() int {
	return d.minLen
}

// MaxLength returns the longest word length in the dictionary. It
// caps the open run lengths a block pattern may leave, since a longer
// run is a slot no word can fill.
func (d *Dictionary) MaxLength() int {
	return d.maxLen
}
