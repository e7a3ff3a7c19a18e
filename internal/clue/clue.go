// Package clue authors clue text for extracted crossword entries.
// The authoring strategy is pluggable; only the one-clue-per-word
// guarantee is load-bearing.
package clue

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/bodul/crossgen/internal/grid"
	"github.com/bodul/crossgen/internal/puzzle"
)

// Source turns a word, theme and difficulty into clue text.
// Implementations must return a non-empty clue or an error.
type Source interface {
	ClueFor(ctx context.Context, word, theme string, d puzzle.Difficulty) (string, error)
}

// TemplateSource authors clues from the word's own letters. It is the
// offline default: deterministic, stateless and safe for concurrent
// use. Clue directness tracks difficulty.
type TemplateSource struct{}

// ClueFor builds a clue whose style depends on the difficulty: easy
// clues give the first and last letters, medium clues a single inner
// letter, hard clues only the alphabetized letters.
func (TemplateSource) ClueFor(_ context.Context, word, theme string, d puzzle.Difficulty) (string, error) {
	word = strings.ToUpper(word)
	if word == "" {
		return "", fmt.Errorf("empty word")
	}
	var text string
	switch d {
	case puzzle.Easy:
		text = fmt.Sprintf("%d letters, from %c to %c", len(word), word[0], word[len(word)-1])
	case puzzle.Hard:
		text = fmt.Sprintf("Rearrange: %s", sortLetters(word))
	default:
		mid := len(word) / 2
		text = fmt.Sprintf("%d letters with %c in position %d", len(word), word[mid], mid+1)
	}
	if theme != "" {
		text = fmt.Sprintf("%s (%s)", text, theme)
	}
	return text, nil
}

func sortLetters(word string) string {
	letters := strings.Split(word, "")
	sort.Strings(letters)
	return strings.Join(letters, "")
}

// Assign produces exactly one clue per extracted entry. Primary-source
// failures fall back to the template source per word, so the set is
// always complete whether or not an external source is reachable.
func Assign(ctx context.Context, src Source, across, down []grid.Entry, theme string, d puzzle.Difficulty) puzzle.ClueSet {
	if src == nil {
		src = TemplateSource{}
	}
	return puzzle.ClueSet{
		Across: clueEntries(ctx, src, across, theme, d),
		Down:   clueEntries(ctx, src, down, theme, d),
	}
}

func clueEntries(ctx context.Context, src Source, entries []grid.Entry, theme string, d puzzle.Difficulty) []puzzle.Clue {
	clues := make([]puzzle.Clue, 0, len(entries))
	for _, e := range entries {
		text, err := src.ClueFor(ctx, e.Word, theme, d)
		if err != nil || text == "" {
			slog.Warn("clue source failed, using template clue", "word", e.Word, "err", err)
			text, _ = TemplateSource{}.ClueFor(ctx, e.Word, theme, d)
		}
		clues = append(clues, puzzle.Clue{Number: e.Number, Text: text, Answer: e.Word})
	}
	return clues
}
