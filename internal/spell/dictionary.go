// Package spell provides spell-correction collaborators for the receipt
// pipeline. Both implementations honor the replacement-only contract of
// receipt.Speller: a misrecognized word may be substituted, but tokens
// are never inserted or deleted, so the line keeps its shape.
package spell

import (
	"context"
	"regexp"
	"sort"
)

// reWord matches the letter runs correction applies to. Apostrophes stay
// inside a word (Ukrainian uses them: ім'я).
var reWord = regexp.MustCompile(`[a-zа-яіїєґ']+`)

// Dictionary is an offline corrector: a word not found in the dictionary
// is replaced by its best single-edit neighbor, when one exists.
// Everything else, digits and symbols included, passes through untouched.
type Dictionary struct {
	// rank maps each known word to its priority; earlier words in the
	// source list win ties among edit candidates.
	rank     map[string]int
	alphabet []rune
}

// DefaultWords is the built-in receipt vocabulary, most important first.
// It covers the terms the metadata extractor keys on, so the corrector
// can recover a mangled "готівка" or "сума" before extraction runs.
var DefaultWords = []string{
	"готівка", "картка", "сума", "валюта", "чек", "каса", "касир",
	"пдв", "без", "фіскальний", "грн", "решта", "знижка", "товар",
	"ціна", "кількість", "дякуємо", "онлайн",
}

// NewDictionary builds a corrector over the given word list. An empty
// list falls back to DefaultWords.
func NewDictionary(words []string) *Dictionary {
	if len(words) == 0 {
		words = DefaultWords
	}
	rank := make(map[string]int, len(words))
	runes := map[rune]struct{}{}
	for i, w := range words {
		if _, ok := rank[w]; !ok {
			rank[w] = len(words) - i
		}
		for _, r := range w {
			runes[r] = struct{}{}
		}
	}
	alphabet := make([]rune, 0, len(runes))
	for r := range runes {
		alphabet = append(alphabet, r)
	}
	sort.Slice(alphabet, func(i, j int) bool { return alphabet[i] < alphabet[j] })
	return &Dictionary{rank: rank, alphabet: alphabet}
}

// Correct replaces each unknown word that has a known single-edit
// neighbor. It never fails; the error return satisfies receipt.Speller.
func (d *Dictionary) Correct(_ context.Context, line string) (string, error) {
	return reWord.ReplaceAllStringFunc(line, d.correctWord), nil
}

func (d *Dictionary) correctWord(word string) string {
	runes := []rune(word)
	// Short words produce too many false neighbors to touch.
	if len(runes) < 3 {
		return word
	}
	if _, known := d.rank[word]; known {
		return word
	}
	best, bestRank := "", 0
	for _, cand := range d.edits1(runes) {
		if r, ok := d.rank[cand]; ok && r > bestRank {
			best, bestRank = cand, r
		}
	}
	if best != "" {
		return best
	}
	return word
}

// edits1 generates every candidate one edit away from the word:
// deletions, adjacent transpositions, substitutions, and insertions.
func (d *Dictionary) edits1(word []rune) []string {
	var out []string
	n := len(word)

	for i := 0; i < n; i++ {
		out = append(out, string(word[:i])+string(word[i+1:]))
	}
	for i := 0; i < n-1; i++ {
		t := append([]rune{}, word...)
		t[i], t[i+1] = t[i+1], t[i]
		out = append(out, string(t))
	}
	for i := 0; i < n; i++ {
		for _, r := range d.alphabet {
			t := append([]rune{}, word[:i]...)
			t = append(t, r)
			t = append(t, word[i+1:]...)
			out = append(out, string(t))
		}
	}
	for i := 0; i <= n; i++ {
		for _, r := range d.alphabet {
			t := append([]rune{}, word[:i]...)
			t = append(t, r)
			t = append(t, word[i:]...)
			out = append(out, string(t))
		}
	}
	return out
}
