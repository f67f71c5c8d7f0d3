package receipt

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Speller corrects misrecognized words in a single normalized line. An
// implementation must be replacement-only: it may substitute a word with
// its best dictionary match but must never insert or delete tokens, so
// the line keeps its shape for the regex stages downstream.
//
// Implementations live in internal/spell; the pipeline treats a speller
// as a pure external function and propagates its errors unchanged.
type Speller interface {
	Correct(ctx context.Context, line string) (string, error)
}

// normalize cleans up raw OCR lines one-to-one, preserving order:
// trim, unify decimal separators (every comma becomes a period before
// any numeric matching happens), lowercase, spell-correct.
//
// Normalization is not idempotent once a speller is involved, so the
// pipeline runs it exactly once per invocation.
func normalize(ctx context.Context, lines []string, speller Speller) ([]string, error) {
	lower := cases.Lower(language.Ukrainian)
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		line = strings.ReplaceAll(line, ",", ".")
		line = lower.String(line)
		if speller != nil {
			corrected, err := speller.Correct(ctx, line)
			if err != nil {
				return nil, fmt.Errorf("spell correction: %w", err)
			}
			line = corrected
		}
		out = append(out, line)
	}
	return out, nil
}
