package receipt

import (
	"strings"
	"unicode/utf8"
)

// reconstruct repairs OCR line-splitting: when a line without an "="
// token is immediately followed by one with it, the two were almost
// always a single printed row (item description on one line, the
// quantity × price = total computation on the next). The merge is
// single-pass and non-overlapping; a line consumed as the second half is
// never reconsidered as a first half. Order is preserved.
func reconstruct(lines []string) []string {
	out := make([]string, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		if i+1 < len(lines) &&
			!strings.Contains(lines[i], "=") &&
			strings.Contains(lines[i+1], "=") {
			out = append(out, lines[i]+" "+lines[i+1])
			i++
			continue
		}
		out = append(out, lines[i])
	}
	return out
}

// selectCandidate picks the single text blob the item grammar runs
// against: the longest line containing "=" when any exists (the most
// complete OCR capture of the computation row), otherwise all lines
// joined with spaces. Length is counted in characters, not bytes;
// Cyrillic runes are two bytes and byte length would skew the pick on
// mixed-script receipts.
func selectCandidate(lines []string) string {
	best := ""
	bestLen := -1
	for _, line := range lines {
		if !strings.Contains(line, "=") {
			continue
		}
		if n := utf8.RuneCountInString(line); n > bestLen {
			best = line
			bestLen = n
		}
	}
	if bestLen >= 0 {
		return best
	}
	return strings.Join(lines, " ")
}
