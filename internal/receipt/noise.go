package receipt

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	// reDecorative matches separator art: a run of two or more of the
	// symbols receipts use as horizontal rules.
	reDecorative = regexp.MustCompile(`^[+*#-]{2,}$`)

	// reNumericOnly matches lines that are nothing but digits, spaces and
	// periods, typically stray price echoes below the item block.
	reNumericOnly = regexp.MustCompile(`^[\d\s.]+$`)
)

// filterNoise drops decorative and non-informative lines, preserving the
// order of survivors. A line is dropped when any of the rules fires:
// mostly punctuation, decorative symbol run, configured noise phrase, or
// pure numeric artifact. Running the filter on its own output is a no-op.
func (c *compiled) filterNoise(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if c.isNoise(line) {
			continue
		}
		out = append(out, line)
	}
	return out
}

func (c *compiled) isNoise(line string) bool {
	if mostlyPunctuation(line, c.tables.AlnumThreshold) {
		return true
	}
	trimmed := strings.TrimSpace(line)
	if reDecorative.MatchString(trimmed) {
		return true
	}
	for _, phrase := range c.tables.NoisePhrases {
		if strings.Contains(line, phrase) {
			return true
		}
	}
	return reNumericOnly.MatchString(trimmed)
}

// mostlyPunctuation reports whether the fraction of letters and digits in
// the line is below threshold. Empty lines are not considered noise here;
// later stages ignore them on their own.
func mostlyPunctuation(line string, threshold float64) bool {
	if line == "" {
		return false
	}
	var alnum, total int
	for _, r := range line {
		total++
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			alnum++
		}
	}
	return float64(alnum)/float64(total) < threshold
}

// dropTotalLines removes lines carrying the total keyword. The metadata
// pass has already consumed them; left in place they would be mis-parsed
// as items.
func (c *compiled) dropTotalLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.Contains(line, c.tables.TotalKeyword) {
			continue
		}
		out = append(out, line)
	}
	return out
}
