package receipt

import (
	"regexp"
	"strings"
)

var (
	// reItem pulls (name, price) pairs out of the candidate blob. The
	// grammar, case-insensitively: shortest possible description, a
	// quantity, an optional unit fragment, a multiplication marker (Latin
	// x or Cyrillic х), a unit price, an optional unit fragment, "=", and
	// the final price. RE2 has no lookahead, so the description is bounded
	// by the consuming numeric tail instead; matching is leftmost and
	// non-overlapping, so multi-item receipts fall out naturally.
	reItem = regexp.MustCompile(
		`(?i)(.+?)\s+\d+(?:\.\d+)?(?:\s*[^\d]+)?\s*(?:x|х)\s*` +
			`\d+(?:\.\d+)?(?:\s*[^\d]+)?\s*=\s*(\d+(?:\.\d+)?)`)

	// reLetter covers the recognized alphabet, Latin and Ukrainian
	// Cyrillic. Lines are lowercased by the time this runs.
	reLetter = regexp.MustCompile(`[a-zа-яіїєґ]`)
)

// extractItems runs the item grammar over the candidate blob. Zero
// matches is a valid outcome and yields an empty, non-nil slice.
func extractItems(candidate string) []Item {
	items := []Item{}
	for _, m := range reItem.FindAllStringSubmatch(candidate, -1) {
		items = append(items, Item{
			Name:  strings.TrimSpace(m[1]),
			Price: strings.TrimSpace(m[2]),
		})
	}
	return items
}

// fallbackItem synthesizes a single item when the grammar found nothing
// but the metadata carries a total: if exactly one reconstructed line is
// non-empty and contains a letter, that line is the purchase and the
// declared total is its price. Zero or several such lines is ambiguous
// and deliberately left unresolved.
func fallbackItem(lines []string, total string) []Item {
	var lettered []string
	for _, line := range lines {
		if line != "" && reLetter.MatchString(line) {
			lettered = append(lettered, line)
		}
	}
	if len(lettered) != 1 {
		return nil
	}
	return []Item{{Name: lettered[0], Price: total}}
}
