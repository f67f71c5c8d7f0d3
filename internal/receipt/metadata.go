package receipt

import (
	"regexp"
	"strings"
)

// reAmount matches a two-decimal currency amount anywhere in a line.
var reAmount = regexp.MustCompile(`\d+\.\d{2}`)

// extractMetadata folds over the normalized lines in document order and
// fills the metadata record. Every field is first-match-wins: once set,
// later candidates are ignored. Absence of any field is not an error.
func (c *compiled) extractMetadata(lines []string) metadata {
	t := c.tables
	var md metadata
	for i, line := range lines {
		if strings.Contains(line, t.CashKeyword) {
			if md.PaymentMethod == "" {
				md.PaymentMethod = t.CashKeyword
			}
		} else if strings.Contains(line, t.CardKeyword) {
			if md.PaymentMethod == "" {
				md.PaymentMethod = t.CardKeyword
			}
		}

		if md.Currency == "" {
			md.Currency = c.scanCurrency(line)
		}

		if md.TotalPrice == "" && strings.Contains(line, t.TotalKeyword) {
			md.TotalPrice = c.scanTotal(lines, i)
		}

		if md.Date == "" {
			if m := c.date.FindString(line); m != "" {
				md.Date = m
			}
		}
	}

	// Known false positive: one currency's variants occur inside ordinary
	// locale words, so a lone hit on that code is discarded.
	if md.Currency != "" && md.Currency == t.ExcludeCurrency {
		md.Currency = ""
	}
	return md
}

// scanCurrency returns the canonical code of the first variant found on
// the line, in table order.
func (c *compiled) scanCurrency(line string) string {
	for _, cur := range c.tables.Currencies {
		for _, v := range cur.Variants {
			if strings.Contains(line, v) {
				return cur.Code
			}
		}
	}
	return ""
}

// scanTotal pulls the declared total off a line carrying the total
// keyword. OCR habitually zeroes the amount on the VAT-exempt marker
// line, so a missing or "0.00" candidate falls through to the next line.
func (c *compiled) scanTotal(lines []string, idx int) string {
	candidate := reAmount.FindString(lines[idx])
	if candidate == "" || candidate == "0.00" {
		if idx+1 < len(lines) {
			if next := reAmount.FindString(lines[idx+1]); next != "" {
				candidate = next
			}
		}
	}
	if candidate == "" || candidate == "0.00" {
		return ""
	}
	return candidate
}
