package receipt

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Currency maps a canonical currency code to the textual variants OCR is
// known to produce for it. Variants are matched as substrings against
// normalized (lowercased) lines.
type Currency struct {
	Code     string   `yaml:"code" json:"code"`
	Variants []string `yaml:"variants" json:"variants"`
}

// Tables is the canonicalization data the pipeline is constructed with.
// The zero value is not usable; start from DefaultTables or Load.
type Tables struct {
	// Currencies is scanned in slice order; the first variant found on a
	// line decides. A slice keeps the scan deterministic.
	Currencies []Currency `yaml:"currencies" json:"currencies"`

	// ExcludeCurrency names one canonical code that is reset to empty
	// after the metadata scan. It exists because at least one EUR variant
	// occurs inside ordinary Ukrainian words and fires spuriously.
	ExcludeCurrency string `yaml:"exclude_currency" json:"exclude_currency"`

	// DatePattern is the regular expression used to pull a purchase date
	// out of a line.
	DatePattern string `yaml:"date_pattern" json:"date_pattern"`

	// NoisePhrases drop any line containing one of them: store headers,
	// cashier boilerplate, fiscal-receipt boilerplate.
	NoisePhrases []string `yaml:"noise_phrases" json:"noise_phrases"`

	CashKeyword  string `yaml:"cash_keyword" json:"cash_keyword"`
	CardKeyword  string `yaml:"card_keyword" json:"card_keyword"`
	TotalKeyword string `yaml:"total_keyword" json:"total_keyword"`

	// AlnumThreshold is the minimum fraction of letters and digits a line
	// must carry to survive the mostly-punctuation filter.
	AlnumThreshold float64 `yaml:"alnum_threshold" json:"alnum_threshold"`
}

// DefaultTables returns the Ukrainian-locale tables the service ships
// with.
func DefaultTables() *Tables {
	return &Tables{
		Currencies: []Currency{
			{Code: "UAH", Variants: []string{"грн", "uah", "₴"}},
			{Code: "USD", Variants: []string{"usd", "$", "долар"}},
			{Code: "EUR", Variants: []string{"eur", "€", "євро", "ев"}},
		},
		ExcludeCurrency: "EUR",
		DatePattern:     `\d{2}[./]\d{2}[./]\d{4}`,
		NoisePhrases: []string{
			"касир",
			"чек",
			"фн прро",
			"фіскальний",
			"дякуємо",
			"ласкаво просимо",
		},
		CashKeyword:    "готівка",
		CardKeyword:    "картка",
		TotalKeyword:   "сума",
		AlnumThreshold: 0.5,
	}
}

// Load reads tables from a YAML file. Fields absent from the file keep
// their defaults, so a deployment can override just the noise phrases or
// just the currency table.
func Load(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tables: %w", err)
	}
	t := DefaultTables()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("parse tables: %w", err)
	}
	return t, nil
}

// compiled holds the patterns derived from Tables once, at pipeline
// construction. Regexps are safe for concurrent use, so one compiled set
// serves all invocations.
type compiled struct {
	tables *Tables
	date   *regexp.Regexp
}

func (t *Tables) compile() (*compiled, error) {
	if t.TotalKeyword == "" {
		return nil, fmt.Errorf("tables: total keyword must not be empty")
	}
	date, err := regexp.Compile(t.DatePattern)
	if err != nil {
		return nil, fmt.Errorf("tables: date pattern: %w", err)
	}
	return &compiled{tables: t, date: date}, nil
}
