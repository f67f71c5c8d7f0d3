package receipt

import (
	"context"
)

// Pipeline is the receipt extraction pipeline. It is stateless across
// invocations and holds only read-only configuration, so a single
// Pipeline may serve concurrent callers.
type Pipeline struct {
	compiled *compiled
	speller  Speller
}

// Option configures a Pipeline.
type Option func(*options)

type options struct {
	tables  *Tables
	speller Speller
}

// WithTables supplies canonicalization tables other than the defaults.
func WithTables(t *Tables) Option {
	return func(o *options) {
		o.tables = t
	}
}

// WithSpeller injects a spell-correction collaborator. Without one the
// correction step is skipped.
func WithSpeller(s Speller) Option {
	return func(o *options) {
		o.speller = s
	}
}

// NewPipeline builds a pipeline. Malformed tables (an invalid date
// pattern, a missing total keyword) fail construction.
func NewPipeline(opts ...Option) (*Pipeline, error) {
	o := &options{tables: DefaultTables()}
	for _, opt := range opts {
		opt(o)
	}
	c, err := o.tables.compile()
	if err != nil {
		return nil, err
	}
	return &Pipeline{compiled: c, speller: o.speller}, nil
}

// Process runs the full pipeline over the OCR lines, in their original
// reading order, and assembles the result record. Sparse results are
// normal; the only errors are collaborator failures (spell correction),
// which propagate unmasked.
func (p *Pipeline) Process(ctx context.Context, lines []string) (*Result, error) {
	normalized, err := normalize(ctx, lines, p.speller)
	if err != nil {
		return nil, err
	}

	md := p.compiled.extractMetadata(normalized)

	filtered := p.compiled.filterNoise(normalized)
	filtered = p.compiled.dropTotalLines(filtered)
	merged := reconstruct(filtered)

	items := extractItems(selectCandidate(merged))
	if len(items) == 0 && md.TotalPrice != "" {
		if fb := fallbackItem(merged, md.TotalPrice); fb != nil {
			items = fb
		}
	}

	md.TotalPrice = reconcile(md, items)

	return &Result{
		Date:          md.Date,
		PaymentMethod: md.PaymentMethod,
		Currency:      md.Currency,
		Items:         items,
		TotalPrice:    md.TotalPrice,
	}, nil
}
