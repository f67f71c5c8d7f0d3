// Package receipt turns noisy OCR output from a photographed retail
// receipt into a structured record: purchase date, payment method,
// currency, line items with prices, and a reconciled total.
//
// The pipeline is tuned for Ukrainian fiscal receipts: OCR output with
// transposed characters, merged or split lines, and inconsistent decimal
// separators. All vocabulary (currency variants, keywords, noise phrases)
// is supplied through Tables, so other locales can be targeted by
// configuration alone.
package receipt

import (
	"encoding/json"
	"fmt"
)

// Item is a single purchased position. On the wire it is the 2-element
// array [name, price], matching the API contract.
type Item struct {
	Name  string
	Price string
}

// MarshalJSON encodes the item as [name, price].
func (it Item) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{it.Name, it.Price})
}

// UnmarshalJSON decodes the [name, price] pair form.
func (it *Item) UnmarshalJSON(data []byte) error {
	var pair [2]string
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("item must be a [name, price] pair: %w", err)
	}
	it.Name = pair[0]
	it.Price = pair[1]
	return nil
}

// Result is the structured record produced by the pipeline. Every string
// field may be empty: absence of a value is a normal outcome, never an
// error. Items is never nil.
type Result struct {
	Date          string `json:"date"`
	PaymentMethod string `json:"payment_method"`
	Currency      string `json:"currency"`
	Items         []Item `json:"items"`
	TotalPrice    string `json:"total_price"`
}

// metadata accumulates the per-field first-match-wins scan over the
// normalized lines. TotalPrice is the only field the reconciler may
// overwrite afterwards.
type metadata struct {
	Date          string
	PaymentMethod string
	Currency      string
	TotalPrice    string
}
