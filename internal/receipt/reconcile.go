package receipt

import (
	"github.com/rezonia/receipt-processor/internal/money"
)

// reconcile produces the final total and settles single-item ambiguity.
// A total missing from the metadata is derived as the sum of item prices;
// a malformed price degrades the derivation to an empty total instead of
// failing the pipeline. When exactly one item exists and a total is
// known, the item's price is forced to that total: with no ambiguity
// about which total the line must equal, the declared total is more
// trustworthy than an OCR-corrupted per-line digit.
func reconcile(md metadata, items []Item) string {
	total := md.TotalPrice
	if total == "" && len(items) > 0 {
		prices := make([]string, len(items))
		for i, it := range items {
			prices[i] = it.Price
		}
		if sum, err := money.SumStrings(prices); err == nil {
			total = money.Format(sum)
		}
	}
	if len(items) == 1 && total != "" {
		items[0].Price = total
	}
	return total
}
