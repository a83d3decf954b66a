package cart

import (
	"github.com/shopspring/decimal"

	"github.com/c2399750-bit/Mido-Store/internal/domain/product"
)

// CartItem is a product snapshot plus the shopper's choices.
type CartItem struct {
	product.Product
	Quantity      int    `json:"quantity"`
	SelectedColor string `json:"selectedColor,omitempty"`
	SelectedSize  string `json:"selectedSize,omitempty"`
}

// LineKey identifies a cart line: the same product in another color or size
// is a separate line.
type LineKey struct {
	ID    string `json:"id"`
	Color string `json:"selectedColor"`
	Size  string `json:"selectedSize"`
}

func (it CartItem) Key() LineKey {
	return LineKey{ID: it.ID, Color: it.SelectedColor, Size: it.SelectedSize}
}

func (it CartItem) LineTotal() decimal.Decimal {
	return it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// Total is the sum of price x quantity over items.
func Total(items []CartItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.LineTotal())
	}
	return sum
}

// Count is the number of units across all lines.
func Count(items []CartItem) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}

// Snapshot copies items so later cart or catalog edits do not show through.
func Snapshot(items []CartItem) []CartItem {
	out := make([]CartItem, len(items))
	for i, it := range items {
		it.Product = it.Product.Clone()
		out[i] = it
	}
	return out
}
