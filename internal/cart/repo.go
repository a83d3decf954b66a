package cart

import (
	"context"
	"errors"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/c2399750-bit/Mido-Store/internal/domain/cart"
	"github.com/c2399750-bit/Mido-Store/internal/domain/product"
	"github.com/c2399750-bit/Mido-Store/internal/kv"
)

var (
	ErrLineNotFound    = errors.New("cart line not found")
	ErrOptionsRequired = errors.New("select a color and size first")
	ErrUnknownOption   = errors.New("selected option is not offered for this product")
)

type Repo struct {
	slice *kv.Slice[[]cart.CartItem]
}

func NewRepo(ctx context.Context, store kv.Store) (*Repo, error) {
	sl, err := kv.OpenSlice(ctx, store, kv.KeyCart, []cart.CartItem{})
	if err != nil {
		return nil, err
	}
	return &Repo{slice: sl}, nil
}

func (r *Repo) Items() []cart.CartItem {
	return cart.Snapshot(r.slice.Get())
}

func (r *Repo) Total() decimal.Decimal {
	return cart.Total(r.slice.Get())
}

func (r *Repo) Count() int {
	return cart.Count(r.slice.Get())
}

// Add merges item into the line with the same product, color and size, or
// appends it as a new line of quantity 1.
func (r *Repo) Add(ctx context.Context, item cart.CartItem) error {
	return r.slice.Update(ctx, func(cur []cart.CartItem) ([]cart.CartItem, error) {
		next := slices.Clone(cur)
		key := item.Key()
		if i := indexOf(next, key); i >= 0 {
			next[i].Quantity++
			return next, nil
		}
		item.Product = item.Product.Clone()
		item.Quantity = 1
		return append(next, item), nil
	})
}

// AddProduct adds p with the chosen options. Products that offer colors or
// sizes need one of each picked from the offered list.
func (r *Repo) AddProduct(ctx context.Context, p product.Product, color, size string) error {
	if (len(p.AvailableColors) > 0 && color == "") || (len(p.AvailableSizes) > 0 && size == "") {
		return ErrOptionsRequired
	}
	if (color != "" && !p.HasColor(color)) || (size != "" && !p.HasSize(size)) {
		return ErrUnknownOption
	}
	return r.Add(ctx, cart.CartItem{Product: p, SelectedColor: color, SelectedSize: size})
}

// QuickAdd adds p from a product listing without choosing options; the
// line carries no color or size.
func (r *Repo) QuickAdd(ctx context.Context, p product.Product) error {
	return r.Add(ctx, cart.CartItem{Product: p})
}

// UpdateQuantity changes a line by delta; the result never drops below 1.
func (r *Repo) UpdateQuantity(ctx context.Context, key cart.LineKey, delta int) error {
	return r.slice.Update(ctx, func(cur []cart.CartItem) ([]cart.CartItem, error) {
		i := indexOf(cur, key)
		if i < 0 {
			return nil, ErrLineNotFound
		}
		next := slices.Clone(cur)
		next[i].Quantity = max(1, next[i].Quantity+delta)
		return next, nil
	})
}

// Remove drops exactly the line identified by key.
func (r *Repo) Remove(ctx context.Context, key cart.LineKey) error {
	return r.slice.Update(ctx, func(cur []cart.CartItem) ([]cart.CartItem, error) {
		i := indexOf(cur, key)
		if i < 0 {
			return nil, ErrLineNotFound
		}
		return slices.Delete(slices.Clone(cur), i, i+1), nil
	})
}

// RemoveProduct drops every line of product id, whatever its options.
func (r *Repo) RemoveProduct(ctx context.Context, id string) error {
	return r.slice.Update(ctx, func(cur []cart.CartItem) ([]cart.CartItem, error) {
		return slices.DeleteFunc(slices.Clone(cur), func(it cart.CartItem) bool {
			return it.ID == id
		}), nil
	})
}

// ClearLines takes the given lines out of the cart, e.g. the snapshot an
// order was placed from. Lines added since the snapshot stay, and a line
// whose quantity grew keeps the difference.
func (r *Repo) ClearLines(ctx context.Context, lines []cart.CartItem) error {
	taken := map[cart.LineKey]int{}
	for _, l := range lines {
		taken[l.Key()] += l.Quantity
	}
	return r.slice.Update(ctx, func(cur []cart.CartItem) ([]cart.CartItem, error) {
		next := make([]cart.CartItem, 0, len(cur))
		for _, it := range cur {
			it.Quantity -= taken[it.Key()]
			if it.Quantity > 0 {
				next = append(next, it)
			}
		}
		return next, nil
	})
}

func (r *Repo) Clear(ctx context.Context) error {
	return r.slice.Update(ctx, func([]cart.CartItem) ([]cart.CartItem, error) {
		return []cart.CartItem{}, nil
	})
}

func indexOf(items []cart.CartItem, key cart.LineKey) int {
	return slices.IndexFunc(items, func(it cart.CartItem) bool { return it.Key() == key })
}
