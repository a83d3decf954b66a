package orders

import (
	"context"
	"errors"
	"slices"

	"github.com/c2399750-bit/Mido-Store/internal/domain/cart"
	"github.com/c2399750-bit/Mido-Store/internal/domain/order"
	"github.com/c2399750-bit/Mido-Store/internal/kv"
)

var (
	ErrNotFound      = errors.New("order not found")
	ErrInvalidStatus = errors.New("unknown order status")
)

// Repo keeps placed orders, newest first.
type Repo struct {
	slice *kv.Slice[[]order.Order]
}

func NewRepo(ctx context.Context, store kv.Store) (*Repo, error) {
	sl, err := kv.OpenSlice(ctx, store, kv.KeyOrders, []order.Order{})
	if err != nil {
		return nil, err
	}
	return &Repo{slice: sl}, nil
}

func (r *Repo) List() []order.Order {
	return cloneOrders(r.slice.Get(), func(order.Order) bool { return true })
}

// ForUser lists the orders placed with the given e-mail.
func (r *Repo) ForUser(email string) []order.Order {
	return cloneOrders(r.slice.Get(), func(o order.Order) bool { return o.Email == email })
}

func (r *Repo) Get(id string) (order.Order, error) {
	for _, o := range r.slice.Get() {
		if o.ID == id {
			o.Items = cart.Snapshot(o.Items)
			return o, nil
		}
	}
	return order.Order{}, ErrNotFound
}

func (r *Repo) Prepend(ctx context.Context, o order.Order) error {
	o.Items = cart.Snapshot(o.Items)
	return r.slice.Update(ctx, func(cur []order.Order) ([]order.Order, error) {
		return append([]order.Order{o}, cur...), nil
	})
}

// SetStatus assigns any of the five statuses; transitions are not restricted.
func (r *Repo) SetStatus(ctx context.Context, id string, status order.Status) (order.Order, error) {
	if !status.Valid() {
		return order.Order{}, ErrInvalidStatus
	}
	var out order.Order
	err := r.slice.Update(ctx, func(cur []order.Order) ([]order.Order, error) {
		i := slices.IndexFunc(cur, func(o order.Order) bool { return o.ID == id })
		if i < 0 {
			return nil, ErrNotFound
		}
		next := slices.Clone(cur)
		next[i].Status = status
		out = next[i]
		out.Items = cart.Snapshot(out.Items)
		return next, nil
	})
	return out, err
}

func cloneOrders(list []order.Order, keep func(order.Order) bool) []order.Order {
	out := []order.Order{}
	for _, o := range list {
		if keep(o) {
			o.Items = cart.Snapshot(o.Items)
			out = append(out, o)
		}
	}
	return out
}
