package shipping

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/c2399750-bit/Mido-Store/internal/domain/shipping"
	"github.com/c2399750-bit/Mido-Store/internal/kv"
	"github.com/c2399750-bit/Mido-Store/internal/util"
)

var ErrNotFound = errors.New("shipping zone not found")

type Repo struct {
	slice *kv.Slice[[]shipping.Zone]
}

func NewRepo(ctx context.Context, store kv.Store) (*Repo, error) {
	sl, err := kv.OpenSlice(ctx, store, kv.KeyShippingZones, shipping.Defaults())
	if err != nil {
		return nil, err
	}
	return &Repo{slice: sl}, nil
}

func (r *Repo) List() []shipping.Zone {
	return slices.Clone(r.slice.Get())
}

func (r *Repo) Get(id string) (shipping.Zone, bool) {
	for _, z := range r.slice.Get() {
		if z.ID == id {
			return z, true
		}
	}
	return shipping.Zone{}, false
}

// ByName finds the zone whose name equals name exactly.
func (r *Repo) ByName(name string) (shipping.Zone, bool) {
	for _, z := range r.slice.Get() {
		if z.Name == name {
			return z, true
		}
	}
	return shipping.Zone{}, false
}

type Input struct {
	Name         string          `json:"name" validate:"notblank"`
	Price        decimal.Decimal `json:"price"`
	DeliveryTime string          `json:"deliveryTime"`
	Status       string          `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (in Input) validate() error {
	if err := util.Validate(in); err != nil {
		return err
	}
	if in.Price.IsNegative() {
		return util.Invalid("Price")
	}
	return nil
}

func (in Input) apply(z shipping.Zone) shipping.Zone {
	z.Name = strings.TrimSpace(in.Name)
	z.Price = in.Price
	z.DeliveryTime = in.DeliveryTime
	z.Status = in.Status
	if z.Status == "" {
		z.Status = shipping.StatusActive
	}
	return z
}

func (r *Repo) Create(ctx context.Context, in Input) (shipping.Zone, error) {
	if err := in.validate(); err != nil {
		return shipping.Zone{}, err
	}
	z := in.apply(shipping.Zone{ID: util.NewID()})
	err := r.slice.Update(ctx, func(cur []shipping.Zone) ([]shipping.Zone, error) {
		return append(slices.Clone(cur), z), nil
	})
	return z, err
}

func (r *Repo) Update(ctx context.Context, id string, in Input) (shipping.Zone, error) {
	if err := in.validate(); err != nil {
		return shipping.Zone{}, err
	}
	var out shipping.Zone
	err := r.slice.Update(ctx, func(cur []shipping.Zone) ([]shipping.Zone, error) {
		i := indexOf(cur, id)
		if i < 0 {
			return nil, ErrNotFound
		}
		next := slices.Clone(cur)
		next[i] = in.apply(cur[i])
		out = next[i]
		return next, nil
	})
	return out, err
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	return r.slice.Update(ctx, func(cur []shipping.Zone) ([]shipping.Zone, error) {
		i := indexOf(cur, id)
		if i < 0 {
			return nil, ErrNotFound
		}
		return slices.Delete(slices.Clone(cur), i, i+1), nil
	})
}

func indexOf(zones []shipping.Zone, id string) int {
	return slices.IndexFunc(zones, func(z shipping.Zone) bool { return z.ID == id })
}
