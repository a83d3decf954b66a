package categories

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/c2399750-bit/Mido-Store/internal/domain/category"
	"github.com/c2399750-bit/Mido-Store/internal/kv"
)

var (
	ErrDuplicate = errors.New("category already exists")
	ErrNotFound  = errors.New("category not found")
	ErrEmptyName = errors.New("category name is required")
	ErrReserved  = errors.New("category name is reserved")
	ErrSlash     = errors.New("category name cannot contain /")
)

// InUseError is returned by Delete when products still reference the
// category and the caller has not confirmed.
type InUseError struct {
	Name     string
	Products int
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("category %q is used by %d product(s)", e.Name, e.Products)
}

// ProductRefs counts catalog products filed under a category name.
type ProductRefs interface {
	CountByCategory(name string) int
}

type Repo struct {
	slice *kv.Slice[[]string]
	refs  ProductRefs
}

func NewRepo(ctx context.Context, store kv.Store, refs ProductRefs) (*Repo, error) {
	sl, err := kv.OpenSlice(ctx, store, kv.KeyCategories, category.Defaults())
	if err != nil {
		return nil, err
	}
	return &Repo{slice: sl, refs: refs}, nil
}

func (r *Repo) List() []string {
	return slices.Clone(r.slice.Get())
}

func (r *Repo) Exists(name string) bool {
	return slices.Contains(r.slice.Get(), name)
}

// Create appends name. Names compare exactly, so "Men" and "men" are distinct.
func (r *Repo) Create(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if name == category.All {
		return ErrReserved
	}
	// names are path segments in the admin routes
	if strings.Contains(name, "/") {
		return ErrSlash
	}
	return r.slice.Update(ctx, func(cur []string) ([]string, error) {
		if slices.Contains(cur, name) {
			return nil, ErrDuplicate
		}
		return append(slices.Clone(cur), name), nil
	})
}

// Delete removes the category entry. Products keep their category string;
// when any exist, confirm must be true.
func (r *Repo) Delete(ctx context.Context, name string, confirm bool) error {
	if !confirm && r.refs != nil {
		if n := r.refs.CountByCategory(name); n > 0 {
			return &InUseError{Name: name, Products: n}
		}
	}
	return r.slice.Update(ctx, func(cur []string) ([]string, error) {
		i := slices.Index(cur, name)
		if i < 0 {
			return nil, ErrNotFound
		}
		return slices.Delete(slices.Clone(cur), i, i+1), nil
	})
}
