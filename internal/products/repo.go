package products

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/c2399750-bit/Mido-Store/internal/domain/category"
	"github.com/c2399750-bit/Mido-Store/internal/domain/product"
	"github.com/c2399750-bit/Mido-Store/internal/domain/user"
	"github.com/c2399750-bit/Mido-Store/internal/kv"
	"github.com/c2399750-bit/Mido-Store/internal/util"
)

var ErrNotFound = errors.New("product not found")

// RelatedLimit caps the "related products" strip on the detail page.
const RelatedLimit = 4

type Repo struct {
	slice *kv.Slice[[]product.Product]
}

func NewRepo(ctx context.Context, store kv.Store) (*Repo, error) {
	sl, err := kv.OpenSlice(ctx, store, kv.KeyProducts, product.Seed())
	if err != nil {
		return nil, err
	}
	return &Repo{slice: sl}, nil
}

// Filter narrows the storefront listing. Empty fields do not filter.
type Filter struct {
	Query    string
	Category string
}

func (f Filter) match(p product.Product) bool {
	if f.Category != "" && f.Category != category.All && p.Category != f.Category {
		return false
	}
	if f.Query == "" {
		return true
	}
	q := strings.ToLower(f.Query)
	return strings.Contains(strings.ToLower(p.NameAr), q) ||
		strings.Contains(strings.ToLower(p.NameEn), q)
}

func (r *Repo) List(f Filter) []product.Product {
	out := []product.Product{}
	for _, p := range r.slice.Get() {
		if f.match(p) {
			out = append(out, p.Clone())
		}
	}
	return out
}

func (r *Repo) All() []product.Product {
	return r.List(Filter{})
}

func (r *Repo) Get(id string) (product.Product, error) {
	for _, p := range r.slice.Get() {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return product.Product{}, ErrNotFound
}

// Related lists other products of the same category, in catalog order.
func (r *Repo) Related(p product.Product) []product.Product {
	out := []product.Product{}
	for _, o := range r.slice.Get() {
		if o.Category == p.Category && o.ID != p.ID {
			out = append(out, o.Clone())
			if len(out) == RelatedLimit {
				break
			}
		}
	}
	return out
}

func (r *Repo) CountByCategory(name string) int {
	n := 0
	for _, p := range r.slice.Get() {
		if p.Category == name {
			n++
		}
	}
	return n
}

// Input carries every editable product field. Reviews are not editable.
type Input struct {
	NameAr          string          `json:"nameAr" validate:"notblank"`
	NameEn          string          `json:"nameEn" validate:"notblank"`
	Price           decimal.Decimal `json:"price"`
	DescriptionAr   string          `json:"descriptionAr" validate:"notblank"`
	DescriptionEn   string          `json:"descriptionEn" validate:"notblank"`
	Category        string          `json:"category" validate:"notblank"`
	Image           string          `json:"image" validate:"notblank"`
	SpecsAr         []string        `json:"specsAr"`
	SpecsEn         []string        `json:"specsEn"`
	Stock           int             `json:"stock" validate:"gte=0"`
	AvailableColors []string        `json:"availableColors"`
	AvailableSizes  []string        `json:"availableSizes"`
}

func (in Input) validate() error {
	err := util.Validate(in)
	if !in.Price.IsPositive() {
		var ve *util.ValidationError
		if errors.As(err, &ve) {
			ve.Fields = append(ve.Fields, "Price")
			return ve
		}
		if err == nil {
			return util.Invalid("Price")
		}
	}
	return err
}

func (in Input) apply(p product.Product) product.Product {
	p.NameAr = strings.TrimSpace(in.NameAr)
	p.NameEn = strings.TrimSpace(in.NameEn)
	p.Price = in.Price
	p.DescriptionAr = in.DescriptionAr
	p.DescriptionEn = in.DescriptionEn
	p.Category = in.Category
	p.Image = in.Image
	p.SpecsAr = nonNil(in.SpecsAr)
	p.SpecsEn = nonNil(in.SpecsEn)
	p.Stock = in.Stock
	p.AvailableColors = nonNil(in.AvailableColors)
	p.AvailableSizes = nonNil(in.AvailableSizes)
	return p
}

// Create puts a new product at the top of the catalog.
func (r *Repo) Create(ctx context.Context, in Input) (product.Product, error) {
	if err := in.validate(); err != nil {
		return product.Product{}, err
	}
	p := in.apply(product.Product{ID: util.NewID()})

	err := r.slice.Update(ctx, func(cur []product.Product) ([]product.Product, error) {
		return append([]product.Product{p}, cur...), nil
	})
	if err != nil {
		return product.Product{}, err
	}
	return p.Clone(), nil
}

// Update replaces every editable field of product id; reviews are kept.
func (r *Repo) Update(ctx context.Context, id string, in Input) (product.Product, error) {
	if err := in.validate(); err != nil {
		return product.Product{}, err
	}
	var out product.Product
	err := r.slice.Update(ctx, func(cur []product.Product) ([]product.Product, error) {
		i := indexOf(cur, id)
		if i < 0 {
			return nil, ErrNotFound
		}
		next := slices.Clone(cur)
		next[i] = in.apply(cur[i].Clone())
		out = next[i].Clone()
		return next, nil
	})
	return out, err
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	return r.slice.Update(ctx, func(cur []product.Product) ([]product.Product, error) {
		i := indexOf(cur, id)
		if i < 0 {
			return nil, ErrNotFound
		}
		return slices.Delete(slices.Clone(cur), i, i+1), nil
	})
}

type ReviewInput struct {
	Rating  int    `json:"rating" validate:"min=1,max=5"`
	Comment string `json:"comment" validate:"notblank"`
}

// Review stamps a validated review with its author and the current time.
func (in ReviewInput) Review(author user.User) (product.Review, error) {
	if err := util.Validate(in); err != nil {
		return product.Review{}, err
	}
	return product.Review{
		ID:        util.NewID(),
		UserName:  author.Name,
		UserEmail: author.Email,
		Rating:    in.Rating,
		Comment:   strings.TrimSpace(in.Comment),
		Date:      util.Now(),
	}, nil
}

// AddReview puts rv at the top of the product's review list.
func (r *Repo) AddReview(ctx context.Context, id string, rv product.Review) error {
	return r.slice.Update(ctx, func(cur []product.Product) ([]product.Product, error) {
		i := indexOf(cur, id)
		if i < 0 {
			return nil, ErrNotFound
		}
		next := slices.Clone(cur)
		p := cur[i].Clone()
		p.Reviews = append([]product.Review{rv}, p.Reviews...)
		next[i] = p
		return next, nil
	})
}

func indexOf(list []product.Product, id string) int {
	return slices.IndexFunc(list, func(p product.Product) bool { return p.ID == id })
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return slices.Clone(s)
}
