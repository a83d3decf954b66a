package products

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c2399750-bit/Mido-Store/internal/domain/product"
	"github.com/c2399750-bit/Mido-Store/internal/domain/user"
	"github.com/c2399750-bit/Mido-Store/internal/kv"
	"github.com/c2399750-bit/Mido-Store/internal/util"
)

func newRepo(t *testing.T) *Repo {
	t.Helper()
	r, err := NewRepo(context.Background(), kv.NewMemory())
	require.NoError(t, err)
	return r
}

func validInput() Input {
	return Input{
		NameAr:        "حقيبة جلدية",
		NameEn:        "Leather Bag",
		Price:         decimal.NewFromInt(1200),
		DescriptionAr: "حقيبة يد",
		DescriptionEn: "Hand bag",
		Category:      "accessories",
		Image:         "https://example.com/bag.jpg",
		Stock:         4,
	}
}

func TestSeededCatalog(t *testing.T) {
	r := newRepo(t)
	all := r.All()
	require.Len(t, all, 4)
	assert.Equal(t, "1", all[0].ID)
}

func TestListFilter(t *testing.T) {
	r := newRepo(t)

	assert.Len(t, r.List(Filter{Category: "all"}), 4)

	shirts := r.List(Filter{Query: "SHIRT"})
	require.Len(t, shirts, 1)
	assert.Equal(t, "1", shirts[0].ID)

	arabic := r.List(Filter{Query: "جينز"})
	require.Len(t, arabic, 1)
	assert.Equal(t, "3", arabic[0].ID)

	for _, p := range r.List(Filter{Category: "men"}) {
		assert.Equal(t, "men", p.Category)
	}
	assert.Empty(t, r.List(Filter{Query: "shirt", Category: "women"}))
}

func TestCreateDefaultsOptionalLists(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)
	before := r.CountByCategory("accessories")

	p, err := r.Create(ctx, validInput())
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, []string{}, p.SpecsAr)
	assert.Equal(t, []string{}, p.AvailableColors)

	got, err := r.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Leather Bag", got.NameEn)
	assert.Equal(t, before+1, r.CountByCategory("accessories"))
	assert.Equal(t, p.ID, r.All()[0].ID)
}

func TestCreateValidation(t *testing.T) {
	r := newRepo(t)
	in := validInput()
	in.NameEn = " "
	in.Price = decimal.Zero

	_, err := r.Create(context.Background(), in)
	var ve *util.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.ElementsMatch(t, []string{"NameEn", "Price"}, ve.Fields)
	assert.Len(t, r.All(), 4)
}

func TestUpdateKeepsReviews(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)
	require.NoError(t, r.AddReview(ctx, "1", product.Review{ID: "r1", Rating: 5, Comment: "great"}))

	p, err := r.Update(ctx, "1", validInput())
	require.NoError(t, err)
	assert.Equal(t, "Leather Bag", p.NameEn)
	require.Len(t, p.Reviews, 1)
	assert.Equal(t, "r1", p.Reviews[0].ID)

	_, err = r.Update(ctx, "nope", validInput())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)

	require.NoError(t, r.Delete(ctx, "2"))
	_, err := r.Get("2")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, r.Delete(ctx, "2"), ErrNotFound)
}

func TestRelated(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)
	for i := 0; i < 5; i++ {
		in := validInput()
		in.Category = "men"
		_, err := r.Create(ctx, in)
		require.NoError(t, err)
	}

	p, err := r.Get("1")
	require.NoError(t, err)
	related := r.Related(p)
	assert.Len(t, related, RelatedLimit)
	for _, o := range related {
		assert.Equal(t, "men", o.Category)
		assert.NotEqual(t, "1", o.ID)
	}
}

func TestReviewsPrependAndAverage(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)
	author := user.User{Name: "sara", Email: "sara@example.com"}

	for _, rating := range []int{3, 4, 5} {
		rv, err := ReviewInput{Rating: rating, Comment: "ok"}.Review(author)
		require.NoError(t, err)
		require.NoError(t, r.AddReview(ctx, "1", rv))
	}

	p, err := r.Get("1")
	require.NoError(t, err)
	require.Len(t, p.Reviews, 3)
	assert.Equal(t, 5, p.Reviews[0].Rating)
	assert.Equal(t, "sara@example.com", p.Reviews[0].UserEmail)
	assert.Equal(t, "4.0", product.FormatRating(p.AverageRating()))

	other, err := r.Get("2")
	require.NoError(t, err)
	assert.Equal(t, "0.0", product.FormatRating(other.AverageRating()))
}

func TestReviewInputValidation(t *testing.T) {
	author := user.User{Name: "sara"}

	_, err := ReviewInput{Rating: 0, Comment: "ok"}.Review(author)
	var ve *util.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"Rating"}, ve.Fields)

	_, err = ReviewInput{Rating: 6, Comment: " "}.Review(author)
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"Comment", "Rating"}, ve.Fields)
}

func TestAddReviewUnknownProduct(t *testing.T) {
	err := newRepo(t).AddReview(context.Background(), "nope", product.Review{Rating: 5})
	assert.ErrorIs(t, err, ErrNotFound)
}
