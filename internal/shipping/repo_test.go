package shipping

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c2399750-bit/Mido-Store/internal/domain/shipping"
	"github.com/c2399750-bit/Mido-Store/internal/kv"
	"github.com/c2399750-bit/Mido-Store/internal/util"
)

func newRepo(t *testing.T) *Repo {
	t.Helper()
	r, err := NewRepo(context.Background(), kv.NewMemory())
	require.NoError(t, err)
	return r
}

func TestDefaultZones(t *testing.T) {
	r := newRepo(t)

	z, ok := r.ByName("القاهرة والجيزة")
	require.True(t, ok)
	assert.True(t, decimal.NewFromInt(50).Equal(z.Price))
	assert.Len(t, r.List(), 3)

	_, ok = r.ByName("القاهرة")
	assert.False(t, ok)
}

func TestZoneCRUD(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)

	z, err := r.Create(ctx, Input{Name: " Sinai ", Price: decimal.NewFromInt(120), DeliveryTime: "5-7 days"})
	require.NoError(t, err)
	assert.Equal(t, "Sinai", z.Name)
	assert.Equal(t, shipping.StatusActive, z.Status)

	z, err = r.Update(ctx, z.ID, Input{Name: "Sinai", Price: decimal.NewFromInt(100), Status: shipping.StatusInactive})
	require.NoError(t, err)
	got, ok := r.Get(z.ID)
	require.True(t, ok)
	assert.Equal(t, shipping.StatusInactive, got.Status)
	assert.True(t, decimal.NewFromInt(100).Equal(got.Price))

	require.NoError(t, r.Delete(ctx, z.ID))
	assert.ErrorIs(t, r.Delete(ctx, z.ID), ErrNotFound)
	_, err = r.Update(ctx, z.ID, Input{Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestZoneValidation(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)

	_, err := r.Create(ctx, Input{Name: "", Price: decimal.NewFromInt(10)})
	var ve *util.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"Name"}, ve.Fields)

	_, err = r.Create(ctx, Input{Name: "Delta", Price: decimal.NewFromInt(-1)})
	assert.ErrorAs(t, err, &ve)

	_, err = r.Create(ctx, Input{Name: "Delta", Status: "paused"})
	assert.ErrorAs(t, err, &ve)
	assert.Len(t, r.List(), 3)
}
