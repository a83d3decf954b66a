package orders

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c2399750-bit/Mido-Store/internal/domain/order"
	"github.com/c2399750-bit/Mido-Store/internal/domain/product"
	"github.com/c2399750-bit/Mido-Store/internal/kv"
)

func seedOrder(t *testing.T, r *Repo, id, email string, total int64, status order.Status) {
	t.Helper()
	require.NoError(t, r.Prepend(context.Background(), order.Order{
		ID:           id,
		CustomerName: "Sara Ahmed Ali",
		Email:        email,
		Address:      "Cairo, Nasr City, Street 9",
		Total:        decimal.NewFromInt(total),
		Status:       status,
		Date:         "2025-01-01T00:00:00Z",
	}))
}

func TestPrependKeepsNewestFirst(t *testing.T) {
	r, err := NewRepo(context.Background(), kv.NewMemory())
	require.NoError(t, err)

	seedOrder(t, r, "a", "sara@example.com", 100, order.StatusPending)
	seedOrder(t, r, "b", "omar@example.com", 200, order.StatusPending)

	list := r.List()
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ID)
	assert.Equal(t, "a", list[1].ID)
}

func TestForUserFiltersByEmail(t *testing.T) {
	r, err := NewRepo(context.Background(), kv.NewMemory())
	require.NoError(t, err)

	seedOrder(t, r, "a", "sara@example.com", 100, order.StatusPending)
	seedOrder(t, r, "b", "omar@example.com", 200, order.StatusPending)
	seedOrder(t, r, "c", "sara@example.com", 300, order.StatusPending)

	mine := r.ForUser("sara@example.com")
	require.Len(t, mine, 2)
	assert.Equal(t, "c", mine[0].ID)
	assert.Equal(t, "a", mine[1].ID)
	assert.Empty(t, r.ForUser("nobody@example.com"))
}

func TestSetStatusAnyDirection(t *testing.T) {
	ctx := context.Background()
	r, err := NewRepo(ctx, kv.NewMemory())
	require.NoError(t, err)
	seedOrder(t, r, "a", "sara@example.com", 100, order.StatusPending)

	o, err := r.SetStatus(ctx, "a", order.StatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, order.StatusDelivered, o.Status)

	o, err = r.SetStatus(ctx, "a", order.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, order.StatusPending, o.Status)

	_, err = r.SetStatus(ctx, "a", "lost")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	_, err = r.SetStatus(ctx, "missing", order.StatusShipped)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := r.Get("a")
	require.NoError(t, err)
	assert.Equal(t, order.StatusPending, got.Status)
}

func TestOrdersSurviveReopen(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	r, err := NewRepo(ctx, store)
	require.NoError(t, err)
	seedOrder(t, r, "a", "sara@example.com", 100, order.StatusShipped)

	reopened, err := NewRepo(ctx, store)
	require.NoError(t, err)
	got, err := reopened.Get("a")
	require.NoError(t, err)
	assert.Equal(t, order.StatusShipped, got.Status)
	assert.True(t, decimal.NewFromInt(100).Equal(got.Total))
}

type fixedCatalog []product.Product

func (c fixedCatalog) All() []product.Product { return c }

func TestComputeStats(t *testing.T) {
	r, err := NewRepo(context.Background(), kv.NewMemory())
	require.NoError(t, err)
	seedOrder(t, r, "a", "sara@example.com", 500, order.StatusPending)
	seedOrder(t, r, "b", "sara@example.com", 300, order.StatusCancelled)
	seedOrder(t, r, "c", "omar@example.com", 200, order.StatusDelivered)

	catalog := fixedCatalog{
		{ID: "1", Stock: 25},
		{ID: "2", Stock: 3},
		{ID: "3", Stock: 0},
	}
	s := ComputeStats(catalog, r)

	assert.Equal(t, 3, s.Products)
	assert.Equal(t, 3, s.Orders)
	assert.Equal(t, 1, s.PendingOrders)
	assert.True(t, decimal.NewFromInt(700).Equal(s.Revenue), "got %s", s.Revenue)
	require.Len(t, s.LowStock, 2)
	assert.Equal(t, "2", s.LowStock[0].ID)
}
