package orders

import (
	"github.com/shopspring/decimal"

	"github.com/c2399750-bit/Mido-Store/internal/domain/order"
	"github.com/c2399750-bit/Mido-Store/internal/domain/product"
)

const LowStockThreshold = 5

type Catalog interface {
	All() []product.Product
}

type Stats struct {
	Products      int               `json:"products"`
	Orders        int               `json:"orders"`
	PendingOrders int               `json:"pendingOrders"`
	Revenue       decimal.Decimal   `json:"revenue"`
	LowStock      []product.Product `json:"lowStock"`
}

// ComputeStats summarizes the dashboard. Revenue excludes cancelled orders.
func ComputeStats(catalog Catalog, orders *Repo) Stats {
	s := Stats{Revenue: decimal.Zero, LowStock: []product.Product{}}
	for _, p := range catalog.All() {
		s.Products++
		if p.Stock < LowStockThreshold {
			s.LowStock = append(s.LowStock, p)
		}
	}
	for _, o := range orders.List() {
		s.Orders++
		if o.Status == order.StatusPending {
			s.PendingOrders++
		}
		if o.Status != order.StatusCancelled {
			s.Revenue = s.Revenue.Add(o.Total)
		}
	}
	return s
}
