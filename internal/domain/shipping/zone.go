package shipping

import "github.com/shopspring/decimal"

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Zone is a delivery region with a flat price.
type Zone struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	DeliveryTime string          `json:"deliveryTime"`
	Status       string          `json:"status"`
}

func Defaults() []Zone {
	return []Zone{
		{ID: "1", Name: "القاهرة والجيزة", Price: decimal.NewFromInt(50), DeliveryTime: "24-48 ساعة", Status: StatusActive},
		{ID: "2", Name: "الإسكندرية والساحل", Price: decimal.NewFromInt(70), DeliveryTime: "2-3 أيام", Status: StatusActive},
		{ID: "3", Name: "الصعيد ومدن القناة", Price: decimal.NewFromInt(90), DeliveryTime: "4-6 أيام", Status: StatusActive},
	}
}
