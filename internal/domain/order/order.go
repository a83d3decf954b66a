package order

import (
	"github.com/shopspring/decimal"

	"github.com/c2399750-bit/Mido-Store/internal/domain/cart"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentCOD      PaymentMethod = "cod"
	PaymentVodafone PaymentMethod = "vodafone"
	PaymentOrange   PaymentMethod = "orange"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentCOD || m == PaymentVodafone || m == PaymentOrange
}

// Order is never deleted. Items is a copy of the cart at placement time.
type Order struct {
	ID            string          `json:"id"`
	CustomerName  string          `json:"customerName"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone,omitempty"`
	Address       string          `json:"address"`
	PaymentMethod PaymentMethod   `json:"paymentMethod,omitempty"`
	Total         decimal.Decimal `json:"total"`
	Status        Status          `json:"status"`
	Date          string          `json:"date"`
	Items         []cart.CartItem `json:"items"`
}
