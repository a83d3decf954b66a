package orders

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/c2399750-bit/Mido-Store/internal/domain/cart"
	"github.com/c2399750-bit/Mido-Store/internal/domain/order"
	"github.com/c2399750-bit/Mido-Store/internal/domain/shipping"
	"github.com/c2399750-bit/Mido-Store/internal/domain/user"
	"github.com/c2399750-bit/Mido-Store/internal/mail"
	"github.com/c2399750-bit/Mido-Store/internal/util"
)

var ErrEmptyCart = errors.New("cart is empty")

// CartSource is the cart an order is placed from. ClearLines removes only
// the lines of the given snapshot.
type CartSource interface {
	Items() []cart.CartItem
	ClearLines(ctx context.Context, lines []cart.CartItem) error
}

type ZoneSource interface {
	Get(id string) (shipping.Zone, bool)
	ByName(name string) (shipping.Zone, bool)
}

// CheckoutForm is the shipping details form. ZoneID, when set, takes
// precedence over matching the governorate against zone names.
type CheckoutForm struct {
	Name          string              `json:"name" validate:"fullname"`
	Phone         string              `json:"phone" validate:"min=10"`
	AltPhone      string              `json:"altPhone"`
	Governorate   string              `json:"governorate" validate:"notblank"`
	City          string              `json:"city" validate:"notblank"`
	Street        string              `json:"street" validate:"notblank"`
	Landmark      string              `json:"landmark"`
	PaymentMethod order.PaymentMethod `json:"paymentMethod"`
	ZoneID        string              `json:"zoneId"`
}

func (f CheckoutForm) Validate() error {
	err := util.Validate(f)
	if f.PaymentMethod == "" || f.PaymentMethod.Valid() {
		return err
	}
	var ve *util.ValidationError
	if errors.As(err, &ve) {
		ve.Fields = append(ve.Fields, "PaymentMethod")
		return ve
	}
	if err != nil {
		return err
	}
	return util.Invalid("PaymentMethod")
}

func (f CheckoutForm) address() string {
	return fmt.Sprintf("%s, %s, %s", f.Governorate, f.City, f.Street)
}

type Quote struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
	Zone     *shipping.Zone  `json:"zone,omitempty"`
}

type Checkout struct {
	mu     sync.Mutex
	orders *Repo
	cart   CartSource
	zones  ZoneSource
	mailer mail.Mailer
}

// NewCheckout wires checkout; mailer may be nil to skip confirmations.
func NewCheckout(orders *Repo, c CartSource, zones ZoneSource, mailer mail.Mailer) *Checkout {
	return &Checkout{orders: orders, cart: c, zones: zones, mailer: mailer}
}

// Quote prices the current cart for the chosen region. An unknown region
// ships for free.
func (co *Checkout) Quote(f CheckoutForm) Quote {
	return co.quote(co.cart.Items(), f)
}

func (co *Checkout) quote(items []cart.CartItem, f CheckoutForm) Quote {
	q := Quote{Subtotal: cart.Total(items), Shipping: decimal.Zero}
	zone, ok := co.zones.Get(f.ZoneID)
	if !ok {
		zone, ok = co.zones.ByName(f.Governorate)
	}
	if ok {
		q.Shipping = zone.Price
		q.Zone = &zone
	}
	q.Total = q.Subtotal.Add(q.Shipping)
	return q
}

// Place turns the cart into a pending order and takes the ordered lines out
// of the cart. Placements run one at a time, so a cart is ordered once.
// Stock is not decremented and payment is not verified.
func (co *Checkout) Place(ctx context.Context, u user.User, f CheckoutForm) (order.Order, error) {
	if err := f.Validate(); err != nil {
		return order.Order{}, err
	}
	o, err := co.place(ctx, u, f)
	if err != nil {
		return order.Order{}, err
	}
	co.notify(o)
	return o, nil
}

func (co *Checkout) place(ctx context.Context, u user.User, f CheckoutForm) (order.Order, error) {
	co.mu.Lock()
	defer co.mu.Unlock()

	items := co.cart.Items()
	if len(items) == 0 {
		return order.Order{}, ErrEmptyCart
	}
	if f.PaymentMethod == "" {
		f.PaymentMethod = order.PaymentCOD
	}

	o := order.Order{
		ID:            util.NewID(),
		CustomerName:  strings.TrimSpace(f.Name),
		Email:         u.Email,
		Phone:         f.Phone,
		Address:       f.address(),
		PaymentMethod: f.PaymentMethod,
		Total:         co.quote(items, f).Total,
		Status:        order.StatusPending,
		Date:          util.Now(),
		Items:         items,
	}
	if err := co.orders.Prepend(ctx, o); err != nil {
		return order.Order{}, fmt.Errorf("failed to save order: %w", err)
	}
	if err := co.cart.ClearLines(ctx, items); err != nil {
		log.Printf("orders: order %s placed but cart not cleared: %v", o.ID, err)
	}
	return o, nil
}

func (co *Checkout) notify(o order.Order) {
	if co.mailer == nil || o.Email == "" || !strings.Contains(o.Email, "@") {
		return
	}
	body := "Thank you for your order, " + o.CustomerName + ".\n\n" +
		"Order: " + o.ID + "\n" +
		"Total: " + o.Total.StringFixed(2) + " EGP\n" +
		"Ship to: " + o.Address + "\n\n" +
		"We will contact you on " + o.Phone + " before delivery."
	if err := co.mailer.Send(o.Email, "Order confirmation", body); err != nil {
		log.Printf("orders: confirmation mail for %s failed: %v", o.ID, err)
	}
}
