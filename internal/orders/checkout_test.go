package orders

import (
	"context"
	"errors"
	"net"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartrepo "github.com/c2399750-bit/Mido-Store/internal/cart"
	"github.com/c2399750-bit/Mido-Store/internal/domain/cart"
	"github.com/c2399750-bit/Mido-Store/internal/domain/order"
	"github.com/c2399750-bit/Mido-Store/internal/domain/product"
	"github.com/c2399750-bit/Mido-Store/internal/domain/user"
	"github.com/c2399750-bit/Mido-Store/internal/kv"
	"github.com/c2399750-bit/Mido-Store/internal/mail"
	shippingrepo "github.com/c2399750-bit/Mido-Store/internal/shipping"
	"github.com/c2399750-bit/Mido-Store/internal/util"
)

type sentMail struct {
	to, subject, body string
}

type recordingMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (m *recordingMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{to, subject, body})
	return m.err
}

type fixture struct {
	orders   *Repo
	cart     *cartrepo.Repo
	zones    *shippingrepo.Repo
	mailer   *recordingMailer
	checkout *Checkout
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	store := kv.NewMemory()

	o, err := NewRepo(ctx, store)
	require.NoError(t, err)
	c, err := cartrepo.NewRepo(ctx, store)
	require.NoError(t, err)
	z, err := shippingrepo.NewRepo(ctx, store)
	require.NoError(t, err)

	m := &recordingMailer{}
	return fixture{orders: o, cart: c, zones: z, mailer: m, checkout: NewCheckout(o, c, z, m)}
}

func shirt() product.Product {
	return product.Product{
		ID:       "1",
		NameAr:   "قميص قطني أوفر سايز",
		NameEn:   "Oversized Cotton Shirt",
		Price:    decimal.NewFromInt(450),
		Category: "men",
		Stock:    25,
	}
}

func validForm() CheckoutForm {
	return CheckoutForm{
		Name:        "Sara Ahmed Ali",
		Phone:       "01012345678",
		Governorate: "القاهرة والجيزة",
		City:        "Nasr City",
		Street:      "Abbas El Akkad",
	}
}

var customer = user.User{ID: "u1", Name: "sara", Email: "sara@example.com", Role: user.RoleCustomer}

func TestPlaceOrderEndToEnd(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.cart.AddProduct(ctx, shirt(), "", ""))
	before := f.cart.Items()

	o, err := f.checkout.Place(ctx, customer, validForm())
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(500).Equal(o.Total), "450 + 50 shipping, got %s", o.Total)
	assert.Equal(t, order.StatusPending, o.Status)
	assert.Equal(t, order.PaymentCOD, o.PaymentMethod)
	assert.Equal(t, "sara@example.com", o.Email)
	assert.Equal(t, "القاهرة والجيزة, Nasr City, Abbas El Akkad", o.Address)
	assert.Equal(t, before, o.Items)
	assert.NotEmpty(t, o.ID)
	assert.NotEmpty(t, o.Date)

	assert.Empty(t, f.cart.Items())
	list := f.orders.List()
	require.Len(t, list, 1)
	assert.Equal(t, o.ID, list[0].ID)

	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, "sara@example.com", f.mailer.sent[0].to)
	assert.Contains(t, f.mailer.sent[0].body, "500.00")
}

func TestPlaceOrderSnapshotIsIndependentOfCart(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.cart.AddProduct(ctx, shirt(), "", ""))

	o, err := f.checkout.Place(ctx, customer, validForm())
	require.NoError(t, err)
	require.NoError(t, f.cart.AddProduct(ctx, shirt(), "", ""))
	require.NoError(t, f.cart.AddProduct(ctx, shirt(), "", ""))

	stored, err := f.orders.Get(o.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, 1, stored.Items[0].Quantity)
}

func TestQuoteUnknownRegionShipsFree(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.cart.AddProduct(ctx, shirt(), "", ""))

	form := validForm()
	form.Governorate = "Atlantis"
	q := f.checkout.Quote(form)

	assert.True(t, q.Shipping.IsZero())
	assert.True(t, decimal.NewFromInt(450).Equal(q.Total))
	assert.Nil(t, q.Zone)
}

func TestQuoteZoneIDWinsOverGovernorate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.cart.AddProduct(ctx, shirt(), "", ""))

	form := validForm()
	form.ZoneID = "3"
	q := f.checkout.Quote(form)

	require.NotNil(t, q.Zone)
	assert.Equal(t, "3", q.Zone.ID)
	assert.True(t, decimal.NewFromInt(540).Equal(q.Total))
}

func TestPlaceOrderValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.cart.AddProduct(ctx, shirt(), "", ""))

	cases := map[string]struct {
		mutate func(*CheckoutForm)
		field  string
	}{
		"two word name":   {func(f *CheckoutForm) { f.Name = "Sara Ahmed" }, "Name"},
		"short phone":     {func(f *CheckoutForm) { f.Phone = "010123" }, "Phone"},
		"blank city":      {func(f *CheckoutForm) { f.City = "   " }, "City"},
		"no governorate":  {func(f *CheckoutForm) { f.Governorate = "" }, "Governorate"},
		"no street":       {func(f *CheckoutForm) { f.Street = "" }, "Street"},
		"unknown payment": {func(f *CheckoutForm) { f.PaymentMethod = "bitcoin" }, "PaymentMethod"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			form := validForm()
			tc.mutate(&form)

			_, err := f.checkout.Place(ctx, customer, form)
			var ve *util.ValidationError
			require.True(t, errors.As(err, &ve), "got %v", err)
			assert.Contains(t, ve.Fields, tc.field)
		})
	}

	assert.Empty(t, f.orders.List())
	assert.Len(t, f.cart.Items(), 1)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	f := newFixture(t)

	_, err := f.checkout.Place(context.Background(), customer, validForm())
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, f.orders.List())
}

func TestPlaceOrderMailFailureDoesNotFailOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.mailer.err = errors.New("smtp down")
	require.NoError(t, f.cart.AddProduct(ctx, shirt(), "", ""))

	_, err := f.checkout.Place(ctx, customer, validForm())
	require.NoError(t, err)
	assert.Len(t, f.orders.List(), 1)
}

func TestPlaceOrderWithoutMailer(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	co := NewCheckout(f.orders, f.cart, f.zones, nil)
	require.NoError(t, f.cart.AddProduct(ctx, shirt(), "", ""))

	form := validForm()
	form.PaymentMethod = order.PaymentVodafone
	o, err := co.Place(ctx, customer, form)
	require.NoError(t, err)
	assert.Equal(t, order.PaymentVodafone, o.PaymentMethod)
}

// lateAddCart adds a line right after each snapshot, the way a concurrent
// add-to-cart request would land between reading and clearing the cart.
type lateAddCart struct {
	*cartrepo.Repo
	late product.Product
}

func (c *lateAddCart) Items() []cart.CartItem {
	items := c.Repo.Items()
	_ = c.Repo.AddProduct(context.Background(), c.late, "", "")
	return items
}

func TestPlaceOrderKeepsLinesAddedDuringCheckout(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	dress := product.Product{ID: "2", NameEn: "Patterned Summer Dress", Price: decimal.NewFromInt(850)}
	c := &lateAddCart{Repo: f.cart, late: dress}
	co := NewCheckout(f.orders, c, f.zones, nil)
	require.NoError(t, f.cart.AddProduct(ctx, shirt(), "", ""))

	o, err := co.Place(ctx, customer, validForm())
	require.NoError(t, err)

	require.Len(t, o.Items, 1)
	assert.Equal(t, "1", o.Items[0].ID)
	left := f.cart.Items()
	require.Len(t, left, 1)
	assert.Equal(t, "2", left[0].ID)
	assert.Equal(t, 1, left[0].Quantity)
}

func TestConcurrentPlaceOrdersCartOnce(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.cart.AddProduct(ctx, shirt(), "", ""))

	const n = 5
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.checkout.Place(ctx, customer, validForm())
		}(i)
	}
	wg.Wait()

	placed := 0
	for _, err := range errs {
		if err == nil {
			placed++
		} else {
			assert.ErrorIs(t, err, ErrEmptyCart)
		}
	}
	assert.Equal(t, 1, placed)
	assert.Len(t, f.orders.List(), 1)
	assert.Empty(t, f.cart.Items())
}

func TestPlaceOrderReturnsWhenMailServerStalls(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	accepted := make(chan net.Conn, 1)
	go func() {
		if conn, err := ln.Accept(); err == nil {
			accepted <- conn
		}
	}()
	t.Cleanup(func() {
		ln.Close()
		select {
		case conn := <-accepted:
			conn.Close()
		default:
		}
	})
	host, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)
	portNum, err := strconv.Atoi(port)
	require.NoError(t, err)

	mailer := mail.NewSMTPMailer(mail.SMTPConfig{Host: host, Port: portNum, Timeout: 200 * time.Millisecond})
	co := NewCheckout(f.orders, f.cart, f.zones, mailer)
	require.NoError(t, f.cart.AddProduct(ctx, shirt(), "", ""))

	type result struct {
		o   order.Order
		err error
	}
	done := make(chan result, 1)
	go func() {
		o, err := co.Place(ctx, customer, validForm())
		done <- result{o, err}
	}()

	select {
	case r := <-done:
		require.NoError(t, r.err)
		assert.Equal(t, order.StatusPending, r.o.Status)
	case <-time.After(5 * time.Second):
		t.Fatal("Place blocked on the mail server")
	}
	assert.Len(t, f.orders.List(), 1)
}
