package order

import (
	"errors"
	"testing"

	orderRepo "mercato/database/repository/order"
	"mercato/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeOrderRepo struct {
	orders     map[string]*models.Order
	created    []*models.Order
	failCreate bool
}

func (f *fakeOrderRepo) GetByID(id string) (*models.Order, error) {
	if ord, ok := f.orders[id]; ok {
		return ord, nil
	}
	return nil, orderRepo.ErrNotFound
}

func (f *fakeOrderRepo) GetByUser(userID string) ([]models.Order, error) {
	var out []models.Order
	for _, ord := range f.orders {
		if ord.UserID == userID {
			out = append(out, *ord)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) Create(ord *models.Order) error {
	if f.failCreate {
		return errors.New("write failed")
	}
	if f.orders == nil {
		f.orders = map[string]*models.Order{}
	}
	f.orders[ord.ID] = ord
	f.created = append(f.created, ord)
	return nil
}

func (f *fakeOrderRepo) UpdateStatus(id, status string) error {
	ord, ok := f.orders[id]
	if !ok {
		return orderRepo.ErrNotFound
	}
	ord.Status = status
	return nil
}

func (f *fakeOrderRepo) Count() (int64, error)         { return int64(len(f.orders)), nil }
func (f *fakeOrderRepo) PaidRevenue() (float64, error) { return 0, nil }

type fakeProductRepo struct {
	products map[string]*models.Product
}

func (f *fakeProductRepo) GetByID(id string) (*models.Product, error) {
	if p, ok := f.products[id]; ok {
		return p, nil
	}
	return nil, errors.New("product not found")
}

func (f *fakeProductRepo) GetAll() ([]models.Product, error)      { return nil, nil }
func (f *fakeProductRepo) Create(p *models.Product) error         { return nil }
func (f *fakeProductRepo) Update(p *models.Product) error         { return nil }
func (f *fakeProductRepo) Delete(id string) error                 { return nil }
func (f *fakeProductRepo) Count() (int64, error)                  { return 0, nil }
func (f *fakeProductRepo) AverageRating() (float64, error)        { return 0, nil }

func (f *fakeProductRepo) DecrementStock(id string, quantity int) error {
	p, ok := f.products[id]
	if !ok || p.Stock < quantity {
		return errors.New("insufficient stock")
	}
	p.Stock -= quantity
	return nil
}

func (f *fakeProductRepo) IncrementStock(id string, quantity int) error {
	p, ok := f.products[id]
	if !ok {
		return errors.New("product not found")
	}
	p.Stock += quantity
	return nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, errors.New("user not found")
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) { return nil, nil }
func (f *fakeUserRepo) Create(u *models.User) error                   { return nil }
func (f *fakeUserRepo) Update(u *models.User) error                   { return nil }
func (f *fakeUserRepo) UpdateTokenHash(id, hash string) error         { return nil }
func (f *fakeUserRepo) Count() (int64, error)                         { return 0, nil }

func (f *fakeUserRepo) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	return f.GetByID(id)
}

type fakeGateway struct {
	charged []float64
	fail    bool
}

func (g *fakeGateway) Charge(method string, amount float64, orderNumber string) (PaymentResult, error) {
	if g.fail {
		return PaymentResult{}, errors.New("gateway unavailable")
	}
	g.charged = append(g.charged, amount)
	if method == "cod" {
		return PaymentResult{Status: "pending"}, nil
	}
	return PaymentResult{Status: "paid", TransactionID: "pi_test"}, nil
}

type fakeConfirmer struct {
	enqueued []string
}

func (c *fakeConfirmer) EnqueueOrderConfirmation(orderID string) error {
	c.enqueued = append(c.enqueued, orderID)
	return nil
}

func newCheckoutService() (*DefaultOrderService, *fakeOrderRepo, *fakeProductRepo, *fakeGateway, *fakeConfirmer) {
	orders := &fakeOrderRepo{orders: map[string]*models.Order{}}
	products := &fakeProductRepo{products: map[string]*models.Product{
		"prod-1": {ID: "prod-1", Name: "Headphones", Price: 2499, Stock: 10},
		"prod-2": {ID: "prod-2", Name: "Keyboard", Price: 89.5, Stock: 2},
	}}
	users := &fakeUserRepo{users: map[string]*models.User{
		"usr-1": {
			ID:    "usr-1",
			Name:  "Alex Mwangi",
			Email: "alex@example.com",
			Role:  models.RoleCustomer,
			Address: models.Address{
				Street: "8 Riverside Drive",
				City:   "Nairobi",
				Zip:    "00100",
			},
		},
	}}
	gateway := &fakeGateway{}
	confirmer := &fakeConfirmer{}
	svc := &DefaultOrderService{
		Repo:        orders,
		ProductRepo: products,
		UserRepo:    users,
		Payments:    gateway,
		Confirmer:   confirmer,
	}
	return svc, orders, products, gateway, confirmer
}

func TestCheckoutComputesAndStoresTotals(t *testing.T) {
	svc, orders, products, gateway, confirmer := newCheckoutService()

	ord, err := svc.Checkout("usr-1", CheckoutRequest{
		Items:         []CheckoutItem{{ProductID: "prod-1", Quantity: 1}},
		PaymentMethod: "card",
	})
	require.NoError(t, err)

	assert.Equal(t, 2499.0, ord.Subtotal)
	assert.Equal(t, 100.0, ord.ShippingCost)
	assert.Zero(t, ord.Discount)
	assert.Zero(t, ord.Tax)
	assert.Equal(t, 2599.0, ord.Total)
	assert.InDelta(t, ord.Total, ord.Subtotal+ord.ShippingCost+ord.Tax-ord.Discount, 0.001)

	assert.Equal(t, "placed", ord.Status)
	assert.Equal(t, "paid", ord.Payment.Status)
	assert.Equal(t, "pi_test", ord.Payment.TransactionID)
	assert.Regexp(t, `^ORD-\d+$`, ord.OrderNumber)

	require.Len(t, orders.created, 1)
	assert.Equal(t, 9, products.products["prod-1"].Stock)
	assert.Equal(t, []float64{2599.0}, gateway.charged)
	assert.Equal(t, []string{ord.ID}, confirmer.enqueued)
}

func TestCheckoutFreezesCatalogPrices(t *testing.T) {
	svc, _, products, _, _ := newCheckoutService()

	ord, err := svc.Checkout("usr-1", CheckoutRequest{
		Items:         []CheckoutItem{{ProductID: "prod-2", Quantity: 2}},
		PaymentMethod: "cod",
	})
	require.NoError(t, err)
	require.Len(t, ord.Items, 1)
	assert.Equal(t, 89.5, ord.Items[0].Price)
	assert.Equal(t, 179.0, ord.Items[0].Subtotal)

	// Later catalog price changes must not touch the stored order.
	products.products["prod-2"].Price = 120
	assert.Equal(t, 89.5, ord.Items[0].Price)
}

func TestCheckoutAppliesDiscountCode(t *testing.T) {
	svc, _, _, _, _ := newCheckoutService()

	ord, err := svc.Checkout("usr-1", CheckoutRequest{
		Items:         []CheckoutItem{{ProductID: "prod-1", Quantity: 1}},
		PaymentMethod: "card",
		DiscountCode:  "WELCOME10",
	})
	require.NoError(t, err)

	assert.Equal(t, 249.9, ord.Discount)
	assert.InDelta(t, 2349.1, ord.Total, 0.001)
	assert.InDelta(t, ord.Total, ord.Subtotal+ord.ShippingCost+ord.Tax-ord.Discount, 0.001)
}

func TestCheckoutRejectsUnknownDiscountCode(t *testing.T) {
	svc, _, _, _, _ := newCheckoutService()

	_, err := svc.Checkout("usr-1", CheckoutRequest{
		Items:         []CheckoutItem{{ProductID: "prod-1", Quantity: 1}},
		PaymentMethod: "card",
		DiscountCode:  "NOSUCHCODE",
	})
	var ce CheckoutError
	require.ErrorAs(t, err, &ce)
	assert.Contains(t, ce.Message, "NOSUCHCODE")
}

func TestCheckoutWaivesShippingOverThreshold(t *testing.T) {
	svc, _, _, _, _ := newCheckoutService()

	ord, err := svc.Checkout("usr-1", CheckoutRequest{
		Items:         []CheckoutItem{{ProductID: "prod-1", Quantity: 3}},
		PaymentMethod: "card",
	})
	require.NoError(t, err)

	assert.Equal(t, 7497.0, ord.Subtotal)
	assert.Zero(t, ord.ShippingCost)
	assert.Equal(t, 7497.0, ord.Total)
}

func TestCheckoutRejectsInsufficientStock(t *testing.T) {
	svc, orders, _, gateway, _ := newCheckoutService()

	_, err := svc.Checkout("usr-1", CheckoutRequest{
		Items:         []CheckoutItem{{ProductID: "prod-2", Quantity: 5}},
		PaymentMethod: "card",
	})
	var ce CheckoutError
	require.ErrorAs(t, err, &ce)
	assert.Contains(t, ce.Message, "Keyboard")

	// Nothing was charged or persisted.
	assert.Empty(t, gateway.charged)
	assert.Empty(t, orders.created)
}

func TestCheckoutRejectsUnknownProduct(t *testing.T) {
	svc, _, _, _, _ := newCheckoutService()

	_, err := svc.Checkout("usr-1", CheckoutRequest{
		Items:         []CheckoutItem{{ProductID: "prod-404", Quantity: 1}},
		PaymentMethod: "card",
	})
	var ce CheckoutError
	require.ErrorAs(t, err, &ce)
	assert.Contains(t, ce.Message, "prod-404")
}

func TestCheckoutRequiresShippingAddress(t *testing.T) {
	svc, _, _, _, _ := newCheckoutService()

	_, err := svc.Checkout("usr-1", CheckoutRequest{
		Items:           []CheckoutItem{{ProductID: "prod-1", Quantity: 1}},
		PaymentMethod:   "card",
		ShippingAddress: &models.Address{City: "Nairobi"},
	})
	var ce CheckoutError
	require.ErrorAs(t, err, &ce)
	assert.Contains(t, ce.Message, "shipping address")
}

func TestCheckoutUsesShippingOverride(t *testing.T) {
	svc, _, _, _, _ := newCheckoutService()

	override := &models.Address{
		Name:   "Jamie Otieno",
		Street: "22 Moi Avenue",
		City:   "Mombasa",
	}
	ord, err := svc.Checkout("usr-1", CheckoutRequest{
		Items:           []CheckoutItem{{ProductID: "prod-1", Quantity: 1}},
		PaymentMethod:   "cod",
		ShippingAddress: override,
	})
	require.NoError(t, err)
	assert.Equal(t, "Mombasa", ord.ShippingAddress.City)
	assert.Equal(t, "Jamie Otieno", ord.ShippingAddress.Name)
}

func TestCheckoutCashOnDeliveryStaysPending(t *testing.T) {
	svc, _, _, _, _ := newCheckoutService()

	ord, err := svc.Checkout("usr-1", CheckoutRequest{
		Items:         []CheckoutItem{{ProductID: "prod-1", Quantity: 1}},
		PaymentMethod: "cod",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", ord.Payment.Status)
	assert.Empty(t, ord.Payment.TransactionID)
}

func TestCheckoutPaymentFailureAbortsOrder(t *testing.T) {
	svc, orders, products, gateway, confirmer := newCheckoutService()
	gateway.fail = true

	_, err := svc.Checkout("usr-1", CheckoutRequest{
		Items:         []CheckoutItem{{ProductID: "prod-1", Quantity: 1}},
		PaymentMethod: "card",
	})
	require.Error(t, err)
	assert.Empty(t, orders.created)
	assert.Empty(t, confirmer.enqueued)

	// The reservation was released: stock is back where it started.
	assert.Equal(t, 10, products.products["prod-1"].Stock)
}

func TestCheckoutPersistFailureReleasesStock(t *testing.T) {
	svc, orders, products, _, confirmer := newCheckoutService()
	orders.failCreate = true

	_, err := svc.Checkout("usr-1", CheckoutRequest{
		Items:         []CheckoutItem{{ProductID: "prod-1", Quantity: 2}},
		PaymentMethod: "card",
	})
	require.Error(t, err)
	assert.Empty(t, confirmer.enqueued)
	assert.Equal(t, 10, products.products["prod-1"].Stock)
}

func TestCheckoutPartialReservationRollsBack(t *testing.T) {
	svc, orders, products, gateway, _ := newCheckoutService()

	// Two lines against the same product: each passes the availability
	// check alone, but the second reservation exhausts stock and fails.
	_, err := svc.Checkout("usr-1", CheckoutRequest{
		Items: []CheckoutItem{
			{ProductID: "prod-2", Quantity: 2},
			{ProductID: "prod-2", Quantity: 2},
		},
		PaymentMethod: "card",
	})
	var ce CheckoutError
	require.ErrorAs(t, err, &ce)

	// The first line's reservation was returned, nothing was charged.
	assert.Equal(t, 2, products.products["prod-2"].Stock)
	assert.Empty(t, gateway.charged)
	assert.Empty(t, orders.created)
}

func TestGetOrderByIDEnforcesOwnership(t *testing.T) {
	svc, orders, _, _, _ := newCheckoutService()
	orders.orders["ord-1"] = &models.Order{ID: "ord-1", UserID: "usr-1"}

	ord, err := svc.GetOrderByID("usr-1", models.RoleCustomer, "ord-1")
	require.NoError(t, err)
	assert.Equal(t, "ord-1", ord.ID)

	_, err = svc.GetOrderByID("usr-2", models.RoleCustomer, "ord-1")
	var denied AccessDeniedError
	require.ErrorAs(t, err, &denied)

	// Elevated roles can read any order.
	_, err = svc.GetOrderByID("usr-2", models.RoleAdmin, "ord-1")
	assert.NoError(t, err)
}

func TestUpdateStatusValidatesTransitions(t *testing.T) {
	svc, orders, _, _, _ := newCheckoutService()
	orders.orders["ord-1"] = &models.Order{ID: "ord-1", UserID: "usr-1", Status: "placed"}

	require.NoError(t, svc.UpdateStatus("ord-1", "shipped"))
	assert.Equal(t, "shipped", orders.orders["ord-1"].Status)

	err := svc.UpdateStatus("ord-1", "teleported")
	var ce CheckoutError
	require.ErrorAs(t, err, &ce)
}
