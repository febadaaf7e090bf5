package invoice

import (
	"fmt"

	orderRepo "mercato/database/repository/order"
	"mercato/models"

	"go.mongodb.org/mongo-driver/bson"
)

// fakeOrderRepo serves orders from an in-memory map.
type fakeOrderRepo struct {
	orders map[string]*models.Order
}

func (f *fakeOrderRepo) GetByID(id string) (*models.Order, error) {
	ord, ok := f.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %s: %w", id, orderRepo.ErrNotFound)
	}
	cp := *ord
	return &cp, nil
}

func (f *fakeOrderRepo) GetByUser(userID string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) Create(order *models.Order) error {
	f.orders[order.ID] = order
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

func (f *fakeOrderRepo) Count() (int64, error) { return int64(len(f.orders)), nil }

func (f *fakeOrderRepo) PaidRevenue() (float64, error) {
	var sum float64
	for _, o := range f.orders {
		if o.Payment.Status == "paid" {
			sum += o.Total
		}
	}
	return sum, nil
}

// fakeUserRepo serves accounts from an in-memory map.
type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	usr, ok := f.users[id]
	if !ok {
		return nil, fmt.Errorf("user with id %s not found", id)
	}
	cp := *usr
	return &cp, nil
}

func (f *fakeUserRepo) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	return f.GetByID(id)
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Create(user *models.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Update(user *models.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) UpdateTokenHash(id, tokenHash string) error {
	usr, ok := f.users[id]
	if !ok {
		return fmt.Errorf("user with id %s not found", id)
	}
	usr.TokenHash = tokenHash
	return nil
}

func (f *fakeUserRepo) Count() (int64, error) { return int64(len(f.users)), nil }

// newTestService wires a DefaultInvoiceService over the fakes with one
// account and one order: Headphones x1 at 2499, shipping 100, total 2599.
func newTestService() (*DefaultInvoiceService, *models.Order) {
	ord := &models.Order{
		ID:          "ord-1",
		OrderNumber: "ORD-1700000000000",
		UserID:      "usr-1",
		Items: []models.OrderItem{
			{ProductID: "prd-1", Name: "Headphones", Quantity: 1, Price: 2499, Subtotal: 2499},
		},
		ShippingAddress: models.Address{
			Street: "8 Riverside Drive",
			City:   "Nairobi",
			Zip:    "00100",
		},
		Subtotal:     2499,
		ShippingCost: 100,
		Discount:     0,
		Tax:          0,
		Total:        2599,
		Payment:      models.PaymentInfo{Method: "card", Status: "paid", TransactionID: "pi_123"},
		Status:       "placed",
	}
	usr := &models.User{
		ID:          "usr-1",
		Name:        "Alex Mwangi",
		Email:       "alex@example.com",
		PhoneNumber: "+254 711 000111",
		Role:        models.RoleCustomer,
	}

	svc := &DefaultInvoiceService{
		OrderRepo: &fakeOrderRepo{orders: map[string]*models.Order{ord.ID: ord}},
		UserRepo:  &fakeUserRepo{users: map[string]*models.User{usr.ID: usr}},
		Company: models.CompanyInfo{
			Name:    "Mercato Retail Ltd",
			Address: "14 Market Lane, Nairobi",
			Phone:   "+254 700 000000",
			Email:   "billing@mercato.example",
		},
		Currency: "$",
	}
	return svc, ord
}
