package admin

import (
	"testing"

	"mercato/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type stubUserRepo struct{ count int64 }

func (s stubUserRepo) GetByID(id string) (*models.User, error)       { return nil, nil }
func (s stubUserRepo) GetByEmail(email string) (*models.User, error) { return nil, nil }
func (s stubUserRepo) Create(u *models.User) error                   { return nil }
func (s stubUserRepo) Update(u *models.User) error                   { return nil }
func (s stubUserRepo) UpdateTokenHash(id, hash string) error         { return nil }
func (s stubUserRepo) Count() (int64, error)                         { return s.count, nil }

func (s stubUserRepo) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	return nil, nil
}

type stubProductRepo struct {
	count  int64
	rating float64
}

func (s stubProductRepo) GetByID(id string) (*models.Product, error)    { return nil, nil }
func (s stubProductRepo) GetAll() ([]models.Product, error)             { return nil, nil }
func (s stubProductRepo) Create(p *models.Product) error                { return nil }
func (s stubProductRepo) Update(p *models.Product) error                { return nil }
func (s stubProductRepo) Delete(id string) error                        { return nil }
func (s stubProductRepo) DecrementStock(id string, quantity int) error  { return nil }
func (s stubProductRepo) IncrementStock(id string, quantity int) error  { return nil }
func (s stubProductRepo) Count() (int64, error)                         { return s.count, nil }
func (s stubProductRepo) AverageRating() (float64, error)               { return s.rating, nil }

type stubOrderRepo struct {
	count   int64
	revenue float64
}

func (s stubOrderRepo) GetByID(id string) (*models.Order, error)      { return nil, nil }
func (s stubOrderRepo) GetByUser(userID string) ([]models.Order, error) { return nil, nil }
func (s stubOrderRepo) Create(o *models.Order) error                  { return nil }
func (s stubOrderRepo) UpdateStatus(id, status string) error          { return nil }
func (s stubOrderRepo) Count() (int64, error)                         { return s.count, nil }
func (s stubOrderRepo) PaidRevenue() (float64, error)                 { return s.revenue, nil }

func TestGetStoreStatsReportsLiveAggregates(t *testing.T) {
	svc := &DefaultAdminService{
		UserRepo:    stubUserRepo{count: 12},
		ProductRepo: stubProductRepo{count: 40, rating: 4.2},
		OrderRepo:   stubOrderRepo{count: 95, revenue: 184250.5},
	}

	stats, err := svc.GetStoreStats()
	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.Users)
	assert.Equal(t, int64(40), stats.Products)
	assert.Equal(t, int64(95), stats.Orders)
	assert.Equal(t, 184250.5, stats.PaidRevenue)
	assert.Equal(t, 4.2, stats.AverageRating)
}

func TestGetStoreStatsEmptyStoreReportsZeros(t *testing.T) {
	svc := &DefaultAdminService{
		UserRepo:    stubUserRepo{},
		ProductRepo: stubProductRepo{},
		OrderRepo:   stubOrderRepo{},
	}

	stats, err := svc.GetStoreStats()
	require.NoError(t, err)
	assert.Zero(t, stats.Users)
	assert.Zero(t, stats.Products)
	assert.Zero(t, stats.Orders)
	assert.Zero(t, stats.PaidRevenue)
	assert.Zero(t, stats.AverageRating)
}
