package shopping

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/catalog"
	"github.com/shopcore/backend/internal/domain/shared"
	"github.com/shopcore/backend/internal/domain/shopping"
	"github.com/stretchr/testify/mock"
)

// MockCartLineRepository is a mock implementation of CartLineRepository
type MockCartLineRepository struct {
	mock.Mock
}

func (m *MockCartLineRepository) FindByID(ctx context.Context, id uuid.UUID) (*shopping.CartLine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shopping.CartLine), args.Error(1)
}

func (m *MockCartLineRepository) FindByOwner(ctx context.Context, owner shopping.CartOwner) ([]shopping.CartLine, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).([]shopping.CartLine), args.Error(1)
}

func (m *MockCartLineRepository) FindByOwnerAndProduct(ctx context.Context, owner shopping.CartOwner, productID uuid.UUID) (*shopping.CartLine, error) {
	args := m.Called(ctx, owner, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shopping.CartLine), args.Error(1)
}

func (m *MockCartLineRepository) Save(ctx context.Context, line *shopping.CartLine) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}

func (m *MockCartLineRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCartLineRepository) DeleteByOwner(ctx context.Context, owner shopping.CartOwner) error {
	args := m.Called(ctx, owner)
	return args.Error(0)
}

// MockOrderRepository is a mock implementation of OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*shopping.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shopping.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]shopping.Order, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]shopping.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]shopping.Order, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]shopping.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]shopping.Order, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]shopping.Order), args.Error(1)
}

func (m *MockOrderRepository) FindRecent(ctx context.Context, limit int) ([]shopping.Order, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]shopping.Order), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *shopping.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) SaveBatch(ctx context.Context, orders []*shopping.Order) error {
	args := m.Called(ctx, orders)
	return args.Error(0)
}

func (m *MockOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) CountByStatus(ctx context.Context) (map[shopping.OrderStatus]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[shopping.OrderStatus]int64), args.Error(1)
}

func (m *MockOrderRepository) SumTotalPrice(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

// MockCheckoutStore is a mock implementation of CheckoutStore
type MockCheckoutStore struct {
	mock.Mock
}

func (m *MockCheckoutStore) PlaceOrders(ctx context.Context, owner shopping.CartOwner, orders []*shopping.Order) error {
	args := m.Called(ctx, owner, orders)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindFeatured(ctx context.Context, limit int) ([]catalog.Product, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	args := m.Called(ctx, sku)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) SaveBatch(ctx context.Context, products []*catalog.Product) error {
	args := m.Called(ctx, products)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}
