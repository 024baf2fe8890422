package shopping

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/shared"
)

// CartLineRepository defines the persistence interface for cart lines
type CartLineRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CartLine, error)
	FindByOwner(ctx context.Context, owner CartOwner) ([]CartLine, error)
	FindByOwnerAndProduct(ctx context.Context, owner CartOwner, productID uuid.UUID) (*CartLine, error)
	Save(ctx context.Context, line *CartLine) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByOwner(ctx context.Context, owner CartOwner) error
}

// OrderRepository defines the persistence interface for orders
type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Order, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]Order, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)
	FindRecent(ctx context.Context, limit int) ([]Order, error)
	Save(ctx context.Context, order *Order) error
	SaveBatch(ctx context.Context, orders []*Order) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	CountByStatus(ctx context.Context) (map[OrderStatus]int64, error)
	SumTotalPrice(ctx context.Context) (float64, error)
}

// CheckoutStore persists the cart-to-order conversion. PlaceOrders writes
// every order row and deletes the owner's cart lines inside one
// transaction; either all of it happens or none of it does.
type CheckoutStore interface {
	PlaceOrders(ctx context.Context, owner CartOwner, orders []*Order) error
}
