package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/shared"
	"github.com/shopcore/backend/internal/domain/shopping"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository and CheckoutStore using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order by its ID
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*shopping.Order, error) {
	var order shopping.Order
	if err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindByIDs finds multiple orders by their IDs
func (r *GormOrderRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]shopping.Order, error) {
	if len(ids) == 0 {
		return []shopping.Order{}, nil
	}

	var orders []shopping.Order
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindByUser returns all orders of a user, newest first
func (r *GormOrderRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]shopping.Order, error) {
	var orders []shopping.Order
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindAll finds all orders matching the filter
func (r *GormOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]shopping.Order, error) {
	var orders []shopping.Order
	query := r.applyFilter(r.db.WithContext(ctx).Model(&shopping.Order{}), filter)

	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindRecent returns the most recently created orders
func (r *GormOrderRepository) FindRecent(ctx context.Context, limit int) ([]shopping.Order, error) {
	var orders []shopping.Order
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Save creates or updates an order
func (r *GormOrderRepository) Save(ctx context.Context, order *shopping.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

// SaveBatch creates or updates multiple orders
func (r *GormOrderRepository) SaveBatch(ctx context.Context, orders []*shopping.Order) error {
	if len(orders) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Save(orders).Error
}

// Count counts orders matching the filter
func (r *GormOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&shopping.Order{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatus returns the number of orders per status
func (r *GormOrderRepository) CountByStatus(ctx context.Context) (map[shopping.OrderStatus]int64, error) {
	var rows []struct {
		Status shopping.OrderStatus
		Count  int64
	}
	if err := r.db.WithContext(ctx).
		Model(&shopping.Order{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[shopping.OrderStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// SumTotalPrice returns the sum of all order totals
func (r *GormOrderRepository) SumTotalPrice(ctx context.Context) (float64, error) {
	var sum float64
	if err := r.db.WithContext(ctx).
		Model(&shopping.Order{}).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&sum).Error; err != nil {
		return 0, err
	}
	return sum, nil
}

// PlaceOrders writes the checkout's order rows and clears the owner's cart
// in a single transaction
func (r *GormOrderRepository) PlaceOrders(ctx context.Context, owner shopping.CartOwner, orders []*shopping.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(orders).Error; err != nil {
			return err
		}
		return ownerScope(tx, owner).Delete(&shopping.CartLine{}).Error
	})
}

// applyFilter applies filter options to the query
func (r *GormOrderRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("created_at DESC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormOrderRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(customer_email) LIKE ? OR LOWER(tracking_number) LIKE ?",
			pattern, pattern,
		)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "user_id":
			query = query.Where("user_id = ?", value)
		case "product_id":
			query = query.Where("product_id = ?", value)
		case "payment_method":
			query = query.Where("payment_method = ?", value)
		}
	}

	return query
}

// Ensure GormOrderRepository implements both persistence contracts
var (
	_ shopping.OrderRepository = (*GormOrderRepository)(nil)
	_ shopping.CheckoutStore   = (*GormOrderRepository)(nil)
)
