package admin

import (
	"context"

	appshopping "github.com/shopcore/backend/internal/application/shopping"
	"github.com/shopcore/backend/internal/domain/catalog"
	"github.com/shopcore/backend/internal/domain/identity"
	"github.com/shopcore/backend/internal/domain/shared"
	"github.com/shopcore/backend/internal/domain/shopping"
)

// RecentOrderCount is how many orders the dashboard shows
const RecentOrderCount = 5

// DashboardService aggregates store-wide statistics for the admin panel
type DashboardService struct {
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
	orderRepo    shopping.OrderRepository
	userRepo     identity.UserRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	orderRepo shopping.OrderRepository,
	userRepo identity.UserRepository,
) *DashboardService {
	return &DashboardService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		orderRepo:    orderRepo,
		userRepo:     userRepo,
	}
}

// Stats collects the dashboard numbers. Revenue is the sum of every
// order's total regardless of status, matching what the storefront has
// always reported.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.TotalProducts, err = s.productRepo.Count(ctx, shared.Filter{}); err != nil {
		return nil, err
	}
	if stats.TotalCategories, err = s.categoryRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalOrders, err = s.orderRepo.Count(ctx, shared.Filter{}); err != nil {
		return nil, err
	}
	if stats.TotalUsers, err = s.userRepo.Count(ctx, shared.Filter{}); err != nil {
		return nil, err
	}
	if stats.TotalRevenue, err = s.orderRepo.SumTotalPrice(ctx); err != nil {
		return nil, err
	}

	byStatus, err := s.orderRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	stats.OrdersByStatus = make(map[string]int64, len(byStatus))
	for status, count := range byStatus {
		stats.OrdersByStatus[string(status)] = count
	}

	recent, err := s.orderRepo.FindRecent(ctx, RecentOrderCount)
	if err != nil {
		return nil, err
	}
	stats.RecentOrders = make([]appshopping.OrderResponse, len(recent))
	for i := range recent {
		stats.RecentOrders[i] = appshopping.ToOrderResponse(&recent[i])
	}

	return stats, nil
}
