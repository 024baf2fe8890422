package admin

import (
	"context"

	"github.com/shopcore/backend/internal/domain/catalog"
	"github.com/shopcore/backend/internal/domain/shopping"
)

// BulkService applies one sparse patch to many products or orders.
// Missing IDs are skipped rather than failing the batch; the response
// counts the rows actually updated.
type BulkService struct {
	productRepo catalog.ProductRepository
	orderRepo   shopping.OrderRepository
}

// NewBulkService creates a new BulkService
func NewBulkService(productRepo catalog.ProductRepository, orderRepo shopping.OrderRepository) *BulkService {
	return &BulkService{
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

// UpdateProducts applies the patch to every product in ids
func (s *BulkService) UpdateProducts(ctx context.Context, req BulkUpdateProductsRequest) (*BulkUpdateResponse, error) {
	products, err := s.productRepo.FindByIDs(ctx, req.IDs)
	if err != nil {
		return nil, err
	}

	patched := make([]*catalog.Product, 0, len(products))
	for i := range products {
		product := &products[i]
		if req.Patch.Status != nil {
			if err := product.SetStatus(catalog.ProductStatus(*req.Patch.Status)); err != nil {
				return nil, err
			}
		}
		if req.Patch.Featured != nil {
			product.SetFeatured(*req.Patch.Featured)
		}
		if req.Patch.CategoryID != nil {
			if err := product.SetCategory(*req.Patch.CategoryID); err != nil {
				return nil, err
			}
		}
		if req.Patch.Price != nil {
			if err := product.SetPrice(*req.Patch.Price); err != nil {
				return nil, err
			}
		}
		if req.Patch.StockQuantity != nil {
			if err := product.SetStock(*req.Patch.StockQuantity); err != nil {
				return nil, err
			}
		}
		patched = append(patched, product)
	}

	if err := s.productRepo.SaveBatch(ctx, patched); err != nil {
		return nil, err
	}
	return &BulkUpdateResponse{UpdatedCount: len(patched)}, nil
}

// UpdateOrders applies the patch to every order in ids
func (s *BulkService) UpdateOrders(ctx context.Context, req BulkUpdateOrdersRequest) (*BulkUpdateResponse, error) {
	orders, err := s.orderRepo.FindByIDs(ctx, req.IDs)
	if err != nil {
		return nil, err
	}

	patched := make([]*shopping.Order, 0, len(orders))
	for i := range orders {
		order := &orders[i]
		if req.Patch.Status != nil {
			if err := order.SetStatus(shopping.OrderStatus(*req.Patch.Status)); err != nil {
				return nil, err
			}
		}
		if req.Patch.TrackingNumber != nil {
			order.SetTracking(*req.Patch.TrackingNumber)
		}
		patched = append(patched, order)
	}

	if err := s.orderRepo.SaveBatch(ctx, patched); err != nil {
		return nil, err
	}
	return &BulkUpdateResponse{UpdatedCount: len(patched)}, nil
}
