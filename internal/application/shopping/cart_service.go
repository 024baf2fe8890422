package shopping

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/catalog"
	"github.com/shopcore/backend/internal/domain/shared"
	"github.com/shopcore/backend/internal/domain/shopping"
	"github.com/shopspring/decimal"
)

// CartService handles shopping cart operations for both authenticated
// users and anonymous sessions
type CartService struct {
	cartRepo    shopping.CartLineRepository
	productRepo catalog.ProductRepository
}

// NewCartService creates a new CartService
func NewCartService(cartRepo shopping.CartLineRepository, productRepo catalog.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// GetCart returns the owner's cart joined with current product data.
// Prices shown here are live; they are only snapshotted at checkout.
func (s *CartService) GetCart(ctx context.Context, owner shopping.CartOwner) (*CartResponse, error) {
	lines, err := s.cartRepo.FindByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}

	productIDs := make([]uuid.UUID, len(lines))
	for i, line := range lines {
		productIDs[i] = line.ProductID
	}
	products, err := s.productRepo.FindByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*catalog.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	resp := &CartResponse{
		Lines: make([]CartLineResponse, 0, len(lines)),
		Total: decimal.Zero,
	}
	for _, line := range lines {
		product, ok := byID[line.ProductID]
		if !ok {
			// Product deleted since the line was added; skip it
			continue
		}
		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		resp.Lines = append(resp.Lines, CartLineResponse{
			ID:           line.ID,
			ProductID:    line.ProductID,
			ProductTitle: product.Title,
			ProductImage: product.ImageURL,
			UnitPrice:    product.Price,
			Quantity:     line.Quantity,
			LineTotal:    lineTotal,
		})
		resp.ItemCount += line.Quantity
		resp.Total = resp.Total.Add(lineTotal)
	}

	return resp, nil
}

// AddToCart adds a product to the owner's cart. A fresh line over stock
// is rejected; merging into an existing line clamps to stock instead.
func (s *CartService) AddToCart(ctx context.Context, owner shopping.CartOwner, req AddToCartRequest) (*CartResponse, error) {
	if owner.IsZero() {
		return nil, shared.ErrUnauthorized
	}

	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	existing, err := s.cartRepo.FindByOwnerAndProduct(ctx, owner, req.ProductID)
	switch {
	case err == nil:
		if err := existing.Merge(req.Quantity, product.StockQuantity); err != nil {
			return nil, err
		}
		if err := s.cartRepo.Save(ctx, existing); err != nil {
			return nil, err
		}
	case errors.Is(err, shared.ErrNotFound):
		if !product.HasStock(req.Quantity) {
			return nil, shared.ErrInsufficientStock
		}
		line, err := shopping.NewCartLine(owner, req.ProductID, req.Quantity)
		if err != nil {
			return nil, err
		}
		if err := s.cartRepo.Save(ctx, line); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return s.GetCart(ctx, owner)
}

// UpdateLine overwrites a cart line's quantity, rejecting oversell
func (s *CartService) UpdateLine(ctx context.Context, lineID uuid.UUID, req UpdateCartLineRequest) error {
	line, err := s.cartRepo.FindByID(ctx, lineID)
	if err != nil {
		return err
	}

	product, err := s.productRepo.FindByID(ctx, line.ProductID)
	if err != nil {
		return err
	}
	if !product.HasStock(req.Quantity) {
		return shared.ErrInsufficientStock
	}

	if err := line.SetQuantity(req.Quantity); err != nil {
		return err
	}
	return s.cartRepo.Save(ctx, line)
}

// RemoveLine deletes a cart line. Removing a line that is already gone
// is not an error.
func (s *CartService) RemoveLine(ctx context.Context, lineID uuid.UUID) error {
	err := s.cartRepo.Delete(ctx, lineID)
	if errors.Is(err, shared.ErrNotFound) {
		return nil
	}
	return err
}

// ClearCart empties the owner's cart. A missing owner or an already
// empty cart is a no-op.
func (s *CartService) ClearCart(ctx context.Context, owner shopping.CartOwner) error {
	return s.cartRepo.DeleteByOwner(ctx, owner)
}
