package shopping

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/catalog"
	"github.com/shopcore/backend/internal/domain/shared"
	"github.com/shopcore/backend/internal/domain/shopping"
	"github.com/shopspring/decimal"
)

// OrderService handles checkout and order management
type OrderService struct {
	orderRepo   shopping.OrderRepository
	cartRepo    shopping.CartLineRepository
	productRepo catalog.ProductRepository
	checkout    shopping.CheckoutStore
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo shopping.OrderRepository,
	cartRepo shopping.CartLineRepository,
	productRepo catalog.ProductRepository,
	checkout shopping.CheckoutStore,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		checkout:    checkout,
	}
}

// Checkout converts the owner's cart into orders: one order row per cart
// line, unit price snapshotted from the product at this instant. Order
// creation and cart deletion happen in one transaction. Stock is not
// decremented here; inventory reconciles against fulfilled orders.
func (s *OrderService) Checkout(ctx context.Context, owner shopping.CartOwner, req CheckoutRequest) (*CheckoutResponse, error) {
	if owner.IsZero() {
		return nil, shared.ErrUnauthorized
	}

	lines, err := s.cartRepo.FindByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, shared.ErrEmptyCart
	}

	productIDs := make([]uuid.UUID, len(lines))
	for i, line := range lines {
		productIDs[i] = line.ProductID
	}
	products, err := s.productRepo.FindByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	priceByID := make(map[uuid.UUID]decimal.Decimal, len(products))
	for _, product := range products {
		priceByID[product.ID] = product.Price
	}

	var userID *uuid.UUID
	if owner.IsUser() {
		id := owner.UserID()
		userID = &id
	}

	details := shopping.CheckoutDetails{
		CustomerEmail:       req.CustomerEmail,
		PaymentMethod:       req.PaymentMethod,
		ShippingAddress:     req.ShippingAddress,
		BillingAddress:      req.BillingAddress,
		CouponCode:          req.CouponCode,
		OrderNotes:          req.OrderNotes,
		SubscribeNewsletter: req.SubscribeNewsletter,
	}

	orders := make([]*shopping.Order, 0, len(lines))
	for _, line := range lines {
		price, ok := priceByID[line.ProductID]
		if !ok {
			return nil, shared.NewDomainError("PRODUCT_GONE", "A cart item no longer exists")
		}
		order, err := shopping.NewOrder(userID, line.ProductID, line.Quantity, price, details)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	if err := s.checkout.PlaceOrders(ctx, owner, orders); err != nil {
		return nil, err
	}

	resp := &CheckoutResponse{
		Orders: make([]OrderResponse, len(orders)),
		Total:  decimal.Zero,
	}
	for i, order := range orders {
		resp.Orders[i] = ToOrderResponse(order)
		resp.Total = resp.Total.Add(order.TotalPrice)
	}
	return resp, nil
}

// ListForAdmin returns one page of all orders, optionally filtered by
// status
func (s *OrderService) ListForAdmin(ctx context.Context, filter OrderListFilter) (*shared.Paginated[OrderResponse], error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}

	orders, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}

	result := shared.NewPaginated(responses, total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// ListForUser returns all of a user's orders, newest first
func (s *OrderService) ListForUser(ctx context.Context, userID uuid.UUID) ([]OrderResponse, error) {
	orders, err := s.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return responses, nil
}

// Get returns an order visible to the actor: admins see any order,
// users only their own
func (s *OrderService) Get(ctx context.Context, actorID uuid.UUID, actorAdmin bool, id uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actorAdmin && !order.IsOwnedBy(actorID) {
		return nil, shared.ErrForbidden
	}

	resp := ToOrderResponse(order)
	return &resp, nil
}

// Update applies an admin edit to an order's status, tracking number,
// or notes
func (s *OrderService) Update(ctx context.Context, id uuid.UUID, req UpdateOrderRequest) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		if err := order.SetStatus(shopping.OrderStatus(*req.Status)); err != nil {
			return nil, err
		}
	}
	if req.TrackingNumber != nil {
		order.SetTracking(*req.TrackingNumber)
	}
	if req.OrderNotes != nil {
		order.SetNotes(*req.OrderNotes)
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	resp := ToOrderResponse(order)
	return &resp, nil
}
