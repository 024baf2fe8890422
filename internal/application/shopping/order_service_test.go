package shopping

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/catalog"
	"github.com/shopcore/backend/internal/domain/shared"
	"github.com/shopcore/backend/internal/domain/shopping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderService(cartRepo *MockCartLineRepository, orderRepo *MockOrderRepository, productRepo *MockProductRepository, checkout *MockCheckoutStore) *OrderService {
	return NewOrderService(orderRepo, cartRepo, productRepo, checkout)
}

func TestOrderService_Checkout(t *testing.T) {
	checkoutReq := CheckoutRequest{
		CustomerEmail: "buyer@example.com",
		PaymentMethod: "card",
	}

	t.Run("empty cart", func(t *testing.T) {
		cartRepo := new(MockCartLineRepository)
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		checkout := new(MockCheckoutStore)
		svc := newOrderService(cartRepo, orderRepo, productRepo, checkout)
		owner := shopping.UserOwner(uuid.New())

		cartRepo.On("FindByOwner", mock.Anything, owner).Return([]shopping.CartLine{}, nil)

		_, err := svc.Checkout(context.Background(), owner, checkoutReq)
		assert.ErrorIs(t, err, shared.ErrEmptyCart)
		checkout.AssertNotCalled(t, "PlaceOrders")
	})

	t.Run("one order per line with snapshotted prices", func(t *testing.T) {
		cartRepo := new(MockCartLineRepository)
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		checkout := new(MockCheckoutStore)
		svc := newOrderService(cartRepo, orderRepo, productRepo, checkout)

		userID := uuid.New()
		owner := shopping.UserOwner(userID)

		desk := newStockedProduct(t, "249.99", 10)
		lamp, err := catalog.NewProduct(uuid.New(), "Desk Lamp", decimal.RequireFromString("25.00"))
		require.NoError(t, err)

		lineA, err := shopping.NewCartLine(owner, desk.ID, 1)
		require.NoError(t, err)
		lineB, err := shopping.NewCartLine(owner, lamp.ID, 2)
		require.NoError(t, err)

		cartRepo.On("FindByOwner", mock.Anything, owner).Return([]shopping.CartLine{*lineA, *lineB}, nil)
		productRepo.On("FindByIDs", mock.Anything, mock.Anything).Return([]catalog.Product{*desk, *lamp}, nil)
		checkout.On("PlaceOrders", mock.Anything, owner, mock.AnythingOfType("[]*shopping.Order")).Return(nil)

		resp, err := svc.Checkout(context.Background(), owner, checkoutReq)
		require.NoError(t, err)
		require.Len(t, resp.Orders, 2)
		assert.True(t, resp.Total.Equal(decimal.RequireFromString("299.99")))

		for _, order := range resp.Orders {
			assert.Equal(t, "pending", order.Status)
			assert.Equal(t, userID, *order.UserID)
			assert.Equal(t, "buyer@example.com", order.CustomerEmail)
		}
		checkout.AssertExpectations(t)
	})

	t.Run("anonymous checkout carries nil user id", func(t *testing.T) {
		cartRepo := new(MockCartLineRepository)
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		checkout := new(MockCheckoutStore)
		svc := newOrderService(cartRepo, orderRepo, productRepo, checkout)

		owner := shopping.SessionOwner("sess-guest")
		product := newStockedProduct(t, "10.00", 10)
		line, err := shopping.NewCartLine(owner, product.ID, 1)
		require.NoError(t, err)

		cartRepo.On("FindByOwner", mock.Anything, owner).Return([]shopping.CartLine{*line}, nil)
		productRepo.On("FindByIDs", mock.Anything, mock.Anything).Return([]catalog.Product{*product}, nil)
		checkout.On("PlaceOrders", mock.Anything, owner, mock.Anything).Return(nil)

		resp, err := svc.Checkout(context.Background(), owner, checkoutReq)
		require.NoError(t, err)
		require.Len(t, resp.Orders, 1)
		assert.Nil(t, resp.Orders[0].UserID)
	})

	t.Run("cart line whose product vanished aborts the checkout", func(t *testing.T) {
		cartRepo := new(MockCartLineRepository)
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		checkout := new(MockCheckoutStore)
		svc := newOrderService(cartRepo, orderRepo, productRepo, checkout)

		owner := shopping.UserOwner(uuid.New())
		line, err := shopping.NewCartLine(owner, uuid.New(), 1)
		require.NoError(t, err)

		cartRepo.On("FindByOwner", mock.Anything, owner).Return([]shopping.CartLine{*line}, nil)
		productRepo.On("FindByIDs", mock.Anything, mock.Anything).Return([]catalog.Product{}, nil)

		_, err = svc.Checkout(context.Background(), owner, checkoutReq)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "PRODUCT_GONE", domainErr.Code)
		checkout.AssertNotCalled(t, "PlaceOrders")
	})
}

func TestOrderService_Get(t *testing.T) {
	newOrder := func(t *testing.T, userID *uuid.UUID) *shopping.Order {
		order, err := shopping.NewOrder(userID, uuid.New(), 1, decimal.New(10, 0), shopping.CheckoutDetails{
			CustomerEmail: "buyer@example.com",
			PaymentMethod: "card",
		})
		require.NoError(t, err)
		return order
	}

	t.Run("owner reads own order", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		svc := newOrderService(new(MockCartLineRepository), orderRepo, new(MockProductRepository), new(MockCheckoutStore))
		userID := uuid.New()
		order := newOrder(t, &userID)

		orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)

		resp, err := svc.Get(context.Background(), userID, false, order.ID)
		require.NoError(t, err)
		assert.Equal(t, order.ID, resp.ID)
	})

	t.Run("stranger is denied", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		svc := newOrderService(new(MockCartLineRepository), orderRepo, new(MockProductRepository), new(MockCheckoutStore))
		userID := uuid.New()
		order := newOrder(t, &userID)

		orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)

		_, err := svc.Get(context.Background(), uuid.New(), false, order.ID)
		assert.ErrorIs(t, err, shared.ErrForbidden)
	})

	t.Run("admin reads anything including anonymous orders", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		svc := newOrderService(new(MockCartLineRepository), orderRepo, new(MockProductRepository), new(MockCheckoutStore))
		order := newOrder(t, nil)

		orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)

		resp, err := svc.Get(context.Background(), uuid.New(), true, order.ID)
		require.NoError(t, err)
		assert.Nil(t, resp.UserID)
	})
}

func TestOrderService_Update(t *testing.T) {
	t.Run("status change stamps shipped_at once", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		svc := newOrderService(new(MockCartLineRepository), orderRepo, new(MockProductRepository), new(MockCheckoutStore))

		order, err := shopping.NewOrder(nil, uuid.New(), 1, decimal.New(10, 0), shopping.CheckoutDetails{
			CustomerEmail: "buyer@example.com",
			PaymentMethod: "card",
		})
		require.NoError(t, err)

		orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
		orderRepo.On("Save", mock.Anything, order).Return(nil)

		status := "shipped"
		resp, err := svc.Update(context.Background(), order.ID, UpdateOrderRequest{Status: &status})
		require.NoError(t, err)
		require.NotNil(t, resp.ShippedAt)
		firstStamp := *resp.ShippedAt

		resp, err = svc.Update(context.Background(), order.ID, UpdateOrderRequest{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, firstStamp, *resp.ShippedAt)
	})

	t.Run("sets tracking and notes", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		svc := newOrderService(new(MockCartLineRepository), orderRepo, new(MockProductRepository), new(MockCheckoutStore))

		order, err := shopping.NewOrder(nil, uuid.New(), 1, decimal.New(10, 0), shopping.CheckoutDetails{
			CustomerEmail: "buyer@example.com",
			PaymentMethod: "card",
		})
		require.NoError(t, err)

		orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
		orderRepo.On("Save", mock.Anything, order).Return(nil)

		tracking := "TRACK-42"
		notes := "leave at door"
		resp, err := svc.Update(context.Background(), order.ID, UpdateOrderRequest{
			TrackingNumber: &tracking,
			OrderNotes:     &notes,
		})
		require.NoError(t, err)
		assert.Equal(t, "TRACK-42", resp.TrackingNumber)
		assert.Equal(t, "leave at door", resp.OrderNotes)
	})
}
