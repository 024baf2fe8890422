package shopping

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDetails() CheckoutDetails {
	return CheckoutDetails{
		CustomerEmail:   "buyer@example.com",
		PaymentMethod:   "card",
		ShippingAddress: "1 Main St",
	}
}

func TestNewOrder_SnapshotsTotal(t *testing.T) {
	userID := uuid.New()
	order, err := NewOrder(&userID, uuid.New(), 5, decimal.NewFromFloat(10.00), testDetails())

	require.NoError(t, err)
	assert.Equal(t, OrderStatusPending, order.Status)
	assert.True(t, order.UnitPrice.Equal(decimal.NewFromFloat(10.00)))
	assert.True(t, order.TotalPrice.Equal(decimal.NewFromFloat(50.00)))
	assert.True(t, order.IsOwnedBy(userID))
	assert.Nil(t, order.ShippedAt)
	assert.Nil(t, order.DeliveredAt)
}

func TestNewOrder_Anonymous(t *testing.T) {
	order, err := NewOrder(nil, uuid.New(), 1, decimal.NewFromInt(3), testDetails())
	require.NoError(t, err)
	assert.Nil(t, order.UserID)
	assert.False(t, order.IsOwnedBy(uuid.New()))
}

func TestNewOrder_Invalid(t *testing.T) {
	_, err := NewOrder(nil, uuid.Nil, 1, decimal.NewFromInt(1), testDetails())
	require.Error(t, err)

	_, err = NewOrder(nil, uuid.New(), 0, decimal.NewFromInt(1), testDetails())
	require.Error(t, err)

	details := testDetails()
	details.CustomerEmail = ""
	_, err = NewOrder(nil, uuid.New(), 1, decimal.NewFromInt(1), details)
	require.Error(t, err)

	details = testDetails()
	details.PaymentMethod = ""
	_, err = NewOrder(nil, uuid.New(), 1, decimal.NewFromInt(1), details)
	require.Error(t, err)
}

func TestOrder_SetStatus_IdempotentTimestamps(t *testing.T) {
	order, err := NewOrder(nil, uuid.New(), 1, decimal.NewFromInt(1), testDetails())
	require.NoError(t, err)

	require.NoError(t, order.SetStatus(OrderStatusShipped))
	require.NotNil(t, order.ShippedAt)
	first := *order.ShippedAt

	// a second shipped update must not move the timestamp
	require.NoError(t, order.SetStatus(OrderStatusShipped))
	assert.Equal(t, first, *order.ShippedAt)

	require.NoError(t, order.SetStatus(OrderStatusDelivered))
	require.NotNil(t, order.DeliveredAt)
	delivered := *order.DeliveredAt
	require.NoError(t, order.SetStatus(OrderStatusDelivered))
	assert.Equal(t, delivered, *order.DeliveredAt)
}

func TestOrder_SetStatus_PermissiveTransitions(t *testing.T) {
	order, err := NewOrder(nil, uuid.New(), 1, decimal.NewFromInt(1), testDetails())
	require.NoError(t, err)

	// no forbidden-transition table: pending straight to delivered is allowed
	require.NoError(t, order.SetStatus(OrderStatusDelivered))
	assert.Equal(t, OrderStatusDelivered, order.Status)

	// and back out to cancelled
	require.NoError(t, order.SetStatus(OrderStatusCancelled))
	assert.Equal(t, OrderStatusCancelled, order.Status)

	require.Error(t, order.SetStatus(OrderStatus("lost")))
}
