package shopping

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the fulfilment state of an order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
)

// ValidOrderStatus reports whether s is a known order status
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded:
		return true
	}
	return false
}

// Order is a placed purchase of a single product. Checkout produces one
// order row per cart line rather than an order header with line items.
//
// UnitPrice and TotalPrice are snapshots of the product price at checkout
// time; later price changes never touch an existing order. After creation
// only status, tracking, notes, and the fulfilment timestamps change.
type Order struct {
	shared.BaseEntity
	UserID              *uuid.UUID      `gorm:"type:uuid;index"`
	ProductID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	CustomerEmail       string          `gorm:"type:varchar(200);not null"`
	Quantity            int             `gorm:"not null"`
	UnitPrice           decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TotalPrice          decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PaymentMethod       string          `gorm:"type:varchar(50);not null"`
	CouponCode          string          `gorm:"type:varchar(100)"`
	SubscribeNewsletter bool            `gorm:"not null;default:false"`
	Status              OrderStatus     `gorm:"type:varchar(20);not null;default:'pending';index"`
	TrackingNumber      string          `gorm:"type:varchar(100)"`
	ShippingAddress     string          `gorm:"type:text"`
	BillingAddress      string          `gorm:"type:text"`
	OrderNotes          string          `gorm:"type:text"`
	ShippedAt           *time.Time
	DeliveredAt         *time.Time
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// CheckoutDetails carries the customer-supplied metadata duplicated onto
// every order row produced by one checkout.
type CheckoutDetails struct {
	CustomerEmail       string
	PaymentMethod       string
	ShippingAddress     string
	BillingAddress      string
	CouponCode          string
	OrderNotes          string
	SubscribeNewsletter bool
}

// NewOrder snapshots one cart line into a pending order. The unit price is
// the product's price at this instant; the total is unitPrice * quantity.
// Anonymous checkouts carry a nil user ID.
func NewOrder(userID *uuid.UUID, productID uuid.UUID, quantity int, unitPrice decimal.Decimal, details CheckoutDetails) (*Order, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if details.CustomerEmail == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Customer email is required")
	}
	if details.PaymentMethod == "" {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Payment method is required")
	}

	return &Order{
		BaseEntity:          shared.NewBaseEntity(),
		UserID:              userID,
		ProductID:           productID,
		CustomerEmail:       details.CustomerEmail,
		Quantity:            quantity,
		UnitPrice:           unitPrice,
		TotalPrice:          unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
		PaymentMethod:       details.PaymentMethod,
		CouponCode:          details.CouponCode,
		SubscribeNewsletter: details.SubscribeNewsletter,
		Status:              OrderStatusPending,
		ShippingAddress:     details.ShippingAddress,
		BillingAddress:      details.BillingAddress,
		OrderNotes:          details.OrderNotes,
	}, nil
}

// SetStatus moves the order to a new status. Transitions are not
// constrained to a forward path; shipped_at and delivered_at are stamped
// once and never overwritten by a repeated update.
func (o *Order) SetStatus(status OrderStatus) error {
	if !ValidOrderStatus(status) {
		return shared.NewDomainError("INVALID_STATUS", "Unknown order status")
	}

	o.Status = status
	now := time.Now()
	if status == OrderStatusShipped && o.ShippedAt == nil {
		o.ShippedAt = &now
	}
	if status == OrderStatusDelivered && o.DeliveredAt == nil {
		o.DeliveredAt = &now
	}
	o.Touch()

	return nil
}

// SetTracking sets the carrier tracking number
func (o *Order) SetTracking(trackingNumber string) {
	o.TrackingNumber = trackingNumber
	o.Touch()
}

// SetNotes sets the free-form order notes
func (o *Order) SetNotes(notes string) {
	o.OrderNotes = notes
	o.Touch()
}

// IsOwnedBy reports whether the order belongs to the given user
func (o *Order) IsOwnedBy(userID uuid.UUID) bool {
	return o.UserID != nil && *o.UserID == userID
}
