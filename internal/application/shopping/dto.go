package shopping

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/shopping"
	"github.com/shopspring/decimal"
)

// AddToCartRequest represents a request to add a product to the cart
type AddToCartRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// UpdateCartLineRequest represents a request to change a line's quantity
type UpdateCartLineRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// CartLineResponse represents one cart line joined with its product
type CartLineResponse struct {
	ID           uuid.UUID       `json:"id"`
	ProductID    uuid.UUID       `json:"product_id"`
	ProductTitle string          `json:"product_title"`
	ProductImage string          `json:"product_image"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Quantity     int             `json:"quantity"`
	LineTotal    decimal.Decimal `json:"line_total"`
}

// CartResponse represents the full cart
type CartResponse struct {
	Lines     []CartLineResponse `json:"lines"`
	ItemCount int                `json:"item_count"`
	Total     decimal.Decimal    `json:"total"`
}

// CheckoutRequest represents a cart-to-order conversion
type CheckoutRequest struct {
	CustomerEmail       string `json:"customer_email" binding:"required,email,max=200"`
	PaymentMethod       string `json:"payment_method" binding:"required,max=50"`
	ShippingAddress     string `json:"shipping_address" binding:"max=2000"`
	BillingAddress      string `json:"billing_address" binding:"max=2000"`
	CouponCode          string `json:"coupon_code" binding:"max=100"`
	OrderNotes          string `json:"order_notes" binding:"max=2000"`
	SubscribeNewsletter bool   `json:"subscribe_newsletter"`
}

// CheckoutResponse represents the result of a checkout
type CheckoutResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  decimal.Decimal `json:"total"`
}

// UpdateOrderRequest represents an admin edit of an order
type UpdateOrderRequest struct {
	Status         *string `json:"status" binding:"omitempty,oneof=pending processing shipped delivered cancelled refunded"`
	TrackingNumber *string `json:"tracking_number" binding:"omitempty,max=100"`
	OrderNotes     *string `json:"order_notes" binding:"omitempty,max=2000"`
}

// OrderListFilter represents filter options for the admin order list
type OrderListFilter struct {
	Status   string `form:"status" binding:"omitempty,oneof=pending processing shipped delivered cancelled refunded"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID                  uuid.UUID       `json:"id"`
	UserID              *uuid.UUID      `json:"user_id"`
	ProductID           uuid.UUID       `json:"product_id"`
	CustomerEmail       string          `json:"customer_email"`
	Quantity            int             `json:"quantity"`
	UnitPrice           decimal.Decimal `json:"unit_price"`
	TotalPrice          decimal.Decimal `json:"total_price"`
	PaymentMethod       string          `json:"payment_method"`
	CouponCode          string          `json:"coupon_code"`
	SubscribeNewsletter bool            `json:"subscribe_newsletter"`
	Status              string          `json:"status"`
	TrackingNumber      string          `json:"tracking_number"`
	ShippingAddress     string          `json:"shipping_address"`
	BillingAddress      string          `json:"billing_address"`
	OrderNotes          string          `json:"order_notes"`
	ShippedAt           *time.Time      `json:"shipped_at"`
	DeliveredAt         *time.Time      `json:"delivered_at"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// ToOrderResponse converts a domain Order to OrderResponse
func ToOrderResponse(o *shopping.Order) OrderResponse {
	return OrderResponse{
		ID:                  o.ID,
		UserID:              o.UserID,
		ProductID:           o.ProductID,
		CustomerEmail:       o.CustomerEmail,
		Quantity:            o.Quantity,
		UnitPrice:           o.UnitPrice,
		TotalPrice:          o.TotalPrice,
		PaymentMethod:       o.PaymentMethod,
		CouponCode:          o.CouponCode,
		SubscribeNewsletter: o.SubscribeNewsletter,
		Status:              string(o.Status),
		TrackingNumber:      o.TrackingNumber,
		ShippingAddress:     o.ShippingAddress,
		BillingAddress:      o.BillingAddress,
		OrderNotes:          o.OrderNotes,
		ShippedAt:           o.ShippedAt,
		DeliveredAt:         o.DeliveredAt,
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
	}
}
