package admin

import (
	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/application/shopping"
	"github.com/shopspring/decimal"
)

// DashboardStats aggregates the numbers shown on the admin dashboard
type DashboardStats struct {
	TotalProducts   int64                    `json:"total_products"`
	TotalOrders     int64                    `json:"total_orders"`
	TotalUsers      int64                    `json:"total_users"`
	TotalCategories int64                    `json:"total_categories"`
	TotalRevenue    float64                  `json:"total_revenue"`
	OrdersByStatus  map[string]int64         `json:"orders_by_status"`
	RecentOrders    []shopping.OrderResponse `json:"recent_orders"`
}

// ProductPatch is the allow-list of product fields a bulk update may
// touch. Anything else in the request body is ignored.
type ProductPatch struct {
	Status        *string          `json:"status" binding:"omitempty,oneof=active inactive draft"`
	Featured      *bool            `json:"featured"`
	CategoryID    *uuid.UUID       `json:"category_id"`
	Price         *decimal.Decimal `json:"price"`
	StockQuantity *int             `json:"stock_quantity" binding:"omitempty,min=0"`
}

// OrderPatch is the allow-list of order fields a bulk update may touch
type OrderPatch struct {
	Status         *string `json:"status" binding:"omitempty,oneof=pending processing shipped delivered cancelled refunded"`
	TrackingNumber *string `json:"tracking_number" binding:"omitempty,max=100"`
}

// BulkUpdateProductsRequest represents a bulk product patch
type BulkUpdateProductsRequest struct {
	IDs   []uuid.UUID  `json:"ids" binding:"required,min=1"`
	Patch ProductPatch `json:"patch" binding:"required"`
}

// BulkUpdateOrdersRequest represents a bulk order patch
type BulkUpdateOrdersRequest struct {
	IDs   []uuid.UUID `json:"ids" binding:"required,min=1"`
	Patch OrderPatch  `json:"patch" binding:"required"`
}

// BulkUpdateResponse reports how many rows a bulk update touched
type BulkUpdateResponse struct {
	UpdatedCount int `json:"updated_count"`
}
