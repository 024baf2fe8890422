package handler

import (
	"github.com/gin-gonic/gin"

	adminapp "github.com/shopcore/backend/internal/application/admin"
)

// AdminHandler handles dashboard statistics and bulk update endpoints
type AdminHandler struct {
	BaseHandler
	dashboardService *adminapp.DashboardService
	bulkService      *adminapp.BulkService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(dashboardService *adminapp.DashboardService, bulkService *adminapp.BulkService) *AdminHandler {
	return &AdminHandler{
		dashboardService: dashboardService,
		bulkService:      bulkService,
	}
}

// DashboardStats handles GET /api/admin/dashboard/stats
func (h *AdminHandler) DashboardStats(c *gin.Context) {
	stats, err := h.dashboardService.Stats(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, stats)
}

// BulkUpdateProducts handles POST /api/admin/products/bulk-update
func (h *AdminHandler) BulkUpdateProducts(c *gin.Context) {
	var req adminapp.BulkUpdateProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.bulkService.UpdateProducts(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// BulkUpdateOrders handles POST /api/admin/orders/bulk-update
func (h *AdminHandler) BulkUpdateOrders(c *gin.Context) {
	var req adminapp.BulkUpdateOrdersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.bulkService.UpdateOrders(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
