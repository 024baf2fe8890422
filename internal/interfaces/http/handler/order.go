package handler

import (
	"github.com/gin-gonic/gin"

	shoppingapp "github.com/shopcore/backend/internal/application/shopping"
	"github.com/shopcore/backend/internal/interfaces/http/middleware"
)

// OrderHandler handles checkout and order endpoints
type OrderHandler struct {
	BaseHandler
	orderService *shoppingapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *shoppingapp.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Checkout handles POST /api/orders. Anonymous checkout is allowed; the
// cart owner is resolved the same way as for cart operations.
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req shoppingapp.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.orderService.Checkout(c.Request.Context(), middleware.ResolveCartOwner(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// List handles GET /api/orders. Admins see all orders paginated with an
// optional status filter; customers see their own orders only.
func (h *OrderHandler) List(c *gin.Context) {
	if middleware.IsAdmin(c) {
		var filter shoppingapp.OrderListFilter
		if err := c.ShouldBindQuery(&filter); err != nil {
			h.BadRequest(c, err.Error())
			return
		}

		result, err := h.orderService.ListForAdmin(c.Request.Context(), filter)
		if err != nil {
			h.HandleError(c, err)
			return
		}

		h.Success(c, result)
		return
	}

	orders, err := h.orderService.ListForUser(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, orders)
}

// Get handles GET /api/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	resp, err := h.orderService.Get(c.Request.Context(), middleware.GetUserID(c), middleware.IsAdmin(c), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Update handles PUT /api/orders/:id (admin only)
func (h *OrderHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	var req shoppingapp.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.orderService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
