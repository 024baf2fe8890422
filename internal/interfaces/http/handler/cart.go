package handler

import (
	"github.com/gin-gonic/gin"

	shoppingapp "github.com/shopcore/backend/internal/application/shopping"
	"github.com/shopcore/backend/internal/interfaces/http/middleware"
)

// CartHandler handles cart endpoints. All operations are scoped to the
// cart owner resolved from the request: the authenticated user when a
// token is present, the anonymous session otherwise.
type CartHandler struct {
	BaseHandler
	cartService *shoppingapp.CartService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService *shoppingapp.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// Get handles GET /api/cart
func (h *CartHandler) Get(c *gin.Context) {
	cart, err := h.cartService.GetCart(c.Request.Context(), middleware.ResolveCartOwner(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, cart)
}

// Add handles POST /api/cart
func (h *CartHandler) Add(c *gin.Context) {
	var req shoppingapp.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	cart, err := h.cartService.AddToCart(c.Request.Context(), middleware.ResolveCartOwner(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, cart)
}

// UpdateLine handles PUT /api/cart/:id
func (h *CartHandler) UpdateLine(c *gin.Context) {
	lineID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid cart line ID")
		return
	}

	var req shoppingapp.UpdateCartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.cartService.UpdateLine(c.Request.Context(), lineID, req); err != nil {
		h.HandleError(c, err)
		return
	}

	cart, err := h.cartService.GetCart(c.Request.Context(), middleware.ResolveCartOwner(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, cart)
}

// RemoveLine handles DELETE /api/cart/:id
func (h *CartHandler) RemoveLine(c *gin.Context) {
	lineID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid cart line ID")
		return
	}

	if err := h.cartService.RemoveLine(c.Request.Context(), lineID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Clear handles DELETE /api/cart/clear
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.cartService.ClearCart(c.Request.Context(), middleware.ResolveCartOwner(c)); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
