package handler

import (
	"github.com/gin-gonic/gin"

	sitecontentapp "github.com/shopcore/backend/internal/application/sitecontent"
)

// LayoutHandler handles site layout section endpoints
type LayoutHandler struct {
	BaseHandler
	layoutService *sitecontentapp.LayoutService
}

// NewLayoutHandler creates a new LayoutHandler
func NewLayoutHandler(layoutService *sitecontentapp.LayoutService) *LayoutHandler {
	return &LayoutHandler{layoutService: layoutService}
}

// List handles GET /api/admin/layout
func (h *LayoutHandler) List(c *gin.Context) {
	sections, err := h.layoutService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, sections)
}

// Create handles POST /api/admin/layout
func (h *LayoutHandler) Create(c *gin.Context) {
	var req sitecontentapp.CreateLayoutSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.layoutService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Update handles PUT /api/admin/layout/:id
func (h *LayoutHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid layout section ID")
		return
	}

	var req sitecontentapp.UpdateLayoutSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.layoutService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete handles DELETE /api/admin/layout/:id
func (h *LayoutHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid layout section ID")
		return
	}

	if err := h.layoutService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
